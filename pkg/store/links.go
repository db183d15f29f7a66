package store

import (
	"context"
	"time"

	"github.com/shareguard/shareguard/pkg/models"
)

// ============================================
// LINK OPERATIONS
// ============================================

func (s *GORMStore) GetLink(ctx context.Context, id string) (*models.ShareLink, error) {
	return getByField[models.ShareLink](s.db, ctx, "id", id, models.ErrLinkNotFound)
}

func (s *GORMStore) GetLinkByToken(ctx context.Context, token string) (*models.ShareLink, error) {
	return getByField[models.ShareLink](s.db, ctx, "token", token, models.ErrLinkNotFound)
}

func (s *GORMStore) ListLinksByFile(ctx context.Context, fileID string) ([]*models.ShareLink, error) {
	return listByField[models.ShareLink](s.db, ctx, "file_id", fileID)
}

func (s *GORMStore) CreateLink(ctx context.Context, link *models.ShareLink) (string, error) {
	link.CreatedAt = time.Now()
	return createWithID(s.db, ctx, link, func(l *models.ShareLink, id string) { l.ID = id }, link.ID, models.ErrLinkNotFound)
}

// ConsumeLink flips the consumed flag with a conditional UPDATE so that
// exactly one of N concurrent redemptions of the same link wins.
func (s *GORMStore) ConsumeLink(ctx context.Context, token string) error {
	result := s.db.WithContext(ctx).
		Model(&models.ShareLink{}).
		Where("token = ? AND consumed = ?", token, false).
		Update("consumed", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the token doesn't exist or it was already consumed;
		// distinguish so callers can report the right error.
		var count int64
		if err := s.db.WithContext(ctx).
			Model(&models.ShareLink{}).
			Where("token = ?", token).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return models.ErrLinkNotFound
		}
		return models.ErrLinkAlreadyUsed
	}
	return nil
}

func (s *GORMStore) DeleteLink(ctx context.Context, id string) error {
	return deleteByField[models.ShareLink](s.db, ctx, "id", id, models.ErrLinkNotFound)
}

// PruneExpired removes grants and links whose expiry has passed.
func (s *GORMStore) PruneExpired(ctx context.Context, now time.Time) (int64, error) {
	var total int64

	result := s.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Delete(&models.ShareGrant{})
	if result.Error != nil {
		return 0, result.Error
	}
	total += result.RowsAffected

	result = s.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&models.ShareLink{})
	if result.Error != nil {
		return total, result.Error
	}
	total += result.RowsAffected

	return total, nil
}
