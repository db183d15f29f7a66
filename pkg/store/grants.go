package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shareguard/shareguard/pkg/models"
)

// ============================================
// GRANT OPERATIONS
// ============================================

func (s *GORMStore) GetGrant(ctx context.Context, fileID, accountID string) (*models.ShareGrant, error) {
	var grant models.ShareGrant
	err := s.db.WithContext(ctx).
		Where("file_id = ? AND account_id = ?", fileID, accountID).
		First(&grant).Error
	if err != nil {
		return nil, convertNotFoundError(err, models.ErrGrantNotFound)
	}
	return &grant, nil
}

func (s *GORMStore) ListGrantsByFile(ctx context.Context, fileID string) ([]*models.ShareGrant, error) {
	return listByField[models.ShareGrant](s.db, ctx, "file_id", fileID)
}

// UpsertGrant keeps (FileID, AccountID) unique: sharing the same file with
// the same account again replaces the permission and expiry in place.
func (s *GORMStore) UpsertGrant(ctx context.Context, grant *models.ShareGrant) (string, error) {
	var id string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.ShareGrant
		err := tx.Where("file_id = ? AND account_id = ?", grant.FileID, grant.AccountID).
			First(&existing).Error

		switch {
		case err == nil:
			id = existing.ID
			return tx.Model(&existing).
				Select("Permission", "ExpiresAt").
				Updates(map[string]any{
					"permission": grant.Permission,
					"expires_at": grant.ExpiresAt,
				}).Error

		case errors.Is(err, gorm.ErrRecordNotFound):
			created, err := createWithID(tx, ctx, grant, func(g *models.ShareGrant, gid string) { g.ID = gid }, grant.ID, models.ErrGrantNotFound)
			if err != nil {
				return err
			}
			id = created
			return nil

		default:
			return err
		}
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *GORMStore) DeleteGrant(ctx context.Context, fileID, accountID string) error {
	result := s.db.WithContext(ctx).
		Where("file_id = ? AND account_id = ?", fileID, accountID).
		Delete(&models.ShareGrant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrGrantNotFound
	}
	return nil
}
