package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shareguard/shareguard/pkg/models"
)

// ============================================
// FILE OPERATIONS
// ============================================

func (s *GORMStore) GetFile(ctx context.Context, id string) (*models.File, error) {
	return getByField[models.File](s.db, ctx, "id", id, models.ErrFileNotFound)
}

func (s *GORMStore) ListFilesByOwner(ctx context.Context, ownerID string) ([]*models.File, error) {
	return listByField[models.File](s.db, ctx, "owner_id", ownerID)
}

func (s *GORMStore) ListFilesSharedWith(ctx context.Context, accountID string) ([]*models.File, error) {
	files := []*models.File{}
	err := s.db.WithContext(ctx).
		Joins("JOIN share_grants ON share_grants.file_id = files.id").
		Where("share_grants.account_id = ?", accountID).
		Where("share_grants.expires_at IS NULL OR share_grants.expires_at > ?", time.Now()).
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s *GORMStore) CreateFile(ctx context.Context, file *models.File) (string, error) {
	file.CreatedAt = time.Now()
	return createWithID(s.db, ctx, file, func(f *models.File, id string) { f.ID = id }, file.ID, models.ErrDuplicateFile)
}

func (s *GORMStore) DeleteFile(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var file models.File
		if err := tx.Where("id = ?", id).First(&file).Error; err != nil {
			return convertNotFoundError(err, models.ErrFileNotFound)
		}

		if err := tx.Where("file_id = ?", id).Delete(&models.ShareGrant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("file_id = ?", id).Delete(&models.ShareLink{}).Error; err != nil {
			return err
		}

		return tx.Delete(&file).Error
	})
}
