// Package files manages uploaded file metadata and contents.
package files

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/shareguard/shareguard/internal/logger"
	"github.com/shareguard/shareguard/pkg/blob"
	"github.com/shareguard/shareguard/pkg/models"
	"github.com/shareguard/shareguard/pkg/store"
)

// Service coordinates the metadata store and the blob store. Metadata is
// written after the blob so a crash can orphan a blob but never leave a
// metadata row pointing at missing bytes.
type Service struct {
	store store.Store
	blobs blob.Store
}

// NewService creates a file service.
func NewService(st store.Store, blobs blob.Store) *Service {
	return &Service{
		store: st,
		blobs: blobs,
	}
}

// Upload stores the bytes and records the file under the owner.
func (s *Service) Upload(ctx context.Context, ownerID, name, contentType string, data []byte) (*models.File, error) {
	if name == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	key := uuid.New().String()
	if err := s.blobs.Put(ctx, key, data); err != nil {
		return nil, fmt.Errorf("failed to store blob: %w", err)
	}

	file := &models.File{
		OwnerID:     ownerID,
		Name:        name,
		BlobKey:     key,
		Size:        int64(len(data)),
		ContentType: contentType,
	}
	if _, err := s.store.CreateFile(ctx, file); err != nil {
		// Roll the blob back so it doesn't leak
		if derr := s.blobs.Delete(ctx, key); derr != nil {
			logger.WarnCtx(ctx, "failed to roll back blob",
				logger.KeyBlobKey, key, logger.KeyError, derr)
		}
		return nil, err
	}

	logger.InfoCtx(ctx, "file uploaded",
		logger.KeyFileID, file.ID,
		logger.KeyAccountID, ownerID,
		"size", file.Size)
	return file, nil
}

// Content reads the bytes for an already-authorized file. Callers must have
// obtained the file through the access engine first.
func (s *Service) Content(ctx context.Context, file *models.File) ([]byte, error) {
	data, err := s.blobs.Get(ctx, file.BlobKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}
	return data, nil
}

// Delete removes a file, owner only. Grants and links go with it; the blob
// is removed last.
func (s *Service) Delete(ctx context.Context, ownerID, fileID string) error {
	file, err := s.store.GetFile(ctx, fileID)
	if err != nil {
		return err
	}
	if file.OwnerID != ownerID {
		return models.ErrAccessDenied
	}

	if err := s.store.DeleteFile(ctx, fileID); err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, file.BlobKey); err != nil {
		// The metadata is gone; the orphaned blob is only a space leak.
		logger.WarnCtx(ctx, "failed to delete blob",
			logger.KeyBlobKey, file.BlobKey, logger.KeyError, err)
	}

	logger.InfoCtx(ctx, "file deleted", logger.KeyFileID, fileID)
	return nil
}

// ListOwned returns the files owned by the account.
func (s *Service) ListOwned(ctx context.Context, ownerID string) ([]*models.File, error) {
	return s.store.ListFilesByOwner(ctx, ownerID)
}

// ListSharedWith returns the files reachable through a live grant.
func (s *Service) ListSharedWith(ctx context.Context, accountID string) ([]*models.File, error) {
	return s.store.ListFilesSharedWith(ctx, accountID)
}
