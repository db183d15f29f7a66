package share

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shareguard/shareguard/internal/logger"
	"github.com/shareguard/shareguard/pkg/models"
	"github.com/shareguard/shareguard/pkg/store"
)

// Validation errors for share operations.
var (
	// ErrInvalidPermission is returned for an unknown permission value.
	ErrInvalidPermission = errors.New("invalid permission")

	// ErrInvalidExpiry is returned when an expiry is not in the future.
	ErrInvalidExpiry = errors.New("expiry must be in the future")

	// ErrSelfShare is returned when an owner tries to share a file with
	// themselves.
	ErrSelfShare = errors.New("cannot share a file with its owner")
)

// DefaultLinkTTL is applied when a link is created without an expiry.
const DefaultLinkTTL = 24 * time.Hour

// Service manages grants and links. All mutating operations require the
// caller to own the file.
type Service struct {
	store store.Store
	now   func() time.Time
}

// NewService creates a share service.
func NewService(st store.Store) *Service {
	return &Service{
		store: st,
		now:   time.Now,
	}
}

// ShareWithAccount creates or updates the grant giving target access to the
// file. Re-sharing with the same account replaces the permission and expiry.
func (s *Service) ShareWithAccount(ctx context.Context, ownerID, fileID, targetAccountID string, perm models.Permission, expiresAt *time.Time) (*models.ShareGrant, error) {
	file, err := s.ownedFile(ctx, ownerID, fileID)
	if err != nil {
		return nil, err
	}

	if !perm.IsValid() {
		return nil, ErrInvalidPermission
	}
	if expiresAt != nil && !expiresAt.After(s.now()) {
		return nil, ErrInvalidExpiry
	}
	if targetAccountID == file.OwnerID {
		return nil, ErrSelfShare
	}

	target, err := s.store.GetAccountByID(ctx, targetAccountID)
	if err != nil {
		return nil, err
	}

	grant := &models.ShareGrant{
		FileID:     file.ID,
		AccountID:  target.ID,
		Permission: string(perm),
		ExpiresAt:  expiresAt,
	}
	id, err := s.store.UpsertGrant(ctx, grant)
	if err != nil {
		return nil, err
	}
	grant.ID = id

	logger.InfoCtx(ctx, "file shared",
		logger.KeyFileID, file.ID,
		logger.KeyAccountID, target.ID,
		"permission", string(perm))
	return grant, nil
}

// Unshare removes the grant for (fileID, accountID).
func (s *Service) Unshare(ctx context.Context, ownerID, fileID, accountID string) error {
	if _, err := s.ownedFile(ctx, ownerID, fileID); err != nil {
		return err
	}
	return s.store.DeleteGrant(ctx, fileID, accountID)
}

// CreateLink mints a bearer link on the file. A zero expiry gets
// DefaultLinkTTL; an explicit expiry must be in the future.
func (s *Service) CreateLink(ctx context.Context, ownerID, fileID string, perm models.Permission, expiresAt time.Time, oneTime bool) (*models.ShareLink, error) {
	file, err := s.ownedFile(ctx, ownerID, fileID)
	if err != nil {
		return nil, err
	}

	if !perm.IsValid() {
		return nil, ErrInvalidPermission
	}
	if expiresAt.IsZero() {
		expiresAt = s.now().Add(DefaultLinkTTL)
	} else if !expiresAt.After(s.now()) {
		return nil, ErrInvalidExpiry
	}

	token, err := GenerateLinkToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate link token: %w", err)
	}

	link := &models.ShareLink{
		FileID:     file.ID,
		CreatorID:  ownerID,
		Token:      token,
		Permission: string(perm),
		OneTimeUse: oneTime,
		ExpiresAt:  expiresAt,
	}
	id, err := s.store.CreateLink(ctx, link)
	if err != nil {
		return nil, err
	}
	link.ID = id

	logger.InfoCtx(ctx, "share link created",
		logger.KeyLinkID, link.ID,
		logger.KeyFileID, file.ID,
		"one_time", oneTime,
		"permission", string(perm))
	return link, nil
}

// RevokeLink deletes a link. Only the file owner may revoke it.
func (s *Service) RevokeLink(ctx context.Context, ownerID, linkID string) error {
	link, err := s.store.GetLink(ctx, linkID)
	if err != nil {
		return err
	}
	if _, err := s.ownedFile(ctx, ownerID, link.FileID); err != nil {
		return err
	}
	return s.store.DeleteLink(ctx, linkID)
}

// ListShares returns the grants and links on a file, owner only.
func (s *Service) ListShares(ctx context.Context, ownerID, fileID string) ([]*models.ShareGrant, []*models.ShareLink, error) {
	if _, err := s.ownedFile(ctx, ownerID, fileID); err != nil {
		return nil, nil, err
	}

	grants, err := s.store.ListGrantsByFile(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	links, err := s.store.ListLinksByFile(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	return grants, links, nil
}

// ownedFile loads the file and verifies ownership.
func (s *Service) ownedFile(ctx context.Context, ownerID, fileID string) (*models.File, error) {
	file, err := s.store.GetFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if file.OwnerID != ownerID {
		return nil, models.ErrAccessDenied
	}
	return file, nil
}
