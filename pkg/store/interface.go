// Package store provides the ShareGuard persistence layer.
//
// This package implements the Store interface for managing accounts, files,
// share grants, and share links.
//
// Two backends are supported:
//   - SQLite (single-node, default)
//   - PostgreSQL (HA-capable)
package store

import (
	"context"
	"time"

	"github.com/shareguard/shareguard/pkg/models"
)

// Store provides the ShareGuard persistence interface.
//
// Thread Safety: Implementations must be safe for concurrent use from multiple
// goroutines. In particular, ConsumeLink must be atomic under concurrent
// redemption of the same link.
type Store interface {
	// ============================================
	// ACCOUNT OPERATIONS
	// ============================================

	// GetAccount returns an account by username.
	// Returns models.ErrAccountNotFound if the account doesn't exist.
	GetAccount(ctx context.Context, username string) (*models.Account, error)

	// GetAccountByID returns an account by its unique ID (UUID).
	// Returns models.ErrAccountNotFound if no account has this ID.
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)

	// GetAccountByEmail returns an account by email address.
	// Returns models.ErrAccountNotFound if no account has this email.
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)

	// ListAccounts returns all accounts.
	ListAccounts(ctx context.Context) ([]*models.Account, error)

	// CreateAccount creates a new account.
	// The account ID will be generated if empty. Returns the generated ID.
	// Returns models.ErrDuplicateAccount if the username or email is taken.
	CreateAccount(ctx context.Context, account *models.Account) (string, error)

	// UpdateAccount updates an existing account's mutable fields.
	// Returns models.ErrAccountNotFound if the account doesn't exist.
	UpdateAccount(ctx context.Context, account *models.Account) error

	// DeleteAccount deletes an account by username, along with its files,
	// grants, and links.
	// Returns models.ErrAccountNotFound if the account doesn't exist.
	DeleteAccount(ctx context.Context, username string) error

	// UpdatePassword updates an account's password hash.
	// Returns models.ErrAccountNotFound if the account doesn't exist.
	UpdatePassword(ctx context.Context, username, passwordHash string) error

	// UpdateLastLogin updates the account's last login timestamp.
	// Returns models.ErrAccountNotFound if the account doesn't exist.
	UpdateLastLogin(ctx context.Context, username string, timestamp time.Time) error

	// UpdateMFA sets the account's TOTP secret and enabled flag together.
	// Returns models.ErrAccountNotFound if the account doesn't exist.
	UpdateMFA(ctx context.Context, accountID, secret string, enabled bool) error

	// ValidateCredentials verifies username/password credentials.
	// Returns the account if credentials are valid.
	// Returns models.ErrInvalidCredentials if the credentials are invalid.
	// Returns models.ErrAccountDisabled if the account is disabled.
	ValidateCredentials(ctx context.Context, username, password string) (*models.Account, error)

	// EnsureAdminAccount creates the bootstrap admin account if it doesn't
	// exist. Returns the generated password when a new account was created,
	// or an empty string if the admin already existed.
	EnsureAdminAccount(ctx context.Context) (string, error)

	// ============================================
	// FILE OPERATIONS
	// ============================================

	// GetFile returns a file by ID.
	// Returns models.ErrFileNotFound if the file doesn't exist.
	GetFile(ctx context.Context, id string) (*models.File, error)

	// ListFilesByOwner returns all files owned by the given account.
	ListFilesByOwner(ctx context.Context, ownerID string) ([]*models.File, error)

	// ListFilesSharedWith returns all files the given account can reach
	// through a live (non-expired) grant.
	ListFilesSharedWith(ctx context.Context, accountID string) ([]*models.File, error)

	// CreateFile records a new file. The ID is generated if empty.
	CreateFile(ctx context.Context, file *models.File) (string, error)

	// DeleteFile deletes a file by ID, along with its grants and links.
	// Returns models.ErrFileNotFound if the file doesn't exist.
	DeleteFile(ctx context.Context, id string) error

	// ============================================
	// GRANT OPERATIONS
	// ============================================

	// GetGrant returns the grant for (fileID, accountID), if any.
	// Returns models.ErrGrantNotFound if no grant exists for the pair.
	GetGrant(ctx context.Context, fileID, accountID string) (*models.ShareGrant, error)

	// ListGrantsByFile returns all grants on a file.
	ListGrantsByFile(ctx context.Context, fileID string) ([]*models.ShareGrant, error)

	// UpsertGrant creates the grant for (FileID, AccountID) or, if one
	// already exists, replaces its permission and expiry so the pair stays
	// unique. Returns the grant ID.
	UpsertGrant(ctx context.Context, grant *models.ShareGrant) (string, error)

	// DeleteGrant removes the grant for (fileID, accountID).
	// Returns models.ErrGrantNotFound if no grant exists for the pair.
	DeleteGrant(ctx context.Context, fileID, accountID string) error

	// ============================================
	// LINK OPERATIONS
	// ============================================

	// GetLink returns a share link by ID.
	// Returns models.ErrLinkNotFound if the link doesn't exist.
	GetLink(ctx context.Context, id string) (*models.ShareLink, error)

	// GetLinkByToken returns a share link by its bearer token.
	// Returns models.ErrLinkNotFound if no link has this token.
	GetLinkByToken(ctx context.Context, token string) (*models.ShareLink, error)

	// ListLinksByFile returns all links on a file.
	ListLinksByFile(ctx context.Context, fileID string) ([]*models.ShareLink, error)

	// CreateLink records a new share link. The ID is generated if empty.
	CreateLink(ctx context.Context, link *models.ShareLink) (string, error)

	// ConsumeLink atomically marks a one-time link as consumed.
	// Exactly one of N concurrent calls for the same unconsumed link
	// succeeds; the rest get models.ErrLinkAlreadyUsed.
	ConsumeLink(ctx context.Context, token string) error

	// DeleteLink removes a share link by ID.
	// Returns models.ErrLinkNotFound if the link doesn't exist.
	DeleteLink(ctx context.Context, id string) error

	// PruneExpired deletes grants and links whose expiry is before now.
	// Returns the number of rows removed.
	PruneExpired(ctx context.Context, now time.Time) (int64, error)

	// ============================================
	// HEALTH & LIFECYCLE
	// ============================================

	// Healthcheck verifies the database connection is alive.
	Healthcheck(ctx context.Context) error

	// Close releases the database connection.
	Close() error
}
