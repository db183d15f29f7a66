package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shareguard/shareguard/pkg/models"
)

// ============================================
// ACCOUNT OPERATIONS
// ============================================

func (s *GORMStore) GetAccount(ctx context.Context, username string) (*models.Account, error) {
	return getByField[models.Account](s.db, ctx, "username", username, models.ErrAccountNotFound)
}

func (s *GORMStore) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	return getByField[models.Account](s.db, ctx, "id", id, models.ErrAccountNotFound)
}

func (s *GORMStore) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	return getByField[models.Account](s.db, ctx, "email", email, models.ErrAccountNotFound)
}

func (s *GORMStore) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	return listAll[models.Account](s.db, ctx)
}

func (s *GORMStore) CreateAccount(ctx context.Context, account *models.Account) (string, error) {
	account.CreatedAt = time.Now()
	return createWithID(s.db, ctx, account, func(a *models.Account, id string) { a.ID = id }, account.ID, models.ErrDuplicateAccount)
}

func (s *GORMStore) UpdateAccount(ctx context.Context, account *models.Account) error {
	var existing models.Account
	if err := s.db.WithContext(ctx).Where("id = ?", account.ID).First(&existing).Error; err != nil {
		return convertNotFoundError(err, models.ErrAccountNotFound)
	}

	// Update specific fields using Select so zero values are written too
	return s.db.WithContext(ctx).
		Model(&existing).
		Select("Username", "Email", "Enabled", "Role").
		Updates(account).Error
}

func (s *GORMStore) DeleteAccount(ctx context.Context, username string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Where("username = ?", username).First(&account).Error; err != nil {
			return convertNotFoundError(err, models.ErrAccountNotFound)
		}

		// Delete grants to and links created by this account
		if err := tx.Where("account_id = ?", account.ID).Delete(&models.ShareGrant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("creator_id = ?", account.ID).Delete(&models.ShareLink{}).Error; err != nil {
			return err
		}

		// Delete owned files along with everything hanging off them
		var files []models.File
		if err := tx.Where("owner_id = ?", account.ID).Find(&files).Error; err != nil {
			return err
		}
		for _, f := range files {
			if err := tx.Where("file_id = ?", f.ID).Delete(&models.ShareGrant{}).Error; err != nil {
				return err
			}
			if err := tx.Where("file_id = ?", f.ID).Delete(&models.ShareLink{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("owner_id = ?", account.ID).Delete(&models.File{}).Error; err != nil {
			return err
		}

		return tx.Delete(&account).Error
	})
}

func (s *GORMStore) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	result := s.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrAccountNotFound
	}
	return nil
}

func (s *GORMStore) UpdateLastLogin(ctx context.Context, username string, timestamp time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("username = ?", username).
		Update("last_login", timestamp)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrAccountNotFound
	}
	return nil
}

func (s *GORMStore) UpdateMFA(ctx context.Context, accountID, secret string, enabled bool) error {
	result := s.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]any{
			"mfa_secret":  secret,
			"mfa_enabled": enabled,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrAccountNotFound
	}
	return nil
}

func (s *GORMStore) ValidateCredentials(ctx context.Context, username, password string) (*models.Account, error) {
	account, err := s.GetAccount(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.Enabled {
		return nil, models.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return account, nil
}

// ============================================
// ADMIN INITIALIZATION
// ============================================

func (s *GORMStore) EnsureAdminAccount(ctx context.Context) (string, error) {
	_, err := s.GetAccount(ctx, models.AdminUsername)
	if err == nil {
		return "", nil // Admin already exists
	}
	if !errors.Is(err, models.ErrAccountNotFound) {
		return "", err
	}

	password, err := models.GetOrGenerateAdminPassword()
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}

	passwordHash, err := models.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.DefaultAdminAccount(passwordHash)
	if _, err := s.CreateAccount(ctx, admin); err != nil {
		return "", fmt.Errorf("failed to create admin account: %w", err)
	}

	return password, nil
}
