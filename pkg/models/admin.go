package models

import (
	"crypto/rand"
	"encoding/base64"
	"os"
	"time"

	"github.com/google/uuid"
)

const (
	// AdminUsername is the reserved username for the system administrator.
	AdminUsername = "admin"

	// EnvAdminInitialPassword is the environment variable that can be used
	// to set the initial admin password. If not set, a random password is generated.
	EnvAdminInitialPassword = "SHAREGUARD_ADMIN_INITIAL_PASSWORD"

	// DefaultAdminEmail is the email recorded for the bootstrap admin account.
	DefaultAdminEmail = "admin@localhost"
)

// DefaultAdminAccount creates the bootstrap admin account with the given
// password hash.
func DefaultAdminAccount(passwordHash string) *Account {
	return &Account{
		ID:           uuid.New().String(),
		Username:     AdminUsername,
		Email:        DefaultAdminEmail,
		PasswordHash: passwordHash,
		Enabled:      true,
		Role:         string(RoleAdmin),
		CreatedAt:    time.Now(),
	}
}

// GetOrGenerateAdminPassword returns the admin password from the environment
// variable if set, otherwise generates a cryptographically secure random password.
func GetOrGenerateAdminPassword() (string, error) {
	if pw := os.Getenv(EnvAdminInitialPassword); pw != "" {
		return pw, nil
	}
	return GenerateRandomPassword()
}

// GenerateRandomPassword generates a cryptographically secure random password.
// Returns a 24-character URL-safe base64 string (18 bytes of randomness).
func GenerateRandomPassword() (string, error) {
	b := make([]byte, 18)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
