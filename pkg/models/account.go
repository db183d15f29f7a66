package models

import (
	"fmt"
	"time"
)

// AccountRole represents the role of an account in the system.
type AccountRole string

const (
	// RoleUser is a regular account with access to its own files and shares.
	RoleUser AccountRole = "user"
	// RoleAdmin is an administrator with full permissions.
	RoleAdmin AccountRole = "admin"
)

// IsValid checks if the role is a valid AccountRole.
func (r AccountRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Account represents a ShareGuard user for authentication and authorization.
//
// Passwords are stored as bcrypt hashes and never serialized. When MFA is
// enabled, MFASecret holds the base32 TOTP secret; the secret may be set
// while MFAEnabled is still false, which marks an enrollment awaiting its
// first successful code confirmation.
type Account struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Username     string     `gorm:"uniqueIndex;not null;size:255" json:"username"`
	Email        string     `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	MFAEnabled   bool       `gorm:"default:false" json:"mfa_enabled"`
	MFASecret    string     `json:"-"`
	Role         string     `gorm:"default:user;size:50" json:"role"`
	Enabled      bool       `gorm:"default:true" json:"enabled"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// TableName returns the table name for Account.
func (Account) TableName() string {
	return "accounts"
}

// Validate checks if the account has valid configuration.
func (a *Account) Validate() error {
	if a.Username == "" {
		return fmt.Errorf("username is required")
	}
	if a.Email == "" {
		return fmt.Errorf("email is required")
	}
	if a.Role != "" && !AccountRole(a.Role).IsValid() {
		return fmt.Errorf("invalid role %q", a.Role)
	}
	return nil
}

// IsAdmin checks if the account has the admin role.
func (a *Account) IsAdmin() bool {
	return a.Role == string(RoleAdmin)
}

// MFAPending reports whether an MFA enrollment has been started but not yet
// confirmed with a valid code.
func (a *Account) MFAPending() bool {
	return !a.MFAEnabled && a.MFASecret != ""
}
