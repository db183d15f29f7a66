package models

import "time"

// ShareGrant gives a specific account access to a file.
//
// At most one grant exists per (FileID, AccountID) pair; re-sharing the same
// file with the same account updates the existing grant in place. A nil
// ExpiresAt means the grant never expires.
type ShareGrant struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	FileID     string     `gorm:"uniqueIndex:idx_grant_file_account;not null;size:36" json:"file_id"`
	AccountID  string     `gorm:"uniqueIndex:idx_grant_file_account;not null;size:36" json:"account_id"`
	Permission string     `gorm:"not null;size:50" json:"permission"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`

	File    *File    `gorm:"foreignKey:FileID;constraint:OnDelete:CASCADE" json:"-"`
	Account *Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for ShareGrant.
func (ShareGrant) TableName() string {
	return "share_grants"
}

// Expired reports whether the grant has an expiry in the past relative to now.
func (g *ShareGrant) Expired(now time.Time) bool {
	return g.ExpiresAt != nil && !g.ExpiresAt.After(now)
}

// GetPermission returns the grant's permission as a Permission type.
func (g *ShareGrant) GetPermission() Permission {
	return Permission(g.Permission)
}
