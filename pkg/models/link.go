package models

import "time"

// ShareLink is a bearer capability for a file: anyone presenting the token
// gets the link's permission, without needing an account.
//
// Links always expire. A one-time link additionally becomes unusable after
// its first successful redemption; Consumed flips exactly once, atomically,
// even under concurrent redemption attempts.
type ShareLink struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	FileID     string    `gorm:"index;not null;size:36" json:"file_id"`
	CreatorID  string    `gorm:"index;not null;size:36" json:"creator_id"`
	Token      string    `gorm:"uniqueIndex;not null;size:64" json:"token"`
	Permission string    `gorm:"not null;size:50" json:"permission"`
	OneTimeUse bool      `gorm:"default:false" json:"one_time_use"`
	Consumed   bool      `gorm:"default:false" json:"consumed"`
	ExpiresAt  time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	File    *File    `gorm:"foreignKey:FileID;constraint:OnDelete:CASCADE" json:"-"`
	Creator *Account `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for ShareLink.
func (ShareLink) TableName() string {
	return "share_links"
}

// Expired reports whether the link's expiry is in the past relative to now.
func (l *ShareLink) Expired(now time.Time) bool {
	return !l.ExpiresAt.After(now)
}

// GetPermission returns the link's permission as a Permission type.
func (l *ShareLink) GetPermission() Permission {
	return Permission(l.Permission)
}
