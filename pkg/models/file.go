package models

import "time"

// File represents an uploaded file owned by an account.
//
// The file contents live in a blob store under BlobKey; the database row
// carries only metadata. Size and ContentType are recorded at upload time.
type File struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID     string    `gorm:"index;not null;size:36" json:"owner_id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	BlobKey     string    `gorm:"uniqueIndex;not null;size:255" json:"-"`
	Size        int64     `json:"size"`
	ContentType string    `gorm:"size:255" json:"content_type,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Owner *Account `gorm:"foreignKey:OwnerID" json:"-"`
}

// TableName returns the table name for File.
func (File) TableName() string {
	return "files"
}
