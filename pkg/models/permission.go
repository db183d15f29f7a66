// Package models provides shared domain types for ShareGuard.
//
// This package contains all data models used across the service, including
// accounts, files, share grants, and share links. It provides a single
// source of truth for domain types with GORM annotations for database
// persistence.
package models

// Permission represents the access level granted on a shared file.
//
// Permission levels are hierarchical:
//   - view: read the file contents through the service
//   - download: view plus retrieving the raw file
type Permission string

const (
	// PermissionView allows viewing file contents.
	PermissionView Permission = "view"

	// PermissionDownload allows viewing and downloading file contents.
	PermissionDownload Permission = "download"
)

// IsValid checks if the permission is a known Permission value.
func (p Permission) IsValid() bool {
	return p == PermissionView || p == PermissionDownload
}

// Level returns the numeric level of the permission for comparison.
// Higher values indicate more permissive access.
func (p Permission) Level() int {
	switch p {
	case PermissionView:
		return 1
	case PermissionDownload:
		return 2
	default:
		return 0
	}
}

// Covers returns true if this permission is sufficient for the requested one.
// Download covers view; view does not cover download.
func (p Permission) Covers(requested Permission) bool {
	return p.Level() >= requested.Level()
}
