// Package blob defines the content storage interface for uploaded files.
//
// File metadata lives in the relational store; the bytes live behind this
// interface. Four backends are provided: filesystem (default), S3, BadgerDB,
// and an in-memory store for tests.
package blob

import (
	"context"
	"errors"
)

// Common blob store errors.
var (
	// ErrNotFound is returned when no blob exists under the requested key.
	ErrNotFound = errors.New("blob not found")

	// ErrStoreClosed is returned when the store has been closed.
	ErrStoreClosed = errors.New("blob store is closed")
)

// Store stores file contents by key.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Put writes the blob under the given key, replacing any existing blob.
	Put(ctx context.Context, key string, data []byte) error

	// Get reads the blob stored under the given key.
	// Returns ErrNotFound if no blob exists under the key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the blob under the given key.
	// Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a blob exists under the given key.
	Exists(ctx context.Context, key string) (bool, error)

	// Close releases backend resources.
	Close() error
}
