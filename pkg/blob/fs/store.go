// Package fs provides a filesystem-backed blob store implementation.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/shareguard/shareguard/pkg/blob"
)

// Config holds configuration for the filesystem blob store.
type Config struct {
	// BasePath is the root directory for blob storage.
	// Blob keys are stored as paths relative to this directory.
	BasePath string

	// DirMode is the permission mode for created directories.
	// Default: 0755
	DirMode os.FileMode

	// FileMode is the permission mode for created files.
	// Default: 0644
	FileMode os.FileMode
}

// Store is a filesystem-backed implementation of blob.Store.
// Blobs are stored as files with the blob key as the path.
type Store struct {
	mu       sync.RWMutex
	basePath string
	fileMode os.FileMode
	closed   bool
}

// New creates a new filesystem blob store, creating the base directory if
// it doesn't exist.
func New(cfg Config) (*Store, error) {
	if cfg.BasePath == "" {
		return nil, errors.New("base path is required")
	}
	if cfg.DirMode == 0 {
		cfg.DirMode = 0755
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = 0644
	}

	if err := os.MkdirAll(cfg.BasePath, cfg.DirMode); err != nil {
		return nil, err
	}

	info, err := os.Stat(cfg.BasePath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("base path is not a directory")
	}

	return &Store{
		basePath: cfg.BasePath,
		fileMode: cfg.FileMode,
	}, nil
}

// blobPath returns the full filesystem path for a blob key.
// Blob keys use forward slashes as separators.
func (s *Store) blobPath(key string) string {
	return filepath.Join(s.basePath, filepath.FromSlash(key))
}

func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return blob.ErrStoreClosed
	}

	path := s.blobPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	// Write to a temporary file first, then rename for atomicity
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, s.fileMode); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Clean up on failure
		return err
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, blob.ErrStoreClosed
	}

	data, err := os.ReadFile(s.blobPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, blob.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return blob.ErrStoreClosed
	}

	err := os.Remove(s.blobPath(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, blob.ErrStoreClosed
	}

	_, err := os.Stat(s.blobPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

var _ blob.Store = (*Store)(nil)
