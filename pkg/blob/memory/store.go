// Package memory provides an in-memory blob store, primarily for tests.
package memory

import (
	"context"
	"sync"

	"github.com/shareguard/shareguard/pkg/blob"
)

// Store is an in-memory implementation of blob.Store.
type Store struct {
	mu     sync.RWMutex
	blobs  map[string][]byte
	closed bool
}

// New creates an empty in-memory blob store.
func New() *Store {
	return &Store{
		blobs: make(map[string][]byte),
	}
}

func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return blob.ErrStoreClosed
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	s.blobs[key] = cp
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, blob.ErrStoreClosed
	}

	data, ok := s.blobs[key]
	if !ok {
		return nil, blob.ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return blob.ErrStoreClosed
	}

	delete(s.blobs, key)
	return nil
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, blob.ErrStoreClosed
	}

	_, ok := s.blobs[key]
	return ok, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.blobs = nil
	return nil
}

var _ blob.Store = (*Store)(nil)
