// Package badger provides a BadgerDB-backed blob store implementation.
//
// Useful for single-node deployments that want everything in one embedded
// database directory instead of loose files.
package badger

import (
	"context"
	"errors"
	"sync"

	badgerdb "github.com/dgraph-io/badger/v4"

	"github.com/shareguard/shareguard/pkg/blob"
)

// Config holds configuration for the BadgerDB blob store.
type Config struct {
	// Path is the directory for the Badger database.
	// Ignored when InMemory is true.
	Path string

	// InMemory runs Badger without persistence, primarily for tests.
	InMemory bool
}

// Store is a BadgerDB-backed implementation of blob.Store.
type Store struct {
	db     *badgerdb.DB
	mu     sync.RWMutex
	closed bool
}

// New opens a Badger database at the configured path.
func New(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badger path is required")
	}

	opts := badgerdb.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithLogger(nil) // Badger's own logging is too chatty for a library

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return blob.ErrStoreClosed
	}

	return s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, blob.ErrStoreClosed
	}

	var data []byte
	err := s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badgerdb.ErrKeyNotFound) {
			return nil, blob.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return blob.ErrStoreClosed
	}

	return s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, blob.ErrStoreClosed
	}

	var found bool
	err := s.db.View(func(txn *badgerdb.Txn) error {
		_, err := txn.Get([]byte(key))
		if errors.Is(err, badgerdb.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

var _ blob.Store = (*Store)(nil)
