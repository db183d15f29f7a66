package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shareguard/shareguard/pkg/blob"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store, err := New(Config{BasePath: t.TempDir()})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	t.Run("put and get", func(t *testing.T) {
		if err := store.Put(ctx, "a/b/doc.txt", []byte("hello")); err != nil {
			t.Fatalf("put failed: %v", err)
		}
		data, err := store.Get(ctx, "a/b/doc.txt")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(data) != "hello" {
			t.Errorf("expected %q, got %q", "hello", data)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		if err := store.Put(ctx, "a/b/doc.txt", []byte("replaced")); err != nil {
			t.Fatalf("put failed: %v", err)
		}
		data, _ := store.Get(ctx, "a/b/doc.txt")
		if string(data) != "replaced" {
			t.Errorf("expected %q, got %q", "replaced", data)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		if !errors.Is(err, blob.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := store.Exists(ctx, "a/b/doc.txt")
		if err != nil || !ok {
			t.Errorf("expected exists=true, got %v, %v", ok, err)
		}
		ok, err = store.Exists(ctx, "nope")
		if err != nil || ok {
			t.Errorf("expected exists=false, got %v, %v", ok, err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.Delete(ctx, "a/b/doc.txt"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := store.Get(ctx, "a/b/doc.txt"); !errors.Is(err, blob.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
		// Deleting a missing key is not an error
		if err := store.Delete(ctx, "a/b/doc.txt"); err != nil {
			t.Errorf("second delete should be a no-op, got %v", err)
		}
	})
}

func TestStoreClosed(t *testing.T) {
	ctx := context.Background()
	store, err := New(Config{BasePath: t.TempDir()})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	store.Close()

	if err := store.Put(ctx, "k", []byte("v")); !errors.Is(err, blob.ErrStoreClosed) {
		t.Errorf("expected ErrStoreClosed, got %v", err)
	}
	if _, err := store.Get(ctx, "k"); !errors.Is(err, blob.ErrStoreClosed) {
		t.Errorf("expected ErrStoreClosed, got %v", err)
	}
}

func TestNewCreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "blobs")
	store, err := New(Config{BasePath: base})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(base); err != nil {
		t.Errorf("expected base dir to exist: %v", err)
	}
}

func TestNewRequiresPath(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error for empty base path")
	}
}
