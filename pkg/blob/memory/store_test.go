package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shareguard/shareguard/pkg/blob"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := New()
	defer store.Close()

	if err := store.Put(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	data, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(data) != "v" {
		t.Errorf("expected %q, got %q", "v", data)
	}

	// Mutating the returned slice must not affect the stored blob
	data[0] = 'x'
	data2, _ := store.Get(ctx, "k")
	if string(data2) != "v" {
		t.Errorf("store leaked internal buffer: got %q", data2)
	}

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, blob.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	ok, _ := store.Exists(ctx, "k")
	if ok {
		t.Error("expected key to be gone after delete")
	}
}

func TestStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	store := New()
	defer store.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n byte) {
			defer wg.Done()
			key := string([]byte{'k', n})
			if err := store.Put(ctx, key, []byte{n}); err != nil {
				t.Errorf("put failed: %v", err)
			}
			if _, err := store.Get(ctx, key); err != nil {
				t.Errorf("get failed: %v", err)
			}
		}(byte(i))
	}
	wg.Wait()
}
