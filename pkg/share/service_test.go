//go:build integration

package share

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shareguard/shareguard/pkg/models"
	"github.com/shareguard/shareguard/pkg/store"
)

func setup(t *testing.T) (*Service, *store.GORMStore, *models.Account, *models.Account, *models.File) {
	t.Helper()
	ctx := context.Background()

	st, err := store.New(&store.Config{
		Type:   store.DatabaseTypeSQLite,
		SQLite: store.SQLiteConfig{Path: ":memory:"},
	})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	owner := &models.Account{Username: "owner", Email: "owner@example.com", PasswordHash: "x", Enabled: true}
	if _, err := st.CreateAccount(ctx, owner); err != nil {
		t.Fatalf("failed to create owner: %v", err)
	}
	friend := &models.Account{Username: "friend", Email: "friend@example.com", PasswordHash: "x", Enabled: true}
	if _, err := st.CreateAccount(ctx, friend); err != nil {
		t.Fatalf("failed to create friend: %v", err)
	}
	file := &models.File{OwnerID: owner.ID, Name: "plan.txt", BlobKey: "blob-plan"}
	if _, err := st.CreateFile(ctx, file); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	return NewService(st), st, owner, friend, file
}

func TestShareWithAccount(t *testing.T) {
	svc, _, owner, friend, file := setup(t)
	ctx := context.Background()

	t.Run("owner can share", func(t *testing.T) {
		grant, err := svc.ShareWithAccount(ctx, owner.ID, file.ID, friend.ID, models.PermissionView, nil)
		if err != nil {
			t.Fatalf("share failed: %v", err)
		}
		if grant.ID == "" {
			t.Error("expected grant ID")
		}
	})

	t.Run("re-share replaces", func(t *testing.T) {
		grant, err := svc.ShareWithAccount(ctx, owner.ID, file.ID, friend.ID, models.PermissionDownload, nil)
		if err != nil {
			t.Fatalf("re-share failed: %v", err)
		}
		if grant.Permission != string(models.PermissionDownload) {
			t.Errorf("expected download, got %q", grant.Permission)
		}
	})

	t.Run("non-owner cannot share", func(t *testing.T) {
		_, err := svc.ShareWithAccount(ctx, friend.ID, file.ID, friend.ID, models.PermissionView, nil)
		if !errors.Is(err, models.ErrAccessDenied) {
			t.Errorf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("cannot share with self", func(t *testing.T) {
		_, err := svc.ShareWithAccount(ctx, owner.ID, file.ID, owner.ID, models.PermissionView, nil)
		if !errors.Is(err, ErrSelfShare) {
			t.Errorf("expected ErrSelfShare, got %v", err)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := svc.ShareWithAccount(ctx, owner.ID, file.ID, "no-such-account", models.PermissionView, nil)
		if !errors.Is(err, models.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("past expiry rejected", func(t *testing.T) {
		past := time.Now().Add(-time.Minute)
		_, err := svc.ShareWithAccount(ctx, owner.ID, file.ID, friend.ID, models.PermissionView, &past)
		if !errors.Is(err, ErrInvalidExpiry) {
			t.Errorf("expected ErrInvalidExpiry, got %v", err)
		}
	})

	t.Run("bad permission rejected", func(t *testing.T) {
		_, err := svc.ShareWithAccount(ctx, owner.ID, file.ID, friend.ID, "admin", nil)
		if !errors.Is(err, ErrInvalidPermission) {
			t.Errorf("expected ErrInvalidPermission, got %v", err)
		}
	})

	t.Run("unshare", func(t *testing.T) {
		if err := svc.Unshare(ctx, owner.ID, file.ID, friend.ID); err != nil {
			t.Fatalf("unshare failed: %v", err)
		}
		if err := svc.Unshare(ctx, owner.ID, file.ID, friend.ID); !errors.Is(err, models.ErrGrantNotFound) {
			t.Errorf("expected ErrGrantNotFound, got %v", err)
		}
	})
}

func TestCreateLink(t *testing.T) {
	svc, _, owner, friend, file := setup(t)
	ctx := context.Background()

	t.Run("default expiry applied", func(t *testing.T) {
		link, err := svc.CreateLink(ctx, owner.ID, file.ID, models.PermissionView, time.Time{}, false)
		if err != nil {
			t.Fatalf("create link failed: %v", err)
		}
		if link.Token == "" {
			t.Error("expected link token")
		}
		remaining := time.Until(link.ExpiresAt)
		if remaining < 23*time.Hour || remaining > 25*time.Hour {
			t.Errorf("expected ~24h default TTL, got %v", remaining)
		}
	})

	t.Run("tokens are unique", func(t *testing.T) {
		a, err := svc.CreateLink(ctx, owner.ID, file.ID, models.PermissionView, time.Time{}, false)
		if err != nil {
			t.Fatalf("create link failed: %v", err)
		}
		b, err := svc.CreateLink(ctx, owner.ID, file.ID, models.PermissionView, time.Time{}, false)
		if err != nil {
			t.Fatalf("create link failed: %v", err)
		}
		if a.Token == b.Token {
			t.Error("expected distinct tokens")
		}
	})

	t.Run("past expiry rejected", func(t *testing.T) {
		_, err := svc.CreateLink(ctx, owner.ID, file.ID, models.PermissionView, time.Now().Add(-time.Minute), false)
		if !errors.Is(err, ErrInvalidExpiry) {
			t.Errorf("expected ErrInvalidExpiry, got %v", err)
		}
	})

	t.Run("non-owner cannot create", func(t *testing.T) {
		_, err := svc.CreateLink(ctx, friend.ID, file.ID, models.PermissionView, time.Time{}, false)
		if !errors.Is(err, models.ErrAccessDenied) {
			t.Errorf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("revoke", func(t *testing.T) {
		link, err := svc.CreateLink(ctx, owner.ID, file.ID, models.PermissionDownload, time.Time{}, true)
		if err != nil {
			t.Fatalf("create link failed: %v", err)
		}

		if err := svc.RevokeLink(ctx, friend.ID, link.ID); !errors.Is(err, models.ErrAccessDenied) {
			t.Errorf("expected ErrAccessDenied for non-owner revoke, got %v", err)
		}
		if err := svc.RevokeLink(ctx, owner.ID, link.ID); err != nil {
			t.Fatalf("revoke failed: %v", err)
		}
		if err := svc.RevokeLink(ctx, owner.ID, link.ID); !errors.Is(err, models.ErrLinkNotFound) {
			t.Errorf("expected ErrLinkNotFound, got %v", err)
		}
	})
}

func TestListShares(t *testing.T) {
	svc, _, owner, friend, file := setup(t)
	ctx := context.Background()

	if _, err := svc.ShareWithAccount(ctx, owner.ID, file.ID, friend.ID, models.PermissionView, nil); err != nil {
		t.Fatalf("share failed: %v", err)
	}
	if _, err := svc.CreateLink(ctx, owner.ID, file.ID, models.PermissionView, time.Time{}, false); err != nil {
		t.Fatalf("create link failed: %v", err)
	}

	grants, links, err := svc.ListShares(ctx, owner.ID, file.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(grants) != 1 || len(links) != 1 {
		t.Errorf("expected 1 grant and 1 link, got %d and %d", len(grants), len(links))
	}

	if _, _, err := svc.ListShares(ctx, friend.ID, file.ID); !errors.Is(err, models.ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied for non-owner list, got %v", err)
	}
}

func TestCleanupService(t *testing.T) {
	svc, st, owner, friend, file := setup(t)
	ctx := context.Background()

	future := time.Now().Add(30 * time.Millisecond)
	if _, err := svc.ShareWithAccount(ctx, owner.ID, file.ID, friend.ID, models.PermissionView, &future); err != nil {
		t.Fatalf("share failed: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	cleanupCtx, cancel := context.WithCancel(context.Background())
	cleanup := NewCleanupService(st, time.Hour)
	cleanup.Start(cleanupCtx)

	// The loop runs once immediately; give it a moment
	time.Sleep(50 * time.Millisecond)
	cancel()
	cleanup.Wait()

	if _, err := st.GetGrant(ctx, file.ID, friend.ID); !errors.Is(err, models.ErrGrantNotFound) {
		t.Errorf("expected expired grant to be pruned, got %v", err)
	}
}

func TestGenerateLinkToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateLinkToken()
		if err != nil {
			t.Fatalf("token generation failed: %v", err)
		}
		if len(token) < 40 {
			t.Fatalf("token too short: %d chars", len(token))
		}
		if seen[token] {
			t.Fatal("duplicate token generated")
		}
		seen[token] = true
	}
}
