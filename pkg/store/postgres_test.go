//go:build integration

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shareguard/shareguard/pkg/models"
)

// createPostgresStore starts a disposable PostgreSQL container and opens a
// store against it. Requires Docker.
func createPostgresStore(t *testing.T) *GORMStore {
	t.Helper()
	ctx := context.Background()

	// PostgreSQL logs "database system is ready" twice during startup (once
	// during bootstrap, once when fully ready), so wait for 2 occurrences.
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("shareguard_test"),
		postgres.WithUsername("shareguard"),
		postgres.WithPassword("shareguard"),
		testcontainers.WithWaitStrategyAndDeadline(5*time.Minute,
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	store, err := New(&Config{
		Type: DatabaseTypePostgres,
		Postgres: PostgresConfig{
			Host:     host,
			Port:     port.Int(),
			Database: "shareguard_test",
			User:     "shareguard",
			Password: "shareguard",
			SSLMode:  "disable",
		},
	})
	if err != nil {
		t.Fatalf("failed to create postgres store: %v", err)
	}
	return store
}

func TestPostgresStore(t *testing.T) {
	store := createPostgresStore(t)
	defer store.Close()
	ctx := context.Background()

	if err := store.Healthcheck(ctx); err != nil {
		t.Fatalf("healthcheck failed: %v", err)
	}

	owner := createTestAccount(t, store, "pg-owner")
	file := createTestFile(t, store, owner.ID, "pg.dat")

	t.Run("unique constraint maps to duplicate error", func(t *testing.T) {
		_, err := store.CreateAccount(ctx, &models.Account{
			Username:     "pg-owner",
			Email:        "other@example.com",
			PasswordHash: "x",
		})
		if !errors.Is(err, models.ErrDuplicateAccount) {
			t.Errorf("expected ErrDuplicateAccount, got %v", err)
		}
	})

	t.Run("one-time consume is atomic", func(t *testing.T) {
		if _, err := store.CreateLink(ctx, &models.ShareLink{
			FileID:     file.ID,
			CreatorID:  owner.ID,
			Token:      "pg-token",
			Permission: string(models.PermissionDownload),
			OneTimeUse: true,
			ExpiresAt:  time.Now().Add(time.Hour),
		}); err != nil {
			t.Fatalf("failed to create link: %v", err)
		}

		if err := store.ConsumeLink(ctx, "pg-token"); err != nil {
			t.Fatalf("first consume failed: %v", err)
		}
		if err := store.ConsumeLink(ctx, "pg-token"); !errors.Is(err, models.ErrLinkAlreadyUsed) {
			t.Errorf("expected ErrLinkAlreadyUsed, got %v", err)
		}
	})
}
