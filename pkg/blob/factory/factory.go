// Package factory constructs blob stores from configuration.
package factory

import (
	"context"
	"fmt"

	"github.com/shareguard/shareguard/pkg/blob"
	badgerstore "github.com/shareguard/shareguard/pkg/blob/badger"
	fsstore "github.com/shareguard/shareguard/pkg/blob/fs"
	memorystore "github.com/shareguard/shareguard/pkg/blob/memory"
	s3store "github.com/shareguard/shareguard/pkg/blob/s3"
)

// Backend identifies a blob store implementation.
type Backend string

const (
	BackendFilesystem Backend = "filesystem"
	BackendS3         Backend = "s3"
	BackendBadger     Backend = "badger"
	BackendMemory     Backend = "memory"
)

// Config selects and configures a blob store backend.
type Config struct {
	Backend    Backend
	Filesystem fsstore.Config
	S3         s3store.Config
	Badger     badgerstore.Config
}

// New creates the blob store described by the configuration.
func New(ctx context.Context, cfg Config) (blob.Store, error) {
	switch cfg.Backend {
	case BackendFilesystem, "":
		return fsstore.New(cfg.Filesystem)
	case BackendS3:
		return s3store.NewFromConfig(ctx, cfg.S3)
	case BackendBadger:
		return badgerstore.New(cfg.Badger)
	case BackendMemory:
		return memorystore.New(), nil
	default:
		return nil, fmt.Errorf("unsupported blob backend: %s", cfg.Backend)
	}
}
