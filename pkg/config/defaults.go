package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shareguard/shareguard/pkg/api"
	"github.com/shareguard/shareguard/pkg/blob/factory"
	"github.com/shareguard/shareguard/pkg/store"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// This function is called after loading configuration from file and environment
// variables to fill in any missing values with sensible defaults.
//
// Default Strategy:
//   - Zero values (0, "", false, nil) are replaced with defaults
//   - Explicit values are preserved
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyShutdownTimeoutDefaults(cfg)
	applyDatabaseDefaults(&cfg.Database)
	applyBlobDefaults(&cfg.Blob)
	applyAPIDefaults(&cfg.API)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyCleanupDefaults(&cfg.Cleanup)
	applyAdminDefaults(&cfg.Admin)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	// Normalize log level to uppercase for consistent internal representation
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

// applyShutdownTimeoutDefaults sets shutdown timeout defaults.
func applyShutdownTimeoutDefaults(cfg *Config) {
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
}

// applyDatabaseDefaults sets database defaults.
func applyDatabaseDefaults(cfg *store.Config) {
	cfg.ApplyDefaults()
}

// applyBlobDefaults sets blob storage defaults.
// Filesystem is the default backend; its base path lands next to the config.
func applyBlobDefaults(cfg *factory.Config) {
	if cfg.Backend == "" {
		cfg.Backend = factory.BackendFilesystem
	}
	if cfg.Backend == factory.BackendFilesystem && cfg.Filesystem.BasePath == "" {
		cfg.Filesystem.BasePath = getDefaultBlobDir()
	}
}

// getDefaultBlobDir returns the default directory for filesystem blob storage.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func getDefaultBlobDir() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "shareguard", "blobs")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "blobs")
	}

	return filepath.Join(home, ".local", "share", "shareguard", "blobs")
}

// applyAPIDefaults sets API server defaults.
// The API is always enabled (it is the only way to use the server).
func applyAPIDefaults(cfg *api.Config) {
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 30 * time.Second
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = 60 * time.Second
	}
	if cfg.JWT.AccessTokenDuration == 0 {
		cfg.JWT.AccessTokenDuration = 15 * time.Minute
	}
	if cfg.JWT.RefreshTokenDuration == 0 {
		cfg.JWT.RefreshTokenDuration = 7 * 24 * time.Hour
	}
	if cfg.JWT.PendingTokenDuration == 0 {
		cfg.JWT.PendingTokenDuration = 5 * time.Minute
	}
}

// applyTelemetryDefaults sets OpenTelemetry defaults.
// Tracing and profiling stay disabled unless explicitly enabled.
func applyTelemetryDefaults(cfg *TelemetryConfig) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:4317"
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1.0
	}
	applyProfilingDefaults(&cfg.Profiling)
}

// applyProfilingDefaults sets Pyroscope profiling defaults.
func applyProfilingDefaults(cfg *ProfilingConfig) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "http://localhost:4040"
	}
	if len(cfg.ProfileTypes) == 0 {
		cfg.ProfileTypes = []string{
			"cpu", "alloc_objects", "alloc_space",
			"inuse_objects", "inuse_space", "goroutines",
		}
	}
}

// applyCleanupDefaults sets link janitor defaults.
func applyCleanupDefaults(cfg *CleanupConfig) {
	if cfg.Interval == 0 {
		cfg.Interval = time.Hour
	}
}

// applyAdminDefaults sets admin account defaults.
func applyAdminDefaults(cfg *AdminConfig) {
	// Default username is "admin"
	if cfg.Username == "" {
		cfg.Username = "admin"
	}
	// Email and PasswordHash have no defaults - they're optional or set during init
}

// GetDefaultConfig returns a Config struct with all default values applied.
//
// This is useful for:
//   - Generating sample configuration files
//   - Testing
//   - Documentation
func GetDefaultConfig() *Config {
	cfg := &Config{
		Logging: LoggingConfig{},
		Database: store.Config{
			Type: store.DatabaseTypeSQLite, // Default to SQLite for single-node
		},
		Blob: factory.Config{
			Backend: factory.BackendFilesystem,
		},
		Admin: AdminConfig{
			Username: "admin",
		},
	}

	ApplyDefaults(cfg)
	return cfg
}
