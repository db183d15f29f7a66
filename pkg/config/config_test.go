package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shareguard/shareguard/pkg/blob/factory"
	"github.com/shareguard/shareguard/pkg/store"
)

const testSecret = "test-secret-key-for-testing-minimum-32-chars"

// yamlSafePath converts a filesystem path to a YAML-safe representation.
// On Windows, backslashes in double-quoted YAML strings are interpreted as
// escape sequences (e.g. \U -> Unicode escape), causing parse errors.
func yamlSafePath(p string) string {
	return filepath.ToSlash(p)
}

func TestLoad_DefaultConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
logging:
  level: "INFO"

database:
  type: sqlite
  sqlite:
    path: "` + yamlSafePath(tmpDir) + `/shareguard.db"

api:
  port: 8080
  jwt:
    secret: "` + testSecret + `"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify defaults were applied
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default format 'text', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stdout" {
		t.Errorf("Expected default output 'stdout', got %q", cfg.Logging.Output)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected default shutdown_timeout 30s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("Expected API port 8080, got %d", cfg.API.Port)
	}
	if cfg.Blob.Backend != factory.BackendFilesystem {
		t.Errorf("Expected default blob backend 'filesystem', got %q", cfg.Blob.Backend)
	}
	if cfg.Cleanup.Interval != time.Hour {
		t.Errorf("Expected default cleanup interval 1h, got %v", cfg.Cleanup.Interval)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	// Loading with no config file returns a valid default config.
	// This allows users to run the server without a config file for quick testing.
	tmpDir := t.TempDir()
	nonExistentPath := filepath.Join(tmpDir, "nonexistent.yaml")

	cfg, err := Load(nonExistentPath)
	if err != nil {
		t.Fatalf("Expected no error when loading default config, got: %v", err)
	}

	if cfg == nil {
		t.Fatal("Expected default config to be returned")
	}

	if cfg.API.Port != 8080 {
		t.Errorf("Expected default API port 8080, got %d", cfg.API.Port)
	}
	if cfg.Database.Type != store.DatabaseTypeSQLite {
		t.Errorf("Expected default database type sqlite, got %q", cfg.Database.Type)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	configContent := `
logging:
  level: INFO
  invalid yaml here [[[
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Expected error with invalid YAML, got nil")
	}
}

func TestLoad_DurationStrings(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
shutdown_timeout: "45s"

database:
  type: sqlite
  sqlite:
    path: "` + yamlSafePath(tmpDir) + `/shareguard.db"

api:
  jwt:
    secret: "` + testSecret + `"
    access_token_duration: "30m"

cleanup:
  interval: "15m"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ShutdownTimeout != 45*time.Second {
		t.Errorf("Expected shutdown_timeout 45s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.API.JWT.AccessTokenDuration != 30*time.Minute {
		t.Errorf("Expected access_token_duration 30m, got %v", cfg.API.JWT.AccessTokenDuration)
	}
	if cfg.Cleanup.Interval != 15*time.Minute {
		t.Errorf("Expected cleanup interval 15m, got %v", cfg.Cleanup.Interval)
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected default log level 'INFO', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default log format 'text', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stdout" {
		t.Errorf("Expected default log output 'stdout', got %q", cfg.Logging.Output)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected default shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("Expected default API port 8080, got %d", cfg.API.Port)
	}
	if cfg.Admin.Username != "admin" {
		t.Errorf("Expected default admin username 'admin', got %q", cfg.Admin.Username)
	}
	if cfg.Blob.Backend != factory.BackendFilesystem {
		t.Errorf("Expected default blob backend 'filesystem', got %q", cfg.Blob.Backend)
	}
	if cfg.Blob.Filesystem.BasePath == "" {
		t.Error("Expected default filesystem base path to be set")
	}
	if cfg.Telemetry.Enabled {
		t.Error("Expected telemetry to be disabled by default")
	}
	if cfg.Telemetry.Endpoint != "localhost:4317" {
		t.Errorf("Expected default OTLP endpoint 'localhost:4317', got %q", cfg.Telemetry.Endpoint)
	}
	if cfg.Telemetry.SampleRate != 1.0 {
		t.Errorf("Expected default sample rate 1.0, got %v", cfg.Telemetry.SampleRate)
	}
	if cfg.Telemetry.Profiling.Endpoint != "http://localhost:4040" {
		t.Errorf("Expected default Pyroscope endpoint, got %q", cfg.Telemetry.Profiling.Endpoint)
	}
}

func TestGetDefaultConfigPath(t *testing.T) {
	path := GetDefaultConfigPath()

	if !filepath.IsAbs(path) {
		t.Errorf("Expected absolute path, got %q", path)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("Expected filename 'config.yaml', got %q", filepath.Base(path))
	}
}

func TestGetConfigDir(t *testing.T) {
	dir := GetConfigDir()

	if filepath.Base(dir) != "shareguard" {
		t.Errorf("Expected directory name 'shareguard', got %q", filepath.Base(dir))
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	_ = os.Setenv("SHAREGUARD_LOGGING_LEVEL", "ERROR")
	_ = os.Setenv("SHAREGUARD_API_PORT", "9090")
	defer func() {
		_ = os.Unsetenv("SHAREGUARD_LOGGING_LEVEL")
		_ = os.Unsetenv("SHAREGUARD_API_PORT")
	}()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
logging:
  level: "INFO"

database:
  type: sqlite
  sqlite:
    path: "` + yamlSafePath(tmpDir) + `/shareguard.db"

api:
  port: 8080
  jwt:
    secret: "` + testSecret + `"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify environment variables override config file
	if cfg.Logging.Level != "ERROR" {
		t.Errorf("Expected level 'ERROR' from env var, got %q", cfg.Logging.Level)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("Expected port 9090 from env var, got %d", cfg.API.Port)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := GetDefaultConfig()
	cfg.Logging.Level = "DEBUG"
	cfg.API.JWT.Secret = testSecret
	cfg.Database.SQLite.Path = filepath.Join(tmpDir, "shareguard.db")

	if err := SaveConfig(cfg, configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	// Saved with restricted permissions
	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("Failed to stat config: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected permissions 0600, got %v", info.Mode().Perm())
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}
	if loaded.Logging.Level != "DEBUG" {
		t.Errorf("Expected level 'DEBUG' after round trip, got %q", loaded.Logging.Level)
	}
	if loaded.Database.SQLite.Path != cfg.Database.SQLite.Path {
		t.Errorf("Expected sqlite path %q, got %q", cfg.Database.SQLite.Path, loaded.Database.SQLite.Path)
	}
}
