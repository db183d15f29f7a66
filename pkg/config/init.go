package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileHeader = `# ShareGuard Configuration File
#
# This file was generated by 'shareguard init'. Edit values as needed,
# or override individual settings with SHAREGUARD_* environment variables
# (e.g. SHAREGUARD_LOGGING_LEVEL=DEBUG).
#
# This file contains the JWT signing secret. Keep it readable only by the
# user running the server.

`

// InitConfig creates a default configuration file at the standard location
// and returns the path it was written to. It refuses to overwrite an
// existing file unless force is true.
func InitConfig(force bool) (string, error) {
	path := GetDefaultConfigPath()
	if err := InitConfigToPath(path, force); err != nil {
		return "", err
	}
	return path, nil
}

// InitConfigToPath creates a default configuration file at the given path.
// It refuses to overwrite an existing file unless force is true.
func InitConfigToPath(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	cfg := GetDefaultConfig()

	// Generate a random signing secret so the generated config works out of
	// the box. Production deployments should replace it via the environment.
	secret, err := generateSecret()
	if err != nil {
		return fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	cfg.API.JWT.Secret = secret

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content := append([]byte(configFileHeader), data...)
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// generateSecret returns a 64-character hex string from 32 random bytes.
func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
