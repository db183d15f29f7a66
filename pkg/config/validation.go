package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/shareguard/shareguard/pkg/api"
	"github.com/shareguard/shareguard/pkg/blob/factory"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate validates the configuration using struct tags and custom rules.
//
// This function uses go-playground/validator for declarative validation
// via struct tags, with additional custom validation for complex rules
// that cannot be expressed in tags.
//
// Note: Log level normalization is handled in ApplyDefaults, not here.
// Validation accepts both uppercase and lowercase log levels.
//
// Returns an error describing validation failures.
func Validate(cfg *Config) error {
	// Run struct tag validation
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	// Custom validation rules that can't be expressed in tags
	if err := validateCustomRules(cfg); err != nil {
		return err
	}

	return nil
}

// validateCustomRules performs custom validation beyond struct tags.
func validateCustomRules(cfg *Config) error {
	// Validate the database configuration
	if err := cfg.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	// Validate the blob backend is one we can construct
	switch cfg.Blob.Backend {
	case factory.BackendFilesystem, factory.BackendS3, factory.BackendBadger, factory.BackendMemory:
	default:
		return fmt.Errorf("blob: unsupported backend %q", cfg.Blob.Backend)
	}
	if cfg.Blob.Backend == factory.BackendS3 && cfg.Blob.S3.Bucket == "" {
		return fmt.Errorf("blob: s3 backend requires a bucket")
	}
	if cfg.Blob.Backend == factory.BackendBadger && cfg.Blob.Badger.Path == "" && !cfg.Blob.Badger.InMemory {
		return fmt.Errorf("blob: badger backend requires a path")
	}

	// Validate the JWT secret when it is set in the file and not overridden
	// by the environment. An absent secret is caught at server start, so init
	// can save a config before the secret is chosen.
	if cfg.API.JWT.Secret != "" && os.Getenv(api.EnvJWTSecret) == "" {
		if len(cfg.API.JWT.Secret) < 32 {
			return fmt.Errorf("api: jwt secret must be at least 32 characters")
		}
	}

	return nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		// Return the first validation error with context
		if len(validationErrs) > 0 {
			e := validationErrs[0]
			return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
				e.Namespace(), e.Tag(), e.Value())
		}
	}
	return err
}
