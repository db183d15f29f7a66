package models

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the default cost parameter for bcrypt hashing.
// Cost 10 provides a good balance between security and performance.
const DefaultBcryptCost = 10

// Password validation errors.
var (
	// ErrPasswordTooShort is returned when a password is too short.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrPasswordTooLong is returned when a password is too long.
	// bcrypt has a maximum input length of 72 bytes.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters")
)

// Password length constraints.
const (
	// MinPasswordLength is the minimum required password length.
	MinPasswordLength = 8

	// MaxPasswordLength is the maximum allowed password length.
	// bcrypt silently truncates at 72 bytes, so we enforce this limit.
	MaxPasswordLength = 72
)

// HashPassword creates a bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), DefaultBcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword checks if a password matches a bcrypt hash.
func VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets the requirements.
// Requirements: at least 8 characters, at most 72 characters (bcrypt limit).
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

// NeedsRehash checks if a hash needs to be regenerated, which happens when
// the cost parameter has been increased since the hash was computed.
func NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return true
	}
	return cost < DefaultBcryptCost
}
