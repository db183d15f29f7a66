package models

import "errors"

// Common errors for account, sharing, and access operations.
var (
	// Account errors
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateAccount = errors.New("account already exists")
	ErrAccountDisabled  = errors.New("account is disabled")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMFARequired        = errors.New("multi-factor code required")
	ErrInvalidMFACode     = errors.New("invalid multi-factor code")
	ErrMFANotEnrolled     = errors.New("multi-factor authentication is not enrolled")
	ErrTooManyAttempts    = errors.New("too many failed attempts")

	// File errors
	ErrFileNotFound  = errors.New("file not found")
	ErrDuplicateFile = errors.New("file already exists")

	// Grant errors
	ErrGrantNotFound = errors.New("share grant not found")

	// Link errors
	ErrLinkNotFound    = errors.New("share link not found")
	ErrLinkExpired     = errors.New("share link has expired")
	ErrLinkAlreadyUsed = errors.New("share link has already been used")

	// Access errors
	ErrAccessDenied = errors.New("access denied")
)
