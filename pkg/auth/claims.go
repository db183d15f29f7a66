// Package auth provides JWT session management, TOTP multi-factor
// authentication, and the login state machine for the ShareGuard API.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenType indicates the purpose of a token.
type TokenType string

const (
	// TokenTypeAccess is a short-lived token used for API authorization.
	TokenTypeAccess TokenType = "access"
	// TokenTypeRefresh is a long-lived token used to obtain new access tokens.
	TokenTypeRefresh TokenType = "refresh"
	// TokenTypeMFAPending is a very short-lived token issued after a correct
	// password when the account has MFA enabled. It carries no API authority;
	// it can only be exchanged, together with a valid TOTP code, for a real
	// token pair.
	TokenTypeMFAPending TokenType = "mfa_pending"
)

// Claims represents JWT claims for ShareGuard authentication.
type Claims struct {
	jwt.RegisteredClaims

	// AccountID is the unique identifier (UUID) for the account.
	AccountID string `json:"uid"`

	// Username is the human-readable username.
	Username string `json:"username"`

	// Role is the account's role ("admin" or "user").
	Role string `json:"role"`

	// TokenType indicates the purpose of this token.
	TokenType TokenType `json:"token_type"`
}

// IsAccessToken returns true if this is an access token.
func (c *Claims) IsAccessToken() bool {
	return c.TokenType == TokenTypeAccess
}

// IsRefreshToken returns true if this is a refresh token.
func (c *Claims) IsRefreshToken() bool {
	return c.TokenType == TokenTypeRefresh
}

// IsMFAPendingToken returns true if this is an MFA challenge token.
func (c *Claims) IsMFAPendingToken() bool {
	return c.TokenType == TokenTypeMFAPending
}

// IsAdmin returns true if the account has the admin role.
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}
