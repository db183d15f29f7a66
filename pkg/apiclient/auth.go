package apiclient

import (
	"time"
)

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents the response from the login endpoint.
//
// Status is "ok" when tokens were issued directly, or "mfa_required" when the
// account has MFA enabled; in that case PendingToken must be exchanged via
// VerifyMFA together with a code from the authenticator app.
type LoginResponse struct {
	Status       string     `json:"status"`
	PendingToken string     `json:"pending_token,omitempty"`
	AccessToken  string     `json:"access_token,omitempty"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	TokenType    string     `json:"token_type,omitempty"`
	ExpiresIn    int64      `json:"expires_in,omitempty"` // seconds
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Account      *Account   `json:"account,omitempty"`
}

// MFARequired returns true when the login requires a second factor.
func (r *LoginResponse) MFARequired() bool {
	return r.Status == "mfa_required"
}

// Account represents an account as returned by the API.
type Account struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email,omitempty"`
	Role       string     `json:"role"`
	MFAEnabled bool       `json:"mfa_enabled"`
	Enabled    bool       `json:"enabled"`
	CreatedAt  time.Time  `json:"created_at"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

// Register creates a new account.
func (c *Client) Register(username, email, password string) (*Account, error) {
	req := struct {
		Username             string `json:"username"`
		Email                string `json:"email"`
		Password             string `json:"password"`
		PasswordConfirmation string `json:"password_confirmation"`
	}{
		Username:             username,
		Email:                email,
		Password:             password,
		PasswordConfirmation: password,
	}

	return createResource[Account](c, "/api/v1/auth/register", req)
}

// Login authenticates with the server. Check MFARequired on the response:
// when true, complete the login with VerifyMFA.
func (c *Client) Login(username, password string) (*LoginResponse, error) {
	req := LoginRequest{
		Username: username,
		Password: password,
	}

	return createResource[LoginResponse](c, "/api/v1/auth/login", req)
}

// VerifyMFA exchanges a pending token and TOTP code for a token pair.
func (c *Client) VerifyMFA(pendingToken, code string) (*LoginResponse, error) {
	req := struct {
		PendingToken string `json:"pending_token"`
		Code         string `json:"code"`
	}{
		PendingToken: pendingToken,
		Code:         code,
	}

	return createResource[LoginResponse](c, "/api/v1/auth/mfa", req)
}

// RefreshToken refreshes the access token using the refresh token.
func (c *Client) RefreshToken(refreshToken string) (*LoginResponse, error) {
	req := struct {
		RefreshToken string `json:"refresh_token"`
	}{
		RefreshToken: refreshToken,
	}

	return createResource[LoginResponse](c, "/api/v1/auth/refresh", req)
}

// Me returns the authenticated account.
func (c *Client) Me() (*Account, error) {
	return getResource[Account](c, "/api/v1/auth/me")
}

// ChangePassword changes the authenticated account's password.
func (c *Client) ChangePassword(currentPassword, newPassword string) error {
	req := struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	}

	return c.post("/api/v1/auth/password", req, nil)
}
