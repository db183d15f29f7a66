package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/shareguard/shareguard/internal/logger"
	"github.com/shareguard/shareguard/pkg/api/middleware"
	"github.com/shareguard/shareguard/pkg/auth"
	"github.com/shareguard/shareguard/pkg/metrics"
	"github.com/shareguard/shareguard/pkg/models"
	"github.com/shareguard/shareguard/pkg/store"
)

// AuthHandler handles authentication-related API endpoints.
type AuthHandler struct {
	auth    *auth.Service
	store   store.Store
	metrics *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *auth.Service, s store.Store, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		auth:    authService,
		store:   s,
		metrics: m,
	}
}

// RegisterRequest is the request body for POST /api/v1/auth/register.
type RegisterRequest struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest is the request body for POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// VerifyMFARequest is the request body for POST /api/v1/auth/mfa.
type VerifyMFARequest struct {
	PendingToken string `json:"pending_token"`
	Code         string `json:"code"`
}

// RefreshRequest is the request body for POST /api/v1/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ChangePasswordRequest is the request body for POST /api/v1/auth/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ConfirmMFARequest is the request body for POST /api/v1/mfa/confirm.
type ConfirmMFARequest struct {
	Code string `json:"code"`
}

// LoginResponse is the response body for successful authentication.
//
// Status is "ok" when tokens are issued and "mfa_required" when the client
// must complete the second factor with the pending token.
type LoginResponse struct {
	Status       string          `json:"status"`
	PendingToken string          `json:"pending_token,omitempty"`
	AccessToken  string          `json:"access_token,omitempty"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	TokenType    string          `json:"token_type,omitempty"`
	ExpiresIn    int64           `json:"expires_in,omitempty"`
	ExpiresAt    *time.Time      `json:"expires_at,omitempty"`
	Account      *AccountSummary `json:"account,omitempty"`
}

// AccountSummary is a sanitized account representation for API responses.
type AccountSummary struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email,omitempty"`
	Role       string     `json:"role"`
	MFAEnabled bool       `json:"mfa_enabled"`
	Enabled    bool       `json:"enabled"`
	CreatedAt  time.Time  `json:"created_at"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

// EnrollmentResponse is the response body for POST /api/v1/mfa/enable.
type EnrollmentResponse struct {
	Secret string `json:"secret"`
	URL    string `json:"url"`
}

// Register handles POST /api/v1/auth/register.
// Creates a new account; it does not authenticate the caller.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		BadRequest(w, "Username, email, and password are required")
		return
	}
	if req.Password != req.PasswordConfirmation {
		h.metrics.RecordRegistration(metrics.ResultInvalid)
		BadRequest(w, "Passwords do not match")
		return
	}

	account, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateAccount) {
			h.metrics.RecordRegistration(metrics.ResultInvalid)
			Conflict(w, "Username or email is already taken")
			return
		}
		if errors.Is(err, models.ErrPasswordTooShort) || errors.Is(err, models.ErrPasswordTooLong) {
			h.metrics.RecordRegistration(metrics.ResultInvalid)
			UnprocessableEntity(w, err.Error())
			return
		}
		h.metrics.RecordRegistration(metrics.ResultError)
		InternalServerError(w, "Registration failed")
		return
	}

	h.metrics.RecordRegistration(metrics.ResultOK)
	WriteJSONCreated(w, accountToSummary(account))
}

// Login handles POST /api/v1/auth/login.
// Authenticates credentials; MFA-enabled accounts receive a pending token
// instead of a session pair.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if req.Username == "" || req.Password == "" {
		BadRequest(w, "Username and password are required")
		return
	}

	result, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) || errors.Is(err, models.ErrAccountNotFound) {
			h.metrics.RecordLogin(metrics.ResultInvalid)
			Unauthorized(w, "Invalid username or password")
			return
		}
		if errors.Is(err, models.ErrAccountDisabled) {
			h.metrics.RecordLogin(metrics.ResultDisabled)
			Forbidden(w, "Account is disabled")
			return
		}
		h.metrics.RecordLogin(metrics.ResultError)
		InternalServerError(w, "Authentication failed")
		return
	}

	if result.MFARequired {
		h.metrics.RecordLogin(metrics.ResultMFARequired)
		WriteJSONOK(w, LoginResponse{
			Status:       "mfa_required",
			PendingToken: result.PendingToken,
		})
		return
	}

	h.metrics.RecordLogin(metrics.ResultOK)
	WriteJSONOK(w, tokensToResponse(result.Tokens, result.Account))
}

// VerifyMFA handles POST /api/v1/auth/mfa.
// Exchanges a pending token and a TOTP code for a session pair.
func (h *AuthHandler) VerifyMFA(w http.ResponseWriter, r *http.Request) {
	var req VerifyMFARequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if req.PendingToken == "" || req.Code == "" {
		BadRequest(w, "Pending token and code are required")
		return
	}

	tokens, err := h.auth.VerifyMFA(r.Context(), req.PendingToken, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrTooManyAttempts):
			h.metrics.RecordMFAVerification(metrics.ResultLimited)
			TooManyRequests(w, "Too many failed codes; try again later")
		case errors.Is(err, models.ErrInvalidMFACode):
			h.metrics.RecordMFAVerification(metrics.ResultInvalid)
			Unauthorized(w, "Invalid code")
		case errors.Is(err, auth.ErrExpiredToken):
			h.metrics.RecordMFAVerification(metrics.ResultExpired)
			Unauthorized(w, "Challenge has expired; log in again")
		case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidTokenType):
			h.metrics.RecordMFAVerification(metrics.ResultInvalid)
			Unauthorized(w, "Invalid challenge token")
		case errors.Is(err, models.ErrMFANotEnrolled):
			h.metrics.RecordMFAVerification(metrics.ResultInvalid)
			Conflict(w, "MFA is not enrolled for this account")
		default:
			h.metrics.RecordMFAVerification(metrics.ResultError)
			InternalServerError(w, "Verification failed")
		}
		return
	}

	h.metrics.RecordMFAVerification(metrics.ResultOK)
	WriteJSONOK(w, tokensToResponse(tokens, nil))
}

// Refresh handles POST /api/v1/auth/refresh.
// Returns a new token pair using a valid refresh token.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if req.RefreshToken == "" {
		BadRequest(w, "Refresh token is required")
		return
	}

	tokens, err := h.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			Unauthorized(w, "Refresh token has expired")
			return
		}
		if errors.Is(err, models.ErrAccountDisabled) {
			Forbidden(w, "Account is disabled")
			return
		}
		Unauthorized(w, "Invalid refresh token")
		return
	}

	WriteJSONOK(w, tokensToResponse(tokens, nil))
}

// Me handles GET /api/v1/auth/me.
// Returns the current authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	account, err := h.store.GetAccountByID(r.Context(), claims.AccountID)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			Unauthorized(w, "Account not found")
			return
		}
		InternalServerError(w, "Failed to fetch account")
		return
	}

	WriteJSONOK(w, accountToSummary(account))
}

// ChangePassword handles POST /api/v1/auth/password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	var req ChangePasswordRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		BadRequest(w, "Current and new passwords are required")
		return
	}

	err := h.auth.ChangePassword(r.Context(), claims.AccountID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			Unauthorized(w, "Current password is incorrect")
			return
		}
		if errors.Is(err, models.ErrPasswordTooShort) || errors.Is(err, models.ErrPasswordTooLong) {
			UnprocessableEntity(w, err.Error())
			return
		}
		InternalServerError(w, "Failed to change password")
		return
	}

	WriteNoContent(w)
}

// EnableMFA handles POST /api/v1/mfa/enable.
// Starts TOTP enrollment; the secret takes effect only after confirmation.
func (h *AuthHandler) EnableMFA(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	account, err := h.store.GetAccountByID(r.Context(), claims.AccountID)
	if err != nil {
		InternalServerError(w, "Failed to fetch account")
		return
	}
	if account.MFAEnabled {
		Conflict(w, "MFA is already enabled")
		return
	}

	enrollment, err := h.auth.StartMFAEnrollment(r.Context(), claims.AccountID)
	if err != nil {
		InternalServerError(w, "Failed to start enrollment")
		return
	}

	WriteJSONOK(w, EnrollmentResponse{
		Secret: enrollment.Secret,
		URL:    enrollment.URL,
	})
}

// ConfirmMFA handles POST /api/v1/mfa/confirm.
// The first valid code commits enrollment.
func (h *AuthHandler) ConfirmMFA(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	var req ConfirmMFARequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if req.Code == "" {
		BadRequest(w, "Code is required")
		return
	}

	if err := h.auth.ConfirmMFAEnrollment(r.Context(), claims.AccountID, req.Code); err != nil {
		if errors.Is(err, models.ErrInvalidMFACode) {
			Unauthorized(w, "Invalid code")
			return
		}
		if errors.Is(err, models.ErrMFANotEnrolled) {
			Conflict(w, "No pending enrollment; call enable first")
			return
		}
		InternalServerError(w, "Failed to confirm enrollment")
		return
	}

	logger.InfoCtx(r.Context(), "MFA enabled", logger.KeyAccountID, claims.AccountID)
	WriteNoContent(w)
}

// DisableMFA handles POST /api/v1/mfa/disable.
func (h *AuthHandler) DisableMFA(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	if err := h.auth.DisableMFA(r.Context(), claims.AccountID); err != nil {
		InternalServerError(w, "Failed to disable MFA")
		return
	}

	logger.InfoCtx(r.Context(), "MFA disabled", logger.KeyAccountID, claims.AccountID)
	WriteNoContent(w)
}

// tokensToResponse builds a LoginResponse from an issued token pair.
func tokensToResponse(pair *auth.TokenPair, account *models.Account) LoginResponse {
	resp := LoginResponse{
		Status:       "ok",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
		ExpiresAt:    &pair.ExpiresAt,
	}
	if account != nil {
		summary := accountToSummary(account)
		resp.Account = &summary
	}
	return resp
}

// accountToSummary converts an Account to an AccountSummary for API output.
func accountToSummary(account *models.Account) AccountSummary {
	return AccountSummary{
		ID:         account.ID,
		Username:   account.Username,
		Email:      account.Email,
		Role:       account.Role,
		MFAEnabled: account.MFAEnabled,
		Enabled:    account.Enabled,
		CreatedAt:  account.CreatedAt,
		LastLogin:  account.LastLogin,
	}
}
