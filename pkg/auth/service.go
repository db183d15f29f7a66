package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shareguard/shareguard/internal/logger"
	"github.com/shareguard/shareguard/pkg/models"
	"github.com/shareguard/shareguard/pkg/store"
)

// Service implements the authentication state machine: password login,
// the optional TOTP step, token refresh, and MFA enrollment lifecycle.
type Service struct {
	store   store.Store
	jwt     *JWTService
	totp    *TOTPEngine
	limiter *AttemptLimiter
}

// NewService creates an authentication service.
func NewService(st store.Store, jwt *JWTService, totp *TOTPEngine, limiter *AttemptLimiter) *Service {
	if limiter == nil {
		limiter = NewAttemptLimiter(5, 5*time.Minute)
	}
	return &Service{
		store:   st,
		jwt:     jwt,
		totp:    totp,
		limiter: limiter,
	}
}

// LoginResult is the outcome of a password login.
//
// When the account has MFA enabled, Tokens is nil and PendingToken carries
// the challenge that must be exchanged via VerifyMFA.
type LoginResult struct {
	MFARequired  bool
	PendingToken string
	Tokens       *TokenPair
	Account      *models.Account
}

// Register creates a new account with the given credentials.
// Returns models.ErrDuplicateAccount if the username or email is taken.
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.Account, error) {
	hash, err := models.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Enabled:      true,
		Role:         string(models.RoleUser),
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "account registered", logger.KeyUsername, username)
	return account, nil
}

// Login verifies the password and either issues a token pair or, when the
// account has MFA enabled, an MFA challenge token.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	account, err := s.store.ValidateCredentials(ctx, username, password)
	if err != nil {
		logger.WarnCtx(ctx, "login failed", logger.KeyUsername, username, logger.KeyError, err)
		return nil, err
	}

	if account.MFAEnabled {
		pending, err := s.jwt.GeneratePendingToken(account)
		if err != nil {
			return nil, fmt.Errorf("failed to generate challenge token: %w", err)
		}
		logger.InfoCtx(ctx, "login requires mfa", logger.KeyUsername, username)
		return &LoginResult{
			MFARequired:  true,
			PendingToken: pending,
			Account:      account,
		}, nil
	}

	tokens, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "login succeeded", logger.KeyUsername, username)
	return &LoginResult{Tokens: tokens, Account: account}, nil
}

// VerifyMFA exchanges a challenge token plus a valid TOTP code for a token
// pair. Failed codes count against the account's attempt budget.
func (s *Service) VerifyMFA(ctx context.Context, pendingToken, code string) (*TokenPair, error) {
	claims, err := s.jwt.ValidatePendingToken(pendingToken)
	if err != nil {
		return nil, err
	}

	account, err := s.store.GetAccountByID(ctx, claims.AccountID)
	if err != nil {
		return nil, err
	}
	if !account.MFAEnabled {
		return nil, models.ErrMFANotEnrolled
	}

	if !s.limiter.Allow(account.ID) {
		logger.WarnCtx(ctx, "mfa attempts exhausted", logger.KeyUsername, account.Username)
		return nil, models.ErrTooManyAttempts
	}

	if !s.totp.Verify(code, account.MFASecret) {
		s.limiter.Fail(account.ID)
		logger.WarnCtx(ctx, "mfa code rejected", logger.KeyUsername, account.Username)
		return nil, models.ErrInvalidMFACode
	}
	s.limiter.Reset(account.ID)

	tokens, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "mfa verified", logger.KeyUsername, account.Username)
	return tokens, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The account
// must still exist and be enabled.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	account, err := s.store.GetAccountByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !account.Enabled {
		return nil, models.ErrAccountDisabled
	}

	return s.jwt.GenerateTokenPair(account)
}

// StartMFAEnrollment generates a fresh TOTP secret for the account and
// stores it unconfirmed. The account must present a valid code via
// ConfirmMFAEnrollment before MFA is actually enforced at login.
func (s *Service) StartMFAEnrollment(ctx context.Context, accountID string) (*Enrollment, error) {
	account, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	enrollment, err := s.totp.GenerateSecret(account.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate TOTP secret: %w", err)
	}

	// Re-enrolling replaces any previous secret and drops enforcement until
	// the new secret is confirmed.
	if err := s.store.UpdateMFA(ctx, account.ID, enrollment.Secret, false); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "mfa enrollment started", logger.KeyUsername, account.Username)
	return enrollment, nil
}

// ConfirmMFAEnrollment verifies the first code against the pending secret
// and turns enforcement on.
func (s *Service) ConfirmMFAEnrollment(ctx context.Context, accountID, code string) error {
	account, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.MFASecret == "" {
		return models.ErrMFANotEnrolled
	}

	if !s.totp.Verify(code, account.MFASecret) {
		return models.ErrInvalidMFACode
	}

	if err := s.store.UpdateMFA(ctx, account.ID, account.MFASecret, true); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "mfa enabled", logger.KeyUsername, account.Username)
	return nil
}

// DisableMFA clears the account's TOTP secret and turns enforcement off.
// The caller must already hold a valid session for the account.
func (s *Service) DisableMFA(ctx context.Context, accountID string) error {
	account, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	if err := s.store.UpdateMFA(ctx, account.ID, "", false); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "mfa disabled", logger.KeyUsername, account.Username)
	return nil
}

// ChangePassword verifies the current password and replaces it.
func (s *Service) ChangePassword(ctx context.Context, accountID, current, next string) error {
	account, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	if !models.VerifyPassword(current, account.PasswordHash) {
		return models.ErrInvalidCredentials
	}

	hash, err := models.HashPassword(next)
	if err != nil {
		return err
	}

	return s.store.UpdatePassword(ctx, account.Username, hash)
}

// JWT exposes the underlying token service for middleware wiring.
func (s *Service) JWT() *JWTService {
	return s.jwt
}

func (s *Service) issueTokens(ctx context.Context, account *models.Account) (*TokenPair, error) {
	tokens, err := s.jwt.GenerateTokenPair(account)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.store.UpdateLastLogin(ctx, account.Username, time.Now()); err != nil {
		// Login still succeeds; the timestamp is advisory.
		logger.WarnCtx(ctx, "failed to update last login",
			logger.KeyUsername, account.Username, logger.KeyError, err)
	}

	return tokens, nil
}
