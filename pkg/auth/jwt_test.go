package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/shareguard/shareguard/pkg/models"
)

func testJWTService(t *testing.T) *JWTService {
	t.Helper()
	service, err := NewJWTService(JWTConfig{
		Secret:               "test-secret-key-must-be-32-chars!",
		Issuer:               "test-issuer",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("failed to create JWT service: %v", err)
	}
	return service
}

func testAccount() *models.Account {
	return &models.Account{
		ID:       "test-uuid",
		Username: "testuser",
		Role:     string(models.RoleUser),
		Enabled:  true,
	}
}

func TestNewJWTService_ShortSecret(t *testing.T) {
	_, err := NewJWTService(JWTConfig{Secret: "short"})
	if !errors.Is(err, ErrInvalidSecretLength) {
		t.Fatalf("expected ErrInvalidSecretLength, got %v", err)
	}
}

func TestGenerateTokenPair(t *testing.T) {
	service := testJWTService(t)

	tokenPair, err := service.GenerateTokenPair(testAccount())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if tokenPair.AccessToken == "" {
		t.Error("expected non-empty access token")
	}
	if tokenPair.RefreshToken == "" {
		t.Error("expected non-empty refresh token")
	}
	if tokenPair.TokenType != "Bearer" {
		t.Errorf("expected TokenType 'Bearer', got %q", tokenPair.TokenType)
	}
	if tokenPair.ExpiresIn != int64(15*time.Minute/time.Second) {
		t.Errorf("expected ExpiresIn %d, got %d", int64(15*time.Minute/time.Second), tokenPair.ExpiresIn)
	}
}

func TestValidateAccessToken(t *testing.T) {
	service := testJWTService(t)
	pair, _ := service.GenerateTokenPair(testAccount())

	claims, err := service.ValidateAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("expected valid access token, got: %v", err)
	}
	if claims.AccountID != "test-uuid" {
		t.Errorf("expected account ID 'test-uuid', got %q", claims.AccountID)
	}
	if claims.Username != "testuser" {
		t.Errorf("expected username 'testuser', got %q", claims.Username)
	}
	if !claims.IsAccessToken() {
		t.Error("expected access token type")
	}

	// A refresh token is not an access token
	if _, err := service.ValidateAccessToken(pair.RefreshToken); !errors.Is(err, ErrInvalidTokenType) {
		t.Errorf("expected ErrInvalidTokenType, got %v", err)
	}
}

func TestValidateRefreshToken(t *testing.T) {
	service := testJWTService(t)
	pair, _ := service.GenerateTokenPair(testAccount())

	claims, err := service.ValidateRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("expected valid refresh token, got: %v", err)
	}
	if !claims.IsRefreshToken() {
		t.Error("expected refresh token type")
	}

	if _, err := service.ValidateRefreshToken(pair.AccessToken); !errors.Is(err, ErrInvalidTokenType) {
		t.Errorf("expected ErrInvalidTokenType, got %v", err)
	}
}

func TestPendingToken(t *testing.T) {
	service := testJWTService(t)
	account := testAccount()

	pending, err := service.GeneratePendingToken(account)
	if err != nil {
		t.Fatalf("failed to generate pending token: %v", err)
	}

	claims, err := service.ValidatePendingToken(pending)
	if err != nil {
		t.Fatalf("expected valid pending token, got: %v", err)
	}
	if !claims.IsMFAPendingToken() {
		t.Error("expected mfa_pending token type")
	}

	// A pending token must never pass as an access token
	if _, err := service.ValidateAccessToken(pending); !errors.Is(err, ErrInvalidTokenType) {
		t.Errorf("expected ErrInvalidTokenType, got %v", err)
	}
	// Nor as a refresh token
	if _, err := service.ValidateRefreshToken(pending); !errors.Is(err, ErrInvalidTokenType) {
		t.Errorf("expected ErrInvalidTokenType, got %v", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	service := testJWTService(t)

	if _, err := service.ValidateToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateToken_WrongKey(t *testing.T) {
	service := testJWTService(t)
	other, _ := NewJWTService(JWTConfig{
		Secret: "another-secret-key-that-is-32-ch!",
	})

	pair, _ := other.GenerateTokenPair(testAccount())
	if _, err := service.ValidateToken(pair.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for token signed with a different key, got %v", err)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	service, err := NewJWTService(JWTConfig{
		Secret:              "test-secret-key-must-be-32-chars!",
		AccessTokenDuration: -time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to create JWT service: %v", err)
	}

	pair, err := service.GenerateTokenPair(testAccount())
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	if _, err := service.ValidateToken(pair.AccessToken); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}
