package apiclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)

		var req LoginRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "testuser", req.Username)
		assert.Equal(t, "password123", req.Password)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(LoginResponse{
			Status:       "ok",
			AccessToken:  "access-token-123",
			RefreshToken: "refresh-token-456",
			TokenType:    "Bearer",
			ExpiresIn:    900,
		})
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.Login("testuser", "password123")

	require.NoError(t, err)
	assert.False(t, resp.MFARequired())
	assert.Equal(t, "access-token-123", resp.AccessToken)
	assert.Equal(t, "refresh-token-456", resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(900), resp.ExpiresIn)
}

func TestLogin_MFARequired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(LoginResponse{
			Status:       "mfa_required",
			PendingToken: "pending-token-789",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.Login("mfauser", "password123")

	require.NoError(t, err)
	assert.True(t, resp.MFARequired())
	assert.Equal(t, "pending-token-789", resp.PendingToken)
	assert.Empty(t, resp.AccessToken)
}

func TestVerifyMFA(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/mfa", r.URL.Path)

		var req struct {
			PendingToken string `json:"pending_token"`
			Code         string `json:"code"`
		}
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "pending-token-789", req.PendingToken)
		assert.Equal(t, "123456", req.Code)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(LoginResponse{
			Status:      "ok",
			AccessToken: "access-after-mfa",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.VerifyMFA("pending-token-789", "123456")

	require.NoError(t, err)
	assert.Equal(t, "access-after-mfa", resp.AccessToken)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"title":  "Unauthorized",
			"status": 401,
			"detail": "Invalid username or password",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.Login("baduser", "badpassword")

	assert.Nil(t, resp)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.True(t, apiErr.IsAuthError())
}

func TestRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/refresh", r.URL.Path)

		var req struct {
			RefreshToken string `json:"refresh_token"`
		}
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "old-refresh-token", req.RefreshToken)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(LoginResponse{
			Status:       "ok",
			AccessToken:  "new-access-token",
			RefreshToken: "new-refresh-token",
			TokenType:    "Bearer",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.RefreshToken("old-refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", resp.AccessToken)
	assert.Equal(t, "new-refresh-token", resp.RefreshToken)
}

func TestEnableMFA(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/mfa/enable", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(Enrollment{
			Secret: "JBSWY3DPEHPK3PXP",
			URL:    "otpauth://totp/ShareGuard:alice?secret=JBSWY3DPEHPK3PXP",
		})
	}))
	defer server.Close()

	client := New(server.URL).WithToken("test-token")
	enrollment, err := client.EnableMFA()

	require.NoError(t, err)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", enrollment.Secret)
	assert.Contains(t, enrollment.URL, "otpauth://")
}

func TestConfirmMFA(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/mfa/confirm", r.URL.Path)

		var req struct {
			Code string `json:"code"`
		}
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "654321", req.Code)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL).WithToken("test-token")
	err := client.ConfirmMFA("654321")

	require.NoError(t, err)
}
