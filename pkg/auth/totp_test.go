package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
)

func TestGenerateSecret(t *testing.T) {
	engine := NewTOTPEngine(TOTPConfig{Issuer: "TestIssuer"})

	enrollment, err := engine.GenerateSecret("alice")
	if err != nil {
		t.Fatalf("failed to generate secret: %v", err)
	}
	if enrollment.Secret == "" {
		t.Error("expected non-empty secret")
	}
	if !strings.HasPrefix(enrollment.URL, "otpauth://totp/") {
		t.Errorf("expected otpauth URL, got %q", enrollment.URL)
	}
	if !strings.Contains(enrollment.URL, "TestIssuer") {
		t.Errorf("expected issuer in URL, got %q", enrollment.URL)
	}
	if !strings.Contains(enrollment.URL, "alice") {
		t.Errorf("expected account name in URL, got %q", enrollment.URL)
	}

	// Each enrollment gets a fresh secret
	second, err := engine.GenerateSecret("alice")
	if err != nil {
		t.Fatalf("failed to generate second secret: %v", err)
	}
	if second.Secret == enrollment.Secret {
		t.Error("expected a different secret per enrollment")
	}
}

func TestVerify(t *testing.T) {
	engine := NewTOTPEngine(TOTPConfig{})

	enrollment, err := engine.GenerateSecret("bob")
	if err != nil {
		t.Fatalf("failed to generate secret: %v", err)
	}

	code, err := totp.GenerateCode(enrollment.Secret, time.Now())
	if err != nil {
		t.Fatalf("failed to generate code: %v", err)
	}

	if !engine.Verify(code, enrollment.Secret) {
		t.Error("expected current code to verify")
	}
	if engine.Verify("000000", enrollment.Secret) {
		t.Error("expected wrong code to fail")
	}
	if engine.Verify("not-a-code", enrollment.Secret) {
		t.Error("expected malformed code to fail")
	}
}

func TestVerify_ClockSkew(t *testing.T) {
	engine := NewTOTPEngine(TOTPConfig{Skew: 1})

	enrollment, err := engine.GenerateSecret("carol")
	if err != nil {
		t.Fatalf("failed to generate secret: %v", err)
	}

	// A code from the previous 30s step is accepted with skew 1
	previous, err := totp.GenerateCode(enrollment.Secret, time.Now().Add(-30*time.Second))
	if err != nil {
		t.Fatalf("failed to generate code: %v", err)
	}
	if !engine.Verify(previous, enrollment.Secret) {
		t.Error("expected previous-step code to verify with skew 1")
	}

	// A code from far in the past is rejected
	stale, err := totp.GenerateCode(enrollment.Secret, time.Now().Add(-5*time.Minute))
	if err != nil {
		t.Fatalf("failed to generate code: %v", err)
	}
	if engine.Verify(stale, enrollment.Secret) {
		t.Error("expected stale code to fail")
	}
}
