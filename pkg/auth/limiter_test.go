package auth

import (
	"testing"
	"time"
)

func TestAttemptLimiter(t *testing.T) {
	limiter := NewAttemptLimiter(3, time.Minute)

	if !limiter.Allow("key") {
		t.Fatal("fresh key should be allowed")
	}

	limiter.Fail("key")
	limiter.Fail("key")
	if !limiter.Allow("key") {
		t.Error("key under budget should be allowed")
	}

	limiter.Fail("key")
	if limiter.Allow("key") {
		t.Error("key at budget should be blocked")
	}

	// Other keys are unaffected
	if !limiter.Allow("other") {
		t.Error("unrelated key should be allowed")
	}

	limiter.Reset("key")
	if !limiter.Allow("key") {
		t.Error("reset key should be allowed again")
	}
}

func TestAttemptLimiter_WindowExpiry(t *testing.T) {
	limiter := NewAttemptLimiter(1, 10*time.Millisecond)

	limiter.Fail("key")
	if limiter.Allow("key") {
		t.Fatal("key at budget should be blocked")
	}

	time.Sleep(20 * time.Millisecond)
	if !limiter.Allow("key") {
		t.Error("failures outside the window should not count")
	}
}

func TestAttemptLimiter_Defaults(t *testing.T) {
	limiter := NewAttemptLimiter(0, 0)
	if limiter.max != 5 {
		t.Errorf("expected default max 5, got %d", limiter.max)
	}
	if limiter.window != 5*time.Minute {
		t.Errorf("expected default window 5m, got %v", limiter.window)
	}
}
