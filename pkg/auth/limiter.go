package auth

import (
	"sync"
	"time"
)

// AttemptLimiter caps failed verification attempts per key within a sliding
// window. It protects the 6-digit TOTP space from being brute forced while a
// challenge token is valid.
type AttemptLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	max      int
	window   time.Duration
}

// NewAttemptLimiter creates a limiter allowing max failures per window.
func NewAttemptLimiter(max int, window time.Duration) *AttemptLimiter {
	if max <= 0 {
		max = 5
	}
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &AttemptLimiter{
		attempts: make(map[string][]time.Time),
		max:      max,
		window:   window,
	}
}

// Allow reports whether the key is still under its failure budget.
func (l *AttemptLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.prune(key)) < l.max
}

// Fail records a failed attempt for the key.
func (l *AttemptLimiter) Fail(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attempts[key] = append(l.prune(key), time.Now())
}

// Reset clears the failure history for the key, typically after a success.
func (l *AttemptLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, key)
}

// prune drops attempts older than the window. Caller must hold the lock.
func (l *AttemptLimiter) prune(key string) []time.Time {
	cutoff := time.Now().Add(-l.window)
	kept := l.attempts[key][:0]
	for _, at := range l.attempts[key] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	if len(kept) == 0 {
		delete(l.attempts, key)
		return nil
	}
	l.attempts[key] = kept
	return kept
}
