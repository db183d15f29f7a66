package logger

import "context"

type contextKey struct{}

// LogContext carries request-scoped fields that *Ctx log functions attach
// to every record.
type LogContext struct {
	RequestID string
	ClientIP  string
	Username  string
}

// WithLogContext returns a context carrying the given log fields.
func WithLogContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, contextKey{}, lc)
}

// FromContext extracts the LogContext from ctx, or nil if absent.
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(contextKey{}).(*LogContext)
	return lc
}
