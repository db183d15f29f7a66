package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/shareguard/shareguard/internal/logger"
	"github.com/shareguard/shareguard/pkg/access"
	"github.com/shareguard/shareguard/pkg/api/handlers"
	apimiddleware "github.com/shareguard/shareguard/pkg/api/middleware"
	"github.com/shareguard/shareguard/pkg/auth"
	"github.com/shareguard/shareguard/pkg/files"
	"github.com/shareguard/shareguard/pkg/metrics"
	"github.com/shareguard/shareguard/pkg/share"
	"github.com/shareguard/shareguard/pkg/store"
)

// RouterDeps collects the services the router wires into handlers.
type RouterDeps struct {
	Store   store.Store
	Auth    *auth.Service
	Engine  *access.Engine
	Shares  *share.Service
	Files   *files.Service
	Metrics *metrics.Metrics
}

// NewRouter creates and configures the chi router with all middleware and routes.
//
// The router is configured with:
//   - Request ID middleware for request tracking
//   - Real IP extraction for proper client identification
//   - Custom request logging using the internal logger
//   - Panic recovery to prevent server crashes
//   - Request timeout to prevent hung requests
//
// Public routes:
//   - GET /health, GET /health/ready - probes
//   - GET /metrics - Prometheus metrics (when enabled)
//   - POST /api/v1/auth/register|login|mfa|refresh
//   - GET /api/v1/links/{token} and /content - bearer link redemption
//
// Authenticated routes (Bearer access token):
//   - GET /api/v1/auth/me, POST /api/v1/auth/password
//   - POST /api/v1/mfa/enable|confirm|disable
//   - GET /api/v1/users
//   - /api/v1/files and nested shares/links management
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Middleware stack - order matters
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(deps.Metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	healthHandler := handlers.NewHealthHandler(deps.Store)
	authHandler := handlers.NewAuthHandler(deps.Auth, deps.Store, deps.Metrics)
	accountHandler := handlers.NewAccountHandler(deps.Store)
	fileHandler := handlers.NewFileHandler(deps.Files, deps.Engine, deps.Metrics)
	shareHandler := handlers.NewShareHandler(deps.Shares, deps.Store)
	linkHandler := handlers.NewLinkHandler(deps.Shares, deps.Engine, deps.Files, deps.Store, deps.Metrics)

	// Health routes - unauthenticated
	r.Route("/health", func(r chi.Router) {
		r.Get("/", healthHandler.Liveness)
		r.Get("/ready", healthHandler.Readiness)
	})

	// Prometheus metrics - unauthenticated
	if deps.Metrics != nil {
		if handler := deps.Metrics.Handler(); handler != nil {
			r.Method(http.MethodGet, "/metrics", handler)
		}
	}

	// Root redirect to health for convenience
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/health", http.StatusTemporaryRedirect)
	})

	jwtService := deps.Auth.JWT()

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Auth routes - mostly unauthenticated
		r.Route("/auth", func(r chi.Router) {
			// Public endpoints
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/mfa", authHandler.VerifyMFA)
			r.Post("/refresh", authHandler.Refresh)

			// Authenticated endpoints
			r.Group(func(r chi.Router) {
				r.Use(apimiddleware.JWTAuth(jwtService))
				r.Get("/me", authHandler.Me)
				r.Post("/password", authHandler.ChangePassword)
			})
		})

		// Bearer link redemption - the link token is the credential
		r.Route("/links/{token}", func(r chi.Router) {
			r.Get("/", linkHandler.Peek)
			r.Get("/content", linkHandler.Content)
		})

		// Protected routes - require an access token
		r.Group(func(r chi.Router) {
			r.Use(apimiddleware.JWTAuth(jwtService))

			// MFA enrollment lifecycle
			r.Route("/mfa", func(r chi.Router) {
				r.Post("/enable", authHandler.EnableMFA)
				r.Post("/confirm", authHandler.ConfirmMFA)
				r.Post("/disable", authHandler.DisableMFA)
			})

			// Account listing for the share picker
			r.Get("/users", accountHandler.List)

			// File management
			r.Route("/files", func(r chi.Router) {
				r.Post("/", fileHandler.Upload)
				r.Get("/", fileHandler.List)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", fileHandler.Get)
					r.Delete("/", fileHandler.Delete)
					r.Get("/content", fileHandler.Content)

					// Per-account grants
					r.Route("/shares", func(r chi.Router) {
						r.Get("/", shareHandler.List)
						r.Put("/{username}", shareHandler.Upsert)
						r.Delete("/{username}", shareHandler.Delete)
					})

					// Bearer links
					r.Route("/links", func(r chi.Router) {
						r.Post("/", linkHandler.Create)
						r.Get("/", linkHandler.List)
						r.Delete("/{linkID}", linkHandler.Delete)
					})
				})
			})
		})
	})

	return r
}

// isHealthPath returns true if the request path is a healthcheck endpoint.
func isHealthPath(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/health/") || path == "/metrics"
}

// requestLogger is a custom middleware that logs requests using the internal
// logger and feeds the HTTP latency histogram.
//
// It logs:
//   - Request start (DEBUG level): method, path, remote addr
//   - Request completion (INFO level): method, path, status, duration
//   - Healthcheck requests are logged at DEBUG level to reduce noise
func requestLogger(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := chimiddleware.GetReqID(r.Context())

			logger.Debug("API request started",
				logger.KeyRequestID, requestID,
				logger.KeyMethod, r.Method,
				logger.KeyPath, r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			// Wrap response writer to capture status code
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			m.ObserveHTTPRequest(r.Method, strconv.Itoa(ww.Status()), duration.Seconds())

			logArgs := []any{
				logger.KeyRequestID, requestID,
				logger.KeyMethod, r.Method,
				logger.KeyPath, r.URL.Path,
				logger.KeyStatus, ww.Status(),
				"bytes", ww.BytesWritten(),
				logger.KeyDuration, duration.String(),
			}

			// Log healthcheck requests at DEBUG to avoid polluting logs in k8s
			if isHealthPath(r.URL.Path) {
				logger.Debug("API request completed", logArgs...)
			} else {
				logger.Info("API request completed", logArgs...)
			}
		})
	}
}
