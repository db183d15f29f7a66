package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/shareguard/shareguard/internal/logger"
	"github.com/shareguard/shareguard/pkg/access"
	"github.com/shareguard/shareguard/pkg/auth"
	"github.com/shareguard/shareguard/pkg/blob"
	"github.com/shareguard/shareguard/pkg/files"
	"github.com/shareguard/shareguard/pkg/metrics"
	"github.com/shareguard/shareguard/pkg/share"
	"github.com/shareguard/shareguard/pkg/store"
)

// Server provides the ShareGuard HTTP API.
//
// The server wires the authentication service, the access decision engine,
// and the share/file services behind a chi router and supports graceful
// shutdown with a configurable timeout.
type Server struct {
	server       *http.Server
	config       Config
	authService  *auth.Service
	shutdownOnce sync.Once
}

// NewServer creates a new API HTTP server.
//
// The server is created in a stopped state. Call Start() to begin serving
// requests.
//
// The JWT service is created internally from the config. The JWT secret must
// be configured via config.JWT.Secret or the SHAREGUARD_API_SECRET
// environment variable.
func NewServer(config Config, st store.Store, blobs blob.Store, m *metrics.Metrics) (*Server, error) {
	config.applyDefaults()

	jwtSecret := config.GetJWTSecret()
	if len(jwtSecret) < 32 {
		return nil, fmt.Errorf("JWT secret must be at least 32 characters; set via %s env var or config", EnvJWTSecret)
	}

	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret:               jwtSecret,
		AccessTokenDuration:  config.JWT.AccessTokenDuration,
		RefreshTokenDuration: config.JWT.RefreshTokenDuration,
		PendingTokenDuration: config.JWT.PendingTokenDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	authService := auth.NewService(st, jwtService, auth.NewTOTPEngine(auth.TOTPConfig{}), nil)

	router := NewRouter(RouterDeps{
		Store:   st,
		Auth:    authService,
		Engine:  access.NewEngine(st),
		Shares:  share.NewService(st),
		Files:   files.NewService(st, blobs),
		Metrics: m,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		server:      server,
		config:      config,
		authService: authService,
	}, nil
}

// Start starts the API HTTP server and blocks until the context is cancelled
// or an error occurs.
//
// When the context is cancelled, Start initiates graceful shutdown and returns.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		logger.Info("API server listening", "port", s.config.Port)

		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			select {
			case errChan <- err:
			default:
				// Context was cancelled, error is not needed
			}
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("API server shutdown signal received")
		// Create a fresh context for graceful shutdown; the cancelled ctx
		// would abort it immediately.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Stop(shutdownCtx)
	case err := <-errChan:
		return fmt.Errorf("API server failed: %w", err)
	}
}

// Stop initiates graceful shutdown of the API server.
//
// Stop is safe to call multiple times and safe to call concurrently with Start().
func (s *Server) Stop(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		logger.Debug("API server shutdown initiated")

		if err := s.server.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("API server shutdown error: %w", err)
			logger.Error("API server shutdown error", logger.KeyError, err)
		} else {
			logger.Info("API server stopped gracefully")
		}
	})
	return shutdownErr
}

// Port returns the TCP port the server is configured to listen on.
func (s *Server) Port() int {
	return s.config.Port
}

// Auth exposes the authentication service, primarily for tests and the
// janitor wiring in the start command.
func (s *Server) Auth() *auth.Service {
	return s.authService
}
