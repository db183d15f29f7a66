package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/shareguard/shareguard/internal/logger"
	"github.com/shareguard/shareguard/internal/telemetry"
	"github.com/shareguard/shareguard/pkg/api"
	"github.com/shareguard/shareguard/pkg/blob/factory"
	"github.com/shareguard/shareguard/pkg/config"
	"github.com/shareguard/shareguard/pkg/metrics"
	"github.com/shareguard/shareguard/pkg/share"
	"github.com/shareguard/shareguard/pkg/store"
	"github.com/spf13/cobra"
)

var (
	foreground bool
	pidFile    string
	logFile    string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ShareGuard server",
	Long: `Start the ShareGuard server with the specified configuration.

By default, the server runs in the background (daemon mode). Use --foreground
to run in the foreground for debugging or when managed by a process supervisor.

Use --config to specify a custom configuration file, or it will use the
default location at $XDG_CONFIG_HOME/shareguard/config.yaml.

Examples:
  # Start in background (default)
  shareguard start

  # Start in foreground
  shareguard start --foreground

  # Start with custom config file
  shareguard start --config /etc/shareguard/config.yaml

  # Start with environment variable overrides
  SHAREGUARD_LOGGING_LEVEL=DEBUG shareguard start --foreground`,
	RunE: runStart,
}

func init() {
	startCmd.Flags().BoolVarP(&foreground, "foreground", "f", false, "Run in foreground (default: background/daemon mode)")
	startCmd.Flags().StringVar(&pidFile, "pid-file", "", "Path to PID file (default: $XDG_STATE_HOME/shareguard/shareguard.pid)")
	startCmd.Flags().StringVar(&logFile, "log-file", "", "Path to log file for daemon mode (default: $XDG_STATE_HOME/shareguard/shareguard.log)")
}

func runStart(cmd *cobra.Command, args []string) error {
	// Handle daemon mode (background)
	if !foreground {
		return startDaemon()
	}

	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return err
	}

	// Initialize the structured logger
	if err := InitLogger(cfg); err != nil {
		return err
	}

	// Create cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry (if enabled)
	telemetryShutdown, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    "shareguard",
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRate:     cfg.Telemetry.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := telemetryShutdown(ctx); err != nil {
			logger.Error("Telemetry shutdown error", "error", err)
		}
	}()

	// Initialize Pyroscope profiling (if enabled)
	profilingShutdown, err := telemetry.InitProfiling(telemetry.ProfilingConfig{
		Enabled:        cfg.Telemetry.Profiling.Enabled,
		ServiceName:    "shareguard",
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Profiling.Endpoint,
		ProfileTypes:   cfg.Telemetry.Profiling.ProfileTypes,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize profiling: %w", err)
	}
	defer func() {
		if err := profilingShutdown(); err != nil {
			logger.Error("Profiling shutdown error", "error", err)
		}
	}()

	fmt.Println("ShareGuard - Secure file sharing server")
	logger.Info("Log level", "level", cfg.Logging.Level, "format", cfg.Logging.Format)
	logger.Info("Configuration loaded", "source", getConfigSource(GetConfigFile()))
	if telemetry.IsEnabled() {
		logger.Info("Telemetry enabled", "endpoint", cfg.Telemetry.Endpoint, "sample_rate", cfg.Telemetry.SampleRate)
	}
	if telemetry.IsProfilingEnabled() {
		logger.Info("Profiling enabled", "endpoint", cfg.Telemetry.Profiling.Endpoint)
	}

	// Initialize metrics (if enabled)
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		logger.Info("Metrics enabled", "path", "/metrics")
	} else {
		logger.Info("Metrics collection disabled")
	}

	// Initialize account and share store
	st, err := store.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() { _ = st.Close() }()
	logger.Info("Store initialized", "type", cfg.Database.Type)

	// Ensure admin account exists (generates random password on first run)
	adminPassword, err := st.EnsureAdminAccount(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure admin account: %w", err)
	}
	if adminPassword != "" {
		logger.Info("Admin account created", "username", "admin")
		fmt.Printf("\n*** IMPORTANT: Admin account created with password: %s ***\n", adminPassword)
		fmt.Println("Please save this password. It will not be shown again.")
		fmt.Println()
	}

	// Initialize blob storage backend
	blobs, err := factory.New(ctx, cfg.Blob)
	if err != nil {
		return fmt.Errorf("failed to initialize blob store: %w", err)
	}
	logger.Info("Blob store initialized", "backend", string(cfg.Blob.Backend))

	// Start the expired grant/link janitor
	cleanup := share.NewCleanupService(st, cfg.Cleanup.Interval)
	cleanup.Start(ctx)

	// Create API server
	apiServer, err := api.NewServer(cfg.API, st, blobs, m)
	if err != nil {
		return fmt.Errorf("failed to create API server: %w", err)
	}
	logger.Info("API server configured", "port", apiServer.Port())

	// Write PID file if specified
	if pidFile != "" {
		if err := os.WriteFile(pidFile, []byte(fmt.Sprintf("%d", os.Getpid())), 0644); err != nil {
			return fmt.Errorf("failed to write PID file: %w", err)
		}
		defer func() { _ = os.Remove(pidFile) }()
	}

	// Start server in background
	serverDone := make(chan error, 1)
	go func() {
		serverDone <- apiServer.Start(ctx)
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Server is running. Press Ctrl+C to stop.")

	select {
	case <-sigChan:
		signal.Stop(sigChan)
		logger.Info("Shutdown signal received, initiating graceful shutdown")
		cancel()

		// Wait for server to shut down gracefully
		if err := <-serverDone; err != nil {
			logger.Error("Server shutdown error", "error", err)
			return err
		}
		cleanup.Wait()
		logger.Info("Server stopped gracefully")

	case err := <-serverDone:
		signal.Stop(sigChan)
		cancel()
		cleanup.Wait()
		if err != nil {
			logger.Error("Server error", "error", err)
			return err
		}
		logger.Info("Server stopped")
	}

	return nil
}

// getConfigSource returns a description of where the config was loaded from.
func getConfigSource(configFile string) string {
	if configFile != "" {
		return configFile
	}
	if config.DefaultConfigExists() {
		return config.GetDefaultConfigPath()
	}
	return "defaults"
}

// startDaemon starts the server as a background daemon process.
func startDaemon() error {
	stateDir := GetDefaultStateDir()

	// Create state directory if it doesn't exist
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	// Set default PID file if not specified
	pidPath := pidFile
	if pidPath == "" {
		pidPath = filepath.Join(stateDir, "shareguard.pid")
	}

	// Check if already running
	if _, err := os.Stat(pidPath); err == nil {
		pidData, err := os.ReadFile(pidPath)
		if err == nil {
			var pid int
			if _, err := fmt.Sscanf(string(pidData), "%d", &pid); err == nil {
				// Check if process is still running
				if process, err := os.FindProcess(pid); err == nil {
					if err := process.Signal(syscall.Signal(0)); err == nil {
						return fmt.Errorf("ShareGuard is already running (PID %d)\nUse 'shareguard stop' to stop the running instance", pid)
					}
				}
			}
		}
		// Stale PID file, remove it
		_ = os.Remove(pidPath)
	}

	// Set default log file if not specified
	logPath := logFile
	if logPath == "" {
		logPath = filepath.Join(stateDir, "shareguard.log")
	}

	// Get the executable path
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	// Build arguments for the daemon process
	daemonArgs := []string{"start", "--foreground", "--pid-file", pidPath}
	if GetConfigFile() != "" {
		daemonArgs = append(daemonArgs, "--config", GetConfigFile())
	}

	// Create the daemon process
	daemon := exec.Command(executable, daemonArgs...)

	// Open log file for stdout/stderr
	logFileHandle, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	daemon.Stdout = logFileHandle
	daemon.Stderr = logFileHandle

	// Detach from parent process
	daemon.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	// Start the daemon
	if err := daemon.Start(); err != nil {
		_ = logFileHandle.Close()
		return fmt.Errorf("failed to start daemon: %w", err)
	}

	_ = logFileHandle.Close()

	fmt.Printf("ShareGuard started in background (PID %d)\n", daemon.Process.Pid)
	fmt.Printf("  PID file: %s\n", pidPath)
	fmt.Printf("  Log file: %s\n", logPath)
	fmt.Println("\nUse 'shareguard stop' to stop the server")
	fmt.Println("Use 'shareguard status' to check server status")

	return nil
}
