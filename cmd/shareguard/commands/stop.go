package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	stopPidFile string
	stopTimeout time.Duration
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the ShareGuard server",
	Long: `Stop a ShareGuard server running in daemon mode.

This command reads the PID file written by 'shareguard start' and sends a
termination signal to the process, waiting for it to exit gracefully.

Examples:
  # Stop the server
  shareguard stop

  # Stop with custom PID file
  shareguard stop --pid-file /var/run/shareguard.pid`,
	RunE: runStop,
}

func init() {
	stopCmd.Flags().StringVar(&stopPidFile, "pid-file", "", "Path to PID file (default: $XDG_STATE_HOME/shareguard/shareguard.pid)")
	stopCmd.Flags().DurationVar(&stopTimeout, "timeout", 30*time.Second, "How long to wait for the server to exit")
}

func runStop(cmd *cobra.Command, args []string) error {
	pidPath := stopPidFile
	if pidPath == "" {
		pidPath = GetDefaultPidFile()
	}

	pidData, err := os.ReadFile(pidPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no PID file found at %s\nThe server does not appear to be running in daemon mode", pidPath)
		}
		return fmt.Errorf("failed to read PID file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(pidData)))
	if err != nil {
		return fmt.Errorf("invalid PID file %s: %w", pidPath, err)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process %d: %w", pid, err)
	}

	// Signal 0 checks whether the process exists
	if err := process.Signal(syscall.Signal(0)); err != nil {
		_ = os.Remove(pidPath)
		return fmt.Errorf("server is not running (stale PID file removed)")
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal process %d: %w", pid, err)
	}

	fmt.Printf("Sent termination signal to ShareGuard (PID %d), waiting for shutdown", pid)

	deadline := time.Now().Add(stopTimeout)
	for time.Now().Before(deadline) {
		if err := process.Signal(syscall.Signal(0)); err != nil {
			fmt.Println()
			fmt.Println("Server stopped")
			_ = os.Remove(pidPath)
			return nil
		}
		fmt.Print(".")
		time.Sleep(500 * time.Millisecond)
	}

	fmt.Println()
	return fmt.Errorf("server did not stop within %s (PID %d)", stopTimeout, pid)
}
