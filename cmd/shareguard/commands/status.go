package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/shareguard/shareguard/internal/cli/output"
	"github.com/spf13/cobra"
)

var (
	statusOutput  string
	statusPidFile string
	statusAPIPort int
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status",
	Long: `Display the current status of the ShareGuard server.

This command checks the server health by calling the health endpoints
and reports process and database readiness.

Examples:
  # Check status (uses default settings)
  shareguard status

  # Check status with custom API port
  shareguard status --api-port 9090

  # Output as JSON
  shareguard status --output json`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusPidFile, "pid-file", "", "Path to PID file (default: $XDG_STATE_HOME/shareguard/shareguard.pid)")
	statusCmd.Flags().IntVar(&statusAPIPort, "api-port", 8080, "API server port")
	statusCmd.Flags().StringVarP(&statusOutput, "output", "o", "table", "Output format (table|json|yaml)")
}

// ServerStatus represents the server status information.
type ServerStatus struct {
	Running bool   `json:"running" yaml:"running"`
	PID     int    `json:"pid,omitempty" yaml:"pid,omitempty"`
	Message string `json:"message" yaml:"message"`
	Healthy bool   `json:"healthy" yaml:"healthy"`
	Ready   bool   `json:"ready" yaml:"ready"`
}

// healthResponse mirrors the API health endpoint payload.
type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(statusOutput)
	if err != nil {
		return err
	}

	status := ServerStatus{
		Running: false,
		Healthy: false,
		Message: "Server is not running",
	}

	// Use default PID file if not specified
	pidPath := statusPidFile
	if pidPath == "" {
		pidPath = GetDefaultPidFile()
	}

	// Check PID file first
	pidData, err := os.ReadFile(pidPath)
	if err == nil {
		pid, err := strconv.Atoi(strings.TrimSpace(string(pidData)))
		if err == nil {
			// On Unix FindProcess always succeeds; signal 0 checks liveness
			if process, err := os.FindProcess(pid); err == nil {
				if err := process.Signal(syscall.Signal(0)); err == nil {
					status.Running = true
					status.PID = pid
				}
			}
		}
	}

	client := &http.Client{Timeout: 2 * time.Second}

	// Liveness: process is serving requests
	if health, err := fetchHealth(client, "/health"); err == nil {
		status.Running = true
		status.Healthy = health.Status == "healthy"
		if status.Healthy {
			status.Message = "Server is running and healthy"
		} else {
			status.Message = fmt.Sprintf("Server is running but unhealthy: %s", health.Error)
		}
	} else if status.Running {
		// PID file says running but health check failed
		status.Message = "Server process exists but health check failed"
	}

	// Readiness: database answers health checks
	if ready, err := fetchHealth(client, "/health/ready"); err == nil {
		status.Ready = ready.Status == "healthy"
		if status.Healthy && !status.Ready {
			status.Message = fmt.Sprintf("Server is running but not ready: %s", ready.Error)
		}
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, status)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, status)
	default:
		printStatusTable(status)
	}

	return nil
}

func fetchHealth(client *http.Client, path string) (*healthResponse, error) {
	url := fmt.Sprintf("http://localhost:%d%s", statusAPIPort, path)
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, err
	}
	return &health, nil
}

func printStatusTable(status ServerStatus) {
	fmt.Println()
	fmt.Println("ShareGuard Server Status")
	fmt.Println("========================")
	fmt.Println()

	if status.Running {
		if status.Healthy {
			fmt.Printf("  Status:     \033[32m● Running\033[0m\n")
		} else {
			fmt.Printf("  Status:     \033[33m● Running (unhealthy)\033[0m\n")
		}
		if status.PID != 0 {
			fmt.Printf("  PID:        %d\n", status.PID)
		}
		fmt.Printf("  Database:   %s\n", readyString(status.Ready))
	} else {
		fmt.Printf("  Status:     \033[31m○ Stopped\033[0m\n")
	}

	fmt.Println()
	fmt.Printf("  %s\n", status.Message)
	fmt.Println()
}

func readyString(ready bool) string {
	if ready {
		return "ready"
	}
	return "not ready"
}
