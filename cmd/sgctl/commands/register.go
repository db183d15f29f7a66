package commands

import (
	"fmt"
	"net/url"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/shareguard/shareguard/internal/cli/prompt"
	"github.com/shareguard/shareguard/pkg/apiclient"
	"github.com/spf13/cobra"
)

var (
	registerServer   string
	registerUsername string
	registerEmail    string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new account on a ShareGuard server.

You will be prompted for a password with confirmation. After registering,
use 'sgctl login' to authenticate.

Examples:
  # Register interactively
  sgctl register --server http://localhost:8080

  # Register with username and email flags
  sgctl register --server http://localhost:8080 -u alice --email alice@example.com`,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerServer, "server", "", "Server URL (required)")
	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "Username")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address")
}

func runRegister(cmd *cobra.Command, args []string) error {
	serverURLStr := registerServer
	if serverURLStr == "" {
		return fmt.Errorf("no server URL specified\n\n" +
			"Specify server URL:\n" +
			"  sgctl register --server http://localhost:8080")
	}

	parsedURL, err := url.Parse(serverURLStr)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}
	if parsedURL.Scheme == "" {
		parsedURL.Scheme = "http"
		serverURLStr = parsedURL.String()
	}

	username := registerUsername
	if username == "" {
		username, err = prompt.InputRequired("Username")
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
	}

	email := registerEmail
	if email == "" {
		email, err = prompt.InputRequired("Email")
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
	}

	password, err := prompt.NewPassword()
	if err != nil {
		return cmdutil.HandleAbort(err)
	}

	client := apiclient.New(serverURLStr)

	account, err := client.Register(username, email, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("Account '%s' created successfully\n", account.Username)
	fmt.Printf("Log in with: sgctl login --server %s -u %s\n", serverURLStr, account.Username)

	return nil
}
