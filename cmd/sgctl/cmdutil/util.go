// Package cmdutil provides shared utilities for sgctl commands.
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shareguard/shareguard/internal/cli/credentials"
	"github.com/shareguard/shareguard/internal/cli/output"
	"github.com/shareguard/shareguard/internal/cli/prompt"
	"github.com/shareguard/shareguard/pkg/apiclient"
)

// Flags stores global flag values accessible by subcommands.
var Flags = &GlobalFlags{}

// GlobalFlags holds the global flag values.
type GlobalFlags struct {
	ServerURL string
	Token     string
	Output    string
	NoColor   bool
	Verbose   bool
}

// GetAuthenticatedClient returns an API client configured from the current context.
// It uses the --server and --token flags if provided, otherwise falls back to stored credentials.
// If the access token is expired but a refresh token exists, it will automatically refresh.
func GetAuthenticatedClient() (*apiclient.Client, error) {
	// Check for explicit flags first
	if Flags.ServerURL != "" && Flags.Token != "" {
		return apiclient.New(Flags.ServerURL).WithToken(Flags.Token), nil
	}

	// Load credential store
	store, err := credentials.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential store: %w", err)
	}

	// Get current context
	ctx, err := store.GetCurrentContext()
	if err != nil {
		return nil, fmt.Errorf("not logged in. Run 'sgctl login' first")
	}

	// Use flag overrides if provided
	url := ctx.ServerURL
	if Flags.ServerURL != "" {
		url = Flags.ServerURL
	}

	if url == "" {
		return nil, fmt.Errorf("no server URL configured. Run 'sgctl login --server <url>' first")
	}

	tok := ctx.AccessToken
	if Flags.Token != "" {
		tok = Flags.Token
	}

	// Check if token is expired and try to refresh
	if ctx.IsExpired() && ctx.HasRefreshToken() {
		client := apiclient.New(url)
		tokens, err := client.RefreshToken(ctx.RefreshToken)
		if err != nil {
			// Refresh failed, user needs to re-login
			return nil, fmt.Errorf("session expired. Run 'sgctl login' to re-authenticate")
		}

		// Save new tokens
		if err := store.UpdateTokens(tokens.AccessToken, tokens.RefreshToken, TokenExpiry(tokens)); err != nil {
			return nil, fmt.Errorf("failed to save refreshed tokens: %w", err)
		}

		tok = tokens.AccessToken
	}

	if tok == "" {
		return nil, fmt.Errorf("no access token. Run 'sgctl login' first")
	}

	return apiclient.New(url).WithToken(tok), nil
}

// GetAnonymousClient returns an API client without credentials, for
// endpoints that accept bearer link tokens instead of a session. The
// server URL comes from the --server flag or the current context.
func GetAnonymousClient() (*apiclient.Client, error) {
	if Flags.ServerURL != "" {
		return apiclient.New(Flags.ServerURL), nil
	}

	store, err := credentials.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential store: %w", err)
	}

	if ctx, err := store.GetCurrentContext(); err == nil && ctx.ServerURL != "" {
		return apiclient.New(ctx.ServerURL), nil
	}

	return nil, fmt.Errorf("no server URL configured. Use --server <url> or run 'sgctl login' first")
}

// TokenExpiry derives the access token expiry time from a login response.
func TokenExpiry(resp *apiclient.LoginResponse) time.Time {
	if resp.ExpiresAt != nil {
		return *resp.ExpiresAt
	}
	if resp.ExpiresIn > 0 {
		return time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}
	return time.Time{}
}

// GetOutputFormat returns the output format string.
func GetOutputFormat() string {
	return Flags.Output
}

// GetOutputFormatParsed returns the parsed output format.
func GetOutputFormatParsed() (output.Format, error) {
	return output.ParseFormat(Flags.Output)
}

// IsColorDisabled returns whether color output is disabled.
func IsColorDisabled() bool {
	return Flags.NoColor
}

// IsVerbose returns whether verbose output is enabled.
func IsVerbose() bool {
	return Flags.Verbose
}

// PrintOutput prints data in the specified format (JSON, YAML, or table).
// For table format, it displays emptyMsg if data is empty, otherwise uses the tableRenderer.
func PrintOutput(w io.Writer, data any, isEmpty bool, emptyMsg string, tableRenderer output.TableRenderer) error {
	format, err := GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		if isEmpty {
			_, _ = fmt.Fprintln(w, emptyMsg)
			return nil
		}
		return output.PrintTable(w, tableRenderer)
	}
}

// PrintSuccess prints a success message if the output format is table.
func PrintSuccess(msg string) {
	format, err := GetOutputFormatParsed()
	if err != nil || format != output.FormatTable {
		return
	}
	printer := output.NewPrinter(os.Stdout, format, !IsColorDisabled())
	printer.Success(msg)
}

// PrintResourceWithSuccess prints a resource in the specified format.
// For table format, it displays a success message. For JSON/YAML, it outputs the resource.
// This is useful for create, update, and similar operations.
func PrintResourceWithSuccess(w io.Writer, data any, successMsg string) error {
	format, err := GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		PrintSuccess(successMsg)
		return nil
	}
}

// PrintResource prints a resource in the specified format.
// For table format, it uses the provided tableRenderer. For JSON/YAML, it outputs the resource.
func PrintResource(w io.Writer, data any, tableRenderer output.TableRenderer) error {
	format, err := GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		return output.PrintTable(w, tableRenderer)
	}
}

// RunDeleteWithConfirmation prompts for confirmation (unless force is true) and runs deleteFn.
func RunDeleteWithConfirmation(resourceType, name string, force bool, deleteFn func() error) error {
	confirmed, err := prompt.ConfirmWithForce(fmt.Sprintf("Delete %s '%s'?", resourceType, name), force)
	if err != nil {
		if prompt.IsAborted(err) {
			fmt.Println("\nAborted.")
			return nil
		}
		return err
	}
	if !confirmed {
		fmt.Println("Aborted.")
		return nil
	}

	if err := deleteFn(); err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("%s '%s' deleted successfully", resourceType, name))
	return nil
}

// BoolToYesNo converts a boolean to "yes" or "no" string.
func BoolToYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// EmptyOr returns the value if not empty, otherwise returns the fallback.
// Useful for table display where empty fields should show "-".
func EmptyOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// FormatTime renders a timestamp for table display, or fallback when nil/zero.
func FormatTime(t *time.Time, fallback string) string {
	if t == nil || t.IsZero() {
		return fallback
	}
	return t.Local().Format("2006-01-02 15:04")
}

// HandleAbort checks if error is an abort (Ctrl+C) and prints a message.
// Returns nil for abort (user cancelled), otherwise returns the original error.
func HandleAbort(err error) error {
	if prompt.IsAborted(err) {
		fmt.Println("\nAborted.")
		return nil
	}
	return err
}
