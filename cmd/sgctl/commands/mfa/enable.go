package mfa

import (
	"fmt"
	"os"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/shareguard/shareguard/internal/cli/output"
	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Start MFA enrollment",
	Long: `Start TOTP enrollment for your account.

This prints a secret and a provisioning URL to add to an authenticator
app (Google Authenticator, Aegis, 1Password, and similar). Enrollment
stays pending until 'sgctl mfa confirm' succeeds with a valid code.

Examples:
  # Start enrollment
  sgctl mfa enable`,
	RunE: runEnable,
}

func runEnable(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	enrollment, err := client.EnableMFA()
	if err != nil {
		return fmt.Errorf("failed to start MFA enrollment: %w", err)
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, enrollment)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, enrollment)
	default:
		fmt.Println("MFA enrollment started. Add this secret to your authenticator app:")
		fmt.Println()
		if err := output.SimpleTable(os.Stdout, [][2]string{
			{"Secret", enrollment.Secret},
			{"URL", enrollment.URL},
		}); err != nil {
			return err
		}
		fmt.Println()
		fmt.Println("Then commit the enrollment with a code from the app:")
		fmt.Println("  sgctl mfa confirm --code <6-digit code>")
		return nil
	}
}
