package mfa

import (
	"fmt"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/shareguard/shareguard/internal/cli/prompt"
	"github.com/spf13/cobra"
)

var confirmCode string

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Commit a pending MFA enrollment",
	Long: `Commit a pending TOTP enrollment with a code from your authenticator app.

After confirmation, every login requires a TOTP code in addition to the
password.

Examples:
  # Confirm with a code
  sgctl mfa confirm --code 123456

  # Prompt for the code
  sgctl mfa confirm`,
	RunE: runConfirm,
}

func init() {
	confirmCmd.Flags().StringVar(&confirmCode, "code", "", "TOTP code from the authenticator app")
}

func runConfirm(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	code := confirmCode
	if code == "" {
		code, err = prompt.InputRequired("TOTP code")
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
	}

	if err := client.ConfirmMFA(code); err != nil {
		return fmt.Errorf("failed to confirm MFA enrollment: %w", err)
	}

	cmdutil.PrintSuccess("MFA enabled. Future logins require a TOTP code.")
	return nil
}
