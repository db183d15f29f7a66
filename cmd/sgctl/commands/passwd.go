package commands

import (
	"fmt"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/shareguard/shareguard/internal/cli/prompt"
	"github.com/spf13/cobra"
)

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the account password",
	Long: `Change the password of the authenticated account.

You are prompted for the current password and a new password with
confirmation.

Examples:
  # Change your password
  sgctl passwd`,
	RunE: runPasswd,
}

func runPasswd(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	current, err := prompt.Password("Current password")
	if err != nil {
		return cmdutil.HandleAbort(err)
	}

	newPassword, err := prompt.PasswordWithConfirmation("New password", "Confirm new password", prompt.MinPasswordLength)
	if err != nil {
		return cmdutil.HandleAbort(err)
	}

	if err := client.ChangePassword(current, newPassword); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	cmdutil.PrintSuccess("Password changed successfully")
	return nil
}
