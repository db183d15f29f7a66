package mfa

import (
	"fmt"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/shareguard/shareguard/internal/cli/prompt"
	"github.com/spf13/cobra"
)

var disableForce bool

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn off MFA",
	Long: `Turn off multi-factor authentication for your account.

After disabling, logins require only the password. You will be prompted
for confirmation unless --force is specified.

Examples:
  # Disable MFA with confirmation
  sgctl mfa disable

  # Disable without confirmation
  sgctl mfa disable --force`,
	RunE: runDisable,
}

func init() {
	disableCmd.Flags().BoolVarP(&disableForce, "force", "f", false, "Skip confirmation prompt")
}

func runDisable(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	confirmed, err := prompt.ConfirmWithForce("Disable multi-factor authentication?", disableForce)
	if err != nil {
		return cmdutil.HandleAbort(err)
	}
	if !confirmed {
		fmt.Println("Aborted.")
		return nil
	}

	if err := client.DisableMFA(); err != nil {
		return fmt.Errorf("failed to disable MFA: %w", err)
	}

	cmdutil.PrintSuccess("MFA disabled")
	return nil
}
