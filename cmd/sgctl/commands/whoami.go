package commands

import (
	"fmt"
	"os"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/shareguard/shareguard/internal/cli/output"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated account",
	Long: `Display details of the account associated with the current credentials.

Examples:
  # Show account details
  sgctl whoami

  # As JSON
  sgctl whoami -o json`,
	RunE: runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	account, err := client.Me()
	if err != nil {
		return fmt.Errorf("failed to fetch account: %w", err)
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, account)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, account)
	default:
		return output.SimpleTable(os.Stdout, [][2]string{
			{"Username", account.Username},
			{"Email", cmdutil.EmptyOr(account.Email, "-")},
			{"Role", account.Role},
			{"MFA enabled", cmdutil.BoolToYesNo(account.MFAEnabled)},
			{"Last login", cmdutil.FormatTime(account.LastLogin, "never")},
		})
	}
}
