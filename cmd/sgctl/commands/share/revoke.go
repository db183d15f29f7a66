package share

import (
	"fmt"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/spf13/cobra"
)

var revokeForce bool

var revokeCmd = &cobra.Command{
	Use:   "revoke <file-id> <username>",
	Short: "Revoke an account's access to a file",
	Long: `Revoke a previously granted share. The account loses access
immediately; their in-flight downloads are not interrupted.

Examples:
  # Revoke with confirmation prompt
  sgctl share revoke 4f6b2a bob

  # Revoke without confirmation
  sgctl share revoke 4f6b2a bob --force`,
	Args: cobra.ExactArgs(2),
	RunE: runRevoke,
}

func init() {
	revokeCmd.Flags().BoolVarP(&revokeForce, "force", "f", false, "Skip confirmation prompt")
}

func runRevoke(cmd *cobra.Command, args []string) error {
	fileID, username := args[0], args[1]

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	return cmdutil.RunDeleteWithConfirmation("Share", fmt.Sprintf("%s -> %s", fileID, username), revokeForce, func() error {
		return client.UnshareFile(fileID, username)
	})
}
