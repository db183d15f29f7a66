package link

import (
	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/spf13/cobra"
)

var revokeForce bool

var revokeCmd = &cobra.Command{
	Use:   "revoke <file-id> <link-id>",
	Short: "Revoke a bearer link",
	Long: `Revoke a bearer link by ID. The token stops working immediately
for everyone holding it.

Examples:
  # Revoke with confirmation prompt
  sgctl link revoke 4f6b2a 9c1d8e

  # Revoke without confirmation
  sgctl link revoke 4f6b2a 9c1d8e --force`,
	Args: cobra.ExactArgs(2),
	RunE: runRevoke,
}

func init() {
	revokeCmd.Flags().BoolVarP(&revokeForce, "force", "f", false, "Skip confirmation prompt")
}

func runRevoke(cmd *cobra.Command, args []string) error {
	fileID, linkID := args[0], args[1]

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	return cmdutil.RunDeleteWithConfirmation("Link", linkID, revokeForce, func() error {
		return client.RevokeLink(fileID, linkID)
	})
}
