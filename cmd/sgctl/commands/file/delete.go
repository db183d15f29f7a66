package file

import (
	"fmt"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a file",
	Long: `Delete a file you own from the ShareGuard server.

Deleting a file also removes every grant and share link attached to it.
This action is irreversible. You will be prompted for confirmation
unless --force is specified.

Examples:
  # Delete file with confirmation
  sgctl file delete 4f6b2a

  # Delete file without confirmation
  sgctl file delete 4f6b2a --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	return cmdutil.RunDeleteWithConfirmation("File", id, deleteForce, func() error {
		if err := client.DeleteFile(id); err != nil {
			return fmt.Errorf("failed to delete file: %w", err)
		}
		return nil
	})
}
