package commands

import (
	"fmt"
	"os"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/shareguard/shareguard/pkg/apiclient"
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List accounts on the server",
	Long: `List the accounts known to the server, for picking share targets.

Examples:
  # List accounts
  sgctl users

  # As JSON
  sgctl users -o json`,
	RunE: runUsers,
}

// UserList is a list of accounts for table rendering.
type UserList []apiclient.UserRef

// Headers implements TableRenderer.
func (ul UserList) Headers() []string {
	return []string{"ID", "USERNAME"}
}

// Rows implements TableRenderer.
func (ul UserList) Rows() [][]string {
	rows := make([][]string, 0, len(ul))
	for _, u := range ul {
		rows = append(rows, []string{u.ID, u.Username})
	}
	return rows
}

func runUsers(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	users, err := client.ListUsers()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	return cmdutil.PrintOutput(os.Stdout, users, len(users) == 0, "No users found.", UserList(users))
}
