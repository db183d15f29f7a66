// Package share implements per-account grant commands for sgctl.
package share

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for share grant management.
var Cmd = &cobra.Command{
	Use:   "share",
	Short: "Per-account share management",
	Long: `Manage per-account grants on files you own.

A grant gives another account view or download access to one of your
files, optionally until an expiry time. Re-granting to the same account
replaces the previous permission and expiry.

Examples:
  # Grant view access
  sgctl share grant <file-id> bob --permission view

  # Grant download access until a deadline
  sgctl share grant <file-id> bob --permission download --expires 2026-10-01T00:00:00Z

  # List grants and links on a file
  sgctl share list <file-id>

  # Revoke a grant
  sgctl share revoke <file-id> bob`,
}

func init() {
	Cmd.AddCommand(grantCmd)
	Cmd.AddCommand(revokeCmd)
	Cmd.AddCommand(listCmd)
}
