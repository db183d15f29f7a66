package share

import (
	"fmt"
	"os"
	"time"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/spf13/cobra"
)

var (
	grantPermission string
	grantExpires    string
)

var grantCmd = &cobra.Command{
	Use:   "grant <file-id> <username>",
	Short: "Grant an account access to a file",
	Long: `Grant another account access to a file you own.

Permission is "view" (metadata and preview only) or "download" (content
access). Granting again to the same account replaces the permission and
expiry. A grant without --expires never expires.

Examples:
  # Grant view access
  sgctl share grant 4f6b2a bob --permission view

  # Grant download access with expiry
  sgctl share grant 4f6b2a bob --permission download --expires 2026-10-01T00:00:00Z`,
	Args: cobra.ExactArgs(2),
	RunE: runGrant,
}

func init() {
	grantCmd.Flags().StringVar(&grantPermission, "permission", "view", "Permission level (view|download)")
	grantCmd.Flags().StringVar(&grantExpires, "expires", "", "Expiry time (RFC3339 format, default: never)")
}

func runGrant(cmd *cobra.Command, args []string) error {
	fileID, username := args[0], args[1]

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	var expiresAt *time.Time
	if grantExpires != "" {
		t, err := time.Parse(time.RFC3339, grantExpires)
		if err != nil {
			return fmt.Errorf("invalid --expires value (want RFC3339, e.g. 2026-10-01T00:00:00Z): %w", err)
		}
		expiresAt = &t
	}

	grant, err := client.ShareFile(fileID, username, grantPermission, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to grant access: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, grant,
		fmt.Sprintf("Granted %s access on file %s to '%s'", grant.Permission, fileID, username))
}
