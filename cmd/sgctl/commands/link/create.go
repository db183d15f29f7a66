package link

import (
	"fmt"
	"os"
	"time"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/shareguard/shareguard/internal/cli/output"
	"github.com/spf13/cobra"
)

var (
	createPermission string
	createExpires    string
	createOneTime    bool
)

var createCmd = &cobra.Command{
	Use:   "create <file-id>",
	Short: "Mint a bearer share link for a file",
	Long: `Mint a bearer share link for a file you own. The returned token
grants access to anyone holding it, without an account.

Without --expires the server applies its default link lifetime. With
--one-time the link is consumed on first successful content access.

Examples:
  # Mint a view link with the default lifetime
  sgctl link create 4f6b2a

  # Mint a one-time download link expiring at a fixed time
  sgctl link create 4f6b2a --permission download --one-time --expires 2026-10-01T00:00:00Z`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createPermission, "permission", "view", "Permission level (view|download)")
	createCmd.Flags().StringVar(&createExpires, "expires", "", "Expiry time (RFC3339 format, default: server default)")
	createCmd.Flags().BoolVar(&createOneTime, "one-time", false, "Consume the link on first use")
}

func runCreate(cmd *cobra.Command, args []string) error {
	fileID := args[0]

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	var expiresAt *time.Time
	if createExpires != "" {
		t, err := time.Parse(time.RFC3339, createExpires)
		if err != nil {
			return fmt.Errorf("invalid --expires value (want RFC3339, e.g. 2026-10-01T00:00:00Z): %w", err)
		}
		expiresAt = &t
	}

	lk, err := client.CreateLink(fileID, createPermission, expiresAt, createOneTime)
	if err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, lk)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, lk)
	default:
		cmdutil.PrintSuccess("Link created")
		pairs := [][2]string{
			{"ID", lk.ID},
			{"Token", lk.Token},
			{"Permission", lk.Permission},
			{"One-time", cmdutil.BoolToYesNo(lk.OneTimeUse)},
			{"Expires", lk.ExpiresAt.Local().Format("2006-01-02 15:04")},
		}
		if lk.URL != "" {
			pairs = append(pairs, [2]string{"URL", lk.URL})
		}
		return output.SimpleTable(os.Stdout, pairs)
	}
}
