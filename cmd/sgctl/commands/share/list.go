package share

import (
	"fmt"
	"os"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/shareguard/shareguard/pkg/apiclient"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <file-id>",
	Short: "List grants and links on a file",
	Long: `List every share grant and bearer link on a file you own.

Examples:
  # List shares in a table
  sgctl share list 4f6b2a

  # List shares as JSON
  sgctl share list 4f6b2a --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

// shareListing renders grants and links in a single table, distinguishing
// them by kind.
type shareListing apiclient.ShareListing

func (l shareListing) Headers() []string {
	return []string{"KIND", "GRANTEE", "PERMISSION", "EXPIRES", "CREATED"}
}

func (l shareListing) Rows() [][]string {
	rows := make([][]string, 0, len(l.Grants)+len(l.Links))
	for _, g := range l.Grants {
		rows = append(rows, []string{
			"grant",
			g.AccountID,
			g.Permission,
			cmdutil.FormatTime(g.ExpiresAt, "never"),
			g.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	for _, lk := range l.Links {
		expires := lk.ExpiresAt
		rows = append(rows, []string{
			"link",
			lk.ID,
			lk.Permission,
			cmdutil.FormatTime(&expires, "never"),
			lk.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return rows
}

func runList(cmd *cobra.Command, args []string) error {
	fileID := args[0]

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	listing, err := client.ListShares(fileID)
	if err != nil {
		return fmt.Errorf("failed to list shares: %w", err)
	}

	isEmpty := len(listing.Grants) == 0 && len(listing.Links) == 0
	return cmdutil.PrintOutput(os.Stdout, listing, isEmpty,
		fmt.Sprintf("No shares on file %s.", fileID), shareListing(*listing))
}
