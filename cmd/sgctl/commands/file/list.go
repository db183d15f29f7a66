package file

import (
	"fmt"
	"os"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/shareguard/shareguard/pkg/apiclient"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List files",
	Long: `List files you own and files shared with you.

Examples:
  # List files as table
  sgctl file list

  # List as JSON
  sgctl file list -o json`,
	RunE: runList,
}

// fileListing renders owned and shared files in a single table.
type fileListing apiclient.FileListing

// Headers implements TableRenderer.
func (fl fileListing) Headers() []string {
	return []string{"ID", "NAME", "SIZE", "TYPE", "ORIGIN"}
}

// Rows implements TableRenderer.
func (fl fileListing) Rows() [][]string {
	rows := make([][]string, 0, len(fl.Owned)+len(fl.Shared))
	for _, f := range fl.Owned {
		rows = append(rows, fileRow(f, "owned"))
	}
	for _, f := range fl.Shared {
		rows = append(rows, fileRow(f, "shared"))
	}
	return rows
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	listing, err := client.ListFiles()
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}

	isEmpty := len(listing.Owned) == 0 && len(listing.Shared) == 0
	return cmdutil.PrintOutput(os.Stdout, listing, isEmpty, "No files found.", fileListing(*listing))
}
