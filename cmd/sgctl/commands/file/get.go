package file

import (
	"fmt"
	"os"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/shareguard/shareguard/internal/cli/output"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show file details",
	Long: `Show metadata for a single file.

Examples:
  # Show file details
  sgctl file get 4f6b2a

  # As JSON
  sgctl file get 4f6b2a -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	f, err := client.GetFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch file: %w", err)
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, f)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, f)
	default:
		return output.SimpleTable(os.Stdout, [][2]string{
			{"ID", f.ID},
			{"Name", f.Name},
			{"Size", formatSize(f.Size)},
			{"Type", f.ContentType},
			{"Uploaded", f.CreatedAt.Local().Format("2006-01-02 15:04")},
		})
	}
}
