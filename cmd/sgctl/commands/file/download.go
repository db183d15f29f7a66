package file

import (
	"fmt"
	"os"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/spf13/cobra"
)

var downloadOutput string

var downloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Download file content",
	Long: `Download the content of a file. Requires download permission when the
file was shared with you.

With no --output flag, the server-side file name is used. Pass "-" to
write to stdout.

Examples:
  # Download to the original name
  sgctl file download 4f6b2a

  # Download to a specific path
  sgctl file download 4f6b2a -O /tmp/report.pdf

  # Stream to stdout
  sgctl file download 4f6b2a -O -`,
	Args: cobra.ExactArgs(1),
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadOutput, "output-file", "O", "", "Destination path (\"-\" for stdout)")
}

func runDownload(cmd *cobra.Command, args []string) error {
	id := args[0]

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	if downloadOutput == "-" {
		return client.DownloadFile(id, os.Stdout)
	}

	dest := downloadOutput
	if dest == "" {
		f, err := client.GetFile(id)
		if err != nil {
			return fmt.Errorf("failed to fetch file: %w", err)
		}
		dest = f.Name
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer func() { _ = out.Close() }()

	if err := client.DownloadFile(id, out); err != nil {
		_ = os.Remove(dest)
		return fmt.Errorf("failed to download file: %w", err)
	}

	cmdutil.PrintSuccess(fmt.Sprintf("Downloaded to %s", dest))
	return nil
}
