package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/spf13/cobra"
)

var uploadName string

var uploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a file",
	Long: `Upload a local file to the ShareGuard server.

The file is stored under its base name unless --name is given.

Examples:
  # Upload a file
  sgctl file upload ./report.pdf

  # Upload under a different name
  sgctl file upload ./report-v3-final.pdf --name report.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadName, "name", "", "Name to store the file under (default: base name of path)")
}

func runUpload(cmd *cobra.Command, args []string) error {
	path := args[0]

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	name := uploadName
	if name == "" {
		name = filepath.Base(path)
	}

	uploaded, err := client.UploadFile(name, f)
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, uploaded,
		fmt.Sprintf("File '%s' uploaded successfully (id: %s, %s)", uploaded.Name, uploaded.ID, formatSize(uploaded.Size)))
}
