// Package file implements file management commands for sgctl.
package file

import (
	"fmt"

	"github.com/shareguard/shareguard/pkg/apiclient"
	"github.com/spf13/cobra"
)

// Cmd is the parent command for file management.
var Cmd = &cobra.Command{
	Use:   "file",
	Short: "File management",
	Long: `Manage files on the ShareGuard server.

File commands let you upload, list, inspect, download, and delete files.
Files you own and files shared with you are both listed; sharing is
managed with 'sgctl share' and 'sgctl link'.

Examples:
  # Upload a file
  sgctl file upload report.pdf

  # List files
  sgctl file list

  # Download a file
  sgctl file download <id> -O report.pdf

  # Delete a file
  sgctl file delete <id>`,
}

func init() {
	Cmd.AddCommand(uploadCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(downloadCmd)
	Cmd.AddCommand(deleteCmd)
}

// fileRow renders a single file as a table row.
func fileRow(f apiclient.File, origin string) []string {
	return []string{f.ID, f.Name, formatSize(f.Size), f.ContentType, origin}
}

// formatSize renders a byte count in a human readable form.
func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
