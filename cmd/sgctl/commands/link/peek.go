package link

import (
	"fmt"
	"os"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/shareguard/shareguard/internal/cli/output"
	"github.com/spf13/cobra"
)

var peekCmd = &cobra.Command{
	Use:   "peek <token>",
	Short: "Show what a link points at without consuming it",
	Long: `Look up a bearer link's target file without consuming it. Works
without an account and never burns a one-time link.

Examples:
  # Inspect a link before redeeming it
  sgctl link peek dGhpcy1pcy1hLXRva2Vu --server http://localhost:8080`,
	Args: cobra.ExactArgs(1),
	RunE: runPeek,
}

func runPeek(cmd *cobra.Command, args []string) error {
	token := args[0]

	client, err := cmdutil.GetAnonymousClient()
	if err != nil {
		return err
	}

	preview, err := client.PeekLink(token)
	if err != nil {
		return fmt.Errorf("failed to look up link: %w", err)
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, preview)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, preview)
	default:
		return output.SimpleTable(os.Stdout, [][2]string{
			{"File", preview.FileName},
			{"Size", fmt.Sprintf("%d", preview.Size)},
			{"Type", preview.ContentType},
			{"Permission", preview.Permission},
			{"One-time", cmdutil.BoolToYesNo(preview.OneTimeUse)},
			{"Expires", preview.ExpiresAt.Local().Format("2006-01-02 15:04")},
		})
	}
}
