package link

import (
	"fmt"
	"os"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/spf13/cobra"
)

var (
	getOutputFile string
	getView       bool
)

var getCmd = &cobra.Command{
	Use:   "get <token>",
	Short: "Redeem a bearer link",
	Long: `Redeem a bearer link and write the file's content to disk or
stdout. Works without an account. A one-time link is consumed by this
command; peek first if you only want to inspect it.

The default action is "download". With --view the link is redeemed with
the weaker "view" action, which also works on view-only links.

Examples:
  # Redeem to a file named after the link target
  sgctl link get dGhpcy1pcy1hLXRva2Vu --server http://localhost:8080

  # Redeem to stdout
  sgctl link get dGhpcy1pcy1hLXRva2Vu -O -`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVarP(&getOutputFile, "output-file", "O", "", "Destination path (default: the file's name, \"-\" for stdout)")
	getCmd.Flags().BoolVar(&getView, "view", false, "Redeem with the view action instead of download")
}

func runGet(cmd *cobra.Command, args []string) error {
	token := args[0]

	client, err := cmdutil.GetAnonymousClient()
	if err != nil {
		return err
	}

	action := "download"
	if getView {
		action = "view"
	}

	if getOutputFile == "-" {
		return client.RedeemLink(token, action, os.Stdout)
	}

	dest := getOutputFile
	if dest == "" {
		preview, err := client.PeekLink(token)
		if err != nil {
			return fmt.Errorf("failed to look up link: %w", err)
		}
		dest = preview.FileName
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}

	if err := client.RedeemLink(token, action, f); err != nil {
		_ = f.Close()
		_ = os.Remove(dest)
		return fmt.Errorf("failed to redeem link: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	cmdutil.PrintSuccess(fmt.Sprintf("Downloaded to %s", dest))
	return nil
}
