package link

import (
	"fmt"
	"os"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	"github.com/shareguard/shareguard/pkg/apiclient"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <file-id>",
	Short: "List bearer links on a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLinkList,
}

type linkList []apiclient.Link

func (l linkList) Headers() []string {
	return []string{"ID", "TOKEN", "PERMISSION", "ONE-TIME", "CONSUMED", "EXPIRES"}
}

func (l linkList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, lk := range l {
		rows = append(rows, []string{
			lk.ID,
			lk.Token,
			lk.Permission,
			cmdutil.BoolToYesNo(lk.OneTimeUse),
			cmdutil.BoolToYesNo(lk.Consumed),
			lk.ExpiresAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return rows
}

func runLinkList(cmd *cobra.Command, args []string) error {
	fileID := args[0]

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	links, err := client.ListLinks(fileID)
	if err != nil {
		return fmt.Errorf("failed to list links: %w", err)
	}

	return cmdutil.PrintOutput(os.Stdout, links, len(links) == 0,
		fmt.Sprintf("No links on file %s.", fileID), linkList(links))
}
