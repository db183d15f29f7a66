// Package link implements the sgctl link command tree for bearer share
// links: minting, listing, revoking, and anonymous peek/redeem.
package link

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for link operations.
var Cmd = &cobra.Command{
	Use:   "link",
	Short: "Bearer share link management",
	Long: `Create, list, and revoke bearer share links on files you own,
and inspect or redeem links anyone shared with you.

Anyone holding a link's token can use it without an account, up to the
link's permission level. One-time links are consumed on first redemption.

Examples:
  # Mint a one-time download link
  sgctl link create 4f6b2a --permission download --one-time

  # See what a link points at without consuming it
  sgctl link peek dGhpcy1pcy1hLXRva2Vu

  # Redeem a link to a local file
  sgctl link get dGhpcy1pcy1hLXRva2Vu -O report.pdf`,
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(revokeCmd)
	Cmd.AddCommand(peekCmd)
	Cmd.AddCommand(getCmd)
}
