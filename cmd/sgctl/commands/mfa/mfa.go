// Package mfa implements multi-factor authentication commands for sgctl.
package mfa

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for MFA management.
var Cmd = &cobra.Command{
	Use:   "mfa",
	Short: "Multi-factor authentication management",
	Long: `Manage TOTP-based multi-factor authentication for your account.

Enrollment is a two-step process: 'enable' generates a secret to add to
your authenticator app, and 'confirm' commits the enrollment by proving
the app produces valid codes. Until confirmed, logins are unaffected.

Examples:
  # Start enrollment and print the provisioning secret
  sgctl mfa enable

  # Commit enrollment with a code from the authenticator app
  sgctl mfa confirm --code 123456

  # Turn off MFA
  sgctl mfa disable`,
}

func init() {
	Cmd.AddCommand(enableCmd)
	Cmd.AddCommand(confirmCmd)
	Cmd.AddCommand(disableCmd)
}
