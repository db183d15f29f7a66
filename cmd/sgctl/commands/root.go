// Package commands implements the CLI commands for the sgctl client.
package commands

import (
	"os"

	"github.com/shareguard/shareguard/cmd/sgctl/cmdutil"
	filecmd "github.com/shareguard/shareguard/cmd/sgctl/commands/file"
	linkcmd "github.com/shareguard/shareguard/cmd/sgctl/commands/link"
	mfacmd "github.com/shareguard/shareguard/cmd/sgctl/commands/mfa"
	sharecmd "github.com/shareguard/shareguard/cmd/sgctl/commands/share"
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sgctl",
	Short: "ShareGuard Control - Remote file sharing client",
	Long: `sgctl is the command-line client for ShareGuard servers.

Use this tool to manage your account, upload and download files,
grant access to other accounts, and publish bearer share links
through the ShareGuard REST API.

Use "sgctl [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Sync flags to cmdutil.Flags for subcommands
		cmdutil.Flags.ServerURL, _ = cmd.Flags().GetString("server")
		cmdutil.Flags.Token, _ = cmd.Flags().GetString("token")
		cmdutil.Flags.Output, _ = cmd.Flags().GetString("output")
		cmdutil.Flags.NoColor, _ = cmd.Flags().GetBool("no-color")
		cmdutil.Flags.Verbose, _ = cmd.Flags().GetBool("verbose")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().String("server", "", "Server URL (overrides stored credential)")
	rootCmd.PersistentFlags().String("token", "", "Bearer token (overrides stored credential)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format (table|json|yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(passwdCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(mfacmd.Cmd)
	rootCmd.AddCommand(filecmd.Cmd)
	rootCmd.AddCommand(sharecmd.Cmd)
	rootCmd.AddCommand(linkcmd.Cmd)
}

// PrintErr prints an error message to stderr.
func PrintErr(format string, args ...any) {
	rootCmd.PrintErrf(format+"\n", args...)
}

// Exit prints an error and exits with code 1.
func Exit(format string, args ...any) {
	PrintErr(format, args...)
	os.Exit(1)
}
