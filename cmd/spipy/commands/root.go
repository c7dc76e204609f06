package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spipy",
	Short: "Spipy - A tiny shared feed for notes, songs, and photos",
	Long: `Spipy is a feed client for short posts: text notes, Spotify embeds,
and images. Posts live in a local durable store and are mirrored to a
shared Redis board, so several clients can follow the same feed with
real-time change notifications.

The local collection is always authoritative for your session; the board
is an eventually-consistent mirror that keeps working offline.`,
	Version: version,
	// Prevent silent success when unknown flags are passed to root command
	// e.g., "spipy --jsonl" instead of "spipy list --jsonl"
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is specified, show help
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
