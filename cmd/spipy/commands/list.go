package commands

import (
	"context"
	"os"
	"time"

	"github.com/bleeeehhhhhhhhh/spipy/internal/printer"
	"github.com/bleeeehhhhhhhhh/spipy/internal/project"
	"github.com/spf13/cobra"
)

var (
	listJSONL  bool
	listRemote bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the feed, newest first",
	Long: `Show the feed, newest first.

By default the local collection is shown. With --remote the feed is first
reloaded from the board, so you see what other clients have posted.

Examples:
  # Show the local feed
  spipy list

  # Pull the board state first
  spipy list --remote

  # Machine-readable output for jq
  spipy list --jsonl`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSONL, "jsonl", false, "Output line-delimited JSON instead of a table")
	listCmd.Flags().BoolVarP(&listRemote, "remote", "r", false, "Reload from the board before listing")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if listRemote {
		if !a.hasRemote() {
			return printer.Error(
				"no remote board configured",
				"--remote needs a remote section in .spipy.yml.",
				[]string{"Add one, or drop the flag to list the local feed"},
			)
		}
		if err := a.mirror.Reload(context.Background()); err != nil {
			printer.Warning("board unreachable, showing local feed: %v\n", err)
		}
	}

	posts := a.store.Posts()

	if listJSONL {
		return project.FormatJSONL(os.Stdout, posts)
	}

	proj := project.New(os.Stderr).Project(posts, time.Now())
	project.FormatTable(os.Stdout, proj, a.cfg.Board)
	return nil
}
