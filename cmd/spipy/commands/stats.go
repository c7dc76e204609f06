package commands

import (
	"io"
	"time"

	"github.com/bleeeehhhhhhhhh/spipy/internal/printer"
	"github.com/bleeeehhhhhhhhh/spipy/internal/project"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show feed totals",
	Long:  `Show the running totals for the local feed: posts, notes, and songs.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	proj := project.New(io.Discard).Project(a.store.Posts(), time.Now())

	printer.Info("Board: %s\n\n", a.cfg.Board)
	printer.Info("  Posts: %d\n", proj.Stats.Posts)
	printer.Info("  Notes: %d\n", proj.Stats.Notes)
	printer.Info("  Songs: %d\n", proj.Stats.Songs)
	return nil
}
