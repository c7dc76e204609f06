package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bleeeehhhhhhhhh/spipy/internal/printer"
	"github.com/bleeeehhhhhhhhh/spipy/internal/project"
	"github.com/bleeeehhhhhhhhh/spipy/pkg/feed"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the board and reprint the feed on every change",
	Long: `Subscribe to the board's change notifications and reload the feed
whenever any client posts, reacts, or deletes. Runs until interrupted.

Requires a remote section in .spipy.yml.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.hasRemote() {
		return printer.Error(
			"no remote board configured",
			"watch follows the board's change notifications, which needs a remote section in .spipy.yml.",
			[]string{"Add one:\n  remote:\n    redis_addr: localhost:6379"},
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.client.Ping(ctx); err != nil {
		return printer.Error(
			"board unreachable",
			err.Error(),
			[]string{"Check remote.redis_addr in .spipy.yml"},
		)
	}

	// Start from the board's current state
	if err := a.mirror.Reload(ctx); err != nil {
		return err
	}
	printFeed(a)

	printer.Info("\nWatching board '%s' (Ctrl+C to stop)...\n\n", a.cfg.Board)

	err = a.mirror.Watch(ctx, func(event *feed.PostEvent) {
		printer.Info("[%s] %s %s\n", time.Now().Format("15:04:05"), event.Action, event.PostID)
		printFeed(a)
	})
	if errors.Is(err, context.Canceled) {
		printer.Info("\nStopped watching.\n")
		return nil
	}
	return err
}

// printFeed renders the current local collection as a table.
func printFeed(a *app) {
	proj := project.New(os.Stderr).Project(a.store.Posts(), time.Now())
	project.FormatTable(os.Stdout, proj, a.cfg.Board)
}
