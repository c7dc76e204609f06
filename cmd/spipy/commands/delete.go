package commands

import (
	"context"

	"github.com/bleeeehhhhhhhhh/spipy/internal/printer"
	"github.com/bleeeehhhhhhhhh/spipy/internal/resolver"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a post from the feed",
	Long: `Delete a post from the feed and, when a board is configured, from
the board as well.

ID may be a prefix of the full post ID (at least 6 characters), as shown
by 'spipy list'.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	postID, err := resolver.ResolvePostID(a.store.Posts(), args[0])
	if err != nil {
		return printer.Error("could not resolve post", err.Error(), nil)
	}

	removed, err := a.store.Remove(postID)
	if err != nil {
		return err
	}
	if !removed {
		// Resolver raced a removal; nothing to do
		printer.Warning("post %s is already gone\n", postID)
		return nil
	}

	if a.hasRemote() {
		if err := a.mirror.PushRemove(context.Background(), postID); err != nil {
			printer.Warning("deleted locally, but the board is unreachable: %v\n", err)
		}
	}

	printer.Toast("Post deleted")
	return nil
}
