package commands

import (
	"context"

	"github.com/bleeeehhhhhhhhh/spipy/internal/printer"
	"github.com/bleeeehhhhhhhhh/spipy/internal/resolver"
	"github.com/bleeeehhhhhhhhh/spipy/pkg/feed"
	"github.com/spf13/cobra"
)

var reactCmd = &cobra.Command{
	Use:   "react ID KIND",
	Short: "React to a post (heart, star, or sparkle)",
	Long: `Increment a reaction counter on a post.

ID may be a prefix of the full post ID (at least 6 characters), as shown
by 'spipy list'. KIND is one of: heart, star, sparkle.

Examples:
  spipy react m2abc1 heart
  spipy react m2abc1de34f9 sparkle`,
	Args: cobra.ExactArgs(2),
	RunE: runReact,
}

func init() {
	rootCmd.AddCommand(reactCmd)
}

func runReact(cmd *cobra.Command, args []string) error {
	kind := feed.ReactionKind(args[1])
	if err := kind.Validate(); err != nil {
		return printer.Error(
			"unknown reaction",
			err.Error(),
			[]string{"Use one of: heart, star, sparkle"},
		)
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	postID, err := resolver.ResolvePostID(a.store.Posts(), args[0])
	if err != nil {
		return printer.Error("could not resolve post", err.Error(), nil)
	}

	post, err := a.store.React(postID, kind)
	if err != nil {
		return err
	}
	if post == nil {
		// Resolver raced a removal; nothing to do
		printer.Warning("post %s is gone\n", postID)
		return nil
	}

	if a.hasRemote() {
		if err := a.mirror.PushReactions(context.Background(), postID, post.Reactions); err != nil {
			printer.Warning("reacted locally, but the board is unreachable: %v\n", err)
		}
	}

	printer.Toast("Reacted with %s (%s now %d)", kind, kind, post.Reactions[kind])
	return nil
}
