package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bleeeehhhhhhhhh/spipy/internal/printer"
	"github.com/bleeeehhhhhhhhh/spipy/pkg/feed"
	"github.com/spf13/cobra"
)

var (
	postCaption string
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Create a new post on the feed",
	Long: `Create a new post on the feed.

Posts are saved to durable local storage immediately and mirrored to the
remote board when one is configured. A board failure never loses the post -
the local feed stays authoritative.`,
}

var postNoteCmd = &cobra.Command{
	Use:   "note TEXT",
	Short: "Post a text note",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostNote,
}

var postSongCmd = &cobra.Command{
	Use:   "song URL",
	Short: "Post a Spotify track, album, playlist, episode, or show",
	Long: `Post a Spotify embed from a pasted link.

Accepted link forms:
  https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC
  https://open.spotify.com/intl-de/album/2noRn2Aes5aoNVsU6iWThc
  spotify:playlist:37i9dQZF1DXcBWIGoYBM5M`,
	Args: cobra.ExactArgs(1),
	RunE: runPostSong,
}

var postImageCmd = &cobra.Command{
	Use:   "image FILE",
	Short: "Post a photo (JPG, PNG, GIF - max 5MB)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostImage,
}

func init() {
	postSongCmd.Flags().StringVarP(&postCaption, "caption", "c", "", "Optional caption")
	postImageCmd.Flags().StringVarP(&postCaption, "caption", "c", "", "Optional caption")

	postCmd.AddCommand(postNoteCmd)
	postCmd.AddCommand(postSongCmd)
	postCmd.AddCommand(postImageCmd)
	rootCmd.AddCommand(postCmd)
}

func runPostNote(cmd *cobra.Command, args []string) error {
	post, err := feed.NewNote(args[0])
	if err != nil {
		return rejectPost(err)
	}
	return submitPost(post, "Posted successfully!")
}

func runPostSong(cmd *cobra.Command, args []string) error {
	post, err := feed.NewSong(args[0], postCaption)
	if err != nil {
		return rejectPost(err)
	}
	return submitPost(post, "Song posted!")
}

func runPostImage(cmd *cobra.Command, args []string) error {
	payload, err := stageImage(args[0])
	if err != nil {
		return err
	}

	post, err := feed.NewImage(payload, postCaption)
	if err != nil {
		return rejectPost(err)
	}
	return submitPost(post, "Photo posted!")
}

// rejectPost turns a factory validation failure into the user-facing
// rejection message; nothing was mutated.
func rejectPost(err error) error {
	if feed.IsValidation(err) {
		return printer.Error(
			"could not create post",
			err.Error(),
			nil,
		)
	}
	return err
}

// submitPost inserts the post locally and mirrors it to the board.
func submitPost(post *feed.Post, toast string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.Insert(post); err != nil {
		return err
	}

	if a.hasRemote() {
		if err := a.mirror.PushInsert(context.Background(), post); err != nil {
			printer.Warning("saved locally, but the board is unreachable: %v\n", err)
		}
	}

	printer.Toast("%s", toast)
	printer.Info("  id: %s\n", post.ID)
	return nil
}

// imageMIMETypes maps accepted image extensions to their MIME type.
var imageMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// stageImage reads and encodes an image file into the staged payload form
// (a data URI), enforcing the size ceiling before the factory runs.
func stageImage(path string) (string, error) {
	mimeType, ok := imageMIMETypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", printer.Error(
			"not an image file",
			fmt.Sprintf("%s does not look like an image.", filepath.Base(path)),
			[]string{"Use a JPG, PNG, or GIF file"},
		)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if info.Size() > feed.MaxImageBytes {
		return "", printer.Error(
			"image too large",
			fmt.Sprintf("%s is %.1f MB; the limit is 5 MB.", filepath.Base(path), float64(info.Size())/(1024*1024)),
			nil,
		)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}
