package feed

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bleeeehhhhhhhhh/spipy/internal/spotify"
)

// MaxImageBytes is the size ceiling for image files (5 MiB). The staging
// collaborator enforces it before an image post is assembled, so an oversized
// payload never reaches the store or the remote board.
const MaxImageBytes = 5 * 1024 * 1024

// ErrValidation marks a user-facing validation failure. Errors wrapping it
// identify which requirement was unmet; none of them mutate the collection.
var ErrValidation = errors.New("validation failed")

// IsValidation returns true if the error is a post validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// NewNote assembles a note post from free text.
// The text must be non-empty after trimming; the trimmed text becomes the content.
func NewNote(text string) (*Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: write something first", ErrValidation)
	}
	return newPost(PostTypeNote, text, ""), nil
}

// NewSong assembles a song post from a pasted Spotify link.
// The link must normalize to an embeddable URI; the caption is optional.
func NewSong(rawURL, caption string) (*Post, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("%w: paste a Spotify link first", ErrValidation)
	}

	embedURL, ok := spotify.NormalizeLink(rawURL)
	if !ok {
		return nil, fmt.Errorf("%w: invalid Spotify link, use a track, album, or playlist URL", ErrValidation)
	}

	return newPost(PostTypeSong, embedURL, strings.TrimSpace(caption)), nil
}

// NewImage assembles an image post from a previously staged payload reference
// (typically a data URI produced by the file-read collaborator, which owns the
// MaxImageBytes ceiling). The payload must be present; the caption is optional.
func NewImage(payload, caption string) (*Post, error) {
	if payload == "" {
		return nil, fmt.Errorf("%w: upload a photo first", ErrValidation)
	}
	return newPost(PostTypeImage, payload, strings.TrimSpace(caption)), nil
}

// newPost fills in the generated fields shared by every post type.
func newPost(postType PostType, content, caption string) *Post {
	return &Post{
		ID:        NewPostID(),
		Type:      postType,
		Content:   content,
		Caption:   caption,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Reactions: NewReactions(),
	}
}
