package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNote(t *testing.T) {
	t.Run("creates note from trimmed text", func(t *testing.T) {
		post, err := NewNote("  hello world  ")
		require.NoError(t, err)

		assert.Equal(t, PostTypeNote, post.Type)
		assert.Equal(t, "hello world", post.Content)
		assert.Empty(t, post.Caption)
		assert.NotEmpty(t, post.ID)
		for _, kind := range ReactionKinds {
			assert.Equal(t, 0, post.Reactions[kind])
		}

		_, err = time.Parse(time.RFC3339, post.Timestamp)
		assert.NoError(t, err)
		assert.NoError(t, post.Validate())
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, err := NewNote("")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("rejects whitespace-only text", func(t *testing.T) {
		_, err := NewNote("   \t\n  ")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestNewSong(t *testing.T) {
	t.Run("normalizes track URL", func(t *testing.T) {
		post, err := NewSong("https://open.spotify.com/track/ABC123", "  banger  ")
		require.NoError(t, err)

		assert.Equal(t, PostTypeSong, post.Type)
		assert.Equal(t, "https://open.spotify.com/embed/track/ABC123?utm_source=generator&theme=0", post.Content)
		assert.Equal(t, "banger", post.Caption)
		assert.NoError(t, post.Validate())
	})

	t.Run("caption is optional", func(t *testing.T) {
		post, err := NewSong("spotify:album:XYZ789", "")
		require.NoError(t, err)
		assert.Empty(t, post.Caption)
	})

	t.Run("rejects empty URL", func(t *testing.T) {
		_, err := NewSong("   ", "caption")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("rejects unrelated URL", func(t *testing.T) {
		_, err := NewSong("https://example.com/foo", "")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "invalid Spotify link")
	})
}

func TestNewImage(t *testing.T) {
	t.Run("creates image from staged payload", func(t *testing.T) {
		post, err := NewImage("data:image/png;base64,aGk=", " sunset ")
		require.NoError(t, err)

		assert.Equal(t, PostTypeImage, post.Type)
		assert.Equal(t, "data:image/png;base64,aGk=", post.Content)
		assert.Equal(t, "sunset", post.Caption)
		assert.NoError(t, post.Validate())
	})

	t.Run("rejects missing payload", func(t *testing.T) {
		_, err := NewImage("", "")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestNewPostID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewPostID()
		assert.False(t, seen[id], "duplicate ID generated: %s", id)
		seen[id] = true
	}
}
