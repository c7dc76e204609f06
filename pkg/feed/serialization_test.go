package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostHashRoundTrip(t *testing.T) {
	post := &Post{
		ID:        "m2abc1de34f9",
		Type:      PostTypeSong,
		Content:   "https://open.spotify.com/embed/track/ABC?utm_source=generator&theme=0",
		Caption:   "on repeat",
		Timestamp: "2026-08-30T10:00:00Z",
		Reactions: Reactions{ReactionHeart: 3, ReactionStar: 0, ReactionSparkle: 1},
	}

	hash, err := PostToHash(post)
	require.NoError(t, err)

	// Round-trip through the string map shape Redis hands back
	stringHash := make(map[string]string, len(hash))
	for k, v := range hash {
		stringHash[k] = v.(string)
	}

	restored, err := HashToPost(stringHash)
	require.NoError(t, err)
	assert.Equal(t, post, restored)
}

func TestHashToPost(t *testing.T) {
	t.Run("missing reactions field defaults to all zero", func(t *testing.T) {
		post, err := HashToPost(map[string]string{
			"id":        "x1",
			"type":      "note",
			"content":   "hi",
			"timestamp": "2026-08-30T10:00:00Z",
		})
		require.NoError(t, err)
		assert.Equal(t, NewReactions(), post.Reactions)
	})

	t.Run("fills in counters a stored record is missing", func(t *testing.T) {
		post, err := HashToPost(map[string]string{
			"id":        "x1",
			"type":      "note",
			"content":   "hi",
			"timestamp": "2026-08-30T10:00:00Z",
			"reactions": `{"heart":2}`,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, post.Reactions[ReactionHeart])
		assert.Equal(t, 0, post.Reactions[ReactionStar])
		assert.Equal(t, 0, post.Reactions[ReactionSparkle])
	})

	t.Run("rejects malformed reactions JSON", func(t *testing.T) {
		_, err := HashToPost(map[string]string{
			"id":        "x1",
			"reactions": "{not json",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal reactions")
	})
}
