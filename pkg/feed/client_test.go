package feed

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestClient creates a test client connected to a miniredis instance
func setupTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client, err := NewClient(&redis.Options{Addr: mr.Addr()}, "test-board")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func TestNewClient(t *testing.T) {
	t.Run("creates client successfully", func(t *testing.T) {
		client, _ := setupTestClient(t)
		assert.NotNil(t, client)
		assert.Equal(t, "test-board", client.BoardName())
	})

	t.Run("rejects empty board name", func(t *testing.T) {
		_, err := NewClient(&redis.Options{Addr: "localhost:6379"}, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "board name cannot be empty")
	})
}

func TestPing(t *testing.T) {
	client, _ := setupTestClient(t)
	assert.NoError(t, client.Ping(context.Background()))
}

func TestCreatePost(t *testing.T) {
	client, _ := setupTestClient(t)
	ctx := context.Background()

	t.Run("creates valid post", func(t *testing.T) {
		post, err := NewNote("hello board")
		require.NoError(t, err)

		require.NoError(t, client.CreatePost(ctx, post))

		retrieved, err := client.GetPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, post.ID, retrieved.ID)
		assert.Equal(t, post.Content, retrieved.Content)
		assert.Equal(t, post.Reactions, retrieved.Reactions)
	})

	t.Run("rejects invalid post", func(t *testing.T) {
		err := client.CreatePost(ctx, &Post{ID: "x", Type: "poem"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid post")
	})

	t.Run("publishes event after creation", func(t *testing.T) {
		sub, err := client.SubscribePostEvents(ctx)
		require.NoError(t, err)
		defer sub.Close()

		post, err := NewNote("event test")
		require.NoError(t, err)
		require.NoError(t, client.CreatePost(ctx, post))

		select {
		case event := <-sub.Events():
			assert.Equal(t, EventActionCreated, event.Action)
			assert.Equal(t, post.ID, event.PostID)
			require.NotNil(t, event.Post)
			assert.Equal(t, post.Content, event.Post.Content)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for post event")
		}
	})
}

func TestGetPost(t *testing.T) {
	client, _ := setupTestClient(t)
	ctx := context.Background()

	t.Run("returns not found for missing post", func(t *testing.T) {
		_, err := client.GetPost(ctx, "does-not-exist")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestPostExists(t *testing.T) {
	client, _ := setupTestClient(t)
	ctx := context.Background()

	post, err := NewNote("existence")
	require.NoError(t, err)
	require.NoError(t, client.CreatePost(ctx, post))

	exists, err := client.PostExists(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.PostExists(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListPosts(t *testing.T) {
	client, _ := setupTestClient(t)
	ctx := context.Background()

	t.Run("empty board", func(t *testing.T) {
		posts, skipped, err := client.ListPosts(ctx)
		require.NoError(t, err)
		assert.Empty(t, posts)
		assert.Empty(t, skipped)
	})

	t.Run("orders newest first", func(t *testing.T) {
		old := &Post{
			ID: "older", Type: PostTypeNote, Content: "old",
			Timestamp: "2026-08-01T10:00:00Z", Reactions: NewReactions(),
		}
		mid := &Post{
			ID: "middle", Type: PostTypeNote, Content: "mid",
			Timestamp: "2026-08-15T10:00:00Z", Reactions: NewReactions(),
		}
		recent := &Post{
			ID: "newest", Type: PostTypeNote, Content: "new",
			Timestamp: "2026-08-30T10:00:00Z", Reactions: NewReactions(),
		}
		for _, p := range []*Post{mid, recent, old} {
			require.NoError(t, client.CreatePost(ctx, p))
		}

		posts, skipped, err := client.ListPosts(ctx)
		require.NoError(t, err)
		assert.Empty(t, skipped)
		require.Len(t, posts, 3)
		assert.Equal(t, "newest", posts[0].ID)
		assert.Equal(t, "middle", posts[1].ID)
		assert.Equal(t, "older", posts[2].ID)
	})
}

func TestUpdateReactions(t *testing.T) {
	client, _ := setupTestClient(t)
	ctx := context.Background()

	post, err := NewNote("react to me")
	require.NoError(t, err)
	require.NoError(t, client.CreatePost(ctx, post))

	t.Run("replaces counters and returns updated post", func(t *testing.T) {
		reactions := Reactions{ReactionHeart: 3, ReactionStar: 0, ReactionSparkle: 1}
		updated, err := client.UpdateReactions(ctx, post.ID, reactions)
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Reactions[ReactionHeart])

		retrieved, err := client.GetPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, reactions, retrieved.Reactions)
		// Everything else is immutable
		assert.Equal(t, post.Content, retrieved.Content)
		assert.Equal(t, post.Timestamp, retrieved.Timestamp)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := client.UpdateReactions(ctx, post.ID, Reactions{"wave": 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid reactions")
	})

	t.Run("missing post is not found", func(t *testing.T) {
		_, err := client.UpdateReactions(ctx, "ghost", NewReactions())
		assert.True(t, IsNotFound(err))
	})
}

func TestDeletePost(t *testing.T) {
	client, _ := setupTestClient(t)
	ctx := context.Background()

	post, err := NewNote("delete me")
	require.NoError(t, err)
	require.NoError(t, client.CreatePost(ctx, post))

	require.NoError(t, client.DeletePost(ctx, post.ID))

	_, err = client.GetPost(ctx, post.ID)
	assert.True(t, IsNotFound(err))

	// Deleting again is a no-op
	assert.NoError(t, client.DeletePost(ctx, post.ID))
}

func TestSubscriptionClose(t *testing.T) {
	client, _ := setupTestClient(t)

	sub, err := client.SubscribePostEvents(context.Background())
	require.NoError(t, err)

	assert.NoError(t, sub.Close())
	assert.NoError(t, sub.Close(), "double close must be safe")
}
