package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/redis/go-redis/v9"
)

// EventAction describes what happened to a post on the board.
type EventAction string

const (
	// EventActionCreated is published when a new post is inserted
	EventActionCreated EventAction = "created"

	// EventActionReactions is published when a post's reaction counters change
	EventActionReactions EventAction = "reactions"

	// EventActionDeleted is published when a post is removed
	EventActionDeleted EventAction = "deleted"
)

// PostEvent is the change notification published for every board mutation.
// Deleted events carry only the post ID.
type PostEvent struct {
	Action EventAction `json:"action"`
	PostID string      `json:"post_id"`
	Post   *Post       `json:"post,omitempty"`
}

// Client provides board-scoped Redis operations for the remote post mirror.
// All keys and channels are automatically namespaced with the board name.
// The client is thread-safe and can be used concurrently from multiple goroutines.
type Client struct {
	rdb       *redis.Client
	boardName string
}

// NewClient creates a new board client for the specified board.
// The client automatically namespaces all keys and channels with the board name.
//
// Parameters:
//   - redisOpts: Redis connection options (address, password, DB, etc.)
//   - boardName: board identifier (must not be empty)
//
// Returns an error if boardName is empty.
func NewClient(redisOpts *redis.Options, boardName string) (*Client, error) {
	if boardName == "" {
		return nil, fmt.Errorf("board name cannot be empty")
	}

	return &Client{
		rdb:       redis.NewClient(redisOpts),
		boardName: boardName,
	}, nil
}

// Close closes the Redis connection. Implements io.Closer.
// After calling Close(), the client should not be used.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies Redis connectivity. Useful for health checks.
// Returns an error if the board is not reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// BoardName returns the board this client is scoped to.
func (c *Client) BoardName() string {
	return c.boardName
}

// CreatePost writes a post to the board and publishes a change event.
// Validates the post before writing. Returns error if validation fails or the
// Redis operation fails.
//
// The post is stored as a Redis hash at spipy:{board}:post:{id}.
// This method is idempotent - writing the same post twice is safe.
func (c *Client) CreatePost(ctx context.Context, p *Post) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}

	hash, err := PostToHash(p)
	if err != nil {
		return fmt.Errorf("failed to serialize post: %w", err)
	}

	key := PostKey(c.boardName, p.ID)
	if err := c.rdb.HSet(ctx, key, hash).Err(); err != nil {
		return fmt.Errorf("failed to write post to Redis: %w", err)
	}

	return c.publishEvent(ctx, &PostEvent{Action: EventActionCreated, PostID: p.ID, Post: p})
}

// GetPost retrieves a post by ID.
// Returns (nil, redis.Nil) if the post doesn't exist.
// Use IsNotFound() to check for not-found errors.
func (c *Client) GetPost(ctx context.Context, postID string) (*Post, error) {
	key := PostKey(c.boardName, postID)

	hashData, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read post from Redis: %w", err)
	}

	// HGetAll returns an empty map for non-existent keys
	if len(hashData) == 0 {
		return nil, redis.Nil
	}

	post, err := HashToPost(hashData)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize post: %w", err)
	}

	return post, nil
}

// PostExists checks if a post exists without fetching it.
// More efficient than GetPost when you only need to check existence.
func (c *Client) PostExists(ctx context.Context, postID string) (bool, error) {
	key := PostKey(c.boardName, postID)
	exists, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}
	return exists > 0, nil
}

// ListPosts retrieves every post on the board, newest first.
// Uses Redis SCAN to iterate over post keys without blocking the server.
// Malformed records are skipped rather than failing the whole listing; the
// IDs of skipped records are returned so callers can surface a warning.
func (c *Client) ListPosts(ctx context.Context) (posts []*Post, skipped []string, err error) {
	prefix := PostKeyPrefix(c.boardName)
	iter := c.rdb.Scan(ctx, 0, PostKeyPattern(c.boardName), 0).Iterator()

	for iter.Next(ctx) {
		postID := iter.Val()[len(prefix):]

		post, err := c.GetPost(ctx, postID)
		if err != nil {
			if IsNotFound(err) {
				// Deleted between SCAN and fetch
				continue
			}
			skipped = append(skipped, postID)
			continue
		}

		posts = append(posts, post)
	}
	if err := iter.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to scan posts: %w", err)
	}

	// The board's select-all contract: ordered by timestamp descending.
	// Ties broken by ID for stable output.
	sort.Slice(posts, func(i, j int) bool {
		ti, tj := posts[i].CreatedAt(), posts[j].CreatedAt()
		if ti.Equal(tj) {
			return posts[i].ID > posts[j].ID
		}
		return ti.After(tj)
	})

	return posts, skipped, nil
}

// UpdateReactions replaces the reaction counters of an existing post and
// publishes a change event. Only the reactions field is written; all other
// fields are immutable. Returns the updated post.
//
// Returns (nil, redis.Nil) if the post doesn't exist.
func (c *Client) UpdateReactions(ctx context.Context, postID string, reactions Reactions) (*Post, error) {
	for kind := range reactions {
		if err := kind.Validate(); err != nil {
			return nil, fmt.Errorf("invalid reactions: %w", err)
		}
	}

	post, err := c.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	reactionsJSON, err := json.Marshal(reactions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reactions: %w", err)
	}

	key := PostKey(c.boardName, postID)
	if err := c.rdb.HSet(ctx, key, "reactions", string(reactionsJSON)).Err(); err != nil {
		return nil, fmt.Errorf("failed to update reactions in Redis: %w", err)
	}

	post.Reactions = reactions.Clone()
	if err := c.publishEvent(ctx, &PostEvent{Action: EventActionReactions, PostID: postID, Post: post}); err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost removes a post from the board and publishes a change event.
// Deleting a post that doesn't exist is a no-op, not an error.
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	key := PostKey(c.boardName, postID)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete post from Redis: %w", err)
	}

	return c.publishEvent(ctx, &PostEvent{Action: EventActionDeleted, PostID: postID})
}

// publishEvent marshals a change event and publishes it on the board channel.
func (c *Client) publishEvent(ctx context.Context, event *PostEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal post event: %w", err)
	}

	channel := PostEventsChannel(c.boardName)
	if err := c.rdb.Publish(ctx, channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish post event: %w", err)
	}

	return nil
}

// Subscription represents an active Pub/Sub subscription to post change events.
// Caller must call Close() when done to clean up resources.
// Subscriptions deliver full event objects via the Events() channel.
type Subscription struct {
	events <-chan *PostEvent
	errors <-chan error
	cancel func()
	once   sync.Once
}

// Events returns the channel of post change events.
// The channel will be closed when the subscription is closed or the context is cancelled.
func (s *Subscription) Events() <-chan *PostEvent {
	return s.events
}

// Errors returns the channel of subscription errors.
// Errors include JSON unmarshaling failures and other non-fatal issues.
// The subscription continues after errors - messages are skipped.
func (s *Subscription) Errors() <-chan error {
	return s.errors
}

// Close stops the subscription and cleans up resources. Implements io.Closer.
// Safe to call multiple times - subsequent calls are no-ops.
func (s *Subscription) Close() error {
	s.once.Do(s.cancel)
	return nil
}

// SubscribePostEvents subscribes to post change events for this board.
// Returns a Subscription that delivers full event objects.
// Caller must call subscription.Close() when done.
// Context cancellation also stops the subscription.
//
// Events are delivered on a buffered channel (size 10) to prevent blocking.
// If the subscriber is too slow, events may be dropped by Redis Pub/Sub
// (at-most-once delivery) - subscribers reload the full feed per event, so a
// dropped event only delays convergence until the next one.
func (c *Client) SubscribePostEvents(ctx context.Context) (*Subscription, error) {
	channel := PostEventsChannel(c.boardName)
	pubsub := c.rdb.Subscribe(ctx, channel)

	eventsChan := make(chan *PostEvent, 10)
	errorsChan := make(chan error, 10)

	subCtx, cancelFunc := context.WithCancel(ctx)

	go func() {
		defer close(eventsChan)
		defer close(errorsChan)
		defer pubsub.Close()

		ch := pubsub.Channel()

		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				var event PostEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					// Send error on error channel, skip message
					select {
					case errorsChan <- fmt.Errorf("failed to unmarshal post event: %w", err):
					case <-subCtx.Done():
						return
					}
					continue
				}

				select {
				case eventsChan <- &event:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	return &Subscription{
		events: eventsChan,
		errors: errorsChan,
		cancel: cancelFunc,
	}, nil
}

// IsNotFound returns true if the error is a Redis "key not found" error (redis.Nil).
// Use this to check if GetPost or UpdateReactions returned "not found".
func IsNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}
