// Package mirror keeps the local post collection and the remote board
// eventually consistent. Local mutations are pushed to the board after they
// commit locally; board change events trigger a full reload into the local
// store. Local state stays authoritative and usable when the board is down.
package mirror

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/bleeeehhhhhhhhh/spipy/internal/store"
	"github.com/bleeeehhhhhhhhh/spipy/pkg/feed"
)

// Mirror coordinates pushes and reloads between a Store and a board Client.
type Mirror struct {
	store  *store.Store
	client *feed.Client
	warn   io.Writer

	// reloadSeq guards against stale fetch completions: a reload only applies
	// if no newer reload was issued while it was in flight.
	reloadSeq atomic.Int64
}

// New creates a Mirror between the given store and board client. Warnings
// (skipped records, stale reloads) go to warn; pass nil to discard them.
func New(st *store.Store, client *feed.Client, warn io.Writer) *Mirror {
	if warn == nil {
		warn = io.Discard
	}
	return &Mirror{store: st, client: client, warn: warn}
}

// PushInsert mirrors a locally inserted post to the board.
func (m *Mirror) PushInsert(ctx context.Context, post *feed.Post) error {
	if err := m.client.CreatePost(ctx, post); err != nil {
		return fmt.Errorf("failed to mirror post to board: %w", err)
	}
	return nil
}

// PushRemove mirrors a local deletion to the board.
func (m *Mirror) PushRemove(ctx context.Context, postID string) error {
	if err := m.client.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("failed to mirror deletion to board: %w", err)
	}
	return nil
}

// PushReactions mirrors updated reaction counters to the board. A post that
// no longer exists remotely is a warning, not an error - the other side of
// the mirror may have deleted it.
func (m *Mirror) PushReactions(ctx context.Context, postID string, reactions feed.Reactions) error {
	_, err := m.client.UpdateReactions(ctx, postID, reactions)
	if err != nil {
		if feed.IsNotFound(err) {
			fmt.Fprintf(m.warn, "Warning: post %s is gone from the board, reaction not mirrored\n", postID)
			return nil
		}
		return fmt.Errorf("failed to mirror reactions to board: %w", err)
	}
	return nil
}

// Reload replaces the local collection with the board's current contents.
//
// Each reload takes a sequence number when it starts; if a newer reload was
// issued while this one's fetch was in flight, its completion is stale and is
// discarded instead of overwriting fresher state.
func (m *Mirror) Reload(ctx context.Context) error {
	seq := m.reloadSeq.Add(1)

	posts, skipped, err := m.client.ListPosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load posts from board: %w", err)
	}
	for _, id := range skipped {
		fmt.Fprintf(m.warn, "Warning: skipping malformed board record %s\n", id)
	}

	if m.reloadSeq.Load() != seq {
		fmt.Fprintf(m.warn, "Warning: discarding stale board fetch\n")
		return nil
	}

	if err := m.store.Replace(posts); err != nil {
		return fmt.Errorf("failed to apply board state: %w", err)
	}
	return nil
}

// Watch subscribes to board change events and reloads the full feed on each
// one. onChange, if non-nil, runs after every applied reload. Blocks until
// the context is cancelled or the subscription fails.
func (m *Mirror) Watch(ctx context.Context, onChange func(*feed.PostEvent)) error {
	sub, err := m.client.SubscribePostEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to board events: %w", err)
	}
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err, ok := <-sub.Errors():
			if !ok {
				return nil
			}
			fmt.Fprintf(m.warn, "Warning: %v\n", err)

		case event, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if err := m.Reload(ctx); err != nil {
				fmt.Fprintf(m.warn, "Warning: reload after %s event failed: %v\n", event.Action, err)
				continue
			}
			if onChange != nil {
				onChange(event)
			}
		}
	}
}
