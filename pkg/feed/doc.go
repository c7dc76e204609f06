// Package feed provides type-safe Go definitions and Redis schema patterns
// for the Spipy post board.
//
// # Overview
//
// The board is the shared remote mirror of a client's post collection. Every
// Spipy component (CLI commands, the mirror watch loop) interacts with it via
// well-defined records stored in Redis. The in-memory collection held by the
// local store remains the source of truth for a session; the board is an
// eventually-consistent mirror shared between clients.
//
// # Core Concepts
//
// Posts are the sole entity: a note, song or image submitted by the user, with
// a client-generated ID, an RFC 3339 creation timestamp, and a fixed set of
// reaction counters (heart, star, sparkle). Posts are immutable once created
// except for their reaction counters; deletion removes the whole record.
//
// Post events are change notifications published on a board channel after
// every mutation. Subscribers respond by reloading the full feed - events are
// triggers, not a replication log.
//
// # Multi-Board Support
//
// All Redis keys and Pub/Sub channels are namespaced by board name to enable
// multiple Spipy boards to safely coexist on a single Redis server without
// interference.
//
// # Usage Example
//
//	import "github.com/bleeeehhhhhhhhh/spipy/pkg/feed"
//
//	// Assemble a post via the factory
//	post, err := feed.NewSong("https://open.spotify.com/track/abc123", "late night loop")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Mirror it to the board
//	client, err := feed.NewClient(&redis.Options{Addr: "localhost:6379"}, "default")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	if err := client.CreatePost(ctx, post); err != nil {
//		log.Fatal(err)
//	}
//
// # Redis Schema
//
// All Redis keys follow the pattern: spipy:{board_name}:{entity}:{id}
//
// Posts: spipy:{board_name}:post:{post_id}
//
// Pub/Sub channels: spipy:{board_name}:{event_type}_events
//
// Post Events: spipy:{board_name}:post_events
//
// # Design Principles
//
// - Type Safety: all data structures have strong typing with validation methods
// - Local Authority: the client's in-memory collection owns the data; the board mirrors it
// - Isolation: board namespacing prevents cross-board interference
// - Simplicity: no retry policy; failures are returned to the caller as errors
package feed
