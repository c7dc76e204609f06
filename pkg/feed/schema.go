package feed

import "fmt"

// Redis key pattern helpers
//
// All Redis keys and Pub/Sub channels are namespaced by board name to enable
// multiple Spipy boards to safely coexist on a single Redis server.
//
// Key pattern: spipy:{board_name}:{entity}:{id}
// Channel pattern: spipy:{board_name}:{event_type}_events

// PostKey returns the Redis key for a post record.
// Pattern: spipy:{board_name}:post:{post_id}
func PostKey(boardName, postID string) string {
	return fmt.Sprintf("spipy:%s:post:%s", boardName, postID)
}

// PostKeyPattern returns the SCAN pattern matching every post on a board.
// Pattern: spipy:{board_name}:post:*
func PostKeyPattern(boardName string) string {
	return fmt.Sprintf("spipy:%s:post:*", boardName)
}

// PostKeyPrefix returns the prefix shared by every post key on a board.
// Used to recover post IDs from scanned keys.
func PostKeyPrefix(boardName string) string {
	return fmt.Sprintf("spipy:%s:post:", boardName)
}

// PostEventsChannel returns the Pub/Sub channel name for post change events.
// Every insert, reaction update and delete publishes here; subscribers reload
// the full feed on each event.
// Pattern: spipy:{board_name}:post_events
func PostEventsChannel(boardName string) string {
	return fmt.Sprintf("spipy:%s:post_events", boardName)
}
