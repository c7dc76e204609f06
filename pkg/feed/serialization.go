package feed

import (
	"encoding/json"
	"fmt"
)

// Serialization helpers for converting between Go structs and Redis hashes
//
// Redis stores data as string-to-string maps (hashes). The reactions map is
// JSON-encoded into a single hash field. This provides a balance between
// queryability (individual fields) and flexibility (structured counters).

// PostToHash converts a Post struct to a Redis hash format.
// The reactions map is JSON-encoded.
func PostToHash(p *Post) (map[string]interface{}, error) {
	reactionsJSON, err := json.Marshal(p.Reactions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reactions: %w", err)
	}

	hash := map[string]interface{}{
		"id":        p.ID,
		"type":      string(p.Type),
		"content":   p.Content,
		"caption":   p.Caption,
		"timestamp": p.Timestamp,
		"reactions": string(reactionsJSON),
	}

	return hash, nil
}

// HashToPost converts a Redis hash to a Post struct.
// JSON fields are decoded back to Go types.
func HashToPost(hash map[string]string) (*Post, error) {
	var reactions Reactions
	if reactionsJSON := hash["reactions"]; reactionsJSON != "" {
		if err := json.Unmarshal([]byte(reactionsJSON), &reactions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reactions: %w", err)
		}
	}

	// Ensure every counter exists even if the stored record predates a kind
	if reactions == nil {
		reactions = NewReactions()
	} else {
		for _, kind := range ReactionKinds {
			if _, ok := reactions[kind]; !ok {
				reactions[kind] = 0
			}
		}
	}

	post := &Post{
		ID:        hash["id"],
		Type:      PostType(hash["type"]),
		Content:   hash["content"],
		Caption:   hash["caption"],
		Timestamp: hash["timestamp"],
		Reactions: reactions,
	}

	return post, nil
}
