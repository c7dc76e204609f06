// Package feed provides type-safe Go definitions and Redis schema patterns
// for the Spipy feed board. The board is the shared remote mirror of the post
// collection where every client (CLI, watch loop) interacts via well-defined
// records stored in Redis.
//
// All Redis keys and channels are namespaced by board name to enable multiple
// Spipy boards to safely coexist on a single Redis server.
package feed

import (
	"fmt"
	"strings"
	"time"
)

// Post represents a single user-submitted feed item.
// Posts are immutable once created except for their reaction counters;
// removing a post deletes the whole record.
type Post struct {
	ID        string    `json:"id"`                // Unique identifier, generated client-side at creation
	Type      PostType  `json:"type"`              // note, song or image
	Content   string    `json:"content"`           // Text for notes, embed URI for songs, payload reference for images
	Caption   string    `json:"caption,omitempty"` // Optional free text, songs and images only
	Timestamp string    `json:"timestamp"`         // Creation time, RFC 3339 / ISO-8601
	Reactions Reactions `json:"reactions"`         // Counter per reaction kind, all zero at creation
}

// PostType defines the kind of content a post carries.
// The type determines which of Content/Caption are meaningful.
type PostType string

const (
	// PostTypeNote is a free-text note; Content holds the trimmed text
	PostTypeNote PostType = "note"

	// PostTypeSong is a music embed; Content holds the canonical embed URI
	PostTypeSong PostType = "song"

	// PostTypeImage is a picture; Content holds the staged image payload reference
	PostTypeImage PostType = "image"
)

// ReactionKind names one of the fixed reaction counters attached to a post.
type ReactionKind string

const (
	// ReactionHeart is the heart reaction counter
	ReactionHeart ReactionKind = "heart"

	// ReactionStar is the star reaction counter
	ReactionStar ReactionKind = "star"

	// ReactionSparkle is the sparkle reaction counter
	ReactionSparkle ReactionKind = "sparkle"
)

// ReactionKinds lists every valid reaction kind in display order.
var ReactionKinds = []ReactionKind{ReactionHeart, ReactionStar, ReactionSparkle}

// Reactions maps each reaction kind to its non-negative count.
// Counts only ever grow; deleting the post is the only way down.
type Reactions map[ReactionKind]int

// NewReactions returns a reaction map with every kind zeroed.
func NewReactions() Reactions {
	r := make(Reactions, len(ReactionKinds))
	for _, kind := range ReactionKinds {
		r[kind] = 0
	}
	return r
}

// Clone returns an independent copy of the reaction map.
func (r Reactions) Clone() Reactions {
	out := make(Reactions, len(r))
	for kind, count := range r {
		out[kind] = count
	}
	return out
}

// Validate checks if the Post has valid field values.
// Returns an error if any validation fails.
func (p *Post) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("post ID cannot be empty")
	}

	if err := p.Type.Validate(); err != nil {
		return fmt.Errorf("invalid post type: %w", err)
	}

	if p.Content == "" {
		return fmt.Errorf("post content cannot be empty")
	}

	if p.Type == PostTypeNote && p.Caption != "" {
		return fmt.Errorf("note posts cannot carry a caption")
	}

	if _, err := time.Parse(time.RFC3339, p.Timestamp); err != nil {
		return fmt.Errorf("invalid timestamp: %w", err)
	}

	for kind, count := range p.Reactions {
		if err := kind.Validate(); err != nil {
			return fmt.Errorf("invalid reaction counter: %w", err)
		}
		if count < 0 {
			return fmt.Errorf("reaction %q count must be >= 0, got %d", kind, count)
		}
	}

	return nil
}

// CreatedAt returns the parsed creation time of the post.
// Returns the zero time if the timestamp is malformed.
func (p *Post) CreatedAt() time.Time {
	t, err := time.Parse(time.RFC3339, p.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Validate checks if the PostType is a valid enum value.
func (pt PostType) Validate() error {
	switch pt {
	case PostTypeNote, PostTypeSong, PostTypeImage:
		return nil
	default:
		return fmt.Errorf("unknown post type: %q", pt)
	}
}

// Validate checks if the ReactionKind is a valid enum value.
func (rk ReactionKind) Validate() error {
	switch rk {
	case ReactionHeart, ReactionStar, ReactionSparkle:
		return nil
	default:
		return fmt.Errorf("unknown reaction kind: %q", rk)
	}
}
