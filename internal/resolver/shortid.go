// Package resolver resolves short post-ID prefixes against the local collection.
package resolver

import (
	"fmt"
	"strings"

	"github.com/bleeeehhhhhhhhh/spipy/pkg/feed"
)

// MinShortIDLength is the minimum required length for short ID prefixes.
// Set to 6 characters to balance usability with collision avoidance.
const MinShortIDLength = 6

// NotFoundError indicates no post matched the given prefix.
type NotFoundError struct {
	ShortID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no post found matching %q", e.ShortID)
}

// AmbiguousError indicates more than one post matched the given prefix.
type AmbiguousError struct {
	ShortID string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("short ID %q matches %d posts, use a longer prefix", e.ShortID, len(e.Matches))
}

// ResolvePostID resolves a short ID prefix to a full post ID against a
// collection snapshot. Returns the full ID if exactly one match is found.
//
// The function handles three cases:
// 1. Input exactly matches a post ID - returned as-is
// 2. Input is too short (< 6 chars) - returns a validation error
// 3. Input is a prefix - scans for matches and returns the unique result
func ResolvePostID(posts []*feed.Post, shortID string) (string, error) {
	// Exact match wins regardless of length
	for _, p := range posts {
		if p.ID == shortID {
			return p.ID, nil
		}
	}

	if len(shortID) < MinShortIDLength {
		return "", fmt.Errorf("short ID must be at least %d characters (got %d)", MinShortIDLength, len(shortID))
	}

	var matches []string
	for _, p := range posts {
		if strings.HasPrefix(p.ID, shortID) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{ShortID: shortID}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousError{ShortID: shortID, Matches: matches}
	}
}
