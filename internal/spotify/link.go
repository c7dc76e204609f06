// Package spotify normalizes pasted Spotify links into embeddable URIs.
package spotify

import (
	"fmt"
	"net/url"
	"strings"
)

// embedBase is the host serving embeddable players.
const embedBase = "https://open.spotify.com/embed"

// resourceTypes are the path segments recognized as embeddable resources.
// First match wins when scanning a URL path.
var resourceTypes = map[string]bool{
	"track":    true,
	"album":    true,
	"playlist": true,
	"episode":  true,
	"show":     true,
}

// NormalizeLink converts a pasted Spotify reference into an embeddable URL.
//
// Accepted forms:
//   - https://open.spotify.com/track/{id} (optionally with a locale segment
//     such as /intl-de/ before the type, and/or a trailing query string)
//   - spotify:track:{id} URI form (exactly three colon-separated parts)
//
// Returns ("", false) for anything that yields no recognizable (type, id)
// pair. Invalid input is a rejection, never a panic.
func NormalizeLink(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)

	switch {
	case strings.Contains(raw, "open.spotify.com"):
		return normalizeWebURL(raw)
	case strings.HasPrefix(raw, "spotify:"):
		return normalizeURI(raw)
	default:
		return "", false
	}
}

// normalizeWebURL extracts (type, id) from an open.spotify.com URL path.
// Path shapes: /track/{id}, /intl-xx/track/{id}; the id may carry a query.
func normalizeWebURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	// Filter empty segments before scanning for the type keyword
	var parts []string
	for _, part := range strings.Split(u.Path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	for i, part := range parts {
		if resourceTypes[part] && i+1 < len(parts) {
			id := strings.SplitN(parts[i+1], "?", 2)[0]
			if id == "" {
				return "", false
			}
			return embedURL(part, id), true
		}
	}

	return "", false
}

// normalizeURI extracts (type, id) from a spotify:{type}:{id} URI.
func normalizeURI(raw string) (string, bool) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 {
		return "", false
	}

	// The URI form carries its own type marker; unlike the web form there is
	// no path to scan, so any non-empty (type, id) pair is taken as-is.
	resourceType, id := parts[1], parts[2]
	if resourceType == "" || id == "" {
		return "", false
	}

	return embedURL(resourceType, id), true
}

// embedURL renders the fixed embed template for a (type, id) pair.
func embedURL(resourceType, id string) string {
	return fmt.Sprintf("%s/%s/%s?utm_source=generator&theme=0", embedBase, resourceType, id)
}
