package project

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bleeeehhhhhhhhh/spipy/pkg/feed"
)

// FormatTable writes a projection as a formatted table to the provided writer.
// The table includes columns: ID, TYPE, AGE, REACTIONS, and the post text or
// media reference (truncated). Returns the number of posts formatted.
func FormatTable(w io.Writer, proj Projection, boardName string) int {
	if proj.Empty {
		fmt.Fprintf(w, "%s\n%s\n", proj.EmptyText, proj.EmptyHint)
		return 0
	}

	fmt.Fprintf(w, "Feed for board '%s':\n\n", boardName)

	fmt.Fprintf(w, "%-10s %-9s %-8s %-14s %s\n",
		"ID", "TYPE", "AGE", "REACTIONS", "CONTENT")
	fmt.Fprintf(w, "%-10s %-9s %-8s %-14s %s\n",
		"----------", "---------", "--------", "--------------", "----------------------------------------")

	for _, view := range proj.Posts {
		fmt.Fprintf(w, "%-10s %-9s %-8s %-14s %s\n",
			formatID(view.ID),
			fmt.Sprintf("%s %s", view.Badge.Icon, view.Badge.Label),
			view.TimeLabel,
			formatReactions(view.Reactions),
			formatContent(view),
		)
	}

	countMsg := "post"
	if proj.Stats.Posts != 1 {
		countMsg = "posts"
	}
	fmt.Fprintf(w, "\n%d %s (%d notes, %d songs)\n",
		proj.Stats.Posts, countMsg, proj.Stats.Notes, proj.Stats.Songs)

	return proj.Stats.Posts
}

// FormatJSONL writes posts as line-delimited JSON (JSONL) to the provided writer.
// Each post is written as a single JSON object on its own line.
// This format is ideal for streaming and processing with tools like jq.
func FormatJSONL(w io.Writer, posts []*feed.Post) error {
	for _, post := range posts {
		data, err := json.Marshal(post)
		if err != nil {
			return fmt.Errorf("failed to marshal post to JSON: %w", err)
		}

		if _, err := fmt.Fprintf(w, "%s\n", string(data)); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}

	return nil
}

// formatID truncates a post ID to first 8 characters for compact display.
func formatID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatReactions renders the counters as a compact icon row; zero counts
// stay blank, matching the card rendering.
func formatReactions(views []ReactionView) string {
	parts := make([]string, 0, len(views))
	for _, v := range views {
		parts = append(parts, strings.TrimSpace(v.Icon+" "+v.Count))
	}
	return strings.Join(parts, " ")
}

// formatContent picks the one-line column value for a view.
func formatContent(view PostView) string {
	var content string
	switch {
	case view.Embed != "":
		content = view.Embed
		if view.Text != "" {
			content = view.Text + " " + content
		}
	case view.Image != "":
		content = "[photo]"
		if view.Text != "" {
			content = view.Text + " " + content
		}
	default:
		content = view.Text
	}

	content = strings.ReplaceAll(content, "\n", " ")
	if len(content) > 60 {
		return content[:57] + "..."
	}
	return content
}
