// Package project maps the post collection to display-ready view records.
// Projection is a pure full recompute: every call rebuilds the whole display
// list from the current collection snapshot.
package project

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"time"

	"github.com/bleeeehhhhhhhhh/spipy/internal/timefmt"
	"github.com/bleeeehhhhhhhhh/spipy/pkg/feed"
)

// Badge is the type indicator shown on a post card.
type Badge struct {
	Icon  string
	Label string
	Class string
}

var (
	badgeNote  = Badge{Icon: "📝", Label: "Note", Class: "note"}
	badgeSong  = Badge{Icon: "🎵", Label: "Song", Class: "song"}
	badgeImage = Badge{Icon: "📷", Label: "Photo", Class: "image"}
)

// ReactionView is one reaction button's display state. Count is the rendered
// label: empty for zero rather than "0", a deliberate cosmetic choice.
type ReactionView struct {
	Kind  feed.ReactionKind
	Icon  string
	Count string
}

var reactionIcons = map[feed.ReactionKind]string{
	feed.ReactionHeart:   "🩷",
	feed.ReactionStar:    "⭐",
	feed.ReactionSparkle: "✨",
}

// PostView is the display-ready record for a single post. Free-text fields
// (note text, captions) are HTML-escaped so they can never be interpreted as
// structural markup by a rendering surface; the embed URI and image payload
// reference are generated values and pass through untouched.
type PostView struct {
	ID        string
	Badge     Badge
	Text      string // escaped note text or caption, may be empty
	Embed     string // song embed URI, songs only
	Image     string // image payload reference, images only
	TimeLabel string
	Reactions []ReactionView
}

// Stats holds the running totals shown above the feed.
type Stats struct {
	Posts int
	Notes int
	Songs int
}

// Projection is the full display state for one render pass. An empty
// collection produces Empty=true with the empty-state copy rather than a
// bare zero-length list.
type Projection struct {
	Empty     bool
	EmptyText string
	EmptyHint string
	Posts     []PostView
	Stats     Stats
}

// Projector recomputes projections from collection snapshots. Warnings about
// unexpected records go to warn; pass nil to discard them.
type Projector struct {
	warn io.Writer
}

// New creates a Projector writing warnings to warn.
func New(warn io.Writer) *Projector {
	if warn == nil {
		warn = io.Discard
	}
	return &Projector{warn: warn}
}

// Project maps a collection snapshot to its display state, evaluating
// relative-time labels against now.
func (pr *Projector) Project(posts []*feed.Post, now time.Time) Projection {
	if len(posts) == 0 {
		return Projection{
			Empty:     true,
			EmptyText: "No posts yet!",
			EmptyHint: "Be the first to share something cute",
		}
	}

	proj := Projection{Posts: make([]PostView, 0, len(posts))}
	for _, p := range posts {
		proj.Posts = append(proj.Posts, pr.projectPost(p, now))

		proj.Stats.Posts++
		switch p.Type {
		case feed.PostTypeNote:
			proj.Stats.Notes++
		case feed.PostTypeSong:
			proj.Stats.Songs++
		}
	}

	return proj
}

// projectPost builds the view record for one post.
func (pr *Projector) projectPost(p *feed.Post, now time.Time) PostView {
	view := PostView{
		ID:        p.ID,
		Badge:     pr.badgeFor(p),
		TimeLabel: timefmt.RelativeTo(p.CreatedAt(), now),
		Reactions: reactionViews(p.Reactions),
	}

	switch p.Type {
	case feed.PostTypeSong:
		view.Embed = p.Content
		view.Text = html.EscapeString(p.Caption)
	case feed.PostTypeImage:
		view.Image = p.Content
		view.Text = html.EscapeString(p.Caption)
	default:
		view.Text = html.EscapeString(p.Content)
	}

	return view
}

// badgeFor picks the type badge. A type outside the closed set cannot be
// produced by the factory, so a record carrying one is logged before falling
// back to the note presentation.
func (pr *Projector) badgeFor(p *feed.Post) Badge {
	switch p.Type {
	case feed.PostTypeNote:
		return badgeNote
	case feed.PostTypeSong:
		return badgeSong
	case feed.PostTypeImage:
		return badgeImage
	default:
		fmt.Fprintf(pr.warn, "Warning: post %s has unknown type %q, rendering as note\n", p.ID, p.Type)
		return badgeNote
	}
}

// reactionViews renders the three counters in display order.
func reactionViews(reactions feed.Reactions) []ReactionView {
	views := make([]ReactionView, 0, len(feed.ReactionKinds))
	for _, kind := range feed.ReactionKinds {
		count := ""
		if n := reactions[kind]; n > 0 {
			count = strconv.Itoa(n)
		}
		views = append(views, ReactionView{
			Kind:  kind,
			Icon:  reactionIcons[kind],
			Count: count,
		})
	}
	return views
}
