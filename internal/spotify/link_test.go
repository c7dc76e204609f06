package spotify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLink(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "track URL",
			input: "https://open.spotify.com/track/ABC123",
			want:  "https://open.spotify.com/embed/track/ABC123?utm_source=generator&theme=0",
			ok:    true,
		},
		{
			name:  "album URL",
			input: "https://open.spotify.com/album/2noRn2Aes5aoNVsU6iWThc",
			want:  "https://open.spotify.com/embed/album/2noRn2Aes5aoNVsU6iWThc?utm_source=generator&theme=0",
			ok:    true,
		},
		{
			name:  "playlist URL with query string",
			input: "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=abcdef",
			want:  "https://open.spotify.com/embed/playlist/37i9dQZF1DXcBWIGoYBM5M?utm_source=generator&theme=0",
			ok:    true,
		},
		{
			name:  "locale prefix segment",
			input: "https://open.spotify.com/intl-de/track/ABC123",
			want:  "https://open.spotify.com/embed/track/ABC123?utm_source=generator&theme=0",
			ok:    true,
		},
		{
			name:  "episode URL",
			input: "https://open.spotify.com/episode/512ojhOuo1ktJprKbVcKyQ",
			want:  "https://open.spotify.com/embed/episode/512ojhOuo1ktJprKbVcKyQ?utm_source=generator&theme=0",
			ok:    true,
		},
		{
			name:  "doubled slashes are filtered before scanning",
			input: "https://open.spotify.com//track//ABC123",
			want:  "https://open.spotify.com/embed/track/ABC123?utm_source=generator&theme=0",
			ok:    true,
		},
		{
			name:  "spotify URI",
			input: "spotify:album:XYZ789",
			want:  "https://open.spotify.com/embed/album/XYZ789?utm_source=generator&theme=0",
			ok:    true,
		},
		{
			name:  "surrounding whitespace",
			input: "  spotify:track:ABC123  ",
			want:  "https://open.spotify.com/embed/track/ABC123?utm_source=generator&theme=0",
			ok:    true,
		},
		{
			name:  "unrelated URL",
			input: "https://example.com/foo",
			ok:    false,
		},
		{
			name:  "type segment without id",
			input: "https://open.spotify.com/track",
			ok:    false,
		},
		{
			name:  "URI missing id part",
			input: "spotify:track",
			ok:    false,
		},
		{
			name:  "URI with empty id",
			input: "spotify:track:",
			ok:    false,
		},
		{
			name:  "empty input",
			input: "",
			ok:    false,
		},
		{
			name:  "plain text",
			input: "not a link at all",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeLink(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeLinkFirstMatchWins(t *testing.T) {
	// A path carrying two type segments resolves to the first one
	got, ok := NormalizeLink("https://open.spotify.com/track/first/album/second")
	assert.True(t, ok)
	assert.Equal(t, "https://open.spotify.com/embed/track/first?utm_source=generator&theme=0", got)
}
