package player

import (
	"strings"
	"testing"

	"github.com/topongo/playing/internal/mpris"
)

func TestFormatStatus(t *testing.T) {
	tests := []struct {
		name     string
		meta     mpris.Metadata
		identity string
		opts     StatusOptions
		expected string
	}{
		{
			name: "full metadata without icon",
			meta: mpris.Metadata{
				Title:   "Aerials",
				Album:   "Toxicity",
				Artists: []string{"System of a Down", "someone else"},
			},
			identity: "mpv",
			opts:     StatusOptions{NoIcon: true},
			expected: "Aerials // Toxicity @ System of a Down",
		},
		{
			name:     "missing metadata defaults to Unknown",
			meta:     mpris.Metadata{},
			identity: "mpv",
			opts:     StatusOptions{NoIcon: true},
			expected: "Unknown // Unknown @ Unknown",
		},
		{
			name:     "icon with one space",
			meta:     mpris.Metadata{Title: "Song", Album: "Album", Artists: []string{"Artist"}},
			identity: "mpv",
			opts:     StatusOptions{SpacesAfterIcon: 1},
			expected: " Song // Album @ Artist",
		},
		{
			name:     "icon with three spaces",
			meta:     mpris.Metadata{Title: "Song", Album: "Album", Artists: []string{"Artist"}},
			identity: "Spotify",
			opts:     StatusOptions{SpacesAfterIcon: 3},
			expected: "   Song // Album @ Artist",
		},
		{
			name:     "no-icon wins over spaces-after-icon",
			meta:     mpris.Metadata{Title: "Song", Album: "Album", Artists: []string{"Artist"}},
			identity: "mpv",
			opts:     StatusOptions{NoIcon: true, SpacesAfterIcon: 4},
			expected: "Song // Album @ Artist",
		},
		{
			name:     "unrecognized identity gets no glyph but keeps spacing",
			meta:     mpris.Metadata{Title: "Song", Album: "Album", Artists: []string{"Artist"}},
			identity: "Lollypop",
			opts:     StatusOptions{SpacesAfterIcon: 1},
			expected: " Song // Album @ Artist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatStatus(&tt.meta, tt.identity, tt.opts)
			if got != tt.expected {
				t.Errorf("formatStatus() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestFormatStatusTruncation(t *testing.T) {
	// 40 + 4 + 30 + 3 + 8 = 85 characters before truncation.
	meta := mpris.Metadata{
		Title:   strings.Repeat("t", 40),
		Album:   strings.Repeat("a", 30),
		Artists: []string{strings.Repeat("x", 8)},
	}

	got := formatStatus(&meta, "mpv", StatusOptions{NoIcon: true})
	if len(got) != 70 {
		t.Fatalf("truncated line is %d characters, expected 70: %q", len(got), got)
	}
	full := strings.Repeat("t", 40) + " // " + strings.Repeat("a", 30) + " @ " + strings.Repeat("x", 8)
	if got != full[:67]+"..." {
		t.Errorf("truncated line = %q, expected first 67 characters plus ellipsis", got)
	}
}

func TestFormatStatusExactBudgetNotTruncated(t *testing.T) {
	meta := mpris.Metadata{
		Title:   strings.Repeat("t", 50),
		Album:   strings.Repeat("a", 10),
		Artists: []string{"abc"},
	}

	got := formatStatus(&meta, "mpv", StatusOptions{NoIcon: true})
	if len(got) != 70 {
		t.Fatalf("line is %d characters, expected exactly 70", len(got))
	}
	if strings.HasSuffix(got, "...") {
		t.Errorf("line of exactly 70 characters must not be truncated: %q", got)
	}
}
