package player

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/topongo/playing/internal/mpris"
)

// StatusOptions controls the now-playing line.
type StatusOptions struct {
	// NoIcon suppresses the leading glyph and its trailing spaces.
	NoIcon bool
	// SpacesAfterIcon is the exact number of spaces between the glyph
	// and the title.
	SpacesAfterIcon uint
	// Quiet suppresses all output; only the exit code carries meaning.
	Quiet bool
}

// DefaultSpacesAfterIcon separates the glyph from the title unless
// overridden.
const DefaultSpacesAfterIcon = 1

// maxStatusWidth is the display-column budget for the status line.
// Longer lines are cut three columns short and get an ellipsis.
const maxStatusWidth = 70

// formatStatus renders the one-line now-playing summary. Missing title,
// album, or artist fall back to "Unknown"; the artist is the first of
// the reported list. The icon comes from parsing the bus identity, so
// unrecognized players get no glyph (but keep the configured spacing).
func formatStatus(meta *mpris.Metadata, identity string, opts StatusOptions) string {
	title := meta.Title
	if title == "" {
		title = "Unknown"
	}
	album := meta.Album
	if album == "" {
		album = "Unknown"
	}
	artist := "Unknown"
	if len(meta.Artists) > 0 {
		artist = meta.Artists[0]
	}

	var prefix string
	if !opts.NoIcon {
		icon := ""
		if id, ok := Parse(identity); ok {
			icon = id.Icon()
		}
		prefix = icon + strings.Repeat(" ", int(opts.SpacesAfterIcon))
	}

	line := prefix + title + " // " + album + " @ " + artist
	if runewidth.StringWidth(line) > maxStatusWidth {
		return runewidth.Truncate(line, maxStatusWidth-3, "") + "..."
	}
	return line
}
