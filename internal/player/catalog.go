// Package player implements the player resolution and action-dispatch
// engine: matching ranked identities against the bus, executing actions
// against the matches, and formatting the now-playing status line.
package player

// Identity is a recognized media player identity. The zero value is not
// meaningful; use the package variables or Custom.
type Identity struct {
	kind kind
	name string
}

type kind int

const (
	kindCustom kind = iota
	kindMpv
	kindVlc
	kindFirefox
	kindSpotify
	kindChrome
)

// Known identities. The name is the exact string the player reports as
// its MPRIS identity; matching is case-sensitive.
var (
	Mpv     = Identity{kindMpv, "mpv"}
	Vlc     = Identity{kindVlc, "vlc"}
	Firefox = Identity{kindFirefox, "firefox"}
	Spotify = Identity{kindSpotify, "Spotify"}
	Chrome  = Identity{kindChrome, "chrome"}
)

// Custom wraps an arbitrary identity string. Custom identities never
// carry an icon and are excluded from favorites and URL special-casing.
func Custom(name string) Identity {
	return Identity{kindCustom, name}
}

// catalog is the single source of truth for parsing bus identity
// strings and looking up display icons (Nerd Font glyphs).
var catalog = []struct {
	id   Identity
	icon string
}{
	{Mpv, ""},
	{Vlc, "嗢"},
	{Firefox, ""},
	{Spotify, ""},
	{Chrome, ""},
}

// String returns the canonical bus identity string.
func (id Identity) String() string {
	return id.name
}

// Icon returns the identity's display glyph, or the empty string for
// Custom identities.
func (id Identity) Icon() string {
	for _, e := range catalog {
		if e.id.kind == id.kind {
			return e.icon
		}
	}
	return ""
}

// IsSpotify reports whether the identity is the Spotify player.
func (id Identity) IsSpotify() bool {
	return id.kind == kindSpotify
}

// Parse maps a bus identity string to a known Identity. It returns
// false for unrecognized strings; those are never assigned an icon.
func Parse(s string) (Identity, bool) {
	for _, e := range catalog {
		if e.id.name == s {
			return e.id, true
		}
	}
	return Identity{}, false
}

// Ranking returns the fixed priority ordering of player identities. It
// decides which running player's status is reported and the order in
// which broadcast actions visit matches. Built fresh per invocation.
func Ranking() []Identity {
	return []Identity{Custom("mpv"), Vlc, Firefox, Spotify, Chrome}
}
