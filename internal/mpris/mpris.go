// Package mpris is a thin consumer of the MPRIS D-Bus interface
// (org.mpris.MediaPlayer2) over the session bus. It only covers what the
// CLI needs: enumerating running players and issuing transport commands.
package mpris

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	// BusPrefix is the well-known name prefix every MPRIS player claims.
	BusPrefix = "org.mpris.MediaPlayer2."

	objectPath      = "/org/mpris/MediaPlayer2"
	rootInterface   = "org.mpris.MediaPlayer2"
	playerInterface = "org.mpris.MediaPlayer2.Player"
	propsInterface  = "org.freedesktop.DBus.Properties"
)

// Status is the MPRIS playback status of a player.
type Status int

const (
	StatusStopped Status = iota
	StatusPlaying
	StatusPaused
)

// String returns the MPRIS wire spelling of the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	default:
		return "Stopped"
	}
}

func parseStatus(s string) (Status, error) {
	switch s {
	case "Playing":
		return StatusPlaying, nil
	case "Paused":
		return StatusPaused, nil
	case "Stopped":
		return StatusStopped, nil
	default:
		return StatusStopped, fmt.Errorf("unknown playback status %q", s)
	}
}

// Metadata holds the subset of MPRIS track metadata the CLI consumes.
// Absent fields are zero values; TrackID is empty when the player does
// not expose an addressable track.
type Metadata struct {
	Title   string
	Album   string
	Artists []string
	URL     string
	TrackID dbus.ObjectPath
}

// Conn wraps a session bus connection.
type Conn struct {
	conn *dbus.Conn
}

// Connect opens the D-Bus session bus.
func Connect() (*Conn, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect to session bus: %w", err)
	}
	return &Conn{conn: conn}, nil
}

// Close closes the underlying bus connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// ListPlayers enumerates every MPRIS player currently registered on the
// bus and resolves its advertised identity. Order is bus-defined and
// must not be relied on.
func (c *Conn) ListPlayers(ctx context.Context) ([]*Player, error) {
	var names []string
	call := c.conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.ListNames", 0)
	if err := call.Store(&names); err != nil {
		return nil, fmt.Errorf("list bus names: %w", err)
	}

	var players []*Player
	for _, name := range names {
		if !strings.HasPrefix(name, BusPrefix) {
			continue
		}
		p := &Player{conn: c.conn, busName: name}
		identity, err := p.getStringProperty(ctx, rootInterface, "Identity")
		if err != nil {
			return nil, fmt.Errorf("read identity of %s: %w", name, err)
		}
		p.identity = identity
		players = append(players, p)
	}
	return players, nil
}

// Player is a single running MPRIS player on the bus.
type Player struct {
	conn     *dbus.Conn
	busName  string
	identity string
}

// Identity returns the human-readable name the player reports.
func (p *Player) Identity() string {
	return p.identity
}

// BusName returns the player's well-known bus name.
func (p *Player) BusName() string {
	return p.busName
}

func (p *Player) object() dbus.BusObject {
	return p.conn.Object(p.busName, dbus.ObjectPath(objectPath))
}

func (p *Player) getProperty(ctx context.Context, iface, prop string) (dbus.Variant, error) {
	var v dbus.Variant
	call := p.object().CallWithContext(ctx, propsInterface+".Get", 0, iface, prop)
	if err := call.Store(&v); err != nil {
		return dbus.Variant{}, fmt.Errorf("get %s.%s: %w", iface, prop, err)
	}
	return v, nil
}

func (p *Player) getStringProperty(ctx context.Context, iface, prop string) (string, error) {
	v, err := p.getProperty(ctx, iface, prop)
	if err != nil {
		return "", err
	}
	s, ok := v.Value().(string)
	if !ok {
		return "", fmt.Errorf("property %s.%s is not a string", iface, prop)
	}
	return s, nil
}

// PlaybackStatus queries the player's current transport state.
func (p *Player) PlaybackStatus(ctx context.Context) (Status, error) {
	s, err := p.getStringProperty(ctx, playerInterface, "PlaybackStatus")
	if err != nil {
		return StatusStopped, err
	}
	return parseStatus(s)
}

// Metadata queries the player's current track metadata.
func (p *Player) Metadata(ctx context.Context) (*Metadata, error) {
	v, err := p.getProperty(ctx, playerInterface, "Metadata")
	if err != nil {
		return nil, err
	}
	raw, ok := v.Value().(map[string]dbus.Variant)
	if !ok {
		return nil, fmt.Errorf("metadata of %s has unexpected type", p.busName)
	}
	return parseMetadata(raw), nil
}

func parseMetadata(raw map[string]dbus.Variant) *Metadata {
	meta := &Metadata{}
	if v, ok := raw["xesam:title"]; ok {
		if s, ok := v.Value().(string); ok {
			meta.Title = s
		}
	}
	if v, ok := raw["xesam:album"]; ok {
		if s, ok := v.Value().(string); ok {
			meta.Album = s
		}
	}
	if v, ok := raw["xesam:artist"]; ok {
		switch artists := v.Value().(type) {
		case []string:
			meta.Artists = artists
		case string:
			// Some players misreport the artist list as a scalar.
			meta.Artists = []string{artists}
		}
	}
	if v, ok := raw["xesam:url"]; ok {
		if s, ok := v.Value().(string); ok {
			meta.URL = s
		}
	}
	if v, ok := raw["mpris:trackid"]; ok {
		switch id := v.Value().(type) {
		case dbus.ObjectPath:
			meta.TrackID = id
		case string:
			meta.TrackID = dbus.ObjectPath(id)
		}
	}
	return meta
}

func (p *Player) call(ctx context.Context, method string, args ...interface{}) error {
	call := p.object().CallWithContext(ctx, playerInterface+"."+method, 0, args...)
	if call.Err != nil {
		return fmt.Errorf("%s on %s: %w", method, p.busName, call.Err)
	}
	return nil
}

// Play starts or resumes playback.
func (p *Player) Play(ctx context.Context) error {
	return p.call(ctx, "Play")
}

// Pause pauses playback.
func (p *Player) Pause(ctx context.Context) error {
	return p.call(ctx, "Pause")
}

// Next skips to the next track.
func (p *Player) Next(ctx context.Context) error {
	return p.call(ctx, "Next")
}

// Previous goes back to the previous track.
func (p *Player) Previous(ctx context.Context) error {
	return p.call(ctx, "Previous")
}

// SeekBy seeks relative to the current position. MPRIS Seek takes the
// offset in microseconds; negative offsets seek backwards.
func (p *Player) SeekBy(ctx context.Context, offset time.Duration) error {
	return p.call(ctx, "Seek", offset.Microseconds())
}

// SetPosition seeks to an absolute position within the given track.
func (p *Player) SetPosition(ctx context.Context, track dbus.ObjectPath, position time.Duration) error {
	return p.call(ctx, "SetPosition", track, position.Microseconds())
}
