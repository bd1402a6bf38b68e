// Package favorites orchestrates the "favorite this track" workflow
// against the Spotify library: detect-or-force eligibility, optionally
// wait for playback, then toggle the current track's saved state.
package favorites

import (
	"context"
	"fmt"
	"io"

	"github.com/topongo/playing/internal/errcode"
)

// Client is the favorites collaborator: one pending operation at a
// time, each a cooperative suspension point.
type Client interface {
	// Poll blocks until a track is actively playing. No internal
	// deadline; cancellation comes from the context.
	Poll(ctx context.Context) error

	// Toggle flips the favorite state of the currently playing track
	// and reports the direction: true when the track was added, false
	// when it was removed.
	Toggle(ctx context.Context) (added bool, err error)
}

// Coordinator runs the favorite action. It never touches the player
// resolver; its only bus-derived input is the eligibility flag.
type Coordinator struct {
	Out io.Writer

	// NewClient builds an authenticated favorites client. Called only
	// after the eligibility gate passes.
	NewClient func(ctx context.Context) (Client, error)
}

// Run executes the workflow. spotifyRunning reports whether a Spotify
// player was enumerable on the bus; always bypasses that gate.
//
// The returned bool is the process outcome: false (ineligible, no API
// call made) maps to exit code 1, true means the toggle succeeded
// regardless of direction.
func (c *Coordinator) Run(ctx context.Context, spotifyRunning, always, poll bool) (bool, error) {
	if !spotifyRunning && !always {
		if _, err := fmt.Fprintln(c.Out, "Spotify is not playing"); err != nil {
			return false, errcode.New(errcode.IO, err)
		}
		return false, nil
	}

	client, err := c.NewClient(ctx)
	if err != nil {
		return false, errcode.New(errcode.Favorites, err)
	}

	if poll {
		if err := client.Poll(ctx); err != nil {
			return false, errcode.New(errcode.Favorites, err)
		}
	}

	added, err := client.Toggle(ctx)
	if err != nil {
		return false, errcode.New(errcode.Favorites, err)
	}

	msg := "Removed current track from favorites"
	if added {
		msg = "Added current track to favorites"
	}
	if _, err := fmt.Fprintln(c.Out, msg); err != nil {
		return false, errcode.New(errcode.IO, err)
	}
	return true, nil
}
