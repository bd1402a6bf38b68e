package player

import (
	"context"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/topongo/playing/internal/mpris"
)

// RunningPlayer is the view of a bus player the resolver and dispatcher
// consume. *mpris.Player satisfies it; tests use fakes.
type RunningPlayer interface {
	Identity() string
	PlaybackStatus(ctx context.Context) (mpris.Status, error)
	Metadata(ctx context.Context) (*mpris.Metadata, error)
	Play(ctx context.Context) error
	Pause(ctx context.Context) error
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	SeekBy(ctx context.Context, offset time.Duration) error
	SetPosition(ctx context.Context, track dbus.ObjectPath, position time.Duration) error
}

// Match pairs a ranked identity with a running player whose reported
// identity equals it.
type Match struct {
	Ranked Identity
	Player RunningPlayer
}

// Resolve walks the ranking in order and, for each entry, emits a match
// for every snapshot player whose identity string is exactly equal to
// the entry's canonical string. A ranked identity may yield zero, one,
// or (if the bus reports duplicate identities) multiple matches.
//
// Matching only compares identity strings already captured during
// enumeration; no bus calls happen here. Status and metadata queries
// are made by consumers, which are free to stop partway through the
// returned sequence.
func Resolve(ranking []Identity, snapshot []RunningPlayer) []Match {
	var matches []Match
	for _, id := range ranking {
		for _, p := range snapshot {
			if p.Identity() == id.String() {
				matches = append(matches, Match{Ranked: id, Player: p})
			}
		}
	}
	return matches
}
