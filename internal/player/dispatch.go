package player

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/topongo/playing/internal/errcode"
	"github.com/topongo/playing/internal/mpris"
)

// Operation is a transport command applied to every resolved match.
type Operation struct {
	kind    opKind
	seconds float64
}

type opKind int

const (
	opToggle opKind = iota
	opPlay
	opPause
	opNext
	opPrevious
	opRewind
	opForward
	opSeekRelative
	opSeek
)

// Toggle pauses a playing player and resumes any other.
func Toggle() Operation { return Operation{kind: opToggle} }

// Play resumes playback.
func Play() Operation { return Operation{kind: opPlay} }

// Pause pauses playback.
func Pause() Operation { return Operation{kind: opPause} }

// Next skips to the next track.
func Next() Operation { return Operation{kind: opNext} }

// Previous goes back to the previous track.
func Previous() Operation { return Operation{kind: opPrevious} }

// Rewind seeks backwards by the given number of seconds.
func Rewind(seconds float64) Operation {
	return Operation{kind: opRewind, seconds: seconds}
}

// Forward seeks forwards by the given number of seconds.
func Forward(seconds float64) Operation {
	return Operation{kind: opForward, seconds: seconds}
}

// SeekRelative seeks by the given signed number of seconds.
func SeekRelative(seconds float64) Operation {
	return Operation{kind: opSeekRelative, seconds: seconds}
}

// Seek seeks to an absolute position, in seconds from the start of the
// current track. Players that expose no track reference are skipped.
func Seek(seconds float64) Operation {
	return Operation{kind: opSeek, seconds: seconds}
}

// Dispatcher executes actions against the resolver's output. Out
// receives exactly the lines the user sees on stdout.
type Dispatcher struct {
	Out io.Writer
}

// Broadcast applies op to every match in order, with no early exit. A
// player matched through more than one ranked identity receives the
// command more than once. The first transport failure aborts the rest
// of the broadcast; effects already applied are not rolled back.
func (d *Dispatcher) Broadcast(ctx context.Context, matches []Match, op Operation) error {
	for _, m := range matches {
		if err := op.apply(ctx, m.Player); err != nil {
			return errcode.New(errcode.Bus, err)
		}
	}
	return nil
}

func (op Operation) apply(ctx context.Context, p RunningPlayer) error {
	switch op.kind {
	case opToggle:
		status, err := p.PlaybackStatus(ctx)
		if err != nil {
			return err
		}
		if status == mpris.StatusPlaying {
			return p.Pause(ctx)
		}
		return p.Play(ctx)
	case opPlay:
		return p.Play(ctx)
	case opPause:
		return p.Pause(ctx)
	case opNext:
		return p.Next(ctx)
	case opPrevious:
		return p.Previous(ctx)
	case opRewind:
		return p.SeekBy(ctx, -secondsToDuration(op.seconds))
	case opForward:
		return p.SeekBy(ctx, secondsToDuration(op.seconds))
	case opSeekRelative:
		return p.SeekBy(ctx, secondsToDuration(op.seconds))
	case opSeek:
		meta, err := p.Metadata(ctx)
		if err != nil {
			return err
		}
		if meta.TrackID == "" {
			// No addressable track, nothing to seek within.
			return nil
		}
		return p.SetPosition(ctx, meta.TrackID, secondsToDuration(op.seconds))
	default:
		return fmt.Errorf("unknown operation %d", op.kind)
	}
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// ListIdentities prints the raw identity string of every match, one per
// line, with no early exit.
func (d *Dispatcher) ListIdentities(matches []Match) error {
	for _, m := range matches {
		if _, err := fmt.Fprintln(d.Out, m.Player.Identity()); err != nil {
			return errcode.New(errcode.IO, err)
		}
	}
	return nil
}

// ListURLs prints the metadata URL of every match whose identity parses
// into a known player, one per line (empty when the player reports no
// URL), with no early exit.
func (d *Dispatcher) ListURLs(ctx context.Context, matches []Match) error {
	for _, m := range matches {
		if _, ok := Parse(m.Player.Identity()); !ok {
			continue
		}
		meta, err := m.Player.Metadata(ctx)
		if err != nil {
			return errcode.New(errcode.Bus, err)
		}
		if _, err := fmt.Fprintln(d.Out, meta.URL); err != nil {
			return errcode.New(errcode.IO, err)
		}
	}
	return nil
}

// Status walks the matches in order and reports on the first one whose
// playback status is Playing, without consuming the rest. When nothing
// is playing it prints "No media" instead.
//
// The returned bool is the process outcome: false maps to exit code 1.
// With Quiet set nothing is printed and the outcome is false on every
// path; without Quiet the outcome is always true. Counter-intuitive,
// but long-standing observed behavior that scripts depend on.
func (d *Dispatcher) Status(ctx context.Context, matches []Match, opts StatusOptions) (bool, error) {
	for _, m := range matches {
		status, err := m.Player.PlaybackStatus(ctx)
		if err != nil {
			return false, errcode.New(errcode.Bus, err)
		}
		if status != mpris.StatusPlaying {
			continue
		}
		if opts.Quiet {
			return false, nil
		}
		meta, err := m.Player.Metadata(ctx)
		if err != nil {
			return false, errcode.New(errcode.Bus, err)
		}
		line := formatStatus(meta, m.Player.Identity(), opts)
		if _, err := fmt.Fprintln(d.Out, line); err != nil {
			return false, errcode.New(errcode.IO, err)
		}
		return true, nil
	}

	if opts.Quiet {
		return false, nil
	}
	if _, err := fmt.Fprintln(d.Out, "No media"); err != nil {
		return false, errcode.New(errcode.IO, err)
	}
	return true, nil
}
