package spotify

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// PlayerService provides read access to the user's playback state.
type PlayerService struct {
	client *Client
}

// CurrentlyPlaying returns the track the user is currently playing.
// It returns (nil, nil) when Spotify reports no active playback at all
// (HTTP 204); check IsPlaying to distinguish playing from paused.
func (s *PlayerService) CurrentlyPlaying(ctx context.Context) (*CurrentlyPlaying, error) {
	var current CurrentlyPlaying
	ok, err := s.client.doJSON(ctx, http.MethodGet, "/me/player/currently-playing", nil, &current)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &current, nil
}

// DefaultPollInterval is the delay between playback polls in
// WaitForPlayback.
const DefaultPollInterval = 2 * time.Second

// WaitForPlayback polls the currently-playing endpoint until Spotify
// reports an actively playing track, and returns it. Temporary API
// errors (rate limiting, server errors) are absorbed and polling
// continues; anything else aborts.
//
// There is no internal deadline: cancellation is the caller's context.
// A non-positive interval falls back to DefaultPollInterval.
func (s *PlayerService) WaitForPlayback(ctx context.Context, interval time.Duration) (*CurrentlyPlaying, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		current, err := s.CurrentlyPlaying(ctx)
		if err != nil {
			var apiErr *Error
			if errors.As(err, &apiErr) && apiErr.Temporary() {
				s.client.logDebugf("spotify: transient poll error: %v", err)
			} else {
				return nil, err
			}
		} else if current != nil && current.IsPlaying && current.Item != nil {
			return current, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
