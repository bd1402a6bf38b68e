package favorites

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/topongo/playing/pkg/spotify"
)

// spotifyClient implements Client on top of the Spotify Web API.
type spotifyClient struct {
	api          *spotify.Client
	pollInterval time.Duration
}

// Credentials is what NewSpotifyClient needs from configuration.
type Credentials struct {
	ClientID     string
	RefreshToken string
}

// NewSpotifyClient builds an authenticated favorites client from stored
// credentials. The refresh token comes from `playing auth`; the access
// token is minted (and re-minted) by the oauth2 transport.
func NewSpotifyClient(creds Credentials, pollInterval time.Duration, logger zerolog.Logger) (Client, error) {
	if creds.ClientID == "" || creds.RefreshToken == "" {
		return nil, fmt.Errorf("spotify credentials not configured, run 'playing auth' first")
	}

	api, err := spotify.NewClient(spotify.Config{
		ClientID: creds.ClientID,
		Token: &oauth2.Token{
			RefreshToken: creds.RefreshToken,
			// Already expired so the first request refreshes.
			Expiry: time.Now().Add(-time.Minute),
		},
		Logger: debugLogger{logger},
	})
	if err != nil {
		return nil, err
	}

	return &spotifyClient{api: api, pollInterval: pollInterval}, nil
}

func (s *spotifyClient) Poll(ctx context.Context) error {
	_, err := s.api.Player().WaitForPlayback(ctx, s.pollInterval)
	return err
}

func (s *spotifyClient) Toggle(ctx context.Context) (bool, error) {
	current, err := s.api.Player().CurrentlyPlaying(ctx)
	if err != nil {
		return false, err
	}
	if current == nil || current.Item == nil || current.Item.ID == "" {
		return false, fmt.Errorf("no track currently playing")
	}

	id := current.Item.ID
	saved, err := s.api.Tracks().Contains(ctx, id)
	if err != nil {
		return false, err
	}

	if saved {
		if err := s.api.Tracks().Remove(ctx, id); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.api.Tracks().Save(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// debugLogger adapts zerolog to the spotify.Logger interface.
type debugLogger struct {
	log zerolog.Logger
}

func (l debugLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}
