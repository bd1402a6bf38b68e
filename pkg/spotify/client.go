package spotify

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the Spotify Web API endpoint.
	DefaultBaseURL = "https://api.spotify.com/v1"
)

// Config holds client configuration.
type Config struct {
	ClientID   string        // Required unless HTTPClient is set: Spotify application client ID
	Token      *oauth2.Token // Required unless HTTPClient is set: user token from the PKCE flow
	HTTPClient *http.Client  // Optional: pre-authenticated HTTP client (overrides ClientID/Token)
	BaseURL    string        // Optional: API base URL (defaults to the Spotify API, used for testing)
	Logger     Logger        // Optional: logger for debug output
}

// Logger is an optional interface for debug logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the entry point for Spotify Web API operations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     Logger

	player *PlayerService
	tracks *TracksService
}

// NewClient creates a Spotify API client.
//
// Either HTTPClient must be set directly, or ClientID and Token must be
// provided so the client can build a self-refreshing OAuth2 transport.
func NewClient(cfg Config) (*Client, error) {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		if cfg.ClientID == "" {
			return nil, fmt.Errorf("spotify: ClientID is required")
		}
		if cfg.Token == nil {
			return nil, fmt.Errorf("spotify: Token is required")
		}
		oauthCfg := OAuthConfig(cfg.ClientID, "")
		httpClient = oauthCfg.Client(context.Background(), cfg.Token)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     cfg.Logger,
	}
	c.player = &PlayerService{client: c}
	c.tracks = &TracksService{client: c}
	return c, nil
}

// Player returns the playback state service.
func (c *Client) Player() *PlayerService {
	return c.player
}

// Tracks returns the saved-tracks (library) service.
func (c *Client) Tracks() *TracksService {
	return c.tracks
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
