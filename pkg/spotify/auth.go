package spotify

import (
	"golang.org/x/oauth2"
)

// OAuth2 endpoints for the Spotify accounts service.
const (
	AuthURL  = "https://accounts.spotify.com/authorize"
	TokenURL = "https://accounts.spotify.com/api/token"
)

// Scopes required by this package: reading playback state and reading
// and modifying the user's saved tracks.
var Scopes = []string{
	"user-read-currently-playing",
	"user-read-playback-state",
	"user-library-read",
	"user-library-modify",
}

// OAuthConfig builds the oauth2 configuration for the
// authorization-code + PKCE flow. Spotify PKCE clients have no secret;
// the client ID alone identifies the application.
//
// Callers drive the flow themselves:
//
//	verifier := oauth2.GenerateVerifier()
//	url := cfg.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
//	// ... user authorizes, redirect delivers code ...
//	token, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
func OAuthConfig(clientID, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:    clientID,
		RedirectURL: redirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:  AuthURL,
			TokenURL: TokenURL,
		},
		Scopes: Scopes,
	}
}
