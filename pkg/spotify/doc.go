// Package spotify provides a small client for the Spotify Web API,
// covering what a favorites workflow needs: reading the currently
// playing track and saving/removing tracks from the user's library.
//
// # Quick Start
//
// Create a client from an OAuth2 token obtained through the
// authorization-code + PKCE flow (see OAuthConfig):
//
//	client, err := spotify.NewClient(spotify.Config{
//	    ClientID: "your-client-id",
//	    Token:    token,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	current, err := client.Player().CurrentlyPlaying(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if current != nil && current.IsPlaying {
//	    fmt.Println("playing:", current.Item.Name)
//	}
//
// # Authentication
//
// The package does not run the browser flow itself; it exposes
// OAuthConfig so callers can drive golang.org/x/oauth2:
//
//  1. Build the config with OAuthConfig(clientID, redirectURL)
//  2. Send the user to AuthCodeURL with a PKCE challenge
//  3. Exchange the code for a token
//  4. Persist token.RefreshToken and rebuild tokens on later runs
//
// Token refresh is handled transparently by the oauth2 transport.
//
// # Polling
//
// Player().WaitForPlayback blocks until Spotify reports an actively
// playing track. It has no internal deadline: bound it with the
// context if you need bounded waiting.
package spotify
