package cmd

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/topongo/playing/internal/config"
	"github.com/topongo/playing/pkg/spotify"
)

// authCallbackPort is the port of the local server that receives the
// OAuth redirect. It must match a redirect URI registered for the
// Spotify application.
const authCallbackPort = 8916

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with Spotify",
	Long: `Authenticate with Spotify to enable the favorite command.

This command will guide you through the Spotify authorization flow:
1. You'll be prompted to enter your Spotify application client ID
2. A browser URL will be provided for you to authorize the application
3. After authorization, a refresh token will be saved to your config file

Create an application at https://developer.spotify.com/dashboard and
register http://127.0.0.1:8916/callback as a redirect URI.`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Spotify Authentication")
	fmt.Println("======================")
	fmt.Println()
	fmt.Println("You can create an application at: https://developer.spotify.com/dashboard")
	fmt.Println()

	// Check if we already have a client ID
	if cfg.Spotify.ClientID != "" {
		fmt.Printf("Found existing client ID: %s\n", cfg.Spotify.ClientID)
		fmt.Print("\nUse existing client ID? [Y/n]: ")
		response, err := reader.ReadString('\n')
		if err != nil {
			response = "y"
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "" && response != "y" && response != "yes" {
			cfg.Spotify.ClientID = ""
		}
	}

	// Prompt for client ID if not set
	if cfg.Spotify.ClientID == "" {
		fmt.Print("Enter your Spotify client ID: ")
		clientID, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read client ID: %w", err)
		}
		cfg.Spotify.ClientID = strings.TrimSpace(clientID)
	}

	if cfg.Spotify.ClientID == "" {
		return fmt.Errorf("client ID is required")
	}

	// Start the local callback server before handing out the URL
	redirectURL := fmt.Sprintf("http://127.0.0.1:%d/callback", authCallbackPort)
	srv, err := startAuthServer()
	if err != nil {
		return fmt.Errorf("failed to start callback server: %w", err)
	}
	defer srv.shutdown()

	oauthCfg := spotify.OAuthConfig(cfg.Spotify.ClientID, redirectURL)
	verifier := oauth2.GenerateVerifier()
	state := oauth2.GenerateVerifier()
	authURL := oauthCfg.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))

	fmt.Println("\nPlease visit this URL to authorize playing:")
	fmt.Printf("\n  %s\n\n", authURL)
	fmt.Println("Waiting for authorization...")

	var code string
	select {
	case result := <-srv.results:
		if result.state != state {
			return fmt.Errorf("authorization failed: state mismatch")
		}
		if result.code == "" {
			return fmt.Errorf("authorization failed: no code received")
		}
		code = result.code
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timed out waiting for authorization")
	}

	// Exchange the code for a token
	token, err := oauthCfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if token.RefreshToken == "" {
		return fmt.Errorf("spotify did not return a refresh token")
	}

	// Save the refresh token to config
	cfg.Spotify.RefreshToken = token.RefreshToken
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath := config.GetConfigDir()
	fmt.Printf("\n✓ Authentication successful!\n")
	fmt.Printf("✓ Refresh token saved to %s/config.yaml\n", configPath)
	fmt.Println("\nYou can now use 'playing favorite' to save the current track.")

	return nil
}

// authResult carries the query parameters delivered to the callback.
type authResult struct {
	code  string
	state string
}

// authServer is a one-shot HTTP server for the OAuth redirect.
type authServer struct {
	server  *http.Server
	results chan authResult
}

func startAuthServer() (*authServer, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", authCallbackPort))
	if err != nil {
		return nil, err
	}

	results := make(chan authResult, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		result := authResult{
			code:  r.URL.Query().Get("code"),
			state: r.URL.Query().Get("state"),
		}

		w.Header().Set("Content-Type", "text/html")
		if result.code != "" {
			fmt.Fprint(w, "<html><body><h1>Authorization successful</h1><p>You can close this window and return to the terminal.</p></body></html>")
		} else {
			fmt.Fprint(w, "<html><body><h1>Authorization failed</h1><p>No code received. Please try again.</p></body></html>")
		}

		select {
		case results <- result:
		default:
		}
	})

	srv := &authServer{
		server:  &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second},
		results: results,
	}
	go func() { _ = srv.server.Serve(listener) }()
	return srv, nil
}

func (s *authServer) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.server.Shutdown(ctx)
}
