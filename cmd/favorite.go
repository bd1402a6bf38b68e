package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/topongo/playing/internal/config"
	"github.com/topongo/playing/internal/errcode"
	"github.com/topongo/playing/internal/favorites"
	"github.com/topongo/playing/internal/mpris"
	"github.com/topongo/playing/internal/player"
)

var (
	favoritePoll   bool
	favoriteAlways bool
)

// favoriteCmd represents the favorite command
var favoriteCmd = &cobra.Command{
	Use:   "favorite",
	Short: "Toggle the currently playing Spotify track in your favorites",
	Long: `Add the currently playing Spotify track to your saved tracks, or
remove it if it is already saved.

By default this runs only when a Spotify player is found on the bus;
--always skips that check. With --poll the command waits until Spotify
reports an actively playing track before toggling. Polling has no
built-in deadline: interrupt the process to stop waiting.

Requires Spotify credentials; run 'playing auth' once to set them up.`,
	RunE: runFavorite,
}

func init() {
	rootCmd.AddCommand(favoriteCmd)

	favoriteCmd.Flags().BoolVarP(&favoritePoll, "poll", "p", false, "wait until a track is actively playing")
	favoriteCmd.Flags().BoolVar(&favoriteAlways, "always", false, "skip the running-Spotify check")
}

func runFavorite(cmd *cobra.Command, args []string) error {
	// Cancellation is process-level only: SIGINT/SIGTERM aborts the
	// whole invocation, including an in-flight poll.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := setupLogger()

	spotifyRunning := false
	if !favoriteAlways {
		running, err := detectSpotify(ctx)
		if err != nil {
			return err
		}
		spotifyRunning = running
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	coordinator := &favorites.Coordinator{
		Out: os.Stdout,
		NewClient: func(ctx context.Context) (favorites.Client, error) {
			return favorites.NewSpotifyClient(
				favorites.Credentials{
					ClientID:     cfg.Spotify.ClientID,
					RefreshToken: cfg.Spotify.RefreshToken,
				},
				time.Duration(cfg.PollInterval)*time.Second,
				logger,
			)
		},
	}

	ok, err := coordinator.Run(ctx, spotifyRunning, favoriteAlways, favoritePoll)
	if err != nil {
		return err
	}
	if !ok {
		os.Exit(1)
	}
	return nil
}

// detectSpotify reports whether a player identified as Spotify is
// enumerable on the session bus.
func detectSpotify(ctx context.Context) (bool, error) {
	conn, err := mpris.Connect()
	if err != nil {
		return false, errcode.New(errcode.BusInit, err)
	}
	defer func() { _ = conn.Close() }()

	running, err := conn.ListPlayers(ctx)
	if err != nil {
		return false, errcode.New(errcode.Bus, err)
	}

	for _, p := range running {
		if id, ok := player.Parse(p.Identity()); ok && id.IsSpotify() {
			return true, nil
		}
	}
	return false, nil
}
