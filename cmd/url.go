package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/topongo/playing/internal/player"
)

// urlCmd represents the url command
var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the current track URL of every running known player",
	Long: `Print the metadata URL of the current track for every running player
whose identity is recognized, one per line (empty when the player
reports no URL).`,
	RunE: runURL,
}

func init() {
	rootCmd.AddCommand(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	matches, cleanup, err := connectAndResolve(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	d := &player.Dispatcher{Out: os.Stdout}
	return d.ListURLs(ctx, matches)
}
