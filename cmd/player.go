package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/topongo/playing/internal/player"
)

// playerCmd represents the player command
var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "List the identities of all running ranked players",
	Long: `List the identity string of every running player that appears in the
ranking, one per line, in ranking order.`,
	RunE: runPlayer,
}

func init() {
	rootCmd.AddCommand(playerCmd)
}

func runPlayer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	matches, cleanup, err := connectAndResolve(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	d := &player.Dispatcher{Out: os.Stdout}
	return d.ListIdentities(matches)
}
