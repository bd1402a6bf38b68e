package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/topongo/playing/internal/player"
)

var (
	statusNoIcon bool
	statusSpaces uint
	statusQuiet  bool
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what is currently playing",
	Long: `Print a one-line summary of the highest-ranked player that is
currently playing: an icon for the player, then title, album and
artist. Prints "No media" when nothing is playing.

With --quiet nothing is printed and the command exits 1, whether or
not something is playing. This polarity is long-standing observed
behavior and is kept for script compatibility.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVar(&statusNoIcon, "no-icon", false, "omit the player icon")
	statusCmd.Flags().UintVar(&statusSpaces, "spaces-after-icon", player.DefaultSpacesAfterIcon, "spaces between the icon and the title")
	statusCmd.Flags().BoolVarP(&statusQuiet, "quiet", "q", false, "print nothing, report via the exit code")
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	matches, cleanup, err := connectAndResolve(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	d := &player.Dispatcher{Out: os.Stdout}
	ok, err := d.Status(ctx, matches, player.StatusOptions{
		NoIcon:          statusNoIcon,
		SpacesAfterIcon: statusSpaces,
		Quiet:           statusQuiet,
	})
	if err != nil {
		return err
	}
	if !ok {
		os.Exit(1)
	}
	return nil
}
