package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/topongo/playing/internal/config"
	"github.com/topongo/playing/internal/player"
)

// operationCmd groups the transport commands. Each one is broadcast to
// every running ranked player, highest priority first.
var operationCmd = &cobra.Command{
	Use:   "operation",
	Short: "Send a transport command to every running ranked player",
	Long: `Send a transport command to every running player in the ranking.

The command is applied to all matches, not just the highest-priority
one; a failure on one player aborts the rest of the broadcast.`,
}

// toggleCmd represents the toggle command
var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle play/pause on every running ranked player",
	Long:  `Toggle playback state. Players currently playing are paused, all others are resumed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(player.Toggle())
	},
}

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Resume playback on every running ranked player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(player.Play())
	},
}

// pauseCmd represents the pause command
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause playback on every running ranked player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(player.Pause())
	},
}

// nextCmd represents the next command
var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Skip to the next track on every running ranked player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(player.Next())
	},
}

// previousCmd represents the previous command
var previousCmd = &cobra.Command{
	Use:   "previous",
	Short: "Go to the previous track on every running ranked player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(player.Previous())
	},
}

// rewindCmd represents the rewind command
var rewindCmd = &cobra.Command{
	Use:   "rewind [seconds]",
	Short: "Seek backwards, by one second unless told otherwise",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := seekStep(args)
		if err != nil {
			return err
		}
		return runOperation(player.Rewind(seconds))
	},
}

// forwardCmd represents the forward command
var forwardCmd = &cobra.Command{
	Use:   "forward [seconds]",
	Short: "Seek forwards, by one second unless told otherwise",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := seekStep(args)
		if err != nil {
			return err
		}
		return runOperation(player.Forward(seconds))
	},
}

// seekRelativeCmd represents the seek-relative command
var seekRelativeCmd = &cobra.Command{
	Use:   "seek-relative <seconds>",
	Short: "Seek by a signed number of seconds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := parseSeconds(args[0])
		if err != nil {
			return err
		}
		return runOperation(player.SeekRelative(seconds))
	},
}

// seekCmd represents the seek command
var seekCmd = &cobra.Command{
	Use:   "seek <seconds>",
	Short: "Seek to an absolute position in the current track",
	Long: `Seek to an absolute position, in seconds from the start of the
current track. Players that expose no track reference are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := parseSeconds(args[0])
		if err != nil {
			return err
		}
		return runOperation(player.Seek(seconds))
	},
}

func init() {
	rootCmd.AddCommand(operationCmd)
	operationCmd.AddCommand(toggleCmd)
	operationCmd.AddCommand(playCmd)
	operationCmd.AddCommand(pauseCmd)
	operationCmd.AddCommand(nextCmd)
	operationCmd.AddCommand(previousCmd)
	operationCmd.AddCommand(rewindCmd)
	operationCmd.AddCommand(forwardCmd)
	operationCmd.AddCommand(seekRelativeCmd)
	operationCmd.AddCommand(seekCmd)
}

func runOperation(op player.Operation) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger := setupLogger()

	matches, cleanup, err := connectAndResolve(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Debug().Int("matches", len(matches)).Msg("resolved running players")

	d := &player.Dispatcher{Out: os.Stdout}
	return d.Broadcast(ctx, matches, op)
}

// parseSeconds parses a (possibly fractional) seconds argument.
func parseSeconds(arg string) (float64, error) {
	seconds, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seconds value %q", arg)
	}
	return seconds, nil
}

// seekStep resolves the optional seconds argument of rewind/forward,
// falling back to the configured default step.
func seekStep(args []string) (float64, error) {
	if len(args) > 0 {
		return parseSeconds(args[0])
	}
	cfg, err := config.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.SeekStep, nil
}
