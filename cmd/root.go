package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/topongo/playing/internal/errcode"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Persistent flag values
var (
	modeFlag     string
	logLevelFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playing",
	Short: "Manage your running multimedia players using MPRIS",
	Long: `playing is a controller for locally running media players that speak
MPRIS over the D-Bus session bus.

It knows a fixed ranking of players (mpv, vlc, firefox, Spotify, chrome),
issues transport commands to every running one, reports what is currently
playing, and can toggle the current Spotify track in your favorites.

Exit codes:
  0 - success (including the "No media" terminal state)
  1 - nothing to report (quiet status, favorites not eligible)
  2 - a D-Bus call failed
  3 - local I/O error
  4 - unclassified error
  5 - favorites service error
  8 - could not connect to the session bus`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch modeFlag {
		case "single", "multiple":
			return nil
		default:
			return fmt.Errorf("invalid mode %q (must be 'single' or 'multiple')", modeFlag)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). Every error is rendered to stderr as
// "error: <kind>: <cause>" and mapped to the kind's fixed exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var e *errcode.Error
		if !errors.As(err, &e) {
			e = errcode.New(errcode.Generic, err)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", e)
		os.Exit(e.Kind.Code())
	}
}

func init() {
	// --mode is accepted for compatibility but not consulted by any
	// action; 'multiple' semantics are reserved.
	rootCmd.PersistentFlags().StringVarP(&modeFlag, "mode", "m", "single", "dispatch mode (single|multiple), reserved")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "enable logging at the given level (debug, info, warn, error)")
}

// setupLogger creates a logger from the --log-level flag. Logging is
// disabled entirely when the flag is unset, so one-shot commands stay
// silent on stderr unless asked.
func setupLogger() zerolog.Logger {
	if logLevelFlag == "" {
		return zerolog.Nop()
	}

	level := zerolog.InfoLevel
	switch logLevelFlag {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
