// breakout is a terminal brick breaker.
//
// Usage:
//
//	breakout [play]          - Play a game (default)
//	breakout serve           - Start SSH server for remote play
//	breakout runs            - Browse recorded runs
//	breakout runs rm <id>    - Delete a recorded run
//	breakout replay <id>     - Replay a recorded run
//
// Global flags:
//
//	--config <path>     - Config file (YAML or TOML)
//	--db <path>         - Run database path (default from config: ~/.breakout/runs.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// interactive marks commands that own the terminal; their logs go to
// --log-file or nowhere.
const interactive = "interactive"

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	closeLogFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce the ball, clear the bricks",
	Long: `Breakout is a single-level brick breaker for the terminal.

Clear all 24 bricks with the ball while keeping it above the bottom edge
with your paddle.

Available commands:
  play     - Play a game (default)
  serve    - Start SSH server for remote play
  runs     - Browse recorded runs
  replay   - Replay a recorded run

Examples:
  breakout
  breakout --config ./breakout.toml
  breakout serve --ssh :2222
  breakout runs
  breakout replay 3f2a --verify`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	Annotations:       map[string]string{interactive: "true"},
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup loads the config, applies flag overrides and attaches the config
// and logger to the command context.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	w, err := logWriter(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(w, cfg.LogLevel())
	logger.Debug("config loaded", "source", cfg.Source)

	ctx := withConfig(cmd.Context(), cfg)
	ctx = withLogger(ctx, logger)
	cmd.SetContext(ctx)
	return nil
}
