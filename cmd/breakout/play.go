package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Breakout.

Controls (defaults, configurable under "keys"):
  Left/A/H     - Move paddle left
  Right/D/L    - Move paddle right
  Space/P      - Pause / continue
  R            - Restart (after the game ended)
  E/Q/Ctrl+C   - Exit

Every game is recorded; see 'breakout runs'.

Examples:
  breakout play
  breakout play --config ./breakout.yaml --log-file breakout.log`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{interactive: "true"},
	RunE:        runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	width, height := terminalSize()

	// Play without recording if the database is unavailable
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open run database, runs will not be saved", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Player: "local",
	}, width, height)
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
