package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/replay"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var flagVerify bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a recorded run",
	Long: `Replay a recorded run in the terminal.

The id may be any unique prefix of the run id (see 'breakout runs').

Controls:
  Space/P        - Pause / continue
  +/Right        - Faster
  -/Left         - Slower
  Q/E/Esc        - Exit

With --verify the run is replayed headless and the final state is
compared with the recording.

Examples:
  breakout replay 3f2a
  breakout replay 3f2a --verify`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{interactive: "true"},
	RunE:        runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagVerify, "verify", false, "Replay headless and check the final state")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg := configFromContext(cmd.Context())

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	run, err := store.LoadRun(args[0])
	if err != nil {
		if errors.Is(err, storage.ErrRunNotFound) {
			return fmt.Errorf("%w (run 'breakout runs' to list recorded runs)", err)
		}
		return err
	}

	if flagVerify {
		return verifyRun(cmd, run)
	}
	return playReplay(cmd, run)
}

// playReplay shows run in the terminal at the configured tick rate.
func playReplay(cmd *cobra.Command, run *storage.Run) error {
	cfg := configFromContext(cmd.Context())
	loggerFromContext(cmd.Context()).Info("replaying run", "game", run.GameID, "run", run.ID, "frames", run.Frames)

	width, height := terminalSize()
	return tui.RunReplay(run, cfg.Tick, width, height)
}

func verifyRun(cmd *cobra.Command, run *storage.Run) error {
	snap, err := replay.Verify(run)
	if err != nil {
		return err
	}

	loggerFromContext(cmd.Context()).Debug("run verified", "run", run.ID, "hash", fmt.Sprintf("%016x", snap.Hash()))
	fmt.Printf("Run %s verified: %s, score %d after %d frames (%d ticks)\n",
		run.ID, run.Outcome, snap.Score, snap.Frames, snap.Ticks)
	return nil
}
