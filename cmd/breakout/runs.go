package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded runs",
	Long: `List recorded runs, newest first.

In a terminal the runs are shown in a table; press Enter on a run to
replay it. When stdout is not a terminal, or with --plain, a plain list
is printed instead.

Examples:
  breakout runs
  breakout runs --limit 50 --plain`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{interactive: "true"},
	RunE:        runRuns,
}

var runsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a recorded run",
	Long: `Delete a recorded run and its input journal.

The id may be any unique prefix of the run id.

Examples:
  breakout runs rm 3f2a`,
	Args: cobra.ExactArgs(1),
	RunE: runRunsRm,
}

func init() {
	runsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 20, "Maximum number of runs to show")
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain list instead of the interactive table")
	runsCmd.AddCommand(runsRmCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg := configFromContext(cmd.Context())

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printRuns(runs)
		return nil
	}

	width, height := terminalSize()
	id, err := tui.RunRunsBrowser(runs, width, height)
	if err != nil || id == "" {
		return err
	}

	run, err := store.LoadRun(id)
	if err != nil {
		return err
	}
	return playReplay(cmd, run)
}

func printRuns(runs []storage.Run) {
	fmt.Println("Recorded runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-16s  %-12s  %-7s  %5s  %7s\n", "Run", "When", "Player", "Outcome", "Score", "Frames")
	fmt.Printf("  %-8s  %-16s  %-12s  %-7s  %5s  %7s\n", "---", "----", "------", "-------", "-----", "------")

	for _, r := range runs {
		id := r.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("  %-8s  %-16s  %-12s  %-7s  %5d  %7d\n",
			id, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Player, r.Outcome, r.Score, r.Frames)
	}
}

func runRunsRm(cmd *cobra.Command, args []string) error {
	cfg := configFromContext(cmd.Context())
	logger := loggerFromContext(cmd.Context())

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	// Resolve prefixes so the full id is reported
	run, err := store.LoadRun(args[0])
	if err != nil {
		return err
	}
	if err := store.DeleteRun(run.ID); err != nil {
		return err
	}

	logger.Debug("run deleted", "run", run.ID)
	fmt.Printf("Deleted run %s\n", run.ID)
	return nil
}
