package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-cubes/internal/platform/tui"
	"github.com/vovakirdan/tui-cubes/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsTUI   bool
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [game]",
	Short: "Show logged runs",
	Long: `Display the newest logged runs and the best one.

The best run has the highest level, then the most merges, then the fewest moves.

Examples:
  cubes runs
  cubes runs --limit 25
  cubes runs --tui
  cubes runs --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse runs in an interactive table")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all logged runs for the game")
}

func runRuns(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		logger.Info("run log cleared", "game", gameID)
		return nil
	}

	if flagRunsTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunRunsViewer(store, gameID, width, height)
	}

	return printRuns(store, gameID)
}

func printRuns(store *storage.Store, gameID string) error {
	runs, err := store.RecentRuns(gameID, flagRunsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Runs - %s\n\n", gameID)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'cubes play %s' to log the first one!\n", gameID)
		return nil
	}

	header := []string{"#", "Top", "Merges", "Moves", "Board", "End", "Date"}
	fmt.Printf("  %-6s  %-4s  %-7s  %-6s  %-6s  %-6s  %s\n", toAny(header)...)
	for _, row := range tui.RunRows(runs) {
		fmt.Printf("  %-6s  %-4s  %-7s  %-6s  %-6s  %-6s  %s\n", toAny(row)...)
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	best, err := store.BestRun(gameID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Total: %d runs, %d moves, %.1f merges per run\n", stats.Runs, stats.TotalMoves, stats.AvgMerges)
	if best != nil {
		fmt.Printf("Best: level %d, %d merges in %d moves (run %d)\n", best.MaxLevel, best.Merges, best.Moves, best.ID)
	}
	return nil
}

func toAny[S ~[]string](cells S) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
