// cubes is a sliding, merging cube puzzle for the terminal.
//
// Usage:
//
//	cubes play               - Play on a local terminal
//	cubes serve              - Start SSH server for remote play
//	cubes sim <moves...>     - Run a seeded move sequence headless and print the board
//	cubes runs               - Show the run log
//	cubes list               - List registered games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set run log path (default: ~/.arcade/cubes.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-cubes/internal/games/cubes"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// logger is configured from --log-level before any command runs
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cubes",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cubes",
	Short: "Cubes - push, merge and settle cubes in your terminal",
	Long: `Cubes is a grid puzzle: every push merges equal neighbours toward the
pushed edge, slides the rest, and drops a new cube once the board settles.

Available commands:
  play     - Play on this terminal
  serve    - Start SSH server for remote play
  sim      - Run a move sequence without a terminal UI
  runs     - Show logged runs
  list     - Show registered games

Examples:
  cubes play
  cubes play --speed fast --config ./my-cubes.yaml
  cubes serve --ssh :2222
  cubes sim --seed 7 left up right
  cubes runs`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: configureLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/cubes.db", "Path to run log database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
}

// configureLogger applies --log-level to the shared logger.
func configureLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return nil
}
