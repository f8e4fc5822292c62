package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/games/cubes"
	"github.com/vovakirdan/tui-cubes/internal/platform/tui"
	"github.com/vovakirdan/tui-cubes/internal/registry"
	"github.com/vovakirdan/tui-cubes/internal/storage"
)

var (
	flagConfig string
	flagSpeed  string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play on this terminal",
	Long: `Start a board on this terminal. The game defaults to "cubes".

Controls:
  Arrows/WASD/HJKL - Push every cube toward an edge
  P/Esc            - Pause
  R                - New board
  ?                - Toggle full help
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Input is ignored while cubes are settling. A run is logged when the board
has no moves left, on restart and on quit.

Speed options:
  slow, normal, fast, instant - ticks a cube needs to cross one cell

Examples:
  cubes play
  cubes play --speed fast
  cubes play --seed 42 --config ./my-cubes.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addBoardFlags(playCmd)
}

// addBoardFlags registers the flags that shape a board.
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom cubes config YAML")
	cmd.Flags().StringVar(&flagSpeed, "speed", "", "Settle speed preset: slow, normal, fast, instant")
}

// loadBoardConfig validates --config and --speed and hands them to the game.
func loadBoardConfig() (config.CubesConfig, error) {
	cfg, err := config.LoadCubes(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(flagSpeed)); err != nil {
		return cfg, err
	}
	if err := cubes.SetSpeedPreset(flagSpeed); err != nil {
		return cfg, err
	}
	cubes.SetConfigPath(flagConfig)
	return cfg, nil
}

func gameArg(args []string) (string, error) {
	gameID := cubes.GameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown game %q (run 'cubes list' to see available games)", gameID)
	}
	return gameID, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	boardCfg, err := loadBoardConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI, so logs go to a file
	playLogger, closeLog := fileLogger()
	defer closeLog()
	playLogger.Info("starting board", "game", gameID, "size", boardCfg.Board.Size, "step", boardCfg.Board.Step)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run log, runs will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, playLogger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// fileLogger opens ~/.arcade/cubes.log at the configured level. If the file
// cannot be opened, logs are discarded.
func fileLogger() (*log.Logger, func()) {
	discard := log.New(io.Discard)

	home, err := os.UserHomeDir()
	if err != nil {
		return discard, func() {}
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "cubes.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, func() {}
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "cubes",
		Level:           logger.GetLevel(),
	})
	return l, func() { f.Close() }
}
