package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/games/cubes"
	"github.com/vovakirdan/tui-cubes/internal/games/cubes/sim"
)

// maxSettleTicks bounds how long one move may take to settle.
const maxSettleTicks = 1 << 16

var flagSimVerbose bool

var simCmd = &cobra.Command{
	Use:   "sim <moves...>",
	Short: "Run a move sequence without a terminal UI",
	Long: `Play a sequence of pushes on a seeded board and print the result.

Moves are up, down, left, right (or u, d, l, r). A run of letters such as
"lurd" is split into single moves. Each move waits for the board to settle
and for the next cube to drop before the following one is pressed.

Levels are printed per cell, "." marks an empty cell.

Examples:
  cubes sim --seed 7 left left up
  cubes sim --seed 7 -v lurdlurd`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSim,
}

func init() {
	addBoardFlags(simCmd)
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Print the board after every move")
}

func runSim(_ *cobra.Command, args []string) error {
	moves, err := parseMoves(args)
	if err != nil {
		return err
	}

	boardCfg, err := loadBoardConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := cubes.NewWithConfig(boardCfg)
	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: seed})
	logger.Debug("board ready", "seed", seed, "size", boardCfg.Board.Size)

	for i, dir := range moves {
		in := core.NewInputFrame()
		in.Set(cubes.ActionFor(dir))
		game.Step(in)

		ticks, err := settle(game)
		if err != nil {
			return err
		}

		last := game.Snapshot()
		logger.Debug("move", "n", i+1, "dir", dir, "ticks", ticks, "merges", last.Merges)
		if flagSimVerbose {
			fmt.Printf("%d. %s\n%s\n", i+1, dir, FormatBoard(last.Levels))
		}
	}

	snap := game.Snapshot()
	if !flagSimVerbose {
		fmt.Println(FormatBoard(snap.Levels))
	}
	fmt.Printf("seed=%d moves=%d merges=%d spawns=%d ticks=%d stuck=%t\n",
		seed, snap.Moves, snap.Merges, snap.Spawns, snap.Tick, snap.Stuck)
	return nil
}

// settle steps without input until a tick is no longer animating. That tick
// also performs the deferred spawn.
func settle(game *cubes.Game) (int, error) {
	empty := core.NewInputFrame()
	for n := 1; n <= maxSettleTicks; n++ {
		if !game.Step(empty).Animating {
			return n, nil
		}
	}
	return 0, fmt.Errorf("board did not settle within %d ticks", maxSettleTicks)
}

// parseMoves accepts direction names or runs of direction letters.
func parseMoves(args []string) ([]sim.Direction, error) {
	var moves []sim.Direction
	for _, arg := range args {
		if dir, err := sim.ParseDirection(arg); err == nil {
			moves = append(moves, dir)
			continue
		}
		for _, r := range arg {
			dir, err := sim.ParseDirection(string(r))
			if err != nil {
				return nil, fmt.Errorf("invalid move %q: %w", arg, err)
			}
			moves = append(moves, dir)
		}
	}
	return moves, nil
}

// FormatBoard renders a [y][x] level grid as text.
func FormatBoard(levels [][]int) string {
	var sb strings.Builder
	for y, row := range levels {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, level := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if level < 0 {
				sb.WriteString(" .")
				continue
			}
			fmt.Fprintf(&sb, "%2d", level)
		}
	}
	return sb.String()
}
