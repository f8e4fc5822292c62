// Package cubes adapts the grid simulation to the platform's Game interface.
package cubes

import (
	"math/rand"

	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/games/cubes/sim"
	"github.com/vovakirdan/tui-cubes/internal/registry"
)

// GameID is the registry and run-log identifier.
const GameID = "cubes"

// configPath stores the custom config path set via CLI
var configPath string

// speedPreset stores the settle speed set via CLI
var speedPreset config.SpeedPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSpeedPreset sets the settle speed preset. An unknown preset is rejected
// and the previous one kept.
func SetSpeedPreset(preset string) error {
	if preset != "" {
		if _, err := config.TicksPerCellForPreset(config.SpeedPreset(preset)); err != nil {
			return err
		}
	}
	speedPreset = config.SpeedPreset(preset)
	return nil
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game implements the cubes puzzle on top of sim.Sim.
type Game struct {
	fixed *config.CubesConfig // Used instead of the config search when set

	cfg   config.CubesConfig
	rng   *rand.Rand
	table *sim.TileTable
	sim   *sim.Sim

	last   sim.TickResult
	paused bool
	stuck  bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to cfg, ignoring config files.
func NewWithConfig(cfg config.CubesConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Cubes"
}

// Reset builds a fresh board seeded from rt.Seed and spawns the initial tiles.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.cfg = g.loadConfig()

	g.rng = rand.New(rand.NewSource(rt.Seed)) //#nosec G404 -- game randomness
	g.table = sim.NewTileTable()

	s, err := sim.New(g.cfg.Sim(), g.table, g.rng)
	if err != nil {
		// Only reachable with a fixed config that skipped validation
		g.cfg = config.DefaultCubesConfig()
		s, _ = sim.New(g.cfg.Sim(), g.table, g.rng)
	}
	g.sim = s

	for range g.cfg.Spawn.InitialTiles {
		g.sim.Spawn()
	}

	g.last = sim.TickResult{}
	g.paused = false
	g.stuck = false
}

// loadConfig resolves the config for a new board.
func (g *Game) loadConfig() config.CubesConfig {
	if g.fixed != nil {
		return *g.fixed
	}

	cfg, err := config.LoadCubes(configPath)
	if err != nil {
		cfg = config.DefaultCubesConfig()
	}
	if err := config.ApplySpeedPreset(&cfg, speedPreset); err != nil {
		// Fall back to the defaults with the same preset
		cfg = config.DefaultCubesConfig()
		_ = config.ApplySpeedPreset(&cfg, speedPreset)
	}
	return cfg
}

// Step advances the board by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.last = g.sim.Tick(frameInput(in))

	// Checked only on a quiet idle tick so a deferred spawn has landed
	g.stuck = g.last.Phase == sim.PhaseIdle && !g.last.Moved && !g.sim.CanMove()

	return core.StepResult{
		State:     g.State(),
		Animating: g.last.Phase == sim.PhaseBusy,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{MaxLevel: -1}
	}
	st := g.sim.Stats()
	return core.GameState{
		Moves:    st.Moves,
		Merges:   st.Merges,
		MaxLevel: g.sim.MaxLevel(),
		Stuck:    g.stuck,
		Paused:   g.paused,
	}
}

// BoardSize returns the number of cells per side.
func (g *Game) BoardSize() int {
	return g.cfg.Board.Size
}

// LastTick returns the result of the most recent simulation tick.
func (g *Game) LastTick() sim.TickResult {
	return g.last
}

// directionActions maps simulation directions to platform actions.
var directionActions = map[sim.Direction]core.Action{
	sim.DirUp:    core.ActionUp,
	sim.DirDown:  core.ActionDown,
	sim.DirLeft:  core.ActionLeft,
	sim.DirRight: core.ActionRight,
}

// ActionFor returns the platform action that pushes toward dir.
func ActionFor(dir sim.Direction) core.Action {
	return directionActions[dir]
}

// frameInput exposes an input frame as a sim.InputSource.
type frameInput core.InputFrame

// Pressed reports whether the action for dir is held this frame.
func (f frameInput) Pressed(dir sim.Direction) bool {
	a, ok := directionActions[dir]
	return ok && core.InputFrame(f).Has(a)
}
