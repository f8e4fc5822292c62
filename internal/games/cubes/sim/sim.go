package sim

import (
	"fmt"
	"math"
)

// Config holds the simulation parameters.
type Config struct {
	Width    int     // Cells per row
	Height   int     // Cells per column
	Spacing  float64 // World distance between neighbouring cells
	Step     float64 // Visual distance travelled per tick on each axis
	MaxLevel int     // Highest level a merge can reach

	// RequireChange suppresses the spawn after a move that changed nothing.
	RequireChange bool
}

// MaxTicksPerCell bounds spacing/step so validation and settling stay cheap.
const MaxTicksPerCell = 1 << 12

// DefaultConfig returns a 4x4 board with a 1:4 step to spacing ratio and
// three merge steps.
func DefaultConfig() Config {
	return Config{
		Width:    4,
		Height:   4,
		Spacing:  2,
		Step:     0.5,
		MaxLevel: 3,
	}
}

// Validate checks that the configuration can settle.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("sim: invalid grid size %dx%d", c.Width, c.Height)
	}
	if c.Spacing <= 0 {
		return fmt.Errorf("sim: spacing must be positive, got %v", c.Spacing)
	}
	if c.Step <= 0 {
		return fmt.Errorf("sim: step must be positive, got %v", c.Step)
	}
	// Arrival is detected by exact equality, so every trip between two cells
	// must land on the destination in float arithmetic.
	if ratio := c.Spacing / c.Step; ratio != math.Trunc(ratio) || ratio > MaxTicksPerCell {
		return fmt.Errorf("sim: step %v does not evenly divide spacing %v", c.Step, c.Spacing)
	}
	if !c.landsOnEveryCell() {
		return fmt.Errorf("sim: step %v does not evenly divide spacing %v on every cell of a %dx%d grid",
			c.Step, c.Spacing, c.Width, c.Height)
	}
	if c.MaxLevel < 0 {
		return fmt.Errorf("sim: max level must not be negative, got %d", c.MaxLevel)
	}
	return nil
}

// landsOnEveryCell replays Settle's per-axis stepping between every pair of
// cell offsets and reports whether each trip ends exactly on its target.
func (c Config) landsOnEveryCell() bool {
	n := max(c.Width, c.Height)
	limit := (n - 1) * int(c.Spacing/c.Step)
	for from := range n {
		for to := range n {
			pos := float64(from) * c.Spacing
			target := float64(to) * c.Spacing
			for i := 0; pos != target; i++ {
				if i == limit {
					return false
				}
				pos = approach(pos, target, c.Step)
			}
		}
	}
	return true
}

// Sim is the grid simulation. It is single-threaded: all state changes
// happen inside Tick or the explicit operations a host calls between ticks.
type Sim struct {
	cfg      Config
	renderer Renderer
	rng      RandomSource

	grid    *Grid
	pending *Grid // Tiles merged away whose visual has not been covered yet

	phase        Phase
	spawnPending bool
	stats        Stats
}

// New creates a simulation with an empty grid.
func New(cfg Config, renderer Renderer, rng RandomSource) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if renderer == nil {
		return nil, fmt.Errorf("sim: renderer is required")
	}
	if rng == nil {
		return nil, fmt.Errorf("sim: random source is required")
	}
	return &Sim{
		cfg:      cfg,
		renderer: renderer,
		rng:      rng,
		grid:     NewGrid(cfg.Width, cfg.Height),
		pending:  NewGrid(cfg.Width, cfg.Height),
	}, nil
}

// Config returns the simulation configuration.
func (s *Sim) Config() Config {
	return s.cfg
}

// Grid returns the live grid.
func (s *Sim) Grid() *Grid {
	return s.grid
}

// Pending returns the pending-destruction grid.
func (s *Sim) Pending() *Grid {
	return s.pending
}

// Phase returns the sequencer state as of the last tick.
func (s *Sim) Phase() Phase {
	return s.phase
}

// SpawnPending reports whether a spawn is deferred to the next idle tick.
func (s *Sim) SpawnPending() bool {
	return s.spawnPending
}

// Stats returns the lifetime counters.
func (s *Sim) Stats() Stats {
	return s.stats
}

// TickResult describes one Tick.
type TickResult struct {
	Phase   Phase     // Gate state this tick
	Spawned bool      // A deferred spawn was performed
	Moved   bool      // A directional command was applied
	Dir     Direction // Valid when Moved
	Merges  int       // Merges resolved by the move
	Changed bool      // The move changed the grid
}

// Tick runs one frame: settle, and if nothing is in transit, perform the
// deferred spawn and then at most one directional command in priority order
// Up, Down, Left, Right. Other presses this tick are dropped.
func (s *Sim) Tick(in InputSource) TickResult {
	s.stats.Ticks++

	if s.Settle() {
		s.phase = PhaseBusy
		return TickResult{Phase: PhaseBusy}
	}
	s.phase = PhaseIdle
	res := TickResult{Phase: PhaseIdle}

	if s.spawnPending {
		_, res.Spawned = s.Spawn()
		s.spawnPending = false
	}

	if in == nil {
		return res
	}
	for _, dir := range Directions {
		if !in.Pressed(dir) {
			continue
		}
		res.Moved = true
		res.Dir = dir
		res.Merges, res.Changed = s.Move(dir)
		break
	}
	return res
}

// Move resolves merges then compacts toward dir and defers a spawn to the
// next idle tick. Returns the merge count and whether the grid changed.
func (s *Sim) Move(dir Direction) (merges int, changed bool) {
	merges = s.ResolveMerges(dir)
	moved := s.Compact(dir)
	changed = merges > 0 || moved

	s.stats.Moves++
	if changed || !s.cfg.RequireChange {
		s.spawnPending = true
	}
	return merges, changed
}

// Spawn places a level-0 tile on a uniformly random empty cell. A full grid
// is a no-op.
func (s *Sim) Spawn() (*Tile, bool) {
	empty := s.grid.EmptyCells()
	if len(empty) == 0 {
		return nil, false
	}
	c := empty[s.rng.Intn(len(empty))]
	s.stats.Spawns++
	return s.Place(c, 0), true
}

// Place creates a tile of the given level at c with its visual already at
// the cell, so it does not animate in. Placing onto an occupied cell or with
// a level outside [0, MaxLevel] panics.
func (s *Sim) Place(c Coord, level int) *Tile {
	if s.grid.Get(c) != nil {
		panic(fmt.Sprintf("sim: cell %v is already occupied", c))
	}
	if level < 0 || level > s.cfg.MaxLevel {
		panic(fmt.Sprintf("sim: level %d outside [0, %d]", level, s.cfg.MaxLevel))
	}
	t := &Tile{
		Handle: s.renderer.Create(level, c.X, c.Y),
		Level:  level,
	}
	s.renderer.SetPosition(t.Handle, s.CellPosition(c))
	s.grid.Set(c, t)
	return t
}

// Reset destroys every visual and empties both grids.
func (s *Sim) Reset() {
	destroy := func(_ Coord, t *Tile) {
		s.renderer.Destroy(t.Handle)
	}
	s.grid.Each(destroy)
	s.pending.Each(destroy)
	s.grid.Clear()
	s.pending.Clear()
	s.phase = PhaseIdle
	s.spawnPending = false
	s.stats = Stats{}
}

// CanMove reports whether the grid has an empty cell or two neighbouring
// tiles of equal level.
func (s *Sim) CanMove() bool {
	if s.grid.Count() < s.grid.w*s.grid.h {
		return true
	}
	for y := 0; y < s.grid.h; y++ {
		for x := 0; x < s.grid.w; x++ {
			level := s.grid.Get(C(x, y)).Level
			if x < s.grid.w-1 && s.grid.Get(C(x+1, y)).Level == level {
				return true
			}
			if y < s.grid.h-1 && s.grid.Get(C(x, y+1)).Level == level {
				return true
			}
		}
	}
	return false
}

// MaxLevel returns the highest tile level on the grid, or -1 if empty.
func (s *Sim) MaxLevel() int {
	maxLevel := -1
	for _, t := range s.grid.Tiles() {
		maxLevel = max(maxLevel, t.Level)
	}
	return maxLevel
}
