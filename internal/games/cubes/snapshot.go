package cubes

// Snapshot captures the board for determinism testing and the headless runner.
type Snapshot struct {
	Tick      uint64
	Phase     string
	Levels    [][]int // [y][x], -1 for an empty cell
	Pending   int     // Tiles merged away and waiting to be covered
	Visuals   int     // Live tile visuals, pending included
	Moves     int
	Merges    int
	Spawns    int
	Destroyed int
	Paused    bool
	Stuck     bool
}

// Snapshot returns the current board snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.sim == nil {
		return Snapshot{}
	}
	st := g.sim.Stats()
	return Snapshot{
		Tick:      st.Ticks,
		Phase:     g.sim.Phase().String(),
		Levels:    g.sim.Grid().Levels(),
		Pending:   g.sim.Pending().Count(),
		Visuals:   g.table.Len(),
		Moves:     st.Moves,
		Merges:    st.Merges,
		Spawns:    st.Spawns,
		Destroyed: st.Destroyed,
		Paused:    g.paused,
		Stuck:     g.stuck,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(len(snap.Phase)) //#nosec G115 -- hash computation
	for _, row := range snap.Levels {
		for _, level := range row {
			h = h*31 + uint64(level+1) //#nosec G115 -- level >= -1
		}
	}
	for _, n := range []int{snap.Pending, snap.Visuals, snap.Moves, snap.Merges, snap.Spawns, snap.Destroyed} {
		h = h*31 + uint64(n) //#nosec G115 -- counters are never negative
	}
	return h
}
