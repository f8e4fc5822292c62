package sim

import (
	"testing"
)

// fixedRand returns vals in order, modulo n.
type fixedRand struct {
	vals []int
	i    int
}

func (r *fixedRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

// presses is an InputSource with a fixed set of pressed directions.
type presses map[Direction]bool

func (p presses) Pressed(d Direction) bool {
	return p[d]
}

func press(dirs ...Direction) presses {
	p := make(presses)
	for _, d := range dirs {
		p[d] = true
	}
	return p
}

// newTestSim builds a simulation from a level grid indexed [y][x], -1 empty.
func newTestSim(t *testing.T, cfg Config, levels [][]int) (*Sim, *TileTable) {
	t.Helper()

	table := NewTileTable()
	s, err := New(cfg, table, &fixedRand{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	for y, row := range levels {
		for x, level := range row {
			if level >= 0 {
				s.Place(C(x, y), level)
			}
		}
	}
	return s, table
}

// rowConfig returns a single-row board of the given width.
func rowConfig(w int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = 1
	return cfg
}

// settleAll ticks the tracker until nothing is in transit.
func settleAll(t *testing.T, s *Sim) int {
	t.Helper()
	for i := 1; i <= 1000; i++ {
		if !s.Settle() {
			return i
		}
	}
	t.Fatal("tiles never settled")
	return 0
}

// checkUnique fails if a tile or handle appears in more than one cell.
func checkUnique(t *testing.T, s *Sim) {
	t.Helper()
	seen := make(map[Handle]Coord)
	s.Grid().Each(func(c Coord, tile *Tile) {
		if prev, ok := seen[tile.Handle]; ok {
			t.Errorf("handle %d in both %v and %v", tile.Handle, prev, c)
		}
		seen[tile.Handle] = c
	})
}

func equalLevels(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}
