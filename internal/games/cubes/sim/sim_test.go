package sim

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"zero spacing", func(c *Config) { c.Spacing = 0 }, false},
		{"negative step", func(c *Config) { c.Step = -1 }, false},
		{"step does not divide spacing", func(c *Config) { c.Step = 0.75 }, false},
		{"step equals spacing", func(c *Config) { c.Step = 2 }, true},
		{"inexact tenth step", func(c *Config) { c.Spacing, c.Step = 1, 0.1 }, false},
		{"inexact step between far cells", func(c *Config) { c.Spacing, c.Step = 0.5, 0.1 }, false},
		{"integer spacing", func(c *Config) { c.Spacing, c.Step = 3, 1 }, true},
		{"eighth step", func(c *Config) { c.Spacing, c.Step = 1, 0.125 }, true},
		{"too many ticks per cell", func(c *Config) { c.Spacing, c.Step = 1, 1.0 / (2 * MaxTicksPerCell) }, false},
		{"negative max level", func(c *Config) { c.MaxLevel = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tc.ok)
			}
		})
	}
}

func TestValidConfigsSettleAcrossBoard(t *testing.T) {
	tests := []struct {
		name          string
		spacing, step float64
		size          int
	}{
		{"default", 2, 0.5, 4},
		{"integer", 3, 1, 8},
		{"eighths", 1, 0.125, 8},
		{"half spacing", 0.5, 0.25, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Width, cfg.Height = tc.size, tc.size
			cfg.Spacing, cfg.Step = tc.spacing, tc.step
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}

			s, _ := newTestSim(t, cfg, nil)
			s.Place(C(tc.size-1, tc.size-1), 0)
			s.Move(DirLeft)
			s.Move(DirUp)
			settleAll(t, s)

			if s.Grid().Get(C(0, 0)) == nil {
				t.Fatal("tile should end in the corner")
			}
		})
	}
}

func TestNewRequiresCollaborators(t *testing.T) {
	if _, err := New(DefaultConfig(), nil, &fixedRand{}); err == nil {
		t.Error("New() without renderer should fail")
	}
	if _, err := New(DefaultConfig(), NewTileTable(), nil); err == nil {
		t.Error("New() without random source should fail")
	}
}

func TestTickGatesInputWhileSettling(t *testing.T) {
	s, _ := newTestSim(t, rowConfig(4), [][]int{{-1, -1, -1, 0}})

	res := s.Tick(press(DirLeft))
	if res.Phase != PhaseIdle || !res.Moved || res.Dir != DirLeft {
		t.Fatalf("first tick = %+v, want idle move left", res)
	}
	if !s.SpawnPending() {
		t.Fatal("move should defer a spawn")
	}

	// Three cells at spacing 2, step 0.5: twelve ticks of travel. The
	// tick that completes the journey is idle.
	for tick := 2; tick <= 12; tick++ {
		res = s.Tick(press(DirRight))
		if res.Phase != PhaseBusy {
			t.Fatalf("tick %d: phase = %v, want busy", tick, res.Phase)
		}
		if res.Moved || res.Spawned {
			t.Fatalf("tick %d: busy tick must not move or spawn: %+v", tick, res)
		}
	}
	if s.Stats().Moves != 1 {
		t.Errorf("Moves = %d, want 1", s.Stats().Moves)
	}

	res = s.Tick(nil)
	if res.Phase != PhaseIdle {
		t.Fatalf("arrival tick phase = %v, want idle", res.Phase)
	}
	if !res.Spawned {
		t.Error("deferred spawn should happen on the first idle tick")
	}
	if s.Grid().Count() != 2 {
		t.Errorf("Count() = %d, want 2", s.Grid().Count())
	}
	if s.SpawnPending() {
		t.Error("spawn flag should be cleared")
	}
}

func TestTickDirectionPriority(t *testing.T) {
	tests := []struct {
		name    string
		pressed []Direction
		want    Direction
	}{
		{"up beats everything", []Direction{DirRight, DirLeft, DirDown, DirUp}, DirUp},
		{"down beats left", []Direction{DirLeft, DirDown}, DirDown},
		{"left beats right", []Direction{DirRight, DirLeft}, DirLeft},
		{"right alone", []Direction{DirRight}, DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSim(t, DefaultConfig(), [][]int{{0}})

			res := s.Tick(press(tc.pressed...))
			if !res.Moved || res.Dir != tc.want {
				t.Errorf("Tick() = %+v, want move %v", res, tc.want)
			}
			if s.Stats().Moves != 1 {
				t.Errorf("Moves = %d, want exactly one move per tick", s.Stats().Moves)
			}
		})
	}
}

func TestTickSpawnsEvenWithoutChange(t *testing.T) {
	s, _ := newTestSim(t, DefaultConfig(), [][]int{{0}})

	res := s.Tick(press(DirLeft))
	if res.Changed {
		t.Fatal("tile on the left edge should not move")
	}

	res = s.Tick(nil)
	if !res.Spawned {
		t.Error("spawn should follow every accepted move")
	}
}

func TestTickRequireChange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RequireChange = true
	s, _ := newTestSim(t, cfg, [][]int{{0}})

	s.Tick(press(DirLeft))
	if s.SpawnPending() {
		t.Error("unchanged move should not defer a spawn")
	}

	s.Tick(press(DirRight))
	if !s.SpawnPending() {
		t.Error("changing move should defer a spawn")
	}
}

func TestTickScenarioMergeThenSettle(t *testing.T) {
	s, table := newTestSim(t, rowConfig(4), [][]int{{0, 0, -1, -1}})
	s.rng = &fixedRand{vals: []int{0}}

	s.Tick(press(DirLeft))
	if got := s.Grid().Levels()[0]; !equalLevels([][]int{got}, [][]int{{1, -1, -1, -1}}) {
		t.Fatalf("after move = %v, want [1 -1 -1 -1]", got)
	}
	if s.Pending().Count() != 1 {
		t.Fatalf("pending = %d, want 1", s.Pending().Count())
	}

	for s.Tick(nil).Phase == PhaseBusy {
	}

	if s.Pending().Count() != 0 {
		t.Error("pending should be empty once settled")
	}
	// Merged tile plus the deferred spawn.
	if table.Len() != 2 || s.Grid().Count() != 2 {
		t.Errorf("visuals = %d, tiles = %d, want 2 and 2", table.Len(), s.Grid().Count())
	}
	checkUnique(t, s)
}

func TestReset(t *testing.T) {
	s, table := newTestSim(t, rowConfig(4), [][]int{{0, 0, 1, -1}})
	s.Move(DirLeft)

	s.Reset()

	if s.Grid().Count() != 0 || s.Pending().Count() != 0 {
		t.Error("Reset should empty both grids")
	}
	if table.Len() != 0 {
		t.Errorf("visuals = %d after Reset, want 0", table.Len())
	}
	if s.SpawnPending() || s.Stats() != (Stats{}) {
		t.Error("Reset should clear the spawn flag and stats")
	}
}

func TestCanMoveAndMaxLevel(t *testing.T) {
	s, _ := newTestSim(t, DefaultConfig(), nil)
	if s.MaxLevel() != -1 {
		t.Errorf("MaxLevel() on empty grid = %d, want -1", s.MaxLevel())
	}

	s, _ = newTestSim(t, DefaultConfig(), [][]int{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 0, 3, 3},
	})
	if !s.CanMove() {
		t.Error("full grid with an equal pair can still move")
	}
	if s.MaxLevel() != 3 {
		t.Errorf("MaxLevel() = %d, want 3", s.MaxLevel())
	}
}
