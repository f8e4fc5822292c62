package sim

import "testing"

func TestMoveRowLeft(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		want    []int
		merges  int
		pending int
	}{
		{
			name:    "simple merge",
			input:   []int{0, 0, -1, -1},
			want:    []int{1, -1, -1, -1},
			merges:  1,
			pending: 1,
		},
		{
			name:    "nearest pair merges, third compacts behind",
			input:   []int{0, 0, 0, -1},
			want:    []int{1, 0, -1, -1},
			merges:  1,
			pending: 1,
		},
		{
			name:    "two pairs",
			input:   []int{0, 0, 0, 0},
			want:    []int{1, 1, -1, -1},
			merges:  2,
			pending: 2,
		},
		{
			name:    "merge across gap",
			input:   []int{0, -1, 0, 0},
			want:    []int{1, 0, -1, -1},
			merges:  1,
			pending: 1,
		},
		{
			name:    "merged tile is not merged again",
			input:   []int{1, 0, 0, -1},
			want:    []int{1, 1, -1, -1},
			merges:  1,
			pending: 1,
		},
		{
			name:    "no merge possible",
			input:   []int{0, 1, 2, 3},
			want:    []int{0, 1, 2, 3},
			merges:  0,
			pending: 0,
		},
		{
			name:    "slide only",
			input:   []int{-1, -1, 2, -1},
			want:    []int{2, -1, -1, -1},
			merges:  0,
			pending: 0,
		},
		{
			name:    "pending cell walls off trailing tile",
			input:   []int{-1, 0, 0, 2},
			want:    []int{1, -1, 2, -1},
			merges:  1,
			pending: 1,
		},
		{
			name:    "max level merge keeps level",
			input:   []int{3, 3, -1, -1},
			want:    []int{3, -1, -1, -1},
			merges:  1,
			pending: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSim(t, rowConfig(4), [][]int{tc.input})

			merges, _ := s.Move(DirLeft)

			got := s.Grid().Levels()[0]
			if !equalLevels([][]int{got}, [][]int{tc.want}) {
				t.Errorf("Move(Left) %v = %v, want %v", tc.input, got, tc.want)
			}
			if merges != tc.merges {
				t.Errorf("merges = %d, want %d", merges, tc.merges)
			}
			if n := s.Pending().Count(); n != tc.pending {
				t.Errorf("pending = %d, want %d", n, tc.pending)
			}
			checkUnique(t, s)
		})
	}
}

func TestMoveRowRight(t *testing.T) {
	s, _ := newTestSim(t, rowConfig(4), [][]int{{0, 0, -1, 1}})

	s.Move(DirRight)

	want := [][]int{{-1, -1, 1, 1}}
	if got := s.Grid().Levels(); !equalLevels(got, want) {
		t.Errorf("Move(Right) = %v, want %v", got, want)
	}
}

func TestMoveColumns(t *testing.T) {
	board := [][]int{
		{0, 1, 2, -1},
		{0, -1, 2, -1},
		{-1, 1, 2, -1},
		{-1, -1, 2, 0},
	}

	t.Run("up", func(t *testing.T) {
		s, _ := newTestSim(t, DefaultConfig(), board)
		s.Move(DirUp)
		want := [][]int{
			{1, 2, 3, 0},
			{-1, -1, 3, -1},
			{-1, -1, -1, -1},
			{-1, -1, -1, -1},
		}
		if got := s.Grid().Levels(); !equalLevels(got, want) {
			t.Errorf("Move(Up) = %v, want %v", got, want)
		}
	})

	t.Run("down", func(t *testing.T) {
		s, _ := newTestSim(t, DefaultConfig(), board)
		s.Move(DirDown)
		want := [][]int{
			{-1, -1, -1, -1},
			{-1, -1, -1, -1},
			{-1, -1, 3, -1},
			{1, 2, 3, 0},
		}
		if got := s.Grid().Levels(); !equalLevels(got, want) {
			t.Errorf("Move(Down) = %v, want %v", got, want)
		}
	})
}

func TestMergeUpdatesRendererLevel(t *testing.T) {
	s, table := newTestSim(t, rowConfig(4), [][]int{{0, 0, -1, -1}})
	survivor := s.Grid().Get(C(1, 0)).Handle

	s.Move(DirLeft)

	if got := s.Grid().Get(C(0, 0)); got == nil || got.Handle != survivor {
		t.Fatalf("cell (0,0) should hold the trailing tile %d, got %v", survivor, got)
	}
	for _, v := range table.Visuals() {
		if v.Handle == survivor && v.Level != 1 {
			t.Errorf("renderer level = %d, want 1", v.Level)
		}
	}
}

func TestLevelsOnlyIncreaseByOne(t *testing.T) {
	s, _ := newTestSim(t, DefaultConfig(), [][]int{
		{0, 0, 1, 1},
		{2, 2, 3, 3},
		{0, 1, 0, 1},
		{1, 1, 1, 1},
	})

	before := make(map[Handle]int)
	s.Grid().Each(func(_ Coord, tile *Tile) {
		before[tile.Handle] = tile.Level
	})

	s.Move(DirLeft)

	s.Grid().Each(func(c Coord, tile *Tile) {
		prev := before[tile.Handle]
		diff := tile.Level - prev
		if diff < 0 || diff > 1 {
			t.Errorf("tile %d at %v went from level %d to %d", tile.Handle, c, prev, tile.Level)
		}
		if tile.Level > s.Config().MaxLevel {
			t.Errorf("tile %d exceeds max level: %d", tile.Handle, tile.Level)
		}
	})
	checkUnique(t, s)
}

func TestMoveIsDeterministic(t *testing.T) {
	board := [][]int{
		{0, 0, 1, -1},
		{-1, 2, 2, 2},
		{1, -1, 1, 0},
		{3, 3, -1, 0},
	}

	for _, dir := range Directions {
		t.Run(dir.String(), func(t *testing.T) {
			a, _ := newTestSim(t, DefaultConfig(), board)
			b, _ := newTestSim(t, DefaultConfig(), board)
			b.rng = &fixedRand{vals: []int{3, 1, 4, 1, 5}}

			a.Move(dir)
			b.Move(dir)

			if !equalLevels(a.Grid().Levels(), b.Grid().Levels()) {
				t.Errorf("grids differ:\n%v\n%v", a.Grid().Levels(), b.Grid().Levels())
			}
		})
	}
}
