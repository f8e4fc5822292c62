package main

import (
	"testing"

	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/games/cubes"
	"github.com/vovakirdan/tui-cubes/internal/games/cubes/sim"
)

func TestParseMoves(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []sim.Direction
		wantErr bool
	}{
		{"names", []string{"left", "Up"}, []sim.Direction{sim.DirLeft, sim.DirUp}, false},
		{"letters", []string{"lurd"}, []sim.Direction{sim.DirLeft, sim.DirUp, sim.DirRight, sim.DirDown}, false},
		{"mixed", []string{"down", "rr"}, []sim.Direction{sim.DirDown, sim.DirRight, sim.DirRight}, false},
		{"invalid", []string{"lx"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMoves(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMoves(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseMoves(%v) = %v, want %v", tt.args, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseMoves(%v)[%d] = %v, want %v", tt.args, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormatBoard(t *testing.T) {
	got := FormatBoard([][]int{{0, -1}, {-1, 12}})
	want := " 0  .\n . 12"
	if got != want {
		t.Errorf("FormatBoard() = %q, want %q", got, want)
	}
}

func TestSettleSpawnsNextCube(t *testing.T) {
	game := cubes.NewWithConfig(config.DefaultCubesConfig())
	game.Reset(core.RuntimeConfig{Seed: 3})

	in := core.NewInputFrame()
	in.Set(cubes.ActionFor(sim.DirRight))
	game.Step(in)

	ticks, err := settle(game)
	if err != nil {
		t.Fatalf("settle() failed: %v", err)
	}
	if ticks < 1 {
		t.Errorf("settle() ticks = %d, want at least 1", ticks)
	}
	if spawns := game.Snapshot().Spawns; spawns != 2 {
		t.Errorf("Spawns = %d, want 2 after one settled move", spawns)
	}
}
