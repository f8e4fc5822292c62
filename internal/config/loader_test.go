package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cubes.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseCubes(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultCubesConfig() {
		t.Errorf("embedded default = %+v, hardcoded = %+v", cfg, DefaultCubesConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadCubesCustomPath(t *testing.T) {
	path := writeConfig(t, `
board:
  size: 5
  spacing: 8
  step: 2
merge:
  max_level: 6
`)

	cfg, err := LoadCubes(path)
	if err != nil {
		t.Fatalf("LoadCubes() failed: %v", err)
	}
	if cfg.Board.Size != 5 || cfg.Board.Spacing != 8 || cfg.Board.Step != 2 {
		t.Errorf("board = %+v, want size 5 spacing 8 step 2", cfg.Board)
	}
	if cfg.Merge.MaxLevel != 6 {
		t.Errorf("max_level = %d, want 6", cfg.Merge.MaxLevel)
	}
	// Omitted section keeps defaults
	if cfg.Spawn.InitialTiles != 1 {
		t.Errorf("initial_tiles = %d, want default 1", cfg.Spawn.InitialTiles)
	}
}

func TestLoadCubesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "board: [1, 2", "failed to parse"},
		{"board too small", "board: {size: 1}", "board.size"},
		{"step does not divide spacing", "board: {spacing: 2, step: 0.3}", "evenly divide"},
		{"inexact float step", "board: {spacing: 1, step: 0.1}", "evenly divide"},
		{"inexact step between far cells", "board: {spacing: 0.5, step: 0.1}", "evenly divide"},
		{"too many initial tiles", "spawn: {initial_tiles: 17}", "initial_tiles"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCubes(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("LoadCubes() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCubesMissingFile(t *testing.T) {
	_, err := LoadCubes(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadCubes() with a missing custom path should fail")
	}
}

func TestApplySpeedPreset(t *testing.T) {
	tests := []struct {
		preset SpeedPreset
		step   float64
	}{
		{"", 0.5},
		{SpeedSlow, 0.25},
		{SpeedNormal, 0.5},
		{SpeedFast, 1},
		{SpeedInstant, 2},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCubesConfig()
			if err := ApplySpeedPreset(&cfg, tc.preset); err != nil {
				t.Fatalf("ApplySpeedPreset() failed: %v", err)
			}
			if cfg.Board.Step != tc.step {
				t.Errorf("step = %v, want %v", cfg.Board.Step, tc.step)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	cfg := DefaultCubesConfig()
	if err := ApplySpeedPreset(&cfg, "ludicrous"); err == nil {
		t.Error("unknown preset should fail")
	}

	cfg = DefaultCubesConfig()
	cfg.Board.Size = 1
	if err := ApplySpeedPreset(&cfg, SpeedFast); err == nil {
		t.Error("preset on an invalid board should fail validation")
	}
}
