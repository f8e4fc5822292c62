// Package config provides YAML-based configuration loading and speed
// presets for the cubes game.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-cubes/internal/games/cubes/sim"
)

// Board size limits accepted by Validate.
const (
	MinBoardSize = 2
	MaxBoardSize = 8
)

// CubesConfig contains all configuration for the cubes game.
type CubesConfig struct {
	Board BoardConfig `yaml:"board"`
	Merge MergeConfig `yaml:"merge"`
	Spawn SpawnConfig `yaml:"spawn"`
}

// BoardConfig defines the grid and its settling animation.
type BoardConfig struct {
	Size    int     `yaml:"size"`    // Cells per side
	Spacing float64 `yaml:"spacing"` // World units between cell centers
	Step    float64 `yaml:"step"`    // World units a tile travels per tick, per axis
}

// MergeConfig defines merge escalation.
type MergeConfig struct {
	MaxLevel int `yaml:"max_level"` // Highest level a merge can reach
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	InitialTiles  int  `yaml:"initial_tiles"`  // Tiles placed on a fresh board
	RequireChange bool `yaml:"require_change"` // Skip the spawn after a move that changed nothing
}

// Validate reports the first invalid setting.
func (c CubesConfig) Validate() error {
	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		return fmt.Errorf("config: board.size must be in [%d, %d], got %d", MinBoardSize, MaxBoardSize, c.Board.Size)
	}
	if c.Board.Spacing <= 0 {
		return fmt.Errorf("config: board.spacing must be positive, got %v", c.Board.Spacing)
	}
	if c.Board.Step <= 0 {
		return fmt.Errorf("config: board.step must be positive, got %v", c.Board.Step)
	}
	if c.Merge.MaxLevel < 0 {
		return fmt.Errorf("config: merge.max_level must not be negative, got %d", c.Merge.MaxLevel)
	}
	if err := c.Sim().Validate(); err != nil {
		return fmt.Errorf("config: board.step must evenly divide board.spacing: %w", err)
	}
	cells := c.Board.Size * c.Board.Size
	if c.Spawn.InitialTiles < 0 || c.Spawn.InitialTiles > cells {
		return fmt.Errorf("config: spawn.initial_tiles must be in [0, %d], got %d", cells, c.Spawn.InitialTiles)
	}
	return nil
}

// Sim converts the file configuration to simulation parameters.
func (c CubesConfig) Sim() sim.Config {
	return sim.Config{
		Width:         c.Board.Size,
		Height:        c.Board.Size,
		Spacing:       c.Board.Spacing,
		Step:          c.Board.Step,
		MaxLevel:      c.Merge.MaxLevel,
		RequireChange: c.Spawn.RequireChange,
	}
}
