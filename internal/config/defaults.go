package config

import (
	_ "embed"
)

//go:embed defaults/cubes.yaml
var defaultCubesYAML []byte

// DefaultCubesConfig returns the default cubes configuration: a 4x4 board,
// four ticks per cell, three merge steps and a single starting tile.
func DefaultCubesConfig() CubesConfig {
	return CubesConfig{
		Board: BoardConfig{
			Size:    4,
			Spacing: 2,
			Step:    0.5,
		},
		Merge: MergeConfig{
			MaxLevel: 3,
		},
		Spawn: SpawnConfig{
			InitialTiles:  1,
			RequireChange: false,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCubesYAML
}
