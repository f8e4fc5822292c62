package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCubes loads the cubes configuration.
// Search order: customPath -> ~/.arcade/configs/cubes.yaml -> ./configs/cubes.yaml -> embedded default
// Files are decoded over the defaults, so omitted keys keep their default value.
func LoadCubes(customPath string) (CubesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CubesConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCubes(data)
		if err != nil {
			return CubesConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cubes.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCubes(data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/cubes.yaml"); err == nil {
		if cfg, err := parseCubes(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parseCubes(defaultCubesYAML)
	if err != nil {
		return DefaultCubesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// parseCubes decodes YAML on top of the hardcoded defaults.
func parseCubes(data []byte) (CubesConfig, error) {
	cfg := DefaultCubesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CubesConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
