package config

import "fmt"

// SpeedPreset represents a named settle speed.
type SpeedPreset string

const (
	SpeedSlow    SpeedPreset = "slow"
	SpeedNormal  SpeedPreset = "normal"
	SpeedFast    SpeedPreset = "fast"
	SpeedInstant SpeedPreset = "instant"
)

// TicksPerCellForPreset returns how many ticks a tile needs to cross one cell.
func TicksPerCellForPreset(preset SpeedPreset) (int, error) {
	switch preset {
	case SpeedSlow:
		return 8, nil
	case SpeedNormal:
		return 4, nil
	case SpeedFast:
		return 2, nil
	case SpeedInstant:
		return 1, nil
	default:
		return 0, fmt.Errorf("config: unknown speed preset %q (want slow, normal, fast or instant)", preset)
	}
}

// ApplySpeedPreset sets board.step from a preset and validates the result.
// An empty preset leaves the config unchanged.
func ApplySpeedPreset(cfg *CubesConfig, preset SpeedPreset) error {
	if preset == "" {
		return nil
	}
	ticks, err := TicksPerCellForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Board.Step = cfg.Board.Spacing / float64(ticks)
	return cfg.Validate()
}
