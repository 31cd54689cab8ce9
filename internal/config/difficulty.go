package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned when a difficulty name is not recognized.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// presetScale multiplies the configured drop interval; lower is faster.
var presetScale = map[DifficultyPreset]float64{
	DifficultyEasy:   1.5,
	DifficultyNormal: 1.0,
	DifficultyHard:   0.5,
}

// Presets returns the known difficulty presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset resolves a difficulty name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(name)
	if _, ok := presetScale[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// ApplyTetrisPreset scales the drop interval of cfg for the given preset.
// A positive interval never scales below one millisecond.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) error {
	scale, ok := presetScale[preset]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	ms := int(float64(cfg.Gravity.DropIntervalMs) * scale)
	if ms < 1 && cfg.Gravity.DropIntervalMs > 0 {
		ms = 1
	}
	cfg.Gravity.DropIntervalMs = ms
	return nil
}
