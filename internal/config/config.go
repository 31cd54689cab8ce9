// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris platform.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// TetrisConfig contains all configuration for the tetris variants.
type TetrisConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
	Pieces  []string      `yaml:"pieces"`
}

// ArenaConfig defines the well dimensions in cells.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines automatic drop timing.
type GravityConfig struct {
	DropIntervalMs int `yaml:"drop_interval_ms"`
}

// ScoringConfig defines row clear scoring.
type ScoringConfig struct {
	PointsPerRow  int  `yaml:"points_per_row"`
	IncludeTopRow bool `yaml:"include_top_row"`
}

// DropInterval returns the gravity interval as a duration.
func (c TetrisConfig) DropInterval() time.Duration {
	return time.Duration(c.Gravity.DropIntervalMs) * time.Millisecond
}

// Rules converts the configuration into validated simulation rules.
func (c TetrisConfig) Rules() (tetris.Rules, error) {
	rules := tetris.Rules{
		Width:        c.Arena.Width,
		Height:       c.Arena.Height,
		DropInterval: c.DropInterval(),
		Sweep: tetris.SweepRules{
			PointsPerRow:  c.Scoring.PointsPerRow,
			IncludeTopRow: c.Scoring.IncludeTopRow,
		},
	}

	for _, name := range c.Pieces {
		p, err := tetris.ParsePieceType(name)
		if err != nil {
			return tetris.Rules{}, fmt.Errorf("config: pieces: %w", err)
		}
		rules.Pieces = append(rules.Pieces, p)
	}

	if err := rules.Validate(); err != nil {
		return tetris.Rules{}, fmt.Errorf("config: %w", err)
	}
	return rules, nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
