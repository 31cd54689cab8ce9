package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the classic configuration without touching disk.
func DefaultTetrisConfig() TetrisConfig {
	rules := tetris.DefaultRules()

	pieces := make([]string, 0, len(rules.Pieces))
	for _, p := range rules.Pieces {
		pieces = append(pieces, string(p))
	}

	return TetrisConfig{
		Arena: ArenaConfig{
			Width:  rules.Width,
			Height: rules.Height,
		},
		Gravity: GravityConfig{
			DropIntervalMs: int(rules.DropInterval.Milliseconds()),
		},
		Scoring: ScoringConfig{
			PointsPerRow:  rules.Sweep.PointsPerRow,
			IncludeTopRow: rules.Sweep.IncludeTopRow,
		},
		Pieces: pieces,
	}
}
