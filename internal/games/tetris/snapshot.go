package tetris

import (
	sim "github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Paused   bool
	TooSmall bool
	Board    sim.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
		Board:    g.engine.Snapshot(),
	}
}
