package tetris

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRules is returned by Rules.Validate.
var ErrInvalidRules = errors.New("tetris: invalid rules")

// Classic arena dimensions and timing.
const (
	DefaultWidth        = 12
	DefaultHeight       = 20
	DefaultDropInterval = 1000 * time.Millisecond
	DefaultRowPoints    = 10
)

// minWidth is the widest spawn matrix (the I piece).
const minWidth = 4

// Rules holds everything that parameterizes a simulation.
type Rules struct {
	Width        int
	Height       int
	DropInterval time.Duration
	Sweep        SweepRules

	// Pieces is the spawn table. Empty means AllPieces.
	Pieces []PieceType
}

// DefaultRules returns the classic 12x20 setup with a one second gravity tick.
func DefaultRules() Rules {
	return Rules{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		DropInterval: DefaultDropInterval,
		Sweep: SweepRules{
			PointsPerRow: DefaultRowPoints,
		},
		Pieces: append([]PieceType(nil), AllPieces...),
	}
}

// Validate checks that the rules describe a playable arena.
func (r Rules) Validate() error {
	if r.Width < minWidth {
		return fmt.Errorf("%w: width %d is below %d", ErrInvalidRules, r.Width, minWidth)
	}
	if r.Height < minWidth {
		return fmt.Errorf("%w: height %d is below %d", ErrInvalidRules, r.Height, minWidth)
	}
	if r.DropInterval <= 0 {
		return fmt.Errorf("%w: drop interval must be positive", ErrInvalidRules)
	}
	if r.Sweep.PointsPerRow < 0 {
		return fmt.Errorf("%w: negative points per row", ErrInvalidRules)
	}
	for _, p := range r.Pieces {
		if _, err := ParsePieceType(string(p)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRules, err)
		}
	}
	return nil
}

func (r Rules) spawnTable() []PieceType {
	if len(r.Pieces) == 0 {
		return AllPieces
	}
	return r.Pieces
}
