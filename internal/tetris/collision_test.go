package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	arena := NewMatrix(12, 20)
	arena[10][3] = 4

	tests := []struct {
		name     string
		piece    PieceType
		pos      Position
		expected bool
	}{
		{"inside empty arena", PieceO, Position{X: 5, Y: 0}, false},
		{"touching left wall", PieceO, Position{X: 0, Y: 5}, false},
		{"touching right wall", PieceO, Position{X: 10, Y: 5}, false},
		{"resting on floor", PieceO, Position{X: 5, Y: 18}, false},
		{"past left wall", PieceO, Position{X: -1, Y: 5}, true},
		{"past right wall", PieceO, Position{X: 11, Y: 5}, true},
		{"below floor", PieceO, Position{X: 5, Y: 19}, true},
		{"above ceiling", PieceO, Position{X: 5, Y: -1}, true},
		{"overlapping settled cell", PieceO, Position{X: 2, Y: 9}, true},
		{"next to settled cell", PieceO, Position{X: 4, Y: 9}, false},
		// the I matrix has empty columns on both sides of its bar
		{"empty piece cells may hang outside", PieceI, Position{X: -1, Y: 0}, false},
		{"filled piece cells may not", PieceI, Position{X: -2, Y: 0}, true},
		{"stem below floor", PieceT, Position{X: 0, Y: 18}, true},
		{"empty top row above ceiling", PieceT, Position{X: 0, Y: -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Collides(arena, NewPiece(tc.piece), tc.pos)
			assert.Equal(t, tc.expected, got)
		})
	}
}

// A placement is free exactly when every filled piece cell lands on an
// in-bounds empty arena cell.
func TestCollidesMatchesCellwiseDefinition(t *testing.T) {
	arena := NewMatrix(6, 8)
	arena[7] = []int{1, 1, 0, 1, 1, 1}
	arena[4][2] = 3
	arena[0][5] = 2

	free := func(piece Matrix, pos Position) bool {
		for y, row := range piece {
			for x, v := range row {
				if v == 0 {
					continue
				}
				ax, ay := x+pos.X, y+pos.Y
				if ax < 0 || ay < 0 || ax >= arena.Width() || ay >= arena.Height() {
					return false
				}
				if arena[ay][ax] != 0 {
					return false
				}
			}
		}
		return true
	}

	for _, p := range AllPieces {
		piece := NewPiece(p)
		for rot := range 4 {
			for y := -4; y <= 10; y++ {
				for x := -4; x <= 8; x++ {
					pos := Position{X: x, Y: y}
					assert.Equal(t, !free(piece, pos), Collides(arena, piece, pos),
						"piece %s rotation %d at %v", p, rot, pos)
				}
			}
			piece = Rotate(piece, 1)
		}
	}
}

func TestDetectCollisionUsesPlayerPosition(t *testing.T) {
	a := NewArena(12, 20)
	p := &Player{Matrix: NewPiece(PieceO), Pos: Position{X: 5, Y: 0}}

	assert.False(t, DetectCollision(a, p))

	a.Set(6, 1, 2)
	assert.True(t, DetectCollision(a, p))
}
