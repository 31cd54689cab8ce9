package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(t *testing.T) {
	m := NewMatrix(12, 20)

	assert.Equal(t, 12, m.Width())
	assert.Equal(t, 20, m.Height())
	assert.Zero(t, m.Cells())
	for y := range m {
		assert.Len(t, m[y], 12, "row %d", y)
	}
}

func TestNewMatrixRejectsEmptyDimensions(t *testing.T) {
	assert.Panics(t, func() { NewMatrix(0, 5) })
	assert.Panics(t, func() { NewMatrix(5, 0) })
	assert.Panics(t, func() { NewMatrix(-1, -1) })
}

func TestRotateSquare(t *testing.T) {
	tests := []struct {
		name      string
		direction int
		expected  Matrix
	}{
		{
			name:      "clockwise",
			direction: 1,
			expected: Matrix{
				{0, 1, 0},
				{1, 1, 0},
				{0, 1, 0},
			},
		},
		{
			name:      "counter-clockwise",
			direction: -1,
			expected: Matrix{
				{0, 1, 0},
				{0, 1, 1},
				{0, 1, 0},
			},
		},
		{
			name:      "zero direction turns counter-clockwise",
			direction: 0,
			expected: Matrix{
				{0, 1, 0},
				{0, 1, 1},
				{0, 1, 0},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewPiece(PieceT)
			got := Rotate(m, tc.direction)
			assert.Equal(t, tc.expected, got)
			// square matrices rotate in place
			assert.Equal(t, tc.expected, m)
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, p := range AllPieces {
		for _, dir := range []int{1, -1} {
			m := NewPiece(p)
			for range 4 {
				m = Rotate(m, dir)
			}
			assert.True(t, m.Equal(NewPiece(p)), "piece %s direction %d", p, dir)
		}
	}
}

func TestRotateOppositeDirectionsCancel(t *testing.T) {
	for _, p := range AllPieces {
		m := Rotate(Rotate(NewPiece(p), 1), -1)
		assert.True(t, m.Equal(NewPiece(p)), "piece %s", p)
	}
}

func TestRotateRectangular(t *testing.T) {
	src := Matrix{
		{1, 2, 3},
		{4, 5, 6},
	}

	cw := Rotate(src.Clone(), 1)
	assert.Equal(t, Matrix{
		{4, 1},
		{5, 2},
		{6, 3},
	}, cw)

	ccw := Rotate(src.Clone(), -1)
	assert.Equal(t, Matrix{
		{3, 6},
		{2, 5},
		{1, 4},
	}, ccw)

	m := src.Clone()
	for range 4 {
		m = Rotate(m, 1)
	}
	assert.True(t, m.Equal(src))
}

func TestMatrixCloneIsDeep(t *testing.T) {
	m := NewPiece(PieceS)
	c := m.Clone()
	c[0][0] = 9

	require.True(t, c.IsSquare())
	assert.Equal(t, 0, m[0][0])
	assert.False(t, m.Equal(c))
}

func TestMatrixEqualShape(t *testing.T) {
	assert.False(t, NewMatrix(2, 3).Equal(NewMatrix(3, 2)))
	assert.True(t, NewMatrix(2, 3).Equal(NewMatrix(2, 3)))
}
