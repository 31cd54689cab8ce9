// Package tetris implements the piece/arena simulation of a falling-block puzzle:
// collision detection, rotation with wall kicks, merging of landed pieces and
// row sweeping. It has no terminal, timing or storage dependencies; the
// platform layer drives it through an Engine.
package tetris

import "fmt"

// Matrix is a rectangular grid of cells stored row-major (m[y][x]).
// A value of 0 is an empty cell; any other value identifies the piece
// (and therefore the color) occupying it.
type Matrix [][]int

// NewMatrix returns a zeroed grid with the given number of columns and rows.
// Non-positive dimensions are a programming error and panic.
func NewMatrix(columns, rows int) Matrix {
	if columns <= 0 || rows <= 0 {
		panic(fmt.Sprintf("tetris: invalid matrix size %dx%d", columns, rows))
	}
	m := make(Matrix, rows)
	for y := range m {
		m[y] = make([]int, columns)
	}
	return m
}

// Width returns the number of columns.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m Matrix) Height() int {
	return len(m)
}

// IsSquare reports whether the matrix has as many rows as columns.
func (m Matrix) IsSquare() bool {
	return m.Width() == m.Height()
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for y, row := range m {
		c[y] = append([]int(nil), row...)
	}
	return c
}

// Equal reports whether both matrices have the same shape and contents.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for y := range m {
		if len(m[y]) != len(other[y]) {
			return false
		}
		for x := range m[y] {
			if m[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Fill sets every cell to v.
func (m Matrix) Fill(v int) {
	for y := range m {
		for x := range m[y] {
			m[y][x] = v
		}
	}
}

// Cells returns the number of non-zero cells.
func (m Matrix) Cells() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// Rotate turns m by 90 degrees: clockwise for a positive direction,
// counter-clockwise otherwise.
//
// Square matrices are rotated in place (transpose, then reverse each row for
// clockwise or reverse the row order for counter-clockwise) and the same
// matrix is returned. Rectangular matrices cannot be rotated in place, so a
// new matrix with swapped dimensions is returned instead. Callers must always
// keep the returned value.
func Rotate(m Matrix, direction int) Matrix {
	if !m.IsSquare() {
		return rotateRect(m, direction)
	}

	for y := range m {
		for x := 0; x < y; x++ {
			m[x][y], m[y][x] = m[y][x], m[x][y]
		}
	}

	if direction > 0 {
		for _, row := range m {
			reverseRow(row)
		}
	} else {
		for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
			m[i], m[j] = m[j], m[i]
		}
	}
	return m
}

// rotateRect rotates a non-square matrix into a freshly allocated one.
func rotateRect(m Matrix, direction int) Matrix {
	h, w := m.Height(), m.Width()
	if h == 0 || w == 0 {
		return m
	}
	out := NewMatrix(h, w)
	for y := range h {
		for x := range w {
			if direction > 0 {
				out[x][h-1-y] = m[y][x]
			} else {
				out[w-1-x][y] = m[y][x]
			}
		}
	}
	return out
}

func reverseRow(row []int) {
	for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
		row[i], row[j] = row[j], row[i]
	}
}
