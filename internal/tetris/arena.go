package tetris

// Arena is the playfield holding settled cells. Its dimensions never change
// after creation; it is mutated only by Merge, Sweep and Clear.
type Arena struct {
	grid Matrix
}

// SweepRules configures row clearing.
type SweepRules struct {
	// PointsPerRow is the base award; each further row cleared in the same
	// sweep doubles the multiplier (1x, 2x, 4x, ...).
	PointsPerRow int

	// IncludeTopRow also checks row 0 for completion. The classic behavior
	// never clears row 0.
	IncludeTopRow bool
}

// SweepResult reports what a single sweep removed.
type SweepResult struct {
	Rows   int
	Points int
}

// NewArena creates an empty arena.
func NewArena(width, height int) *Arena {
	return &Arena{grid: NewMatrix(width, height)}
}

// Width returns the number of columns.
func (a *Arena) Width() int { return a.grid.Width() }

// Height returns the number of rows.
func (a *Arena) Height() int { return a.grid.Height() }

// Cell returns the value at (x, y), or 0 outside the arena.
func (a *Arena) Cell(x, y int) int {
	if y < 0 || y >= a.Height() || x < 0 || x >= a.Width() {
		return 0
	}
	return a.grid[y][x]
}

// Set writes a value at (x, y). Out-of-range writes are ignored.
func (a *Arena) Set(x, y, v int) {
	if y < 0 || y >= a.Height() || x < 0 || x >= a.Width() {
		return
	}
	a.grid[y][x] = v
}

// Matrix returns a copy of the settled grid.
func (a *Arena) Matrix() Matrix {
	return a.grid.Clone()
}

// Clear empties every cell.
func (a *Arena) Clear() {
	a.grid.Fill(0)
}

// Sweep removes every full row, shifting the rows above it down and inserting
// an empty row at the top. Rows are scanned bottom-up and an index is checked
// again after a removal, since the row above has moved into it.
func (a *Arena) Sweep(rules SweepRules) SweepResult {
	var res SweepResult
	rowCount := 1

	last := 1
	if rules.IncludeTopRow {
		last = 0
	}

	for y := a.Height() - 1; y >= last; y-- {
		if !rowFull(a.grid[y]) {
			continue
		}

		row := a.grid[y]
		copy(a.grid[1:y+1], a.grid[:y])
		for x := range row {
			row[x] = 0
		}
		a.grid[0] = row
		y++

		res.Rows++
		res.Points += rowCount * rules.PointsPerRow
		rowCount *= 2
	}
	return res
}

func rowFull(row []int) bool {
	for _, v := range row {
		if v == 0 {
			return false
		}
	}
	return true
}

// Merge writes the player's non-zero piece cells into the arena at the
// player's position. The position must be one where the piece fits.
func Merge(a *Arena, p *Player) {
	for y, row := range p.Matrix {
		for x, v := range row {
			if v != 0 {
				a.grid[y+p.Pos.Y][x+p.Pos.X] = v
			}
		}
	}
}
