package tetris

// Position is the arena coordinate of a piece matrix's top-left cell.
// It may be negative while a move is being probed.
type Position struct {
	X, Y int
}

// Collides reports whether piece, placed at pos, overlaps an occupied arena
// cell or leaves the arena on any side. Only non-zero piece cells are tested.
func Collides(arena Matrix, piece Matrix, pos Position) bool {
	h := arena.Height()
	w := arena.Width()
	for y, row := range piece {
		for x, v := range row {
			if v == 0 {
				continue
			}
			ay, ax := y+pos.Y, x+pos.X
			if ay < 0 || ay >= h || ax < 0 || ax >= w {
				return true
			}
			if arena[ay][ax] != 0 {
				return true
			}
		}
	}
	return false
}

// DetectCollision tests the player's active piece against the arena.
func DetectCollision(a *Arena, p *Player) bool {
	return Collides(a.grid, p.Matrix, p.Pos)
}
