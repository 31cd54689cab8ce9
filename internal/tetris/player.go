package tetris

// Player is the active piece and the running score.
// The matrix and position are replaced on every spawn; the score persists
// until the board is wiped.
type Player struct {
	Matrix Matrix
	Type   PieceType
	Pos    Position
	Score  int
}

// sign returns -1, 0 or 1.
func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
