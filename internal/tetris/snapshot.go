package tetris

// Snapshot is a read-only copy of everything a presentation layer needs to
// draw the game. It shares no memory with the engine.
type Snapshot struct {
	Width  int
	Height int
	Arena  Matrix

	Piece     Matrix
	PieceType PieceType
	Pos       Position

	Score  int
	Lines  int
	Pieces int
	Wipes  int
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		Width:     e.arena.Width(),
		Height:    e.arena.Height(),
		Arena:     e.arena.Matrix(),
		Piece:     e.player.Matrix.Clone(),
		PieceType: e.player.Type,
		Pos:       e.player.Pos,
		Score:     e.player.Score,
		Lines:     e.lines,
		Pieces:    e.pieces,
		Wipes:     e.wipes,
	}
}

// CellAt returns the value visible at (x, y): the active piece if it covers
// the cell, otherwise the settled arena value.
func (s Snapshot) CellAt(x, y int) int {
	py, px := y-s.Pos.Y, x-s.Pos.X
	if py >= 0 && py < s.Piece.Height() && px >= 0 && px < s.Piece.Width() {
		if v := s.Piece[py][px]; v != 0 {
			return v
		}
	}
	if y < 0 || y >= s.Height || x < 0 || x >= s.Width {
		return 0
	}
	return s.Arena[y][x]
}
