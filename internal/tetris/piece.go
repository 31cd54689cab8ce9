package tetris

import (
	"fmt"
	"strings"
)

// PieceType identifies one of the seven tetrominoes.
type PieceType string

const (
	PieceI PieceType = "I"
	PieceO PieceType = "O"
	PieceT PieceType = "T"
	PieceS PieceType = "S"
	PieceZ PieceType = "Z"
	PieceJ PieceType = "J"
	PieceL PieceType = "L"
)

// AllPieces is the spawn table the random selector indexes into.
// The order is part of the deterministic behavior for a given random sequence.
var AllPieces = []PieceType{PieceI, PieceL, PieceJ, PieceO, PieceT, PieceS, PieceZ}

// NewPiece returns a freshly allocated matrix for the piece in its spawn
// orientation. Every encoding is square so in-place rotation is always valid.
// Unknown piece types panic.
func NewPiece(t PieceType) Matrix {
	switch t {
	case PieceT:
		return Matrix{
			{0, 0, 0},
			{1, 1, 1},
			{0, 1, 0},
		}
	case PieceO:
		return Matrix{
			{2, 2},
			{2, 2},
		}
	case PieceL:
		return Matrix{
			{0, 3, 0},
			{0, 3, 0},
			{0, 3, 3},
		}
	case PieceJ:
		return Matrix{
			{0, 4, 0},
			{0, 4, 0},
			{4, 4, 0},
		}
	case PieceI:
		return Matrix{
			{0, 5, 0, 0},
			{0, 5, 0, 0},
			{0, 5, 0, 0},
			{0, 5, 0, 0},
		}
	case PieceS:
		return Matrix{
			{0, 6, 6},
			{6, 6, 0},
			{0, 0, 0},
		}
	case PieceZ:
		return Matrix{
			{7, 7, 0},
			{0, 7, 7},
			{0, 0, 0},
		}
	}
	panic(fmt.Sprintf("tetris: unknown piece type %q", string(t)))
}

// ParsePieceType converts a user-supplied identifier (case-insensitive) into a PieceType.
func ParsePieceType(s string) (PieceType, error) {
	t := PieceType(strings.ToUpper(strings.TrimSpace(s)))
	for _, p := range AllPieces {
		if p == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("tetris: unknown piece type %q", s)
}

// palette maps a cell value to its display color name. Index 0 is the empty cell.
var palette = [...]string{
	"black",
	"red",
	"blue",
	"violet",
	"green",
	"purple",
	"orange",
	"pink",
}

// ColorName returns the display color for a cell value.
// Values outside the palette render as the empty color.
func ColorName(value int) string {
	if value < 0 || value >= len(palette) {
		return palette[0]
	}
	return palette[value]
}

// PaletteSize is the number of entries in the color palette, including empty.
func PaletteSize() int {
	return len(palette)
}
