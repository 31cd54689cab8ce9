package tetris

import "math/rand"

// RandomSource picks spawn indices. *rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewSeededSource returns a deterministic source for the given seed.
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// SequenceSource replays a fixed list of values, cycling when exhausted.
// Each value is reduced modulo n. Useful for scripted games and tests.
type SequenceSource struct {
	values []int
	next   int
}

// NewSequenceSource creates a source that yields values in order.
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

// PieceSequence builds a SequenceSource that spawns the given pieces in order
// from the provided spawn table.
func PieceSequence(table []PieceType, pieces ...PieceType) *SequenceSource {
	values := make([]int, 0, len(pieces))
	for _, p := range pieces {
		for i, t := range table {
			if t == p {
				values = append(values, i)
				break
			}
		}
	}
	return NewSequenceSource(values...)
}

// Intn implements RandomSource.
func (s *SequenceSource) Intn(n int) int {
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}
