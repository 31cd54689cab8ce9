package tetris

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine builds a classic engine that spawns the given pieces in order.
func newTestEngine(t *testing.T, pieces ...PieceType) *Engine {
	t.Helper()
	rules := DefaultRules()
	require.NoError(t, rules.Validate())
	return NewEngine(rules, WithRandom(PieceSequence(rules.Pieces, pieces...)))
}

func TestSpawnOPiece(t *testing.T) {
	e := newTestEngine(t, PieceO)
	snap := e.Snapshot()

	assert.Equal(t, PieceO, snap.PieceType)
	assert.Equal(t, Position{X: 5, Y: 0}, snap.Pos)
	assert.False(t, Collides(snap.Arena, snap.Piece, snap.Pos))
	assert.Zero(t, snap.Score)
}

func TestSpawnCentersEachPiece(t *testing.T) {
	for _, p := range AllPieces {
		e := newTestEngine(t, p)
		snap := e.Snapshot()
		want := 12/2 - NewPiece(p).Width()/2
		assert.Equal(t, want, snap.Pos.X, "piece %s", p)
		assert.Equal(t, 0, snap.Pos.Y, "piece %s", p)
	}
}

func TestMoveStopsAtWalls(t *testing.T) {
	e := newTestEngine(t, PieceO)

	for range 5 {
		require.True(t, e.Move(-1))
	}
	assert.False(t, e.Move(-1))
	assert.Equal(t, 0, e.Snapshot().Pos.X)

	for range 10 {
		require.True(t, e.Move(1))
	}
	assert.False(t, e.Move(1))
	assert.Equal(t, 10, e.Snapshot().Pos.X)
}

func TestMoveBlockedBySettledCells(t *testing.T) {
	e := newTestEngine(t, PieceO)
	e.arena.Set(4, 1, 3)

	assert.False(t, e.Move(-1))
	assert.Equal(t, 5, e.Snapshot().Pos.X)
	assert.True(t, e.Move(1))
}

func TestDropUntilFloor(t *testing.T) {
	var scores []int
	rules := DefaultRules()
	e := NewEngine(rules,
		WithRandom(PieceSequence(rules.Pieces, PieceO)),
		WithScoreListener(func(s int) { scores = append(scores, s) }),
	)
	scores = nil

	for i := range 18 {
		res := e.Drop()
		require.False(t, res.Landed, "drop %d", i)
	}
	assert.Equal(t, 18, e.Snapshot().Pos.Y)

	res := e.Drop()
	assert.True(t, res.Landed)
	assert.False(t, res.Wiped)
	assert.Zero(t, res.Rows)

	snap := e.Snapshot()
	assert.Equal(t, 2, snap.Arena[18][5])
	assert.Equal(t, 2, snap.Arena[18][6])
	assert.Equal(t, 2, snap.Arena[19][5])
	assert.Equal(t, 2, snap.Arena[19][6])
	assert.Equal(t, Position{X: 5, Y: 0}, snap.Pos, "next piece spawns at the top center")
	assert.False(t, Collides(snap.Arena, snap.Piece, snap.Pos))
	assert.Equal(t, 1, snap.Pieces)
	assert.Equal(t, []int{0}, scores, "landing signals the score")
}

func TestDropClearsRow(t *testing.T) {
	e := newTestEngine(t, PieceO)
	for x := range 12 {
		if x != 5 && x != 6 {
			e.arena.Set(x, 19, 1)
		}
	}

	var res DropResult
	for !res.Landed {
		res = e.Drop()
	}

	assert.Equal(t, 1, res.Rows)
	assert.Equal(t, 10, res.Points)
	snap := e.Snapshot()
	assert.Equal(t, 10, snap.Score)
	assert.Equal(t, 1, snap.Lines)
	// the top half of the O shifted into the cleared row
	assert.Equal(t, 2, snap.Arena[19][5])
	assert.Equal(t, 2, snap.Arena[19][6])
	assert.Equal(t, 2, snap.Arena.Cells())
}

func TestDropClearsFourRows(t *testing.T) {
	e := newTestEngine(t, PieceI)
	// the vertical I lands in column 5, completing the four bottom rows
	for y := 16; y < 20; y++ {
		for x := range 12 {
			if x != 5 {
				e.arena.Set(x, y, 1)
			}
		}
	}

	var res DropResult
	for !res.Landed {
		res = e.Drop()
	}

	assert.Equal(t, 4, res.Rows)
	assert.Equal(t, 150, res.Points)
	assert.Equal(t, 150, e.Score())
	assert.Zero(t, e.Snapshot().Arena.Cells())
}

func TestRotateOPieceIsStable(t *testing.T) {
	e := newTestEngine(t, PieceO)
	e.Move(-5)
	before := e.Snapshot()

	for _, dir := range []int{1, 1, -1, 1, -1, -1} {
		assert.True(t, e.Rotate(dir))
		after := e.Snapshot()
		assert.Equal(t, before.Piece, after.Piece)
		assert.Equal(t, before.Pos, after.Pos)
	}
}

func TestRotateKicksOffWall(t *testing.T) {
	e := newTestEngine(t, PieceI)
	for e.Move(-1) {
	}
	require.Equal(t, -1, e.Snapshot().Pos.X)

	assert.True(t, e.Rotate(1))

	snap := e.Snapshot()
	assert.Equal(t, 0, snap.Pos.X)
	assert.Equal(t, []int{5, 5, 5, 5}, []int(snap.Piece[1]))
	assert.False(t, Collides(snap.Arena, snap.Piece, snap.Pos))
}

func TestRotateKickSearchOrder(t *testing.T) {
	e := newTestEngine(t, PieceI)
	// a turned I sits on arena row 1; open only columns 1..6 there
	for x := range 12 {
		e.arena.Set(x, 1, 1)
	}
	for x := 1; x <= 6; x++ {
		e.arena.Set(x, 1, 0)
	}
	// spawn x=4 collides, the kick probes x=5 and then x=3
	assert.True(t, e.Rotate(1))
	assert.Equal(t, 3, e.Snapshot().Pos.X)
}

func TestRotateAbandonedWhenNoKickFits(t *testing.T) {
	e := newTestEngine(t, PieceI)
	// leave only the spawn column open on the rows a turned I would occupy
	for y := 1; y <= 2; y++ {
		for x := range 12 {
			if x != 5 {
				e.arena.Set(x, y, 1)
			}
		}
	}
	before := e.Snapshot()
	require.False(t, Collides(before.Arena, before.Piece, before.Pos))

	assert.False(t, e.Rotate(1))
	assert.False(t, e.Rotate(-1))

	after := e.Snapshot()
	assert.Equal(t, before.Piece, after.Piece)
	assert.Equal(t, before.Pos, after.Pos)
}

func TestSpawnCollisionWipesBoard(t *testing.T) {
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var (
		scores []int
		runs   []RunSummary
	)
	rules := DefaultRules()
	e := NewEngine(rules,
		WithRandom(PieceSequence(rules.Pieces, PieceO)),
		WithClock(func() time.Time { return clock }),
		WithScoreListener(func(s int) { scores = append(scores, s) }),
		WithRunListener(func(r RunSummary) { runs = append(runs, r) }),
	)
	scores = nil
	e.player.Score = 120
	e.lines = 3
	e.pieces = 17
	e.arena.Set(6, 0, 4)
	e.arena.Set(0, 19, 4)
	clock = clock.Add(90 * time.Second)

	assert.True(t, e.Reset())

	snap := e.Snapshot()
	assert.Zero(t, snap.Arena.Cells())
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Lines)
	assert.Zero(t, snap.Pieces)
	assert.Equal(t, 1, snap.Wipes)
	assert.False(t, Collides(snap.Arena, snap.Piece, snap.Pos))
	assert.Equal(t, []int{0}, scores)

	require.Len(t, runs, 1)
	assert.Equal(t, RunSummary{
		Score:     120,
		Lines:     3,
		Pieces:    17,
		Reason:    ReasonBoardFull,
		StartedAt: clock.Add(-90 * time.Second),
		EndedAt:   clock,
	}, runs[0])
	assert.Equal(t, 90*time.Second, runs[0].Duration())
}

func TestResetWithoutCollisionKeepsScore(t *testing.T) {
	e := newTestEngine(t, PieceT, PieceZ)
	e.player.Score = 40

	assert.False(t, e.Reset())
	snap := e.Snapshot()
	assert.Equal(t, PieceZ, snap.PieceType)
	assert.Equal(t, 40, snap.Score)
}

func TestUpdateDropsAfterInterval(t *testing.T) {
	e := newTestEngine(t, PieceT)

	_, dropped := e.Update(0)
	assert.False(t, dropped)

	_, dropped = e.Update(time.Second)
	assert.False(t, dropped, "interval must be exceeded, not met")
	assert.Equal(t, 0, e.Snapshot().Pos.Y)

	_, dropped = e.Update(time.Second + time.Millisecond)
	assert.True(t, dropped)
	assert.Equal(t, 1, e.Snapshot().Pos.Y)

	_, dropped = e.Update(1500 * time.Millisecond)
	assert.False(t, dropped, "accumulator resets after a drop")
}

func TestManualDropResetsAccumulator(t *testing.T) {
	e := newTestEngine(t, PieceT)

	e.Update(900 * time.Millisecond)
	e.Drop()
	_, dropped := e.Update(1800 * time.Millisecond)

	assert.False(t, dropped)
	assert.Equal(t, 1, e.Snapshot().Pos.Y)
}

func TestFinishDoesNotAlterRun(t *testing.T) {
	e := newTestEngine(t, PieceO)
	e.player.Score = 70

	s := e.Finish(ReasonQuit)

	assert.Equal(t, ReasonQuit, s.Reason)
	assert.Equal(t, 70, s.Score)
	assert.Equal(t, 70, e.Score())
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	e := newTestEngine(t, PieceO)
	snap := e.Snapshot()
	snap.Arena[19][0] = 9
	snap.Piece[0][0] = 9

	fresh := e.Snapshot()
	assert.Zero(t, fresh.Arena[19][0])
	assert.Equal(t, 2, fresh.Piece[0][0])
}

func TestSnapshotCellAt(t *testing.T) {
	e := newTestEngine(t, PieceO)
	e.arena.Set(0, 19, 3)
	snap := e.Snapshot()

	assert.Equal(t, 2, snap.CellAt(5, 0))
	assert.Equal(t, 2, snap.CellAt(6, 1))
	assert.Equal(t, 3, snap.CellAt(0, 19))
	assert.Zero(t, snap.CellAt(4, 0))
	assert.Zero(t, snap.CellAt(-1, 0))
}

func TestEngineSerializesConcurrentCallers(t *testing.T) {
	e := NewEngine(DefaultRules(), WithRandom(NewSeededSource(7)))

	var wg sync.WaitGroup
	for g := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				switch (g + i) % 4 {
				case 0:
					e.Move(-1)
				case 1:
					e.Move(1)
				case 2:
					e.Rotate(1)
				default:
					e.Drop()
				}
			}
		}()
	}
	wg.Wait()

	snap := e.Snapshot()
	assert.Equal(t, 12, snap.Width)
	assert.Equal(t, 20, snap.Height)
	assert.False(t, Collides(snap.Arena, snap.Piece, snap.Pos))
}

func TestEngineDeterministicForSeed(t *testing.T) {
	run := func() Snapshot {
		e := NewEngine(DefaultRules(), WithRandom(NewSeededSource(42)))
		for i := range 400 {
			switch i % 5 {
			case 0:
				e.Rotate(1)
			case 1:
				e.Move(-1)
			case 2:
				e.Move(1)
			default:
				e.Drop()
			}
		}
		return e.Snapshot()
	}

	assert.Equal(t, run(), run())
}
