package tetris

import (
	"sync"
	"time"
)

// Reasons a run ends.
const (
	ReasonBoardFull = "board_full"
	ReasonQuit      = "quit"
)

// RunSummary describes one run: the span between two board wipes, or between
// the last wipe and the player leaving.
type RunSummary struct {
	Score     int
	Lines     int
	Pieces    int
	Reason    string
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the run lasted.
func (r RunSummary) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// DropResult describes the outcome of a single gravity step.
type DropResult struct {
	Landed bool // the piece could not move down and was merged
	Wiped  bool // the next piece collided at spawn and the board was cleared
	Rows   int  // rows cleared by the sweep that followed the landing
	Points int  // points awarded by that sweep
}

// Option configures an Engine.
type Option func(*Engine)

// WithRandom sets the source used to pick spawned pieces.
func WithRandom(src RandomSource) Option {
	return func(e *Engine) {
		e.rng = src
	}
}

// WithScoreListener registers a callback invoked with the current score
// whenever the engine signals a score change: after every landing and after
// a board wipe.
func WithScoreListener(fn func(score int)) Option {
	return func(e *Engine) {
		e.onScore = fn
	}
}

// WithRunListener registers a callback invoked when a board wipe ends a run.
func WithRunListener(fn func(RunSummary)) Option {
	return func(e *Engine) {
		e.onRun = fn
	}
}

// WithClock overrides the wall clock used for run timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine is one simulation instance: an arena, the active piece, the gravity
// accumulator and run statistics. All methods are serialized by a single
// mutex, so an Engine may be driven from several goroutines. Listeners are
// invoked after the lock is released.
type Engine struct {
	mu sync.Mutex

	rules  Rules
	arena  *Arena
	player Player
	rng    RandomSource
	now    func() time.Time

	dropCounter time.Duration
	lastTime    time.Duration

	lines    int
	pieces   int
	wipes    int
	runStart time.Time

	onScore func(int)
	onRun   func(RunSummary)
	pending []func()
}

// NewEngine builds an engine with an empty arena and spawns the first piece.
// Rules are expected to be valid; see Rules.Validate.
func NewEngine(rules Rules, opts ...Option) *Engine {
	e := &Engine{
		rules: rules,
		arena: NewArena(rules.Width, rules.Height),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewSeededSource(time.Now().UnixNano())
	}
	e.runStart = e.now()

	e.mu.Lock()
	e.spawn()
	e.queueScore()
	e.unlock()
	return e
}

// unlock releases the mutex and runs any queued listener calls.
func (e *Engine) unlock() {
	pending := e.pending
	e.pending = nil
	e.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

func (e *Engine) queueScore() {
	if e.onScore == nil {
		return
	}
	score := e.player.Score
	e.pending = append(e.pending, func() { e.onScore(score) })
}

func (e *Engine) queueRun(s RunSummary) {
	if e.onRun == nil {
		return
	}
	e.pending = append(e.pending, func() { e.onRun(s) })
}

// Move shifts the active piece horizontally. A move into an occupied or
// out-of-bounds position is undone. Reports whether the piece moved.
func (e *Engine) Move(direction int) bool {
	e.mu.Lock()
	defer e.unlock()

	e.player.Pos.X += direction
	if DetectCollision(e.arena, &e.player) {
		e.player.Pos.X -= direction
		return false
	}
	return true
}

// Drop advances the active piece one row. If it cannot move, it is merged
// into the arena, the next piece is spawned and full rows are swept.
// The gravity accumulator is reset either way.
func (e *Engine) Drop() DropResult {
	e.mu.Lock()
	defer e.unlock()
	return e.drop()
}

func (e *Engine) drop() DropResult {
	var res DropResult

	e.player.Pos.Y++
	if DetectCollision(e.arena, &e.player) {
		e.player.Pos.Y--
		Merge(e.arena, &e.player)
		e.pieces++
		res.Landed = true

		res.Wiped = e.spawn()

		sw := e.arena.Sweep(e.rules.Sweep)
		e.player.Score += sw.Points
		e.lines += sw.Rows
		res.Rows = sw.Rows
		res.Points = sw.Points

		e.queueScore()
	}
	e.dropCounter = 0
	return res
}

// Reset replaces the active piece with a randomly chosen one at the top
// center of the arena. If the new piece already collides, the arena and
// score are wiped and a new run begins. Reports whether a wipe happened.
func (e *Engine) Reset() bool {
	e.mu.Lock()
	defer e.unlock()
	return e.spawn()
}

func (e *Engine) spawn() bool {
	table := e.rules.spawnTable()
	t := table[e.rng.Intn(len(table))]

	e.player.Type = t
	e.player.Matrix = NewPiece(t)
	e.player.Pos.Y = 0
	e.player.Pos.X = e.arena.Width()/2 - e.player.Matrix.Width()/2

	if !DetectCollision(e.arena, &e.player) {
		return false
	}

	e.queueRun(e.summary(ReasonBoardFull))

	e.arena.Clear()
	e.player.Score = 0
	e.lines = 0
	e.pieces = 0
	e.wipes++
	e.runStart = e.now()

	e.queueScore()
	return true
}

// Rotate turns the active piece. If the rotated piece collides, it is
// kicked sideways by +1, -1, +2, -2, ... columns until it fits; once the
// kick distance exceeds the piece width the rotation is undone.
// Reports whether the piece ended up rotated.
func (e *Engine) Rotate(direction int) bool {
	e.mu.Lock()
	defer e.unlock()

	p := &e.player
	pos := p.Pos.X
	offset := 1
	p.Matrix = Rotate(p.Matrix, direction)
	for DetectCollision(e.arena, p) {
		p.Pos.X += offset
		offset = -(offset + sign(offset))
		if offset > p.Matrix.Width() {
			inverse := -1
			if direction <= 0 {
				inverse = 1
			}
			p.Matrix = Rotate(p.Matrix, inverse)
			p.Pos.X = pos
			return false
		}
	}
	return true
}

// Update feeds a timestamp from the tick source. The elapsed time since the
// previous call is accumulated and a drop is performed once it exceeds the
// drop interval. The second return value reports whether a drop happened.
func (e *Engine) Update(now time.Duration) (DropResult, bool) {
	e.mu.Lock()
	defer e.unlock()

	delta := now - e.lastTime
	e.lastTime = now
	e.dropCounter += delta

	if e.dropCounter > e.rules.DropInterval {
		return e.drop(), true
	}
	return DropResult{}, false
}

// Score returns the current score.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.player.Score
}

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Finish returns a summary of the run in progress without altering it.
func (e *Engine) Finish(reason string) RunSummary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.summary(reason)
}

func (e *Engine) summary(reason string) RunSummary {
	return RunSummary{
		Score:     e.player.Score,
		Lines:     e.lines,
		Pieces:    e.pieces,
		Reason:    reason,
		StartedAt: e.runStart,
		EndedAt:   e.now(),
	}
}
