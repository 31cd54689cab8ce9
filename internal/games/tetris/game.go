// Package tetris adapts the falling-block simulation to the arcade game
// contract. It owns input mapping, gravity timing and the journal of finished
// runs; all board rules live in the simulation package.
package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	sim "github.com/vovakirdan/tui-tetris/internal/tetris"
)

// ReasonRestart marks a run abandoned with the restart key.
const ReasonRestart = "restart"

// Variant describes one registered flavour of the game.
type Variant struct {
	ID    string
	Title string
	Width int // arena width override; 0 keeps the configured width
}

// Variants lists every registered flavour.
var Variants = []Variant{
	{ID: "tetris", Title: "Tetris"},
	{ID: "tetris_narrow", Title: "Tetris (Narrow)", Width: 10},
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by the next Reset.
func SetDifficultyPreset(name string) error {
	p, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// LoadRules resolves the simulation rules for a variant from the configured
// file and difficulty preset.
func LoadRules(v Variant) (sim.Rules, error) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		return sim.Rules{}, err
	}
	if err := config.ApplyTetrisPreset(&cfg, difficultyPreset); err != nil {
		return sim.Rules{}, err
	}
	if v.Width > 0 {
		cfg.Arena.Width = v.Width
	}
	return cfg.Rules()
}

// Game implements registry.Game on top of a simulation engine.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	rules   sim.Rules
	engine  *sim.Engine
	loadErr error

	tick     uint64
	paused   bool
	tooSmall bool

	scoreChanged bool
	lastClear    sim.DropResult
	runs         []sim.RunSummary
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// ConfigError reports why the last Reset fell back to the default rules.
func (g *Game) ConfigError() error {
	return g.loadErr
}

// Reset loads the rules and starts a fresh board.
// Unfinished runs from a previous board are not journaled; call FinishRun first.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	rules, err := LoadRules(g.variant)
	g.loadErr = err
	if err != nil {
		rules = sim.DefaultRules()
		if g.variant.Width > 0 {
			rules.Width = g.variant.Width
		}
	}
	g.rules = rules

	g.newEngine()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

func (g *Game) newEngine() {
	g.tick = 0
	g.paused = false
	g.lastClear = sim.DropResult{}
	g.engine = sim.NewEngine(g.rules,
		sim.WithRandom(sim.NewSeededSource(g.runtime.Seed)),
		sim.WithScoreListener(func(int) { g.scoreChanged = true }),
		sim.WithRunListener(func(s sim.RunSummary) { g.runs = append(g.runs, s) }),
	)
}

// Resize adapts the layout to a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	minW, minH := g.minScreen()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.runs = append(g.runs, g.engine.Finish(ReasonRestart))
		g.runtime.Seed++
		g.newEngine()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return g.result()
	}

	g.tick++

	for _, a := range in.Actions() {
		switch a {
		case core.ActionMoveLeft:
			g.engine.Move(-1)
		case core.ActionMoveRight:
			g.engine.Move(1)
		case core.ActionSoftDrop:
			g.noteDrop(g.engine.Drop())
		case core.ActionRotateCW:
			g.engine.Rotate(1)
		case core.ActionRotateCCW:
			g.engine.Rotate(-1)
		}
	}

	if res, dropped := g.engine.Update(g.elapsed()); dropped {
		g.noteDrop(res)
	}

	return g.result()
}

// elapsed converts the tick counter to simulation time.
func (g *Game) elapsed() time.Duration {
	return time.Duration(g.tick) * g.runtime.TickInterval()
}

func (g *Game) noteDrop(res sim.DropResult) {
	if res.Rows > 0 {
		g.lastClear = res
	}
	if res.Wiped {
		g.lastClear = sim.DropResult{}
	}
}

func (g *Game) result() core.StepResult {
	r := core.StepResult{State: g.State(), ScoreChanged: g.scoreChanged}
	g.scoreChanged = false
	return r
}

// State returns the current game state. The game never ends on its own.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.engine.Score(),
		Paused: g.paused,
	}
}

// DrainRuns returns the runs finished since the last call.
func (g *Game) DrainRuns() []sim.RunSummary {
	runs := g.runs
	g.runs = nil
	return runs
}

// FinishRun summarizes the run in progress, typically when the player leaves.
func (g *Game) FinishRun(reason string) sim.RunSummary {
	if g.engine == nil {
		return sim.RunSummary{Reason: reason}
	}
	return g.engine.Finish(reason)
}

// Rules returns the rules the current board was built with.
func (g *Game) Rules() sim.Rules {
	return g.rules
}
