// Package lavarun implements the lavarun platformer: a player collects every
// coin on a tile board while avoiding lava and fireballs.
//
// Game is the fixed-step tick driver around the engine in package core. It
// plays the part of the frame loop and of the input collaborator that moves
// the player; it never sleeps and has no notion of wall-clock time.
package lavarun

import (
	"math/rand"

	platformcore "github.com/vovakirdan/lavarun/internal/core"
	"github.com/vovakirdan/lavarun/internal/config"
	"github.com/vovakirdan/lavarun/internal/games/lavarun/core"
	"github.com/vovakirdan/lavarun/internal/games/lavarun/levels"
)

// Game implements one playthrough of a level.
type Game struct {
	cfg     config.Config
	level   levels.Level
	runtime platformcore.RuntimeConfig
	parser  *core.Parser
	board   *core.Board
	tick    int     // Ticks since reset
	elapsed float64 // Simulated seconds since reset
	paused  bool
}

// New creates a game for the level. Call Reset before stepping.
func New(cfg config.Config, level levels.Level) *Game {
	return &Game{cfg: cfg, level: level}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "lavarun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lava Run"
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// Reset rebuilds the board from the level plan.
// The same seed always produces the same board, coin phases included.
func (g *Game) Reset(rc platformcore.RuntimeConfig) error {
	if rc.Step <= 0 {
		rc.Step = platformcore.DefaultConfig().Step
	}

	parser, err := NewParser(g.cfg.Symbols, rand.New(rand.NewSource(rc.Seed)))
	if err != nil {
		return err
	}

	g.runtime = rc
	g.parser = parser
	g.restart()
	return nil
}

// restart rebuilds the board from the plan. Coin phases continue the
// run's random sequence, so a restarted attempt is not a replay.
func (g *Game) restart() {
	g.board = g.parser.Parse(g.level.Plan)
	g.board.SetFinishDelay(g.cfg.Simulation.FinishDelay)
	g.tick = 0
	g.elapsed = 0
	g.paused = false
}

// Step advances the game by one tick.
// Actors update in list order over a snapshot of the list, so an actor
// removed during the tick is neither skipped over nor updated twice.
// Restart only takes effect once the level is decided.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.board == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionRestart) && g.board.Status().IsSet() {
		g.restart()
		return platformcore.StepResult{State: g.State()}
	}

	if g.board.IsFinished() {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	dt := g.runtime.Step
	g.tick++
	g.elapsed += dt

	if g.board.Status().IsSet() {
		g.board.SetFinishDelay(g.board.FinishDelay() - dt)
	}

	player := g.board.Player()
	for _, a := range g.board.Actors() {
		if !g.board.Contains(a) {
			continue
		}
		if a == player {
			g.movePlayer(player, dt, in)
			continue
		}
		a.Update(dt, g.board)
	}

	return platformcore.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.board == nil {
		return platformcore.GameState{}
	}

	status := ""
	if g.board.Status().IsSet() {
		status = g.board.Status().String()
	}

	return platformcore.GameState{
		Status:   status,
		Coins:    g.board.Count(core.KindCoin),
		Ticks:    g.tick,
		Finished: g.board.IsFinished(),
		Paused:   g.paused,
	}
}

// Board returns the live board. Callers must treat it as read-only.
func (g *Game) Board() *core.Board {
	return g.board
}

// Ticks returns the number of ticks simulated since reset.
func (g *Game) Ticks() int {
	return g.tick
}

// Elapsed returns the simulated seconds since reset.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}
