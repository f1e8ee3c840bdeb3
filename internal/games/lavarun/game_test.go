package lavarun_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformcore "github.com/vovakirdan/lavarun/internal/core"
	"github.com/vovakirdan/lavarun/internal/config"
	"github.com/vovakirdan/lavarun/internal/games/lavarun"
	"github.com/vovakirdan/lavarun/internal/games/lavarun/core"
	"github.com/vovakirdan/lavarun/internal/games/lavarun/levels"
)

func packLevel(t *testing.T, id string) levels.Level {
	t.Helper()
	lvl, err := levels.NewEmbeddedLoader().LoadByID(id)
	require.NoError(t, err)
	return lvl
}

func newGame(t *testing.T, lvl levels.Level, seed int64) *lavarun.Game {
	t.Helper()
	g := lavarun.New(config.Embedded(), lvl)
	rc := platformcore.DefaultConfig()
	rc.Seed = seed
	require.NoError(t, g.Reset(rc))
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// stepUntilFinished steps with the same input until the game finishes.
func stepUntilFinished(t *testing.T, g *lavarun.Game, in platformcore.InputFrame, limit int) platformcore.GameState {
	t.Helper()
	for i := 0; i < limit; i++ {
		if res := g.Step(in); res.State.Finished {
			return res.State
		}
	}
	t.Fatalf("game did not finish within %d ticks", limit)
	return platformcore.GameState{}
}

func TestGameIdentity(t *testing.T) {
	g := lavarun.New(config.Embedded(), levels.Level{})
	assert.Equal(t, "lavarun", g.ID())
	assert.NotEmpty(t, g.Title())
}

func TestGameStepBeforeReset(t *testing.T) {
	g := lavarun.New(config.Embedded(), levels.Level{})
	res := g.Step(frame(platformcore.ActionRight))
	assert.Equal(t, platformcore.GameState{}, res.State)
	assert.Nil(t, g.Board())
}

func TestGameResetRejectsBadSymbols(t *testing.T) {
	cfg := config.Embedded()
	cfg.Symbols.Actors = map[string]string{"@": "dragon"}
	g := lavarun.New(cfg, levels.Level{Plan: []string{"@"}})
	assert.Error(t, g.Reset(platformcore.DefaultConfig()))
}

func TestGamePlayerRestsOnFloor(t *testing.T) {
	g := newGame(t, packLevel(t, "01-first-coin"), 1)
	for i := 0; i < 50; i++ {
		g.Step(platformcore.InputFrame{})
	}

	p := g.Board().Player()
	require.NotNil(t, p)
	assert.Equal(t, platformcore.V(1, 0.5), p.Pos())
	assert.Equal(t, 0.0, p.Speed().Y)
	assert.False(t, g.Board().Status().IsSet())
}

func TestGameJumpFromFloor(t *testing.T) {
	g := newGame(t, packLevel(t, "01-first-coin"), 1)
	up := frame(platformcore.ActionUp)

	g.Step(up)
	p := g.Board().Player()
	assert.Equal(t, -config.Embedded().Player.JumpSpeed, p.Speed().Y)
	assert.Equal(t, 0.5, p.Pos().Y)

	g.Step(up)
	assert.Less(t, p.Pos().Y, 0.5)
}

func TestGameCollectingLastCoinWins(t *testing.T) {
	g := newGame(t, packLevel(t, "01-first-coin"), 1)

	state := stepUntilFinished(t, g, frame(platformcore.ActionRight), 500)

	assert.Equal(t, "won", state.Status)
	assert.Equal(t, 0, state.Coins)
	assert.True(t, state.Finished)
	assert.Less(t, g.Board().FinishDelay(), 0.0)
}

func TestGameLavaLoses(t *testing.T) {
	g := newGame(t, packLevel(t, "02-lava-pit"), 1)

	state := stepUntilFinished(t, g, frame(platformcore.ActionRight), 500)

	assert.Equal(t, "lost", state.Status)
	assert.Equal(t, 1, state.Coins)
}

func TestGameFireballLoses(t *testing.T) {
	g := newGame(t, packLevel(t, "03-patrol"), 1)

	state := stepUntilFinished(t, g, platformcore.InputFrame{}, 1000)

	assert.Equal(t, "lost", state.Status)
}

func TestGameFinishDelayDrainsOnlyAfterDecision(t *testing.T) {
	g := newGame(t, packLevel(t, "01-first-coin"), 1)
	right := frame(platformcore.ActionRight)

	for !g.Board().Status().IsSet() {
		require.Equal(t, config.Embedded().Simulation.FinishDelay, g.Board().FinishDelay())
		g.Step(right)
		require.Less(t, g.Ticks(), 100)
	}

	before := g.Board().FinishDelay()
	g.Step(right)
	assert.InDelta(t, before-platformcore.DefaultConfig().Step, g.Board().FinishDelay(), 1e-9)
}

func TestGameFinishedGameDoesNotAdvance(t *testing.T) {
	g := newGame(t, packLevel(t, "01-first-coin"), 1)
	stepUntilFinished(t, g, frame(platformcore.ActionRight), 500)

	ticks := g.Ticks()
	fp := g.Board().Fingerprint()
	g.Step(frame(platformcore.ActionRight))

	assert.Equal(t, ticks, g.Ticks())
	assert.Equal(t, fp, g.Board().Fingerprint())
}

func TestGamePause(t *testing.T) {
	g := newGame(t, packLevel(t, "03-patrol"), 1)
	fp := g.Board().Fingerprint()

	res := g.Step(frame(platformcore.ActionPause))
	assert.True(t, res.State.Paused)
	for i := 0; i < 10; i++ {
		g.Step(platformcore.InputFrame{})
	}
	assert.Equal(t, 0, g.Ticks())
	assert.Equal(t, 0.0, g.Elapsed())
	assert.Equal(t, fp, g.Board().Fingerprint())

	res = g.Step(frame(platformcore.ActionPause))
	assert.False(t, res.State.Paused)
	assert.Equal(t, 1, g.Ticks())
}

func TestGameWithoutPlayerStillTicks(t *testing.T) {
	lvl := levels.Level{ID: "empty", Plan: []string{"  =   ", "xxxxxx"}}
	g := newGame(t, lvl, 1)
	require.Nil(t, g.Board().Player())

	g.Step(platformcore.InputFrame{})

	actors := g.Board().Actors()
	require.Len(t, actors, 1)
	assert.Equal(t, core.KindFireball, actors[0].Kind())
	assert.InDelta(t, 2.04, actors[0].Pos().X, 1e-9)
	assert.InDelta(t, platformcore.DefaultConfig().Step, g.Elapsed(), 1e-12)
}

func TestGameDeterminism(t *testing.T) {
	lvl := packLevel(t, "04-rainfall")
	script := []platformcore.InputFrame{
		frame(platformcore.ActionRight),
		frame(platformcore.ActionRight, platformcore.ActionUp),
		{},
		frame(platformcore.ActionLeft),
	}

	run := func(seed int64) uint64 {
		g := newGame(t, lvl, seed)
		for i := 0; i < 120; i++ {
			g.Step(script[i%len(script)])
		}
		return g.Board().Fingerprint()
	}

	assert.Equal(t, run(7), run(7))
	assert.NotEqual(t, run(7), run(8))
}

func TestGameResetRestoresInitialBoard(t *testing.T) {
	g := newGame(t, packLevel(t, "03-patrol"), 3)
	initial := g.Board().Fingerprint()

	for i := 0; i < 30; i++ {
		g.Step(platformcore.InputFrame{})
	}
	require.NotEqual(t, initial, g.Board().Fingerprint())

	rc := platformcore.DefaultConfig()
	rc.Seed = 3
	require.NoError(t, g.Reset(rc))
	assert.Equal(t, initial, g.Board().Fingerprint())
	assert.Equal(t, 0, g.Ticks())
}

func TestGameRemovalDuringTickUpdatesLaterActorsOnce(t *testing.T) {
	lvl := levels.Level{ID: "snapshot", Plan: []string{
		"          ",
		"@o=    o  ",
		"xxxxxxxxxx",
	}}
	g := newGame(t, lvl, 1)
	right := frame(platformcore.ActionRight)

	fireball := func() *core.Actor {
		for _, a := range g.Board().Actors() {
			if a.Kind() == core.KindFireball {
				return a
			}
		}
		t.Fatal("no fireball on the board")
		return nil
	}

	for g.Board().Count(core.KindCoin) == 2 {
		require.Less(t, g.Ticks(), 20, "player never reached the first coin")

		before := fireball().Pos().X
		g.Step(right)
		moved := fireball().Pos().X - before
		assert.InDelta(t, core.HorizontalFireballSpeed.X*platformcore.DefaultConfig().Step, moved, 1e-9,
			"tick %d", g.Ticks())
	}

	assert.Equal(t, 1, g.Board().Count(core.KindCoin))
	assert.False(t, g.Board().Status().IsSet())
}

func TestGameRestartAfterDecision(t *testing.T) {
	g := newGame(t, packLevel(t, "02-lava-pit"), 1)
	initial := g.Board().Fingerprint()
	restart := frame(platformcore.ActionRestart)

	// Ignored while the level is undecided.
	g.Step(restart)
	assert.Equal(t, 1, g.Ticks())

	stepUntilFinished(t, g, frame(platformcore.ActionRight), 500)
	require.Equal(t, "lost", g.State().Status)

	res := g.Step(restart)
	assert.Equal(t, "", res.State.Status)
	assert.False(t, res.State.Finished)
	assert.Equal(t, 0, g.Ticks())
	assert.Equal(t, initial, g.Board().Fingerprint())
}
