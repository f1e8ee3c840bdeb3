package sim_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lavarun/internal/config"
	"github.com/vovakirdan/lavarun/internal/games/lavarun/levels"
	"github.com/vovakirdan/lavarun/internal/sim"
)

type memorySaver struct {
	mu      sync.Mutex
	results []sim.Result
	err     error
}

func (m *memorySaver) SaveResult(r sim.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.results = append(m.results, r)
	return nil
}

func packLevel(t *testing.T, id string) levels.Level {
	t.Helper()
	lvl, err := levels.NewEmbeddedLoader().LoadByID(id)
	require.NoError(t, err)
	return lvl
}

func runLevel(t *testing.T, r *sim.Runner, id string) sim.Result {
	t.Helper()
	lvl := packLevel(t, id)
	ctrl, err := sim.LevelController(lvl)
	require.NoError(t, err)
	res, err := r.Run(context.Background(), lvl, ctrl)
	require.NoError(t, err)
	return res
}

func TestRunWinsFirstCoin(t *testing.T) {
	saver := &memorySaver{}
	r := sim.NewRunner(config.Embedded(), nil, saver)

	res := runLevel(t, r, "01-first-coin")

	assert.Equal(t, "won", res.Status)
	assert.True(t, res.Won())
	assert.True(t, res.Finished)
	assert.Equal(t, 0, res.CoinsLeft)
	assert.Equal(t, "01-first-coin", res.LevelID)
	assert.Equal(t, int64(1), res.Seed)
	assert.NotEmpty(t, res.RunID)
	assert.InDelta(t, float64(res.Ticks)*0.02, res.Elapsed, 1e-9)

	require.Len(t, saver.results, 1)
	assert.Equal(t, res, saver.results[0])
}

func TestRunLosesInLava(t *testing.T) {
	r := sim.NewRunner(config.Embedded(), nil, nil)

	res := runLevel(t, r, "02-lava-pit")

	assert.Equal(t, "lost", res.Status)
	assert.False(t, res.Won())
	assert.Equal(t, 1, res.CoinsLeft)
}

func TestRunTimesOut(t *testing.T) {
	cfg := config.Embedded()
	cfg.Simulation.MaxTicks = 5
	r := sim.NewRunner(cfg, nil, nil)

	res, err := r.Run(context.Background(), packLevel(t, "01-first-coin"), sim.Idle{})
	require.NoError(t, err)

	assert.Equal(t, sim.StatusTimeout, res.Status)
	assert.False(t, res.Finished)
	assert.Equal(t, 5, res.Ticks)
}

func TestRunAbandonedOnQuit(t *testing.T) {
	saver := &memorySaver{}
	r := sim.NewRunner(config.Embedded(), nil, saver)

	res, err := r.Run(context.Background(), packLevel(t, "01-first-coin"), sim.MustParseScript(".*10 Q"))
	require.NoError(t, err)

	assert.Equal(t, sim.StatusAbandoned, res.Status)
	assert.False(t, res.Finished)
	assert.Equal(t, 10, res.Ticks)
	require.Len(t, saver.results, 1)
	assert.Equal(t, sim.StatusAbandoned, saver.results[0].Status)
}

func TestRunQuitAfterLossKeepsOutcome(t *testing.T) {
	r := sim.NewRunner(config.Embedded(), nil, nil)

	// Lava decides the level long before the quit arrives, but the
	// finish delay is still draining.
	lvl := packLevel(t, "02-lava-pit")
	res, err := r.Run(context.Background(), lvl, sim.MustParseScript("R*1000"))
	require.NoError(t, err)
	require.Equal(t, "lost", res.Status)

	quitAt := res.Ticks - 1
	script := sim.MustParseScript("R*" + strconv.Itoa(quitAt) + " Q")
	res, err = r.Run(context.Background(), lvl, script)
	require.NoError(t, err)

	assert.Equal(t, "lost", res.Status)
	assert.False(t, res.Finished)
	assert.Equal(t, quitAt, res.Ticks)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	saver := &memorySaver{}
	r := sim.NewRunner(config.Embedded(), nil, saver)
	_, err := r.Run(ctx, packLevel(t, "01-first-coin"), sim.Idle{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, saver.results)
}

func TestRunSaveFailureDoesNotFailRun(t *testing.T) {
	saver := &memorySaver{err: errors.New("disk full")}
	r := sim.NewRunner(config.Embedded(), nil, saver)

	res := runLevel(t, r, "01-first-coin")
	assert.Equal(t, "won", res.Status)
}

func TestRunBadSymbols(t *testing.T) {
	cfg := config.Embedded()
	cfg.Symbols.Actors = map[string]string{"@": "nobody"}
	r := sim.NewRunner(cfg, nil, nil)

	_, err := r.Run(context.Background(), packLevel(t, "01-first-coin"), sim.Idle{})
	assert.Error(t, err)
}

func TestRunIsDeterministic(t *testing.T) {
	r := sim.NewRunner(config.Embedded(), nil, nil)

	a := runLevel(t, r, "04-rainfall")
	b := runLevel(t, r, "04-rainfall")

	assert.Equal(t, a.Fingerprint, b.Fingerprint)
	assert.Equal(t, a.Ticks, b.Ticks)
	assert.Equal(t, a.Status, b.Status)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRunAllKeepsOrder(t *testing.T) {
	lvls, err := levels.NewEmbeddedLoader().LoadAll()
	require.NoError(t, err)
	require.NotEmpty(t, lvls)

	saver := &memorySaver{}
	r := sim.NewRunner(config.Embedded(), nil, saver)

	results, err := r.RunAll(context.Background(), lvls, nil, 2)
	require.NoError(t, err)
	require.Len(t, results, len(lvls))
	assert.Len(t, saver.results, len(lvls))

	for i, lvl := range lvls {
		assert.Equal(t, lvl.ID, results[i].LevelID)

		ctrl, err := sim.LevelController(lvl)
		require.NoError(t, err)
		single, err := r.Run(context.Background(), lvl, ctrl)
		require.NoError(t, err)
		assert.Equal(t, single.Fingerprint, results[i].Fingerprint, lvl.ID)
	}
}

func TestRunAllWithSharedScript(t *testing.T) {
	pick, err := sim.ScriptController("R*40")
	require.NoError(t, err)

	lvls := []levels.Level{packLevel(t, "01-first-coin"), packLevel(t, "02-lava-pit")}
	r := sim.NewRunner(config.Embedded(), nil, nil)

	results, err := r.RunAll(context.Background(), lvls, pick, 0)
	require.NoError(t, err)
	assert.Equal(t, "won", results[0].Status)
	assert.Equal(t, "lost", results[1].Status)
}

func TestRunAllStopsOnError(t *testing.T) {
	lvls := []levels.Level{packLevel(t, "01-first-coin"), packLevel(t, "02-lava-pit")}
	r := sim.NewRunner(config.Embedded(), nil, nil)

	pick := func(lvl levels.Level) (sim.Controller, error) {
		if lvl.ID == "02-lava-pit" {
			return nil, errors.New("no controller")
		}
		return sim.Idle{}, nil
	}

	_, err := r.RunAll(context.Background(), lvls, pick, 1)
	assert.ErrorContains(t, err, "02-lava-pit")
}

func TestScriptControllerRejectsBadScript(t *testing.T) {
	_, err := sim.ScriptController("R*x")
	assert.Error(t, err)
}

func TestLevelControllerIdleWithoutScript(t *testing.T) {
	ctrl, err := sim.LevelController(levels.Level{ID: "x"})
	require.NoError(t, err)
	assert.Equal(t, sim.Idle{}, ctrl)
}
