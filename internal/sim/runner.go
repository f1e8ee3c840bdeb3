package sim

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/lavarun/internal/config"
	platformcore "github.com/vovakirdan/lavarun/internal/core"
	"github.com/vovakirdan/lavarun/internal/games/lavarun"
	"github.com/vovakirdan/lavarun/internal/games/lavarun/levels"
)

// Statuses of runs that ended before the level was decided.
const (
	StatusTimeout   = "timeout"   // Tick limit reached
	StatusAbandoned = "abandoned" // Controller sent Quit
)

// Result is the outcome of one headless run.
type Result struct {
	RunID       string
	LevelID     string
	Status      string // "won", "lost", StatusTimeout or StatusAbandoned
	Finished    bool   // Decided and finish delay drained
	Ticks       int
	Elapsed     float64 // Simulated seconds
	CoinsLeft   int
	Fingerprint uint64
	Seed        int64
}

// Won reports whether the run collected every coin.
func (r Result) Won() bool {
	return r.Status == "won"
}

// ResultSaver persists run results.
// This allows the runner to record runs without depending on the storage package.
type ResultSaver interface {
	SaveResult(result Result) error
}

// ControllerFunc picks the controller for a level.
type ControllerFunc func(level levels.Level) (Controller, error)

// Runner simulates levels without a terminal.
type Runner struct {
	cfg    config.Config
	logger *log.Logger
	saver  ResultSaver // Optional, can be nil
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(cfg config.Config, logger *log.Logger, saver ResultSaver) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cfg: cfg, logger: logger, saver: saver}
}

// Run plays level with ctrl until the level is finished, the controller
// sends Quit or the tick limit is reached. Cancellation is checked between ticks.
func (r *Runner) Run(ctx context.Context, level levels.Level, ctrl Controller) (Result, error) {
	rc := r.cfg.RuntimeConfig()
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	game := lavarun.New(r.cfg, level)
	if err := game.Reset(rc); err != nil {
		return Result{}, fmt.Errorf("sim: level %s: %w", level.ID, err)
	}

	r.logger.Debug("run started", "level", level.ID, "seed", rc.Seed, "max_ticks", rc.MaxTicks)

	abandoned := false
	for tick := 0; tick < rc.MaxTicks; tick++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("sim: level %s: %w", level.ID, err)
		}
		in := ctrl.Input(tick, game.Board())
		if in.Has(platformcore.ActionQuit) {
			abandoned = true
			break
		}
		if res := game.Step(in); res.State.Finished {
			break
		}
	}

	state := game.State()
	result := Result{
		RunID:       uuid.NewString(),
		LevelID:     level.ID,
		Status:      state.Status,
		Finished:    state.Finished,
		Ticks:       game.Ticks(),
		Elapsed:     game.Elapsed(),
		CoinsLeft:   state.Coins,
		Fingerprint: game.Board().Fingerprint(),
		Seed:        rc.Seed,
	}
	if result.Status == "" {
		result.Status = StatusTimeout
		if abandoned {
			result.Status = StatusAbandoned
		}
	}

	r.logger.Info("run finished",
		"level", result.LevelID,
		"status", result.Status,
		"ticks", result.Ticks,
		"coins_left", result.CoinsLeft,
	)

	// Best effort save
	if r.saver != nil {
		if err := r.saver.SaveResult(result); err != nil {
			r.logger.Warn("could not save run", "level", result.LevelID, "error", err)
		}
	}

	return result, nil
}

// RunAll simulates every level on its own board, at most workers at a
// time (unbounded when workers <= 0). Results keep the order of lvls.
// The first failing run cancels the rest.
func (r *Runner) RunAll(ctx context.Context, lvls []levels.Level, pick ControllerFunc, workers int) ([]Result, error) {
	if pick == nil {
		pick = LevelController
	}

	results := make([]Result, len(lvls))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, lvl := range lvls {
		g.Go(func() error {
			ctrl, err := pick(lvl)
			if err != nil {
				return fmt.Errorf("sim: level %s: %w", lvl.ID, err)
			}
			res, err := r.Run(ctx, lvl, ctrl)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// LevelController replays the level's own script, or idles when it has none.
func LevelController(level levels.Level) (Controller, error) {
	if level.Script == "" {
		return Idle{}, nil
	}
	script, err := ParseScript(level.Script)
	if err != nil {
		return nil, err
	}
	return script, nil
}

// ScriptController replays the same script on every level.
func ScriptController(src string) (ControllerFunc, error) {
	script, err := ParseScript(src)
	if err != nil {
		return nil, err
	}
	return func(levels.Level) (Controller, error) {
		return script, nil
	}, nil
}
