package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavarun/internal/games/lavarun"
	"github.com/vovakirdan/lavarun/internal/games/lavarun/levels"
	"github.com/vovakirdan/lavarun/internal/sim"
)

var checkCmd = &cobra.Command{
	Use:   "check [id...]",
	Short: "Validate levels and replay their scripts",
	Long: `Check that levels are playable: exactly one player, at least one coin
and only known symbols. Levels that carry a script and an expected
outcome are replayed and the outcome compared. Nothing is recorded.

Exits with status 1 if any level fails.

Examples:
  lavarun check
  lavarun check 01-first-coin 02-lava-pit`,
	RunE: runCheck,
}

// checkOutcome is the verdict for one level.
type checkOutcome struct {
	level  levels.Level
	err    error
	replay string // Outcome of the replay, empty when not replayed
}

func runCheck(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	lvls, err := selectLevels(newLevelLoader(cfg, logger), args)
	if err != nil {
		return err
	}

	parser, err := lavarun.NewParser(cfg.Symbols, rand.New(rand.NewSource(1)))
	if err != nil {
		return fmt.Errorf("invalid symbols: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := sim.NewRunner(cfg, logger, nil)
	outcomes := make([]checkOutcome, len(lvls))
	for i, lvl := range lvls {
		outcomes[i] = checkLevel(ctx, runner, lvl, levels.Validate(lvl, parser))
	}

	failed := 0
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		verdict := "ok"
		if o.err != nil {
			verdict = "FAIL"
			failed++
			logger.Error("check failed", "level", o.level.ID, "error", o.err)
		}
		rows = append(rows, []string{o.level.ID, o.level.Expect, o.replay, verdict})
	}

	printTable([]string{"Level", "Expect", "Replay", "Result"}, rows)

	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed", failed, len(outcomes))
	}
	return nil
}

// checkLevel replays a valid level's script when it declares an outcome.
func checkLevel(ctx context.Context, runner *sim.Runner, lvl levels.Level, validErr error) checkOutcome {
	out := checkOutcome{level: lvl, err: validErr}
	if validErr != nil || lvl.Script == "" || lvl.Expect == "" {
		return out
	}

	ctrl, err := sim.LevelController(lvl)
	if err != nil {
		out.err = fmt.Errorf("level %s: script: %w", lvl.ID, err)
		return out
	}

	res, err := runner.Run(ctx, lvl, ctrl)
	if err != nil {
		out.err = err
		return out
	}

	out.replay = res.Status
	if res.Status != lvl.Expect {
		out.err = fmt.Errorf("level %s: expected %s, got %s after %d ticks", lvl.ID, lvl.Expect, res.Status, res.Ticks)
	}
	return out
}
