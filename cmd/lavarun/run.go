package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavarun/internal/sim"
	"github.com/vovakirdan/lavarun/internal/storage"
)

var (
	flagRunAll  bool
	flagScript  string
	flagWorkers int
	flagNoSave  bool
)

var runCmd = &cobra.Command{
	Use:   "run <id>...",
	Short: "Simulate levels headlessly",
	Long: `Play levels with scripted input until they are decided and finished,
or the tick limit runs out. Each level's own script is used unless
--script is given; levels without a script are played idle.

Script syntax: whitespace-separated tokens of action letters with an
optional repeat count. L=left R=right U=up J=jump P=pause .=nothing,
Q=quit (the run is recorded as abandoned), X=restart a decided level.
  "R*10 RJ*3 .*5"  - right for 10 ticks, right+jump for 3, idle for 5

Results are recorded in the runs database unless --no-save is set.

Examples:
  lavarun run 01-first-coin
  lavarun run 02-lava-pit --script "R*30 RU*5"
  lavarun run --all --workers 4
  lavarun run --all --seed 42 --no-save`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&flagRunAll, "all", false, "Simulate every level in the pack")
	runCmd.Flags().StringVar(&flagScript, "script", "", "Input script to use instead of each level's own")
	runCmd.Flags().IntVar(&flagWorkers, "workers", 4, "Levels simulated in parallel (0 = unlimited)")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results")
}

func runRun(_ *cobra.Command, args []string) error {
	if flagRunAll == (len(args) > 0) {
		return errors.New("give level IDs or --all, not both")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	ids := args
	if flagRunAll {
		ids = nil
	}
	lvls, err := selectLevels(newLevelLoader(cfg, logger), ids)
	if err != nil {
		return err
	}
	if len(lvls) == 0 {
		fmt.Println("No levels to run.")
		return nil
	}

	var pick sim.ControllerFunc = sim.LevelController
	if flagScript != "" {
		if pick, err = sim.ScriptController(flagScript); err != nil {
			return fmt.Errorf("bad script: %w", err)
		}
	}

	// Open run storage
	var saver sim.ResultSaver
	if !flagNoSave {
		store, err := storage.Open(cfg.Storage.DBPath)
		if err != nil {
			logger.Warn("could not open runs database", "error", err)
			// Continue without storage
		} else {
			defer store.Close()
			saver = store
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := sim.NewRunner(cfg, logger, saver)
	results, err := runner.RunAll(ctx, lvls, pick, flagWorkers)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.LevelID,
			r.Status,
			strconv.Itoa(r.Ticks),
			fmt.Sprintf("%.2fs", r.Elapsed),
			strconv.Itoa(r.CoinsLeft),
			fmt.Sprintf("%016x", r.Fingerprint),
			strconv.FormatInt(r.Seed, 10),
		})
	}

	printTable([]string{"Level", "Status", "Ticks", "Time", "Coins left", "Fingerprint", "Seed"}, rows)
	return nil
}
