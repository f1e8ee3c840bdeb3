package main

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavarun/internal/games/lavarun"
	"github.com/vovakirdan/lavarun/internal/games/lavarun/core"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels in the pack",
	Long:  `Shows every level of the configured pack with its size and actor counts.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	lvls, err := newLevelLoader(cfg, logger).LoadAll()
	if err != nil {
		return fmt.Errorf("loading levels: %w", err)
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	parser, err := lavarun.NewParser(cfg.Symbols, rand.New(rand.NewSource(cfg.Simulation.Seed)))
	if err != nil {
		return fmt.Errorf("invalid symbols: %w", err)
	}

	rows := make([][]string, 0, len(lvls))
	for _, lvl := range lvls {
		board := parser.Parse(lvl.Plan)
		w, h := lvl.Size()
		rows = append(rows, []string{
			lvl.ID,
			lvl.Name,
			fmt.Sprintf("%dx%d", w, h),
			strconv.Itoa(board.Count(core.KindCoin)),
			strconv.Itoa(board.Count(core.KindFireball)),
			lvl.Expect,
		})
	}

	printTable([]string{"ID", "Name", "Size", "Coins", "Fireballs", "Expect"}, rows)
	fmt.Println()
	fmt.Println("Run 'lavarun run <id>' to simulate a level.")
	return nil
}
