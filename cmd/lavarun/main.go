// lavarun simulates the Lava Run platformer headlessly: levels are played
// by scripted input at a fixed tick and their outcomes recorded.
//
// Usage:
//
//	lavarun levels              - List the levels of the pack
//	lavarun check [id...]       - Validate levels and replay their scripts
//	lavarun run <id>            - Simulate one level
//	lavarun run --all           - Simulate every level in parallel
//	lavarun results [id]        - Show best runs for a level, or per-level stats
//	lavarun results --recent N  - Show the latest recorded runs
//	lavarun results --run <id>  - Show one recorded run
//	lavarun actors              - List actor kinds and their plan symbols
//
// Global flags:
//
//	--config <path>     - Use a specific config file
//	--db <path>         - Set database path (default: ~/.lavarun/runs.db)
//	--log-level <name>  - debug, info, warn or error
//	--seed <value>      - Set RNG seed (0 = random based on time)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavarun/internal/config"
	"github.com/vovakirdan/lavarun/internal/games/lavarun/levels"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lavarun",
	Short: "Lava Run - headless platformer simulator",
	Long: `Lava Run is a tile-based platformer: collect every coin, stay out of
the lava and away from fireballs. This tool plays levels without a
terminal UI, driven by input scripts, and keeps a ledger of the runs.

Available commands:
  levels   - Show all levels in the pack
  check    - Validate levels and replay their scripts
  run      - Simulate levels and record the outcome
  results  - View best runs, recent runs and level statistics
  actors   - Show the actor kinds level symbols can bind to

Examples:
  lavarun levels
  lavarun check
  lavarun run 01-first-coin --script "R*20"
  lavarun run --all --workers 4
  lavarun results 01-first-coin
  lavarun results --recent 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config seed)")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(actorsCmd)
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagSeed != 0 {
		cfg.Simulation.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to stderr so tables on
// stdout stay clean.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lavarun",
	})

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// newLevelLoader returns the configured level pack, built-in when no directory is set.
func newLevelLoader(cfg config.Config, logger *log.Logger) *levels.Loader {
	loader := levels.NewEmbeddedLoader()
	if cfg.Levels.Dir != "" {
		loader = levels.NewLoader(cfg.Levels.Dir)
	}
	loader.OnSkip = func(path string, err error) {
		logger.Warn("skipping level file", "path", path, "error", err)
	}
	return loader
}

// selectLevels loads the requested IDs in the order given. No IDs selects
// the whole pack.
func selectLevels(loader *levels.Loader, ids []string) ([]levels.Level, error) {
	if len(ids) == 0 {
		return loader.LoadAll()
	}

	selected := make([]levels.Level, 0, len(ids))
	for _, id := range ids {
		lvl, err := loader.LoadByID(id)
		if err != nil {
			if known, listErr := loader.ListIDs(); listErr == nil && len(known) > 0 {
				return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(known, ", "))
			}
			return nil, err
		}
		selected = append(selected, lvl)
	}
	return selected, nil
}
