package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavarun/internal/storage"
)

var (
	flagLimit  int
	flagClear  bool
	flagRecent int
	flagRunID  string
)

var resultsCmd = &cobra.Command{
	Use:   "results [id]",
	Short: "Show recorded runs",
	Long: `Display the best won runs of a level (fewest ticks first), or
per-level statistics when no level is given. --recent lists the latest
runs of every level and --run shows a single run by its run ID.

Examples:
  lavarun results
  lavarun results 01-first-coin --limit 5
  lavarun results --recent 20
  lavarun results --run 6f1c2a9e-0d4b-4f7e-9a51-3c2b8e7d1f00
  lavarun results 01-first-coin --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs (of the level, or all)")
	resultsCmd.Flags().IntVar(&flagRecent, "recent", 0, "Show the N most recent runs of every level")
	resultsCmd.Flags().StringVar(&flagRunID, "run", "", "Show one run by its run ID")
	resultsCmd.MarkFlagsMutuallyExclusive("recent", "run", "clear")
}

func runResults(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}
	if levelID != "" && (flagRecent > 0 || flagRunID != "") {
		return errors.New("--recent and --run do not take a level ID")
	}

	// Open run storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagClear:
		if err := store.ClearRuns(levelID); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Fprintln(out, "Runs cleared.")
		return nil
	case flagRunID != "":
		return showRun(out, store, flagRunID)
	case flagRecent > 0:
		return showRecentRuns(out, store, flagRecent)
	case levelID != "":
		return showBestRuns(out, store, levelID)
	}
	return showLevelStats(out, store)
}

func showBestRuns(out io.Writer, store *storage.Store, levelID string) error {
	runs, err := store.BestRuns(levelID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(out, "Best Runs - %s\n", levelID)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No won runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Run 'lavarun run %s' to record one.\n", levelID)
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for i, r := range runs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Ticks),
			fmt.Sprintf("%.2fs", r.Elapsed),
			strconv.FormatInt(r.Seed, 10),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	printTableTo(out, []string{"Rank", "Ticks", "Time", "Seed", "Date"}, rows)

	stats, err := store.LevelStats(levelID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d  Won: %d  Lost: %d\n", stats.Runs, stats.Wins, stats.Losses)
	}
	return nil
}

func showRecentRuns(out io.Writer, store *storage.Store, n int) error {
	runs, err := store.RecentRuns(n)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.RunID,
			r.LevelID,
			r.Status,
			strconv.Itoa(r.Ticks),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	printTableTo(out, []string{"Run", "Level", "Status", "Ticks", "Date"}, rows)
	return nil
}

func showRun(out io.Writer, store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return fmt.Errorf("retrieving run: %w", err)
	}
	if r == nil {
		return fmt.Errorf("no run with ID %q", runID)
	}

	printTableTo(out, []string{"Field", "Value"}, [][]string{
		{"Run", r.RunID},
		{"Level", r.LevelID},
		{"Status", r.Status},
		{"Ticks", strconv.Itoa(r.Ticks)},
		{"Time", fmt.Sprintf("%.2fs", r.Elapsed)},
		{"Coins left", strconv.Itoa(r.CoinsLeft)},
		{"Fingerprint", fmt.Sprintf("%016x", r.Fingerprint)},
		{"Seed", strconv.FormatInt(r.Seed, 10)},
		{"Date", r.CreatedAt.Format("2006-01-02 15:04:05")},
	})
	return nil
}

func showLevelStats(out io.Writer, store *storage.Store) error {
	all, err := store.AllLevelStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	if len(all) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		st := all[id]
		best := "-"
		if st.BestTicks > 0 {
			best = strconv.Itoa(st.BestTicks)
		}
		rows = append(rows, []string{
			id,
			strconv.Itoa(st.Runs),
			strconv.Itoa(st.Wins),
			strconv.Itoa(st.Losses),
			best,
			st.LastPlayed.Format("2006-01-02 15:04"),
		})
	}
	printTableTo(out, []string{"Level", "Runs", "Won", "Lost", "Best ticks", "Last run"}, rows)
	return nil
}
