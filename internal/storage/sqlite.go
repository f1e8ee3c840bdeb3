// Package storage provides SQLite-based persistence for headless runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/lavarun/internal/sim"
)

// Store manages the SQLite database connection for the run ledger.
type Store struct {
	db *sql.DB
}

// RunRecord represents a single recorded run.
type RunRecord struct {
	ID          int64
	RunID       string
	LevelID     string
	Status      string // "won", "lost", "timeout" or "abandoned"
	Ticks       int
	Elapsed     float64 // Simulated seconds
	CoinsLeft   int
	Fingerprint uint64
	Seed        int64
	CreatedAt   time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID    string
	Runs       int
	Wins       int
	Losses     int
	BestTicks  int // Fewest ticks of any won run, 0 if never won
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Parallel runs share one writer
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			level_id TEXT NOT NULL,
			status TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			elapsed REAL NOT NULL DEFAULT 0,
			coins_left INTEGER NOT NULL DEFAULT 0,
			fingerprint TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(level_id, status, ticks);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run. An empty RunID gets a fresh UUID.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, level_id, status, ticks, elapsed, coins_left, fingerprint, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.LevelID, r.Status, r.Ticks, r.Elapsed, r.CoinsLeft, formatFingerprint(r.Fingerprint), r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveResult implements sim.ResultSaver.
func (s *Store) SaveResult(r sim.Result) error {
	_, err := s.SaveRun(RunRecord{
		RunID:       r.RunID,
		LevelID:     r.LevelID,
		Status:      r.Status,
		Ticks:       r.Ticks,
		Elapsed:     r.Elapsed,
		CoinsLeft:   r.CoinsLeft,
		Fingerprint: r.Fingerprint,
		Seed:        r.Seed,
	})
	return err
}

// Ensure Store implements ResultSaver
var _ sim.ResultSaver = (*Store)(nil)

// RunByID retrieves a run by its run ID.
// Returns nil if there is no such run.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	rows, err := s.db.Query(selectRuns+` WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// BestRuns retrieves the won runs of a level, fewest ticks first.
func (s *Store) BestRuns(levelID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		selectRuns+`
		 WHERE level_id = ? AND status = 'won'
		 ORDER BY ticks ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs across all levels.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		selectRuns+`
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	return scanRuns(rows)
}

// ClearRuns deletes the runs of a level, or every run when levelID is empty.
func (s *Store) ClearRuns(levelID string) error {
	var err error
	if levelID == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE level_id = ?", levelID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// LevelStats retrieves aggregated statistics for a specific level.
func (s *Store) LevelStats(levelID string) (*LevelStats, error) {
	rows, err := s.db.Query(selectStats+` WHERE level_id = ? GROUP BY level_id`, levelID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats, err := scanStats(rows)
	if err != nil {
		return nil, err
	}
	if st, ok := stats[levelID]; ok {
		return st, nil
	}
	return &LevelStats{LevelID: levelID}, nil
}

// AllLevelStats retrieves statistics for all levels that have been run.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(selectStats + ` GROUP BY level_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	return scanStats(rows)
}

const selectRuns = `SELECT id, run_id, level_id, status, ticks, elapsed, coins_left, fingerprint, seed, created_at
		 FROM runs`

const selectStats = `SELECT level_id,
		        COUNT(*),
		        COALESCE(SUM(CASE WHEN status = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN status = 'lost' THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN status = 'won' THEN ticks END), 0),
		        MAX(created_at)
		 FROM runs`

func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var fingerprint string
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.RunID,
			&r.LevelID,
			&r.Status,
			&r.Ticks,
			&r.Elapsed,
			&r.CoinsLeft,
			&fingerprint,
			&r.Seed,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		fp, err := parseFingerprint(fingerprint)
		if err != nil {
			return nil, err
		}
		r.Fingerprint = fp
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

func scanStats(rows *sql.Rows) (map[string]*LevelStats, error) {
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var st LevelStats
		var lastPlayed any
		if err := rows.Scan(&st.LevelID, &st.Runs, &st.Wins, &st.Losses, &st.BestTicks, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.LevelID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// Fingerprints are stored as hex text; SQLite integers are signed.
func formatFingerprint(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}

func parseFingerprint(s string) (uint64, error) {
	fp, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("storage: bad fingerprint %q: %w", s, err)
	}
	return fp, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
