// Package storage records benchmark runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one headless benchmark of a game in one redraw mode.
type Run struct {
	ID         int64
	GameID     string
	Mode       string // "incremental" or "full"
	Seed       int64
	Ticks      int
	Regions    int
	Primitives int
	Pixels     int
	Commits    int
	CreatedAt  time.Time
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS render_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			regions INTEGER NOT NULL DEFAULT 0,
			primitives INTEGER NOT NULL DEFAULT 0,
			pixels INTEGER NOT NULL DEFAULT 0,
			commits INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_render_runs_game_id ON render_runs(game_id);
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

// SaveRun records a benchmark run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO render_runs
		 (game_id, mode, seed, ticks, regions, primitives, pixels, commits)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Mode, r.Seed, r.Ticks, r.Regions, r.Primitives, r.Pixels, r.Commits,
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

// RecentRuns returns the latest runs, newest first. An empty gameID
// selects every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, mode, seed, ticks, regions, primitives, pixels, commits, created_at
		 FROM render_runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Mode, &r.Seed, &r.Ticks,
			&r.Regions, &r.Primitives, &r.Pixels, &r.Commits, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ModeStats aggregates the runs of one game in one mode.
type ModeStats struct {
	GameID       string
	Mode         string
	Runs         int
	AvgPixels    float64 // per tick
	AvgRegions   float64 // per tick
	AvgPrimitive float64 // per tick
	LastRun      time.Time
}

// Summary aggregates every recorded run by game and mode.
func (s *Store) Summary() ([]ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, mode, COUNT(*),
		        COALESCE(SUM(pixels) * 1.0 / NULLIF(SUM(ticks), 0), 0),
		        COALESCE(SUM(regions) * 1.0 / NULLIF(SUM(ticks), 0), 0),
		        COALESCE(SUM(primitives) * 1.0 / NULLIF(SUM(ticks), 0), 0),
		        MAX(created_at)
		 FROM render_runs
		 GROUP BY game_id, mode
		 ORDER BY game_id, mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot summarize runs: %w", err)
	}
	defer rows.Close()

	var stats []ModeStats
	for rows.Next() {
		var m ModeStats
		var lastRun any
		if err := rows.Scan(&m.GameID, &m.Mode, &m.Runs, &m.AvgPixels,
			&m.AvgRegions, &m.AvgPrimitive, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastRun = parseTime(lastRun)
		stats = append(stats, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRuns deletes the runs of the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM render_runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
