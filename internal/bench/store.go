package bench

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store keeps grid results in a sqlite file, so runs accumulate across
// invocations and stay queryable.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the database at path.
func OpenStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("bench store: empty path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("bench store: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("bench store: %w", err)
	}
	// The driver serializes access anyway; a single connection avoids
	// SQLITE_BUSY on concurrent writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bench store: %w", err)
		}
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			scenario TEXT NOT NULL,
			solver TEXT NOT NULL,
			found INTEGER NOT NULL,
			valid INTEGER NOT NULL,
			plan_len INTEGER NOT NULL,
			expanded INTEGER NOT NULL,
			generated INTEGER NOT NULL,
			max_open INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			recorded_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_scenario_solver ON runs(scenario, solver);`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bench store: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Record appends entries in one transaction.
func (s *Store) Record(entries []Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("bench store: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, e := range entries {
		_, err := tx.Exec(
			`INSERT INTO runs (id, scenario, solver, found, valid, plan_len,
				expanded, generated, max_open, duration_ms, error, recorded_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Scenario, e.Solver, boolInt(e.Found), boolInt(e.Valid),
			e.PlanLen, e.Expanded, e.Generated, e.MaxOpen,
			e.Duration.Milliseconds(), e.Err, now)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("bench store: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("bench store: %w", err)
	}
	return nil
}

// Runs returns recorded entries, oldest first. An empty scenario returns
// everything.
func (s *Store) Runs(scenario string) ([]Entry, error) {
	query := `SELECT id, scenario, solver, found, valid, plan_len,
		expanded, generated, max_open, duration_ms, error
		FROM runs`
	args := []any{}
	if scenario != "" {
		query += ` WHERE scenario = ?`
		args = append(args, scenario)
	}
	query += ` ORDER BY recorded_at, id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("bench store: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Latest returns the most recent entry for each (scenario, solver) pair,
// ordered by scenario then solver. Record inserts in order, so the highest
// rowid in a group is the newest run.
func (s *Store) Latest() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, scenario, solver, found, valid, plan_len,
			expanded, generated, max_open, duration_ms, error
		FROM runs
		WHERE rowid IN (SELECT MAX(rowid) FROM runs GROUP BY scenario, solver)
		ORDER BY scenario, solver`)
	if err != nil {
		return nil, fmt.Errorf("bench store: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var out []Entry
	for rows.Next() {
		var e Entry
		var found, valid int
		var ms int64
		if err := rows.Scan(&e.ID, &e.Scenario, &e.Solver, &found, &valid,
			&e.PlanLen, &e.Expanded, &e.Generated, &e.MaxOpen, &ms, &e.Err); err != nil {
			return nil, fmt.Errorf("bench store: %w", err)
		}
		e.Found = found != 0
		e.Valid = valid != 0
		e.Duration = time.Duration(ms) * time.Millisecond
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("bench store: %w", err)
	}
	return out, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
