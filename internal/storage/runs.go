// Package storage keeps the ledger of finished runs for the current
// process. It uses the pure-Go modernc.org/sqlite driver against an
// in-memory database, so nothing outlives the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// End reasons recorded with a run.
const (
	ReasonGameOver = "game_over"
	ReasonRestart  = "restart"
	ReasonQuit     = "quit"
)

// Store wraps the in-memory run table.
type Store struct {
	db *sql.DB
}

// Run is one finished (or abandoned) run.
type Run struct {
	ID        int64
	Seed      int64
	Score     int
	Coins     int
	Ticks     int
	Reason    string
	CreatedAt time.Time
}

// Stats summarizes every recorded run.
type Stats struct {
	Runs       int
	BestScore  int
	TotalCoins int
	AvgScore   float64
}

// OpenMemory creates an empty in-memory ledger.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every new connection to :memory: is a separate empty database.
	db.SetMaxOpenConns(1)

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// SaveRun records r and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Reason == "" {
		r.Reason = ReasonGameOver
	}
	result, err := s.db.Exec(
		"INSERT INTO runs (seed, score, coins, ticks, reason) VALUES (?, ?, ?, ?, ?)",
		r.Seed, r.Score, r.Coins, r.Ticks, r.Reason,
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

// TopRuns returns up to limit runs, best score first. Ties keep insertion
// order.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, score, coins, ticks, reason, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.Seed, &r.Score, &r.Coins, &r.Ticks, &r.Reason, &createdAt); err != nil {
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

// BestScore returns the highest recorded score, or 0 with no runs.
func (s *Store) BestScore() (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot get best score: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// Stats aggregates all runs.
func (s *Store) Stats() (Stats, error) {
	var (
		st    Stats
		best  sql.NullInt64
		coins sql.NullInt64
		avg   sql.NullFloat64
	)
	err := s.db.QueryRow(
		"SELECT COUNT(*), MAX(score), SUM(coins), AVG(score) FROM runs",
	).Scan(&st.Runs, &best, &coins, &avg)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.BestScore = int(best.Int64)
	st.TotalCoins = int(coins.Int64)
	st.AvgScore = avg.Float64
	return st, nil
}

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
