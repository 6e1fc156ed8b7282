// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps a history of computed MACS values in a SQLite
// database. Only derived scalars are recorded; fetched point series are
// never persisted.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/macs-engine/pkg/types"
)

const dbFile = "macs.db"

// Store manages the computation history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at cfg.DataDir/macs.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS macs_results (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			target TEXT NOT NULL,
			reaction TEXT NOT NULL,
			library TEXT NOT NULL,
			atomic_mass REAL NOT NULL,
			temperature_kev REAL NOT NULL,
			macs_mb REAL NOT NULL,
			points INTEGER,
			mat INTEGER,
			computed_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_target ON macs_results(target)`,
		`CREATE INDEX IF NOT EXISTS idx_results_library ON macs_results(library)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends a batch of computed results inside one transaction.
func (s *Store) Record(ctx context.Context, results []types.MACSResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO macs_results
			(target, reaction, library, atomic_mass, temperature_kev, macs_mb, points, mat, computed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		computedAt := r.ComputedAt
		if computedAt.IsZero() {
			computedAt = time.Now().UTC()
		}
		_, err := stmt.ExecContext(ctx,
			r.Target, r.Reaction, r.Library, r.AtomicMass,
			r.TemperatureKeV, r.MACSMillibarns, r.Points, r.MAT,
			computedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting result for %s at %g keV: %w", r.Target, r.TemperatureKeV, err)
		}
	}

	return tx.Commit()
}

// QueryOptions filters history rows. Zero values mean no filter; Limit 0
// falls back to the store default.
type QueryOptions struct {
	Target  string
	Library string
	Limit   int
}

// List returns recorded results, most recent first.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.MACSResult, error) {
	query := `SELECT target, reaction, library, atomic_mass, temperature_kev, macs_mb, points, mat, computed_at
		FROM macs_results WHERE 1=1`
	var args []any

	if opts.Target != "" {
		query += ` AND target = ?`
		args = append(args, opts.Target)
	}
	if opts.Library != "" {
		query += ` AND library = ?`
		args = append(args, opts.Library)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.maxResults
	}
	query += ` ORDER BY rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var results []types.MACSResult
	for rows.Next() {
		var r types.MACSResult
		var computedAt string
		if err := rows.Scan(&r.Target, &r.Reaction, &r.Library, &r.AtomicMass,
			&r.TemperatureKeV, &r.MACSMillibarns, &r.Points, &r.MAT, &computedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, computedAt); parseErr == nil {
			r.ComputedAt = t
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
