// SPDX-License-Identifier: MIT

// Package store - SQLite-backed run persistence.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"sableye/fuel"
	"sableye/isotope"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists run histories in a SQLite database file.
// Safe for concurrent use once initialized.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore prepares a store for the given database path. No I/O
// happens until Init.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Init opens the database, verifies connectivity and bootstraps the
// schema. Idempotent: a second call on an open store is a no-op.
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return ErrMissingPath
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// SaveRun writes the state's full history under runID, replacing any
// previous rows for the same run. One transaction covers the run header
// and every (step, isotope, concentration) row, so a failed save never
// leaves a half-written run behind.
func (s *SQLiteStore) SaveRun(ctx context.Context, runID string, st *fuel.State) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}
	if st == nil {
		return errors.New("store: nil fuel state")
	}

	labels := st.Isotopes()
	codes := make([]string, len(labels))
	for i, code := range labels {
		codes[i] = code.String()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (run_id, isotopes)
		VALUES (?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			isotopes = excluded.isotopes
	`, runID, strings.Join(codes, " "))
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM history WHERE run_id = ?`, runID); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO history (run_id, step, idx, isotope, concentration)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for step, row := range st.History() {
		for idx, concentration := range row {
			if _, err = stmt.ExecContext(ctx, runID, step, idx, codes[idx], concentration); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// LoadHistory reads a run back: the isotope order and the full
// steps×isotopes table. The second return is false when the run does
// not exist.
func (s *SQLiteStore) LoadHistory(ctx context.Context, runID string) ([]isotope.Code, [][]float64, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, nil, false, err
	}

	var joined string
	err = db.QueryRowContext(ctx, `SELECT isotopes FROM runs WHERE run_id = ?`, runID).Scan(&joined)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, false, nil
		}
		return nil, nil, false, err
	}

	fields := strings.Fields(joined)
	labels := make([]isotope.Code, len(fields))
	for i, f := range fields {
		if labels[i], err = isotope.Parse(f); err != nil {
			return nil, nil, false, fmt.Errorf("run %s label %q: %w", runID, f, err)
		}
	}

	rows, err := db.QueryContext(ctx, `
		SELECT step, idx, concentration
		FROM history
		WHERE run_id = ?
		ORDER BY step, idx
	`, runID)
	if err != nil {
		return nil, nil, false, err
	}
	defer func() { _ = rows.Close() }()

	var history [][]float64
	for rows.Next() {
		var (
			step, idx     int
			concentration float64
		)
		if err = rows.Scan(&step, &idx, &concentration); err != nil {
			return nil, nil, false, err
		}
		for len(history) <= step {
			history = append(history, make([]float64, len(labels)))
		}
		if idx < 0 || idx >= len(labels) {
			return nil, nil, false, fmt.Errorf("run %s step %d: column %d out of range", runID, step, idx)
		}
		history[step][idx] = concentration
	}
	if err = rows.Err(); err != nil {
		return nil, nil, false, err
	}

	return labels, history, true, nil
}

// Close releases the database handle. Safe to call twice.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			isotopes TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS history (
			run_id TEXT NOT NULL,
			step INTEGER NOT NULL,
			idx INTEGER NOT NULL,
			isotope TEXT NOT NULL,
			concentration REAL NOT NULL,
			PRIMARY KEY (run_id, step, idx)
		);
	`)
	return err
}
