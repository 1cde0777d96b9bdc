// Package storage persists the best score between runs.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nonono109/snaker/pkg/game"

	_ "modernc.org/sqlite"
)

// SQLite stores scalar values in a key/value table
type SQLite struct {
	db  *sql.DB
	key string
}

// OpenSQLite opens (or creates) the database at path and stores the score under key
func OpenSQLite(path, key string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection serializes writers from concurrent sessions
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db, key: key}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table (%s): %w", query, err)
		}
	}
	return nil
}

// Load returns the stored score or game.ErrNoHighScore
func (s *SQLite) Load(ctx context.Context) (int, error) {
	var score int
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, s.key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, game.ErrNoHighScore
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", s.key, err)
	}
	return score, nil
}

// Save stores score, keeping the larger value when another writer got there first
func (s *SQLite) Save(ctx context.Context, score int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			value = MAX(kv.value, excluded.value),
			updated_at = CURRENT_TIMESTAMP`,
		s.key, score)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", s.key, err)
	}
	return nil
}

// Close closes the database
func (s *SQLite) Close() error {
	return s.db.Close()
}
