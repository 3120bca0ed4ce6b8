// Package cache stores raw search responses in a local SQLite database
// so repeat runs over the same bibliography do not re-hit the search
// service.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite-backed response cache.
type Store struct {
	db *sql.DB
}

// Open opens or creates a cache database at the given path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the cache database.
func (s *Store) Close() error {
	return s.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS responses (
			query      TEXT PRIMARY KEY,
			body       TEXT NOT NULL,
			fetched_at TEXT NOT NULL
		);
	`
	_, err := db.Exec(schema)
	return err
}

// Get returns the cached body for a query, if present.
func (s *Store) Get(query string) (string, bool, error) {
	var body string
	err := s.db.QueryRow(`SELECT body FROM responses WHERE query = ?`, query).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading cache: %w", err)
	}
	return body, true, nil
}

// Put stores the body for a query, replacing any previous response.
func (s *Store) Put(query, body string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO responses (query, body, fetched_at) VALUES (?, ?, ?)`,
		query, body, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}
