// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: history/store.go
// Summary: SQLite-backed history of successfully formatted documents.
// Usage: Created at startup; the session records into it and the most
// recent document is restored into the input pane.

package history

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at INTEGER NOT NULL,
	shape      TEXT NOT NULL DEFAULT '',
	byte_size  INTEGER NOT NULL,
	compact    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_documents_created ON documents(created_at);
`

// Entry is one recorded document.
type Entry struct {
	ID        int64
	CreatedAt time.Time
	Shape     string
	ByteSize  int
	Compact   string
}

// Store persists formatted documents in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record stores one document. A document identical to the most recent
// entry is skipped, so a debounced retype of the same text does not pile
// up duplicates.
func (s *Store) Record(compact, shape string, byteSize int) error {
	var last string
	err := s.db.QueryRow(`SELECT compact FROM documents ORDER BY id DESC LIMIT 1`).Scan(&last)
	if err == nil && last == compact {
		return nil
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read last document: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO documents (created_at, shape, byte_size, compact) VALUES (?, ?, ?, ?)`,
		time.Now().Unix(), shape, byteSize, compact,
	)
	if err != nil {
		return fmt.Errorf("record document: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query(
		`SELECT id, created_at, shape, byte_size, compact FROM documents ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt int64
		if err := rows.Scan(&e.ID, &createdAt, &e.Shape, &e.ByteSize, &e.Compact); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Latest returns the most recent entry, or nil when the history is empty.
func (s *Store) Latest() (*Entry, error) {
	entries, err := s.Recent(1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// Prune deletes everything but the newest keep entries.
func (s *Store) Prune(keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := s.db.Exec(
		`DELETE FROM documents WHERE id NOT IN (SELECT id FROM documents ORDER BY id DESC LIMIT ?)`,
		keep,
	)
	if err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
