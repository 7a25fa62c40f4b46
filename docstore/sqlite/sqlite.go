/*
Package sqlite provides a SQLite-backed docstore.Store.

PURPOSE:
  Keeps the owner's document as a single JSON payload row. The store is a
  plain key-value collaborator: one row per owner, replaced wholesale on
  every save (last-writer-wins). SQLite is opened in WAL mode so a reader
  never blocks the writer.

SCHEMA:
  documents(owner TEXT PRIMARY KEY, payload TEXT, updated_at TEXT)

USAGE:
  store, err := sqlite.New("./data/tuition.db", "school@example.com")
  ...
  defer store.Close()
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/matricula/tuition-engine/docstore"
)

type Store struct {
	db    *sql.DB
	owner string
}

// New opens (or creates) the database at dbPath and scopes the store to the
// given owner identity. Use ":memory:" for an in-memory database.
func New(dbPath, owner string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, owner: owner}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		owner      TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Load returns the owner's document, or empty collections when no document
// has been saved yet.
func (s *Store) Load(ctx context.Context) (docstore.Document, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM documents WHERE owner = ?`, s.owner,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return docstore.Document{}, nil
	}
	if err != nil {
		return docstore.Document{}, fmt.Errorf("failed to load document: %w", err)
	}

	var doc docstore.Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return docstore.Document{}, fmt.Errorf("corrupt document payload: %w", err)
	}
	return doc, nil
}

// Save replaces the owner's document wholesale.
func (s *Store) Save(ctx context.Context, doc docstore.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (owner, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(owner) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.owner, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}
