// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists formatting runs in a SQLite database so
// artifacts can be re-rendered later without re-running the pipeline.
// Implements: prd006-service (R3);
//
//	docs/ARCHITECTURE § Paper Store.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

const dbFile = "papers.db"

// ErrNotFound reports a paper id with no stored run.
var ErrNotFound = errors.New("paper not found")

// Record summarizes one stored formatting run.
type Record struct {
	ID        string
	Filename  string
	Status    string
	Score     float64
	CreatedAt time.Time
}

// Store manages the paper SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the paper database at dir/papers.db,
// creating the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			filename TEXT NOT NULL,
			status TEXT NOT NULL,
			score REAL NOT NULL,
			created_at TEXT NOT NULL,
			result TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_created_at ON papers(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveResult stores one formatting run under the given paper id. Saving
// the same id again replaces the earlier run.
func (s *Store) SaveResult(ctx context.Context, id, filename string, res *types.Result) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO papers (id, filename, status, score, created_at, result)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			filename=excluded.filename, status=excluded.status,
			score=excluded.score, created_at=excluded.created_at,
			result=excluded.result`,
		id, filename, res.Status, res.Compliance.Score,
		time.Now().UTC().Format(time.RFC3339Nano), string(payload),
	)
	if err != nil {
		return fmt.Errorf("saving paper %s: %w", id, err)
	}
	return nil
}

// GetResult loads the stored run for a paper id.
func (s *Store) GetResult(ctx context.Context, id string) (*types.Result, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT result FROM papers WHERE id = ?`, id,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("paper %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading paper %s: %w", id, err)
	}

	var res types.Result
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return nil, fmt.Errorf("decoding paper %s: %w", id, err)
	}
	return &res, nil
}

// List returns stored runs, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, filename, status, score, created_at
		 FROM papers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing papers: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Filename, &r.Status, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning paper row: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		records = append(records, r)
	}
	return records, rows.Err()
}
