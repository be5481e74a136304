// Package history persists completed diagnosis records so past runs can be
// listed and re-read. Storage is a single SQLite file; the full result is
// kept as its JSON serialization alongside the indexed summary columns.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/bscre8/website-diagnosis/internal/model"
)

// ErrNotFound is returned when no record exists for the requested id.
var ErrNotFound = errors.New("history: record not found")

const schema = `
CREATE TABLE IF NOT EXISTS diagnosis (
	id        TEXT PRIMARY KEY,
	url       TEXT NOT NULL,
	timestamp TEXT NOT NULL,
	overall   REAL NOT NULL,
	result    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_diagnosis_timestamp ON diagnosis (timestamp);
`

// pragmas are applied via Exec so they work with any database/sql driver.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 10000",
	"PRAGMA synchronous = NORMAL",
}

// Entry is one stored diagnosis summary, as returned by Recent.
type Entry struct {
	ID           string  `json:"id"`
	URL          string  `json:"url"`
	Timestamp    string  `json:"timestamp"`
	OverallScore float64 `json:"overall_score"`
	Status       string  `json:"status"`
}

// Store persists diagnosis records in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path. Use
// ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open: %w", err)
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: ping: %w", err)
	}

	return &Store{db: db}, nil
}

// Save stores a completed diagnosis and returns its record id.
func (s *Store) Save(ctx context.Context, res *model.DiagnosisResult) (string, error) {
	blob, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("history: marshal result: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO diagnosis (id, url, timestamp, overall, result) VALUES (?, ?, ?, ?, ?)`,
		id, res.URL, res.Timestamp, res.OverallScore, string(blob),
	)
	if err != nil {
		return "", fmt.Errorf("history: insert: %w", err)
	}
	return id, nil
}

// Recent returns up to limit summaries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, timestamp, overall FROM diagnosis ORDER BY timestamp DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.URL, &e.Timestamp, &e.OverallScore); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		e.Status = model.StatusLabel(e.OverallScore)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns the full stored result for the given record id.
func (s *Store) Get(ctx context.Context, id string) (*model.DiagnosisResult, error) {
	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT result FROM diagnosis WHERE id = ?`, id,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("history: select: %w", err)
	}

	var res model.DiagnosisResult
	if err := json.Unmarshal([]byte(blob), &res); err != nil {
		return nil, fmt.Errorf("history: unmarshal result: %w", err)
	}
	return &res, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
