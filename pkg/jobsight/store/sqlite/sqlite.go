// Package sqlite is the durable store.Store implementation backed by a
// single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jobsight/jobsight/pkg/jobsight/store"
)

// sqliteStore implements the Store interface using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL for concurrent readers during extraction runs
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	author TEXT,
	text TEXT NOT NULL,
	posted_at TEXT NOT NULL,
	lang TEXT
);

CREATE TABLE IF NOT EXISTS matches (
	message_id TEXT NOT NULL,
	start INTEGER NOT NULL,
	stop INTEGER NOT NULL,
	type TEXT NOT NULL,
	value TEXT NOT NULL,
	FOREIGN KEY(message_id) REFERENCES messages(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_matches_message ON matches(message_id);
CREATE INDEX IF NOT EXISTS idx_matches_type ON matches(type);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertMessage inserts or updates a message.
func (s *sqliteStore) UpsertMessage(ctx context.Context, m store.Message) error {
	if m.ID == "" {
		return nil
	}
	const stmt = `
INSERT INTO messages (id, author, text, posted_at, lang)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	author=excluded.author,
	text=excluded.text,
	posted_at=excluded.posted_at,
	lang=excluded.lang;`
	_, err := s.db.ExecContext(ctx, stmt,
		m.ID, m.Author, m.Text, m.PostedAt.UTC().Format(time.RFC3339Nano), m.Lang)
	return err
}

// GetMessage returns a message by ID.
func (s *sqliteStore) GetMessage(ctx context.Context, id string) (store.Message, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, author, text, posted_at, lang FROM messages WHERE id = ?`, id)
	m, err := scanMessage(row)
	if err == sql.ErrNoRows {
		return store.Message{}, false, nil
	}
	if err != nil {
		return store.Message{}, false, err
	}
	return m, true, nil
}

// Messages returns up to limit messages ordered by posting time. A
// non-positive limit returns everything.
func (s *sqliteStore) Messages(ctx context.Context, limit int) ([]store.Message, error) {
	query := `SELECT id, author, text, posted_at, lang FROM messages ORDER BY posted_at, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// CountMessages returns the number of stored messages.
func (s *sqliteStore) CountMessages(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&n)
	return n, err
}

// ReplaceMatches swaps the full match set of one message inside a
// transaction, so partially written match sets are never observable.
func (s *sqliteStore) ReplaceMatches(ctx context.Context, messageID string, matches []store.Match) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM matches WHERE message_id = ?`, messageID); err != nil {
		return err
	}
	const stmt = `INSERT INTO matches (message_id, start, stop, type, value) VALUES (?, ?, ?, ?, ?)`
	for _, m := range matches {
		if _, err := tx.ExecContext(ctx, stmt, messageID, m.Start, m.Stop, m.Type, m.Value); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// MatchesByMessage returns the matches of one message in span order.
func (s *sqliteStore) MatchesByMessage(ctx context.Context, messageID string) ([]store.Match, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT message_id, start, stop, type, value FROM matches WHERE message_id = ? ORDER BY start`,
		messageID)
	if err != nil {
		return nil, err
	}
	return collectMatches(rows)
}

// MatchesByType returns up to limit matches of one type ordered by
// message then span.
func (s *sqliteStore) MatchesByType(ctx context.Context, matchType string, limit int) ([]store.Match, error) {
	query := `SELECT message_id, start, stop, type, value FROM matches WHERE type = ? ORDER BY message_id, start`
	args := []any{matchType}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectMatches(rows)
}

// CountMatchesByType returns per-type match totals.
func (s *sqliteStore) CountMatchesByType(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT type, COUNT(*) FROM matches GROUP BY type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var kind string
		var n int64
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		out[kind] = n
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (store.Message, error) {
	var m store.Message
	var postedAt string
	if err := row.Scan(&m.ID, &m.Author, &m.Text, &postedAt, &m.Lang); err != nil {
		return store.Message{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, postedAt)
	if err != nil {
		return store.Message{}, err
	}
	m.PostedAt = ts
	return m, nil
}

func collectMatches(rows *sql.Rows) ([]store.Match, error) {
	defer rows.Close()

	var out []store.Match
	for rows.Next() {
		var m store.Match
		if err := rows.Scan(&m.MessageID, &m.Start, &m.Stop, &m.Type, &m.Value); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
