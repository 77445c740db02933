package store

import (
	"context"
	"time"
)

// Store persists chat messages and the fact matches extracted from them.
type Store interface {
	Close() error

	// Messages
	UpsertMessage(ctx context.Context, m Message) error
	GetMessage(ctx context.Context, id string) (Message, bool, error)
	Messages(ctx context.Context, limit int) ([]Message, error)
	CountMessages(ctx context.Context) (int64, error)

	// Matches
	ReplaceMatches(ctx context.Context, messageID string, matches []Match) error
	MatchesByMessage(ctx context.Context, messageID string) ([]Match, error)
	MatchesByType(ctx context.Context, matchType string, limit int) ([]Match, error)
	CountMatchesByType(ctx context.Context) (map[string]int64, error)
}

// Message is one stored chat message. ID is assigned at ingestion time
// and stays stable across re-extraction runs.
type Message struct {
	ID       string
	Author   string
	Text     string
	PostedAt time.Time
	Lang     string // "ru", "en" or empty when undecided
}

// Match is one extracted fact, bound to its source message. Value holds
// the JSON encoding of the typed fact; Start/Stop address the
// dash-normalized message text.
type Match struct {
	MessageID string
	Start     int
	Stop      int
	Type      string
	Value     string
}
