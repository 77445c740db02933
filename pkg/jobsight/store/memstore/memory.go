// Package memstore is an in-memory store.Store used by tests and
// short-lived extraction runs that do not need persistence.
package memstore

import (
	"context"
	"sync"

	"github.com/jobsight/jobsight/pkg/jobsight/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu       sync.RWMutex
	messages map[string]store.Message
	order    []string // insertion order of message IDs
	matches  map[string][]store.Match
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		messages: make(map[string]store.Message),
		matches:  make(map[string][]store.Match),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertMessage inserts or updates a message, keyed by ID.
func (s *Store) UpsertMessage(ctx context.Context, m store.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		return nil
	}
	if _, ok := s.messages[m.ID]; !ok {
		s.order = append(s.order, m.ID)
	}
	s.messages[m.ID] = m
	return nil
}

// GetMessage returns a message by ID.
func (s *Store) GetMessage(ctx context.Context, id string) (store.Message, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.messages[id]
	return m, ok, nil
}

// Messages returns up to limit messages in insertion order. A
// non-positive limit returns everything.
func (s *Store) Messages(ctx context.Context, limit int) ([]store.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.order)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]store.Message, 0, n)
	for _, id := range s.order[:n] {
		out = append(out, s.messages[id])
	}
	return out, nil
}

// CountMessages returns the number of stored messages.
func (s *Store) CountMessages(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.messages)), nil
}

// ReplaceMatches swaps the full match set of one message. Re-running
// extraction is therefore idempotent.
func (s *Store) ReplaceMatches(ctx context.Context, messageID string, matches []store.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(matches) == 0 {
		delete(s.matches, messageID)
		return nil
	}
	copied := make([]store.Match, len(matches))
	copy(copied, matches)
	for i := range copied {
		copied[i].MessageID = messageID
	}
	s.matches[messageID] = copied
	return nil
}

// MatchesByMessage returns the matches of one message in stored order.
func (s *Store) MatchesByMessage(ctx context.Context, messageID string) ([]store.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.matches[messageID]
	out := make([]store.Match, len(src))
	copy(out, src)
	return out, nil
}

// MatchesByType returns up to limit matches of one type, ordered by
// message insertion then span.
func (s *Store) MatchesByType(ctx context.Context, matchType string, limit int) ([]store.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// s.order plus per-message stored order already gives the
	// message-then-span ordering
	var out []store.Match
	for _, id := range s.order {
		for _, m := range s.matches[id] {
			if m.Type == matchType {
				out = append(out, m)
			}
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// CountMatchesByType returns per-type match totals.
func (s *Store) CountMatchesByType(ctx context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int64)
	for _, list := range s.matches {
		for _, m := range list {
			out[m.Type]++
		}
	}
	return out, nil
}
