// Package jobsight extracts structured hiring facts (salary forks,
// locations, positions, companies) from free-form job-posting chat
// messages and persists them for reporting.
package jobsight

import (
	"context"
	"encoding/json"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jobsight/jobsight/pkg/jobsight/extract"
	"github.com/jobsight/jobsight/pkg/jobsight/facts"
	"github.com/jobsight/jobsight/pkg/jobsight/store"
)

// Engine is the main extraction facade.
type Engine struct {
	store     store.Store
	extractor *extract.Extractor
	workers   int
}

// Options configures an Engine instance.
type Options struct {
	// Store receives messages and their matches. Nil disables
	// persistence; Process then only returns the matches.
	Store store.Store

	// Dictionaries override the built-in extraction dictionaries.
	Dictionaries *extract.Dictionaries

	// Workers caps concurrent message processing in Run. Zero or
	// negative means a small default.
	Workers int
}

const defaultWorkers = 4

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Engine{
		store:     opts.Store,
		extractor: extract.New(opts.Dictionaries),
		workers:   workers,
	}
}

// Close cleanly shuts down the engine.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// Extract runs the extractors over one text without touching the store.
func (e *Engine) Extract(text string) []facts.Match {
	return e.extractor.Extract(text)
}

// Process extracts facts from one message and, when a store is
// configured, persists the message together with its full match set.
// Re-processing a message replaces its previous matches.
func (e *Engine) Process(ctx context.Context, msg store.Message) ([]facts.Match, error) {
	matches := e.extractor.Extract(msg.Text)
	if e.store == nil {
		return matches, nil
	}

	if err := e.store.UpsertMessage(ctx, msg); err != nil {
		return nil, err
	}
	encoded, err := encodeMatches(msg.ID, matches)
	if err != nil {
		return nil, err
	}
	if err := e.store.ReplaceMatches(ctx, msg.ID, encoded); err != nil {
		return nil, err
	}
	return matches, nil
}

// RunStats summarizes one corpus run.
type RunStats struct {
	Messages int            // messages processed
	Matched  int            // messages with at least one match
	ByType   map[string]int // matches per fact type
}

// Run processes a batch of messages with bounded concurrency. The
// first error aborts the run. Stats are aggregated over the messages
// that completed.
func (e *Engine) Run(ctx context.Context, msgs []store.Message) (RunStats, error) {
	stats := RunStats{ByType: make(map[string]int)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for _, msg := range msgs {
		msg := msg
		g.Go(func() error {
			matches, err := e.Process(ctx, msg)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			stats.Messages++
			if len(matches) > 0 {
				stats.Matched++
			}
			for _, m := range matches {
				stats.ByType[string(m.Type)]++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}

// encodeMatches converts typed matches into their stored form, with
// the fact value JSON-encoded.
func encodeMatches(messageID string, matches []facts.Match) ([]store.Match, error) {
	out := make([]store.Match, 0, len(matches))
	for _, m := range matches {
		value, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, store.Match{
			MessageID: messageID,
			Start:     m.Start,
			Stop:      m.Stop,
			Type:      string(m.Type),
			Value:     string(value),
		})
	}
	return out, nil
}
