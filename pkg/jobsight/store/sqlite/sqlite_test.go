package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jobsight/jobsight/pkg/jobsight/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()
	st, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSQLiteMessageRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	msg := store.Message{
		ID:       "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Author:   "U02ABC",
		Text:     "Ищем senior аналитика, 150-250 т.р.",
		PostedAt: time.Date(2019, 3, 14, 9, 26, 53, 589000000, time.UTC),
		Lang:     "ru",
	}
	if err := st.UpsertMessage(ctx, msg); err != nil {
		t.Fatalf("UpsertMessage: %v", err)
	}

	got, found, err := st.GetMessage(ctx, msg.ID)
	if err != nil {
		t.Fatalf("GetMessage: %v", err)
	}
	if !found {
		t.Fatal("message not found after upsert")
	}
	if got.Text != msg.Text || got.Author != msg.Author || got.Lang != msg.Lang {
		t.Errorf("got %+v, want %+v", got, msg)
	}
	if !got.PostedAt.Equal(msg.PostedAt) {
		t.Errorf("posted_at = %v, want %v", got.PostedAt, msg.PostedAt)
	}

	if _, found, _ := st.GetMessage(ctx, "missing"); found {
		t.Error("found a message that was never stored")
	}
}

func TestSQLiteUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	msg := store.Message{ID: "m1", Text: "first", PostedAt: time.Now().UTC()}
	st.UpsertMessage(ctx, msg)
	msg.Text = "second"
	if err := st.UpsertMessage(ctx, msg); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, _, _ := st.GetMessage(ctx, "m1")
	if got.Text != "second" {
		t.Errorf("text = %q, want second", got.Text)
	}
	if n, _ := st.CountMessages(ctx); n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestSQLiteMessagesOrderedByTime(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	base := time.Date(2018, 6, 1, 0, 0, 0, 0, time.UTC)
	st.UpsertMessage(ctx, store.Message{ID: "late", Text: "x", PostedAt: base.Add(time.Hour)})
	st.UpsertMessage(ctx, store.Message{ID: "early", Text: "x", PostedAt: base})

	msgs, err := st.Messages(ctx, 0)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(msgs) != 2 || msgs[0].ID != "early" || msgs[1].ID != "late" {
		t.Errorf("wrong order: %+v", msgs)
	}

	if limited, _ := st.Messages(ctx, 1); len(limited) != 1 {
		t.Errorf("limit ignored")
	}
}

func TestSQLiteReplaceMatches(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	st.UpsertMessage(ctx, store.Message{ID: "m1", Text: "x", PostedAt: time.Now().UTC()})

	first := []store.Match{
		{MessageID: "m1", Start: 0, Stop: 10, Type: "salary_range", Value: `{"min":60000}`},
		{MessageID: "m1", Start: 12, Stop: 18, Type: "location", Value: `{"city":"Москва"}`},
	}
	if err := st.ReplaceMatches(ctx, "m1", first); err != nil {
		t.Fatalf("ReplaceMatches: %v", err)
	}

	// a second extraction run fully replaces the first
	second := []store.Match{
		{MessageID: "m1", Start: 0, Stop: 10, Type: "salary_range", Value: `{"min":65000}`},
	}
	if err := st.ReplaceMatches(ctx, "m1", second); err != nil {
		t.Fatalf("second ReplaceMatches: %v", err)
	}

	got, err := st.MatchesByMessage(ctx, "m1")
	if err != nil {
		t.Fatalf("MatchesByMessage: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d matches, want 1", len(got))
	}
	if got[0].Value != `{"min":65000}` {
		t.Errorf("stale match value %q", got[0].Value)
	}
}

func TestSQLiteMatchesByTypeAndCounts(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	ts := time.Now().UTC()
	st.UpsertMessage(ctx, store.Message{ID: "a", Text: "x", PostedAt: ts})
	st.UpsertMessage(ctx, store.Message{ID: "b", Text: "x", PostedAt: ts})
	st.ReplaceMatches(ctx, "a", []store.Match{
		{Start: 5, Stop: 9, Type: "position", Value: "{}"},
		{Start: 0, Stop: 4, Type: "salary_range", Value: "{}"},
	})
	st.ReplaceMatches(ctx, "b", []store.Match{
		{Start: 0, Stop: 4, Type: "salary_range", Value: "{}"},
	})

	forks, err := st.MatchesByType(ctx, "salary_range", 0)
	if err != nil {
		t.Fatalf("MatchesByType: %v", err)
	}
	if len(forks) != 2 || forks[0].MessageID != "a" || forks[1].MessageID != "b" {
		t.Errorf("unexpected result: %+v", forks)
	}

	counts, err := st.CountMatchesByType(ctx)
	if err != nil {
		t.Fatalf("CountMatchesByType: %v", err)
	}
	if counts["salary_range"] != 2 || counts["position"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}
