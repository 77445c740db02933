// Command jobsight-extract ingests a Slack workspace export, extracts
// hiring facts from the job channel and stores everything in SQLite.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/cheggaaa/pb/v3"

	"github.com/jobsight/jobsight/internal/langid"
	"github.com/jobsight/jobsight/internal/mrkdwn"
	"github.com/jobsight/jobsight/internal/slackdump"
	"github.com/jobsight/jobsight/pkg/jobsight"
	"github.com/jobsight/jobsight/pkg/jobsight/config"
	"github.com/jobsight/jobsight/pkg/jobsight/store"
	"github.com/jobsight/jobsight/pkg/jobsight/store/sqlite"
)

const batchSize = 64

func main() {
	var (
		dumpPath  = flag.String("dump", "", "Slack export zip (required)")
		channel   = flag.String("channel", "jobs", "Channel directory inside the export")
		dbPath    = flag.String("db", "", "SQLite database path (required)")
		dictsPath = flag.String("dicts", "", "Dictionary override YAML (optional)")
		workers   = flag.Int("workers", 4, "Concurrent extraction workers")
		all       = flag.Bool("all", false, "Keep every message, not just vacancy-like ones")
	)
	flag.Parse()

	if *dumpPath == "" {
		log.Fatal("--dump required")
	}
	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	loader := config.Loader{DictPath: *dictsPath}
	dicts, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load dictionaries: ", err)
	}

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}

	engine := jobsight.New(jobsight.Options{
		Store:        st,
		Dictionaries: dicts,
		Workers:      *workers,
	})
	defer engine.Close()

	reader := slackdump.NewReader(*dumpPath)
	raw, err := reader.Messages(*channel)
	if err != nil {
		log.Fatal("Failed to read export: ", err)
	}
	log.Printf("Read %d messages from #%s", len(raw), *channel)

	msgs := make([]store.Message, 0, len(raw))
	for _, m := range raw {
		text := mrkdwn.Flatten(m.Mrkdwn)
		if !*all && !slackdump.IsVacancy(text, m.PostedAt) {
			continue
		}
		msgs = append(msgs, store.Message{
			ID:       m.ID,
			Author:   m.Author,
			Text:     text,
			PostedAt: m.PostedAt,
			Lang:     langid.Detect(text),
		})
	}
	log.Printf("Kept %d vacancy-like messages", len(msgs))

	bar := pb.StartNew(len(msgs))
	total := jobsight.RunStats{ByType: make(map[string]int)}
	for start := 0; start < len(msgs); start += batchSize {
		end := start + batchSize
		if end > len(msgs) {
			end = len(msgs)
		}
		stats, err := engine.Run(ctx, msgs[start:end])
		if err != nil {
			log.Fatal("Extraction failed: ", err)
		}
		total.Messages += stats.Messages
		total.Matched += stats.Matched
		for kind, n := range stats.ByType {
			total.ByType[kind] += n
		}
		bar.Add(end - start)
	}
	bar.Finish()

	log.Printf("Processed %d messages, %d with matches", total.Messages, total.Matched)
	for kind, n := range total.ByType {
		log.Printf("  %s: %d", kind, n)
	}
}
