// Command jobsight-report summarizes a database produced by
// jobsight-extract: monthly activity, match totals and salary medians
// by seniority grade.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/jobsight/jobsight/pkg/jobsight/report"
	"github.com/jobsight/jobsight/pkg/jobsight/store/sqlite"
)

func main() {
	dbPath := flag.String("db", "", "SQLite database path (required)")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer st.Close()

	rep, err := report.Build(ctx, st)
	if err != nil {
		log.Fatal("Failed to build report: ", err)
	}

	fmt.Println("Matches by type:")
	kinds := make([]string, 0, len(rep.Totals))
	for kind := range rep.Totals {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Printf("  %-14s %s\n", kind, humanize.Comma(rep.Totals[kind]))
	}

	fmt.Println("\nMonthly activity:")
	for _, m := range rep.Months {
		median := "-"
		if m.MedianMid > 0 {
			median = humanize.Comma(m.MedianMid) + " ₽"
		}
		fmt.Printf("  %s  %4d messages  %3d forks  median %s\n",
			m.Month.Format("2006-01"), m.Messages, m.Forks, median)
	}

	if len(rep.Grades) > 0 {
		fmt.Println("\nSalary by grade (RUB fork midpoints):")
		for _, g := range rep.Grades {
			fmt.Printf("  %-7s %4d postings  median %s ₽\n",
				g.Grade, g.Count, humanize.Comma(g.MedianMid))
		}
	}
}
