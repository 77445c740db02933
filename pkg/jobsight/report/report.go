// Package report aggregates stored extraction results into corpus-level
// summaries: monthly activity series and salary statistics by grade.
package report

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/jobsight/jobsight/pkg/jobsight/facts"
	"github.com/jobsight/jobsight/pkg/jobsight/store"
)

// Monthly is one month of corpus activity. Salary statistics cover RUB
// forks only, so mixed-currency corpora do not skew the median.
type Monthly struct {
	Month     time.Time // first day of the month, UTC
	Messages  int
	Forks     int
	MedianMid int64 // median fork midpoint, 0 when no RUB forks
}

// GradeSalary is the salary statistic for one seniority grade, built
// from messages where grades and forks could be paired up.
type GradeSalary struct {
	Grade     facts.Grade
	Count     int
	MedianMid int64
}

// Report is the full corpus summary.
type Report struct {
	Months []Monthly
	Grades []GradeSalary
	Totals map[string]int64 // matches per fact type
}

// Build reads the whole store and aggregates it. Messages without a
// posting time are skipped from the monthly series but still feed the
// grade statistics.
func Build(ctx context.Context, st store.Store) (*Report, error) {
	msgs, err := st.Messages(ctx, 0)
	if err != nil {
		return nil, err
	}
	totals, err := st.CountMatchesByType(ctx)
	if err != nil {
		return nil, err
	}

	forkRows, err := st.MatchesByType(ctx, string(facts.TypeSalaryRange), 0)
	if err != nil {
		return nil, err
	}
	posRows, err := st.MatchesByType(ctx, string(facts.TypePosition), 0)
	if err != nil {
		return nil, err
	}

	forks := make(map[string][]facts.SalaryRange)
	for _, row := range forkRows {
		var fork facts.SalaryRange
		if err := json.Unmarshal([]byte(row.Value), &fork); err != nil {
			return nil, err
		}
		forks[row.MessageID] = append(forks[row.MessageID], fork)
	}
	grades := make(map[string][]facts.Grade)
	for _, row := range posRows {
		var pos facts.Position
		if err := json.Unmarshal([]byte(row.Value), &pos); err != nil {
			return nil, err
		}
		if pos.Grade != "" {
			grades[row.MessageID] = append(grades[row.MessageID], pos.Grade)
		}
	}

	rep := &Report{Totals: totals}
	rep.Months = buildMonths(msgs, forks)
	rep.Grades = buildGrades(msgs, forks, grades)
	return rep, nil
}

func buildMonths(msgs []store.Message, forks map[string][]facts.SalaryRange) []Monthly {
	type bucket struct {
		messages int
		mids     []int64
		forks    int
	}
	buckets := make(map[time.Time]*bucket)

	for _, msg := range msgs {
		if msg.PostedAt.IsZero() {
			continue
		}
		month := time.Date(msg.PostedAt.UTC().Year(), msg.PostedAt.UTC().Month(), 1, 0, 0, 0, 0, time.UTC)
		b := buckets[month]
		if b == nil {
			b = &bucket{}
			buckets[month] = b
		}
		b.messages++
		for _, fork := range forks[msg.ID] {
			b.forks++
			if fork.Currency == facts.RUB {
				b.mids = append(b.mids, midpoint(fork))
			}
		}
	}

	months := make([]time.Time, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	out := make([]Monthly, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		out = append(out, Monthly{
			Month:     m,
			Messages:  b.messages,
			Forks:     b.forks,
			MedianMid: median(b.mids),
		})
	}
	return out
}

// buildGrades pairs grades with forks positionally within one message.
// A message contributes only when it has equally many of both, so a
// posting listing three roles with three forks pairs up first with
// first and so on, while ambiguous messages abstain.
func buildGrades(msgs []store.Message, forks map[string][]facts.SalaryRange, grades map[string][]facts.Grade) []GradeSalary {
	mids := make(map[facts.Grade][]int64)
	for _, msg := range msgs {
		fs := forks[msg.ID]
		gs := grades[msg.ID]
		if len(fs) == 0 || len(fs) != len(gs) {
			continue
		}
		for i, fork := range fs {
			if fork.Currency != facts.RUB {
				continue
			}
			mids[gs[i]] = append(mids[gs[i]], midpoint(fork))
		}
	}

	order := []facts.Grade{facts.GradeIntern, facts.GradeJunior, facts.GradeMiddle, facts.GradeSenior, facts.GradeLead}
	var out []GradeSalary
	for _, g := range order {
		if len(mids[g]) == 0 {
			continue
		}
		out = append(out, GradeSalary{
			Grade:     g,
			Count:     len(mids[g]),
			MedianMid: median(mids[g]),
		})
	}
	return out
}

func midpoint(fork facts.SalaryRange) int64 {
	return (fork.Min + fork.Max) / 2
}

// median returns the middle value, averaging the two central ones for
// even-sized input. The input slice is sorted in place.
func median(vals []int64) int64 {
	if len(vals) == 0 {
		return 0
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[mid]
	}
	return (vals[mid-1] + vals[mid]) / 2
}
