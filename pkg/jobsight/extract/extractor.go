// Package extract turns one message text into a stream of typed fact
// matches. Four independent extractors (salary fork, location,
// position, company) share a tokenizer pass and run in a fixed order;
// their match streams are concatenated without cross-extractor dedup.
package extract

import (
	"github.com/jobsight/jobsight/pkg/jobsight/facts"
	"github.com/jobsight/jobsight/pkg/jobsight/token"
)

// Extractor is the façade over all fact extractors. Built once from
// immutable dictionaries, safe for concurrent use without locking.
type Extractor struct {
	salary   *Salary
	location *Location
	position *Position
	company  *Company
	filter   *prefilter
}

// New builds the façade. A nil dicts falls back to the built-in
// dictionaries.
func New(dicts *Dictionaries) *Extractor {
	if dicts == nil {
		dicts = Default()
	}
	return &Extractor{
		salary:   NewSalary(dicts),
		location: NewLocation(dicts),
		position: NewPosition(dicts),
		company:  NewCompany(dicts),
		filter:   newPrefilter(dicts),
	}
}

// Extract runs every extractor over one message text and concatenates
// their matches in extractor order. It never fails: noise, empty input
// and match-free text all yield an empty stream. Offsets in the result
// address the dash-normalized text, which Normalize exposes.
func (e *Extractor) Extract(rawText string) []facts.Match {
	text := token.Normalize(rawText)
	if text == "" {
		return nil
	}
	toks := token.Tokenize(text)
	open := e.filter.scan(text)

	var out []facts.Match
	if open.salary {
		out = append(out, e.salary.Extract(text, toks)...)
	}
	if open.location {
		out = append(out, e.location.Extract(text, toks)...)
	}
	if open.position {
		out = append(out, e.position.Extract(text, toks)...)
	}
	// the email source must run even when no company literal is present
	if open.company || containsAt(text) {
		out = append(out, e.company.Extract(text, toks)...)
	}
	return out
}

// Normalize exposes the text form all match offsets address.
func (e *Extractor) Normalize(rawText string) string {
	return token.Normalize(rawText)
}

func containsAt(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] == '@' {
			return true
		}
	}
	return false
}
