package extract

import (
	"github.com/jobsight/jobsight/pkg/jobsight/facts"
	"github.com/jobsight/jobsight/pkg/jobsight/grammar"
	"github.com/jobsight/jobsight/pkg/jobsight/token"
)

// Location extracts work-place facts: a known city, a metro station or
// a remote-work keyword. Exactly one branch fires per match span.
type Location struct {
	pattern *grammar.Compiled
}

// NewLocation builds the location extractor over the given dictionaries.
func NewLocation(dicts *Dictionaries) *Location {
	return &Location{
		pattern: grammar.Compile(grammar.Alt(
			grammar.Bind("city", grammar.DictMatch(dicts.Cities)),
			grammar.Bind("metro", grammar.DictMatch(dicts.Metro)),
			grammar.Bind("remote", grammar.DictMatch(dicts.Remote)),
		)),
	}
}

// Extract returns one Location fact per dictionary hit. There is no
// normalization beyond dictionary canonicalization.
func (l *Location) Extract(text string, toks []token.Token) []facts.Match {
	var out []facts.Match
	for _, res := range l.pattern.FindAll(text, toks) {
		loc := facts.Location{}
		if attr, ok := res.Attrs["city"]; ok {
			loc.City = attr.Canon
		}
		if attr, ok := res.Attrs["metro"]; ok {
			loc.Metro = attr.Canon
		}
		if _, ok := res.Attrs["remote"]; ok {
			loc.Remote = true
		}
		if loc.City == "" && loc.Metro == "" && !loc.Remote {
			continue
		}
		out = append(out, facts.Match{
			Start: res.Start,
			Stop:  res.Stop,
			Type:  facts.TypeLocation,
			Value: loc,
		})
	}
	return out
}
