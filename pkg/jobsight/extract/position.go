package extract

import (
	"github.com/jobsight/jobsight/pkg/jobsight/facts"
	"github.com/jobsight/jobsight/pkg/jobsight/grammar"
	"github.com/jobsight/jobsight/pkg/jobsight/token"
)

// Position extracts seniority grades and job titles, each normalized to
// a closed enum. A message may yield several position matches; pairing
// grades with salary forks is the reporting side's concern, not ours.
type Position struct {
	pattern *grammar.Compiled
}

// NewPosition builds the position extractor over the given dictionaries.
func NewPosition(dicts *Dictionaries) *Position {
	return &Position{
		pattern: grammar.Compile(grammar.Alt(
			grammar.Bind("grade", grammar.DictMatch(dicts.Grades)),
			grammar.Bind("title", grammar.DictMatch(dicts.Titles)),
		)),
	}
}

// Extract returns one Position fact per grade or title hit.
func (p *Position) Extract(text string, toks []token.Token) []facts.Match {
	var out []facts.Match
	for _, res := range p.pattern.FindAll(text, toks) {
		pos := facts.Position{}
		if attr, ok := res.Attrs["grade"]; ok {
			pos.Grade = facts.Grade(attr.Canon)
		}
		if attr, ok := res.Attrs["title"]; ok {
			pos.Title = facts.Title(attr.Canon)
		}
		if pos.Grade == "" && pos.Title == "" {
			continue
		}
		out = append(out, facts.Match{
			Start: res.Start,
			Stop:  res.Stop,
			Type:  facts.TypePosition,
			Value: pos,
		})
	}
	return out
}
