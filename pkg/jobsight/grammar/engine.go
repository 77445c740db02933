package grammar

import (
	"strings"

	"github.com/jobsight/jobsight/pkg/jobsight/token"
)

// Attr is the value bound to one interpretation slot.
type Attr struct {
	Text  string // verbatim span of the normalized text
	Canon string // canonical dictionary value, empty unless the slot wraps a dictionary match
}

// Result is one non-overlapping match of a compiled pattern.
type Result struct {
	Start    int // byte offset into the normalized text
	Stop     int
	TokStart int // token index range, [TokStart, TokStop)
	TokStop  int
	Attrs    map[string]Attr
}

// Compiled is a pattern ready for evaluation. Compiled values are
// immutable and safe for concurrent use.
type Compiled struct {
	root Pattern
}

// Compile freezes a pattern tree for evaluation.
func Compile(p Pattern) *Compiled {
	return &Compiled{root: p}
}

// FindAll scans the token stream left to right and returns every match,
// suppressing candidates that start inside an already-returned span:
// first, leftmost, longest at that start position wins.
func (cp *Compiled) FindAll(text string, toks []token.Token) []Result {
	return FindAll(text, toks, cp)
}

// FindAll evaluates several compiled patterns over one token stream.
// At each position the patterns are tried in the given priority order;
// the first that matches claims the span and later starts inside it are
// suppressed.
func FindAll(text string, toks []token.Token, patterns ...*Compiled) []Result {
	var results []Result
	pos := 0
	for pos < len(toks) {
		matched := false
		for _, cp := range patterns {
			if res, ok := cp.matchAt(text, toks, pos); ok {
				results = append(results, res)
				pos = res.TokStop
				matched = true
				break
			}
		}
		if !matched {
			pos++
		}
	}
	return results
}

// matchAt tries one anchored match at token index pos. The first parse
// the evaluator yields is the greedy-preferred (longest) one, so it is
// accepted immediately. Zero-width parses are rejected.
func (cp *Compiled) matchAt(text string, toks []token.Token, pos int) (Result, bool) {
	c := &cursor{text: text, toks: toks}
	end := -1
	cp.root.match(c, pos, func(next int) bool {
		if next <= pos {
			return false
		}
		end = next
		return true
	})
	if end < 0 {
		return Result{}, false
	}
	return Result{
		Start:    toks[pos].Start,
		Stop:     toks[end-1].Stop,
		TokStart: pos,
		TokStop:  end,
		Attrs:    c.attrs(),
	}, true
}

// cursor carries evaluation state: the token stream, the slot path of
// the bind wrappers currently entered, and a rewindable binding trail.
type cursor struct {
	text  string
	toks  []token.Token
	path  []string
	trail []bindingRecord
}

type bindingRecord struct {
	path string
	attr Attr
}

func (c *cursor) mark() int { return len(c.trail) }

func (c *cursor) rewind(mark int) { c.trail = c.trail[:mark] }

func (c *cursor) span(startTok, stopTok int) string {
	return c.text[c.toks[startTok].Start:c.toks[stopTok-1].Stop]
}

// attrs collapses the surviving trail into a slot map. The first write
// to a path wins, so repeated attribute tokens keep their earliest value.
func (c *cursor) attrs() map[string]Attr {
	out := make(map[string]Attr, len(c.trail))
	for _, rec := range c.trail {
		if _, ok := out[rec.path]; !ok {
			out[rec.path] = rec.attr
		}
	}
	return out
}

func (p *literalPattern) match(c *cursor, pos int, k cont) bool {
	if pos >= len(c.toks) {
		return false
	}
	tok := c.toks[pos]
	if p.caseless {
		if tok.Norm != p.text {
			return false
		}
	} else if tok.Text != p.text {
		return false
	}
	return k(pos + 1)
}

// match tries runs from the longest the dictionary allows down to a
// single token, so multi-word entries shadow their own prefixes.
func (p *dictPattern) match(c *cursor, pos int, k cont) bool {
	if pos >= len(c.toks) {
		return false
	}
	maxRun := p.d.MaxRun()
	if remaining := len(c.toks) - pos; maxRun > remaining {
		maxRun = remaining
	}
	for n := maxRun; n >= 1; n-- {
		if _, ok := p.d.Lookup(c.span(pos, pos+n)); !ok {
			continue
		}
		if k(pos + n) {
			return true
		}
	}
	return false
}

func (p *numberPattern) match(c *cursor, pos int, k cont) bool {
	if pos >= len(c.toks) {
		return false
	}
	tok := c.toks[pos]
	if tok.Kind != token.Number {
		return false
	}
	value, err := DecodeNumber(tok.Text)
	if err != nil || value > p.max {
		return false
	}
	if p.digits > 0 && countDigits(tok.Text) != p.digits {
		return false
	}
	return k(pos + 1)
}

func (p *seqPattern) match(c *cursor, pos int, k cont) bool {
	return p.matchFrom(c, 0, pos, k)
}

func (p *seqPattern) matchFrom(c *cursor, idx, pos int, k cont) bool {
	if idx == len(p.children) {
		return k(pos)
	}
	return p.children[idx].match(c, pos, func(next int) bool {
		return p.matchFrom(c, idx+1, next, k)
	})
}

func (p *altPattern) match(c *cursor, pos int, k cont) bool {
	for _, child := range p.children {
		produced := false
		stopped := child.match(c, pos, func(next int) bool {
			produced = true
			return k(next)
		})
		if produced {
			// committed choice: backtracking stays inside this child
			return stopped
		}
	}
	return false
}

func (p *allPattern) match(c *cursor, pos int, k cont) bool {
	return p.matchFrom(c, 0, pos, pos, k)
}

func (p *allPattern) matchFrom(c *cursor, idx, pos, longest int, k cont) bool {
	if idx == len(p.children) {
		return k(longest)
	}
	return p.children[idx].match(c, pos, func(next int) bool {
		if next > longest {
			return p.matchFrom(c, idx+1, pos, next, k)
		}
		return p.matchFrom(c, idx+1, pos, longest, k)
	})
}

func (p *optPattern) match(c *cursor, pos int, k cont) bool {
	if p.child.match(c, pos, k) {
		return true
	}
	return k(pos)
}

func (p *repPattern) match(c *cursor, pos int, k cont) bool {
	return p.matchFrom(c, pos, 0, k)
}

func (p *repPattern) matchFrom(c *cursor, pos, count int, k cont) bool {
	if count < p.max {
		stopped := p.child.match(c, pos, func(next int) bool {
			if next == pos {
				// zero-width child, stop repeating
				return k(next)
			}
			return p.matchFrom(c, next, count+1, k)
		})
		if stopped {
			return true
		}
	}
	return k(pos)
}

func (p *bindPattern) match(c *cursor, pos int, k cont) bool {
	c.path = append(c.path, p.slot)
	stopped := p.child.match(c, pos, func(next int) bool {
		attr := Attr{}
		if next > pos {
			attr.Text = c.span(pos, next)
		}
		if dp, ok := p.child.(*dictPattern); ok && next > pos {
			if canon, found := dp.d.Lookup(attr.Text); found {
				attr.Canon = canon
			}
		}
		rec := bindingRecord{path: strings.Join(c.path, "."), attr: attr}

		// the continuation runs outside this bind's scope; afterwards the
		// slot is re-appended rather than restored via a saved slice
		// header, because a sibling bind inside the continuation reuses
		// the backing array and overwrites the popped element
		c.path = c.path[:len(c.path)-1]
		mark := c.mark()
		c.trail = append(c.trail, rec)
		accepted := k(next)
		if !accepted {
			c.rewind(mark)
		}
		c.path = append(c.path, p.slot)
		return accepted
	})
	c.path = c.path[:len(c.path)-1]
	return stopped
}

func countDigits(text string) int {
	count := 0
	for _, r := range text {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}
