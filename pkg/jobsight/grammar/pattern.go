// Package grammar is a combinator library for matching token sequences
// against declarative patterns. A pattern is an immutable tagged-variant
// tree built once at configuration time; evaluation is greedy-leftmost
// with backtracking and yields non-overlapping matches together with the
// attribute values bound by interpretation slots.
package grammar

import (
	"strings"

	"github.com/jobsight/jobsight/pkg/jobsight/dict"
)

// Pattern is one node of the pattern tree. Implementations are sealed
// inside this package; build trees with the constructor functions.
type Pattern interface {
	// match tries the pattern at token index pos and calls k once per
	// possible parse, preferred parse first. It stops and returns true
	// as soon as k accepts.
	match(c *cursor, pos int, k cont) bool
}

type cont func(next int) bool

type literalPattern struct {
	text     string
	caseless bool
}

type dictPattern struct {
	d *dict.Dict
}

type numberPattern struct {
	max    float64
	digits int // 0 = any width, otherwise exact digit count
}

type seqPattern struct{ children []Pattern }

type altPattern struct{ children []Pattern }

type allPattern struct{ children []Pattern }

type optPattern struct{ child Pattern }

type repPattern struct {
	child Pattern
	max   int
}

type bindPattern struct {
	slot  string
	child Pattern
}

// Literal matches a single token with the exact surface text.
func Literal(text string) Pattern {
	return &literalPattern{text: text}
}

// Caseless matches a single token case-insensitively.
func Caseless(text string) Pattern {
	return &literalPattern{text: strings.ToLower(text), caseless: true}
}

// DictMatch matches one token, or a contiguous run of tokens for
// multi-word entries, whose span resolves to a key of d.
func DictMatch(d *dict.Dict) Pattern {
	return &dictPattern{d: d}
}

// Number matches a Number token whose value is at most max.
func Number(max float64) Pattern {
	return &numberPattern{max: max}
}

// NumberDigits matches a Number token whose value is at most max and
// whose digit count equals digits exactly. Used for 3-digit grouped
// thousands: "60 000" matches, "60 0" does not.
func NumberDigits(max float64, digits int) Pattern {
	return &numberPattern{max: max, digits: digits}
}

// Seq matches all children in order, token-adjacent, no gaps.
func Seq(children ...Pattern) Pattern {
	return &seqPattern{children: children}
}

// Alt tries children in declaration order and commits to the first one
// that yields any match at the current position.
func Alt(children ...Pattern) Pattern {
	return &altPattern{children: children}
}

// All requires every child to match at the same position and consumes
// the longest child span. Attribute bindings of all children are kept.
func All(children ...Pattern) Pattern {
	return &allPattern{children: children}
}

// Opt tries the child first and falls back to matching nothing.
func Opt(child Pattern) Pattern {
	return &optPattern{child: child}
}

// Rep matches the child up to max times, preferring the maximal count
// that still lets the rest of the enclosing sequence match.
func Rep(child Pattern, max int) Pattern {
	return &repPattern{child: child, max: max}
}

// Bind tags the child with an interpretation slot. The matched span is
// recorded under the slot name; nested binds produce dotted paths
// ("min.amount"). Binding a DictMatch also records the canonical value.
func Bind(slot string, child Pattern) Pattern {
	return &bindPattern{slot: slot, child: child}
}
