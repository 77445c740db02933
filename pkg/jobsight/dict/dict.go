// Package dict implements closed mappings from surface forms to one
// canonical value. A dictionary can hold multi-word keys ("team lead",
// "т.р.") and can optionally tolerate single-word inflection through
// stem-level lookup.
package dict

import (
	"strings"

	"github.com/jobsight/jobsight/pkg/jobsight/morph"
	"github.com/jobsight/jobsight/pkg/jobsight/token"
)

// Entry maps one canonical value to all surface forms that should
// resolve to it. The canonical value itself is not implicitly a surface.
type Entry struct {
	Canonical string
	Surfaces  []string
}

// Dict is an immutable surface-form dictionary. Built once at
// construction time, safe for concurrent lookup.
type Dict struct {
	name    string
	morph   bool
	exact   map[string]string // collapsed lowercase surface -> canonical
	stems   map[string]string // stemmed surface -> canonical, morph only
	maxRun  int               // longest key measured in tokens
}

// New builds a dictionary. When useMorph is set, lookups additionally
// match inflected variants of the registered surfaces via stemming.
func New(name string, useMorph bool, entries []Entry) *Dict {
	d := &Dict{
		name:   name,
		morph:  useMorph,
		exact:  make(map[string]string),
		stems:  make(map[string]string),
		maxRun: 1,
	}
	for _, e := range entries {
		for _, s := range e.Surfaces {
			key := collapse(s)
			if key == "" {
				continue
			}
			d.exact[key] = e.Canonical
			if n := len(token.Tokenize(key)); n > d.maxRun {
				d.maxRun = n
			}
			if useMorph {
				d.stems[morph.StemPhrase(key)] = e.Canonical
			}
		}
	}
	return d
}

// Name returns the dictionary's identifier, used in diagnostics.
func (d *Dict) Name() string { return d.name }

// MaxRun is the longest key length in tokens. The pattern engine uses it
// to bound how many contiguous tokens a dictionary match may consume.
func (d *Dict) MaxRun() int { return d.maxRun }

// Lookup resolves a text span to its canonical value. The span is
// lowercased and internal whitespace is collapsed before comparison;
// morphology-tolerant dictionaries also try the stemmed form.
func (d *Dict) Lookup(span string) (string, bool) {
	key := collapse(span)
	if canonical, ok := d.exact[key]; ok {
		return canonical, true
	}
	if d.morph {
		if canonical, ok := d.stems[morph.StemPhrase(key)]; ok {
			return canonical, true
		}
	}
	return "", false
}

// Surfaces returns every literal a match can rest on: the registered
// surface forms plus, for morphology-tolerant dictionaries, their stems.
// Inflection only appends endings, so a stem is always a substring of
// any matching span. Used to seed the literal prefilter.
func (d *Dict) Surfaces() []string {
	seen := make(map[string]struct{}, len(d.exact)+len(d.stems))
	var out []string
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for s := range d.exact {
		add(s)
	}
	for s := range d.stems {
		add(s)
	}
	return out
}

func collapse(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
