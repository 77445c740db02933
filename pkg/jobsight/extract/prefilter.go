package extract

import (
	"strings"
	"unicode"

	ac "github.com/petar-dambovaliev/aho-corasick"
)

// prefilter is a literal fast path over the dictionary surfaces. Each
// dictionary-driven extractor gets its own automaton; a message whose
// lowercased text trips no literal of a group cannot produce a match
// there, so the extractor is skipped. Stems are included alongside raw
// surfaces, which keeps the gate sound for morphology-tolerant
// dictionaries (inflection only appends to the stem). Both the patterns
// and the scanned text are ё-folded: stems arrive already folded from
// the stemmer, and a surface registered in е-spelling must still gate
// ё-spelled inflections the stem lookup resolves.
type prefilter struct {
	location ac.AhoCorasick
	position ac.AhoCorasick
	company  ac.AhoCorasick
}

func newPrefilter(dicts *Dictionaries) *prefilter {
	build := func(surfaces []string) ac.AhoCorasick {
		folded := make([]string, len(surfaces))
		for i, s := range surfaces {
			folded[i] = foldYo(s)
		}
		builder := ac.NewAhoCorasickBuilder(ac.Opts{
			MatchKind: ac.LeftMostLongestMatch,
		})
		return builder.Build(folded)
	}
	var location []string
	location = append(location, dicts.Cities.Surfaces()...)
	location = append(location, dicts.Metro.Surfaces()...)
	location = append(location, dicts.Remote.Surfaces()...)

	var position []string
	position = append(position, dicts.Grades.Surfaces()...)
	position = append(position, dicts.Titles.Surfaces()...)

	return &prefilter{
		location: build(location),
		position: build(position),
		company:  build(dicts.Companies.Surfaces()),
	}
}

// gates reports which extractors can possibly match the text.
type gates struct {
	salary   bool
	location bool
	position bool
	company  bool
}

func (p *prefilter) scan(text string) gates {
	lower := foldYo(strings.ToLower(text))
	return gates{
		salary:   strings.ContainsFunc(lower, unicode.IsDigit),
		location: len(p.location.FindAll(lower)) > 0,
		position: len(p.position.FindAll(lower)) > 0,
		company:  len(p.company.FindAll(lower)) > 0,
	}
}

func foldYo(s string) string {
	return strings.ReplaceAll(s, "ё", "е")
}
