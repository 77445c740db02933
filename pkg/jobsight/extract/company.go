package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jobsight/jobsight/pkg/jobsight/facts"
	"github.com/jobsight/jobsight/pkg/jobsight/grammar"
	"github.com/jobsight/jobsight/pkg/jobsight/token"
)

// Company extracts employers from two independent sources: contact
// email addresses (regex over the text, outside the grammar engine) and
// a company-name dictionary. Both emit Company facts; the extractor
// deliberately does not dedup between the sources.
type Company struct {
	pattern *grammar.Compiled
}

// emailPattern matches local@domain.tld and captures the domain.
var emailPattern = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@([a-z0-9.-]+\.[a-z]{2,})`)

// freeMailDomains are personal-mail providers that say nothing about
// the employer.
var freeMailDomains = map[string]struct{}{
	"gmail.com": {},
	"mail.ru":   {},
	"yandex.ru": {},
	"mac.com":   {},
}

// NewCompany builds the company extractor over the given dictionaries.
func NewCompany(dicts *Dictionaries) *Company {
	return &Company{
		pattern: grammar.Compile(grammar.Bind("name", grammar.DictMatch(dicts.Companies))),
	}
}

// Extract returns company facts in span order. Email-derived domains
// are normalized (lowercased, "www." stripped) and free-mail providers
// are dropped.
func (c *Company) Extract(text string, toks []token.Token) []facts.Match {
	var out []facts.Match

	for _, res := range c.pattern.FindAll(text, toks) {
		attr, ok := res.Attrs["name"]
		if !ok {
			continue
		}
		out = append(out, facts.Match{
			Start: res.Start,
			Stop:  res.Stop,
			Type:  facts.TypeCompany,
			Value: facts.Company{Domain: attr.Canon},
		})
	}

	for _, idx := range emailPattern.FindAllStringSubmatchIndex(text, -1) {
		domain := normalizeDomain(text[idx[2]:idx[3]])
		if _, free := freeMailDomains[domain]; free {
			continue
		}
		out = append(out, facts.Match{
			Start: idx[0],
			Stop:  idx[1],
			Type:  facts.TypeCompany,
			Value: facts.Company{Domain: domain},
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}

func normalizeDomain(domain string) string {
	return strings.TrimPrefix(strings.ToLower(domain), "www.")
}
