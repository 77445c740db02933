package extract

import (
	"math"

	"github.com/jobsight/jobsight/pkg/jobsight/facts"
	"github.com/jobsight/jobsight/pkg/jobsight/grammar"
	"github.com/jobsight/jobsight/pkg/jobsight/token"
)

// Salary extracts normalized salary forks. A fork is either
// "от <bound> до <bound>" or "<bound>-<bound>", where a bound is an
// amount with optional currency, scale, per-month and tax attributes.
type Salary struct {
	dicts    *Dictionaries
	patterns []*grammar.Compiled
}

const maxAmountValue = 10_000_000

// Plausibility windows per currency. Pairs outside the window are
// discarded as false positives (date ranges, phone fragments).
var salaryWindows = map[facts.Currency][2]int64{
	facts.RUB: {20_000, 600_000},
	facts.USD: {1_000, 10_000},
	facts.EUR: {1_000, 10_000},
	facts.GBP: {1_000, 10_000},
}

// Bare two-digit and three-digit forks like "100-160" mean thousands.
// A raw minimum inside this range triggers the implicit ×1000 rule.
const (
	implicitThousandLow  = 20
	implicitThousandHigh = 600
)

// NewSalary builds the salary extractor over the given dictionaries.
func NewSalary(dicts *Dictionaries) *Salary {
	// amount covers a number token plus up to two 3-digit groups, so
	// "60 000" and "1 000 000" decode as one value
	amount := grammar.Bind("amount", grammar.Seq(
		grammar.Number(maxAmountValue),
		grammar.Rep(grammar.NumberDigits(999, 3), 2),
	))

	bound := func(slot string) grammar.Pattern {
		attrs := grammar.Rep(grammar.Alt(
			grammar.Bind("scale", grammar.DictMatch(dicts.Scales)),
			grammar.Bind("cur", grammar.DictMatch(dicts.Currencies)),
			grammar.DictMatch(dicts.PerMonth),
			grammar.Bind("tax", grammar.DictMatch(dicts.Taxes)),
		), 4)
		return grammar.Bind(slot, grammar.Seq(
			grammar.Opt(grammar.Bind("cur", grammar.DictMatch(dicts.Currencies))),
			grammar.Opt(grammar.DictMatch(dicts.Approx)),
			amount,
			grammar.Opt(grammar.Literal("+")),
			attrs,
		))
	}

	fromTo := grammar.Seq(
		grammar.Caseless("от"), bound("min"),
		grammar.Caseless("до"), bound("max"),
	)
	dashed := grammar.Seq(bound("min"), grammar.Literal("-"), bound("max"))

	return &Salary{
		dicts:    dicts,
		patterns: []*grammar.Compiled{grammar.Compile(fromTo), grammar.Compile(dashed)},
	}
}

// Extract returns every plausible salary fork of the text. Candidates
// that fail normalization or the plausibility window are dropped.
func (s *Salary) Extract(text string, toks []token.Token) []facts.Match {
	var out []facts.Match
	for _, res := range grammar.FindAll(text, toks, s.patterns...) {
		fork, ok := s.interpret(res)
		if !ok {
			continue
		}
		out = append(out, facts.Match{
			Start: res.Start,
			Stop:  res.Stop,
			Type:  facts.TypeSalaryRange,
			Value: fork,
		})
	}
	return out
}

// interpret normalizes one structurally matched fork. It works on the
// raw parsed bounds exactly once, so scaling can never be applied twice.
func (s *Salary) interpret(res grammar.Result) (facts.SalaryRange, bool) {
	min, ok := decodeBound(res, "min")
	if !ok {
		return facts.SalaryRange{}, false
	}
	max, ok := decodeBound(res, "max")
	if !ok {
		return facts.SalaryRange{}, false
	}

	currency := min.Currency
	if currency == "" {
		currency = max.Currency
	}
	if currency == "" {
		currency = facts.RUB
	}
	tax := min.Tax
	if tax == "" {
		tax = max.Tax
	}
	if tax == "" {
		tax = facts.TaxNet
	}
	scale := min.Scale
	if scale == 0 {
		scale = max.Scale
	}

	lo, hi := min.Amount, max.Amount
	switch {
	case scale != 0:
		lo *= float64(scale)
		hi *= float64(scale)
	case min.Amount >= implicitThousandLow && min.Amount <= implicitThousandHigh:
		// bare "100-160" shorthand for "100k-160k"
		lo *= 1000
		hi *= 1000
	}

	fork := facts.SalaryRange{
		Min:      int64(math.Round(lo)),
		Max:      int64(math.Round(hi)),
		Currency: currency,
		Tax:      tax,
	}
	if !isPlausible(fork) {
		return facts.SalaryRange{}, false
	}
	return fork, true
}

// decodeBound reads the slots of one fork end. A numeric parse failure
// rejects the whole candidate rather than emitting a partial value.
func decodeBound(res grammar.Result, slot string) (facts.Bound, bool) {
	amountAttr, ok := res.Attrs[slot+".amount"]
	if !ok {
		return facts.Bound{}, false
	}
	amount, err := grammar.DecodeNumber(amountAttr.Text)
	if err != nil {
		return facts.Bound{}, false
	}

	b := facts.Bound{Amount: amount}
	if attr, ok := res.Attrs[slot+".cur"]; ok {
		b.Currency = facts.Currency(attr.Canon)
	}
	if attr, ok := res.Attrs[slot+".tax"]; ok {
		b.Tax = facts.Tax(attr.Canon)
	}
	if attr, ok := res.Attrs[slot+".scale"]; ok {
		scale, err := grammar.DecodeInt(attr.Canon)
		if err != nil {
			return facts.Bound{}, false
		}
		b.Scale = scale
	}
	return b, true
}

func isPlausible(fork facts.SalaryRange) bool {
	if fork.Min >= fork.Max {
		return false
	}
	window, ok := salaryWindows[fork.Currency]
	if !ok {
		return false
	}
	return fork.Min >= window[0] && fork.Max <= window[1]
}
