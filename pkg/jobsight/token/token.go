package token

import "strings"

// Kind classifies a token.
type Kind int

const (
	Word Kind = iota
	Number
	Punct
	Symbol
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Number:
		return "number"
	case Punct:
		return "punct"
	case Symbol:
		return "symbol"
	}
	return "unknown"
}

// Token is one lexical unit of the normalized text. Start/Stop are byte
// offsets into the normalized string, so text[Start:Stop] == Text.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	Stop  int
	Norm  string // lowercased surface form
}

// dash variants folded to the plain hyphen-minus before tokenizing
var dashReplacer = strings.NewReplacer(
	"‑", "-", // non-breaking hyphen
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
)

// Normalize canonicalizes dash variants. All offsets produced by the
// tokenizer address the result of this call, not the raw input.
func Normalize(text string) string {
	return dashReplacer.Replace(text)
}
