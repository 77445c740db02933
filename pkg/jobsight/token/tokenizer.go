package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits normalized text into typed tokens. Whitespace separates
// tokens and is never itself a token. Contiguous digit runs, including
// "."/","-separated digit groups, become a single Number token with the
// raw text preserved for later numeric parsing. Letter runs become Word
// tokens, everything else is emitted rune by rune as Punct or Symbol.
func Tokenize(text string) []Token {
	var tokens []Token
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case unicode.IsDigit(r):
			stop := scanNumber(text, i)
			tokens = append(tokens, makeToken(Number, text, i, stop))
			i = stop
		case unicode.IsLetter(r):
			stop := scanWord(text, i)
			tokens = append(tokens, makeToken(Word, text, i, stop))
			i = stop
		case unicode.IsPunct(r):
			tokens = append(tokens, makeToken(Punct, text, i, i+size))
			i += size
		default:
			tokens = append(tokens, makeToken(Symbol, text, i, i+size))
			i += size
		}
	}
	return tokens
}

// scanNumber consumes digits plus internal "."/"," separators that are
// immediately followed by another digit, so "60,000" and "2.5" stay one
// token while the trailing dot of "100." does not.
func scanNumber(text string, start int) int {
	i := start
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsDigit(r) {
			i += size
			continue
		}
		if r == '.' || r == ',' {
			next, nextSize := utf8.DecodeRuneInString(text[i+size:])
			if nextSize > 0 && unicode.IsDigit(next) {
				i += size
				continue
			}
		}
		break
	}
	return i
}

func scanWord(text string, start int) int {
	i := start
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsLetter(r) {
			break
		}
		i += size
	}
	return i
}

func makeToken(kind Kind, text string, start, stop int) Token {
	surface := text[start:stop]
	return Token{
		Kind:  kind,
		Text:  surface,
		Start: start,
		Stop:  stop,
		Norm:  strings.ToLower(surface),
	}
}
