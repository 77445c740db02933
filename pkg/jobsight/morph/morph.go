// Package morph provides a lightweight suffix-stripping normalizer for
// Russian and English surface forms. It is not a lemmatizer: it only has
// to map inflected variants of dictionary entries onto the same stem as
// the entry itself, which suffix stripping does for the case/number
// endings that actually occur in job postings. Dictionaries additionally
// carry hand-curated variants for forms the stripper cannot reach.
package morph

import "strings"

// Russian inflectional endings, longest first. Order matters: the first
// ending that leaves a long enough stem wins.
var ruSuffixes = []string{
	"иями", "ями", "ами", "иях", "ием", "иям",
	"ого", "его", "ому", "ему", "ыми", "ими",
	"ах", "ях", "ям", "ам", "ом", "ем", "ей", "ов", "ев", "ий", "ый", "ой",
	"ая", "яя", "ую", "юю", "ие", "ые", "ое", "ее",
	"а", "я", "о", "е", "у", "ю", "ы", "и", "ь",
}

const minStem = 3 // runes that must survive stripping

// Stem normalizes one word to its stem form. Cyrillic words get Russian
// suffix stripping, Latin words only lose a plural "s". Anything too
// short comes back unchanged apart from lowercasing.
func Stem(word string) string {
	word = strings.ToLower(strings.ReplaceAll(word, "ё", "е"))
	runes := []rune(word)
	if len(runes) <= minStem {
		return word
	}
	if isCyrillic(runes[0]) {
		return stemRussian(runes)
	}
	return stemEnglish(word)
}

// StemPhrase stems every whitespace-separated word of a multi-word form.
func StemPhrase(phrase string) string {
	fields := strings.Fields(phrase)
	for i, f := range fields {
		fields[i] = Stem(f)
	}
	return strings.Join(fields, " ")
}

func stemRussian(runes []rune) string {
	for _, suffix := range ruSuffixes {
		sr := []rune(suffix)
		if len(runes)-len(sr) < minStem {
			continue
		}
		if string(runes[len(runes)-len(sr):]) == suffix {
			return string(runes[:len(runes)-len(sr)])
		}
	}
	return string(runes)
}

func stemEnglish(word string) string {
	if strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > minStem+1 {
		return word[:len(word)-1]
	}
	return word
}

func isCyrillic(r rune) bool {
	return r >= 0x0400 && r <= 0x04FF
}
