// Package langid guesses whether a text is Russian or English by
// script composition. Job-chat messages mix both scripts freely, so a
// label is only assigned when one alphabet clearly dominates.
package langid

import "unicode"

const (
	RU = "ru"
	EN = "en"
)

// dominance a script needs among letters before we commit to a label.
const threshold = 0.75

// Detect returns "ru", "en" or an empty string when the text is too
// short or too mixed to call.
func Detect(text string) string {
	var cyrillic, latin, letters int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		case r < 128:
			latin++
		}
	}
	if letters < 20 {
		return ""
	}
	if float64(cyrillic)/float64(letters) >= threshold {
		return RU
	}
	if float64(latin)/float64(letters) >= threshold {
		return EN
	}
	return ""
}
