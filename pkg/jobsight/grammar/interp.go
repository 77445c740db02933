package grammar

import (
	"errors"
	"strconv"
	"strings"
)

// ErrBadNumber reports numeric text that does not follow any of the
// supported layouts. Extractors discard the whole candidate match when
// a slot fails to decode.
var ErrBadNumber = errors.New("unparsable numeric text")

// DecodeNumber interprets the numeric text of a slot. Internal
// whitespace is stripped first, so a span covering grouped thousands
// ("60 000") decodes as one value. Supported layouts:
//
//	plain digit runs            "250"       -> 250
//	3-digit separator groups    "60,000"    -> 60000
//	one decimal separator with
//	at most 2 fraction digits   "2.5" "2,5" -> 2.5
func DecodeNumber(text string) (float64, error) {
	compact := strings.Join(strings.Fields(text), "")
	if compact == "" {
		return 0, ErrBadNumber
	}

	groups := strings.FieldsFunc(compact, func(r rune) bool {
		return r == '.' || r == ','
	})
	separators := strings.Count(compact, ".") + strings.Count(compact, ",")
	if len(groups) == 0 || separators != len(groups)-1 {
		// leading/trailing/doubled separators
		return 0, ErrBadNumber
	}

	switch {
	case separators == 0:
		value, err := parseDigits(compact)
		if err != nil {
			return 0, err
		}
		return float64(value), nil

	case separators == 1 && len(groups[1]) <= 2:
		// decimal fraction
		whole, err := parseDigits(groups[0])
		if err != nil {
			return 0, err
		}
		frac, err := parseDigits(groups[1])
		if err != nil {
			return 0, err
		}
		div := 10.0
		if len(groups[1]) == 2 {
			div = 100.0
		}
		return float64(whole) + float64(frac)/div, nil

	default:
		// grouped thousands: every group after the first must be 3 digits
		for _, g := range groups[1:] {
			if len(g) != 3 {
				return 0, ErrBadNumber
			}
		}
		value, err := parseDigits(strings.Join(groups, ""))
		if err != nil {
			return 0, err
		}
		return float64(value), nil
	}
}

// DecodeInt decodes grouped integer text, rejecting fractional forms.
func DecodeInt(text string) (int64, error) {
	value, err := DecodeNumber(text)
	if err != nil {
		return 0, err
	}
	if value != float64(int64(value)) {
		return 0, ErrBadNumber
	}
	return int64(value), nil
}

func parseDigits(s string) (int64, error) {
	if s == "" || len(s) > 15 {
		return 0, ErrBadNumber
	}
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrBadNumber
	}
	return value, nil
}
