package data

import (
	"math"
	"strconv"
	"strings"
)

const missingRound = "nan"

// NormalizeRound maps a raw round cell to its canonical string: numbers are
// truncated to an integer ("3.0" -> "3"), missing cells become "nan",
// non-finite numbers keep their textual form and anything else is returned
// trimmed but otherwise untouched. It accepts any input and is idempotent.
func NormalizeRound(raw string) string {
	str := strings.TrimSpace(raw)
	if str == "" {
		return missingRound
	}
	num, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return str
	}
	return FormatRound(num)
}

// FormatRound is NormalizeRound for sources that already yield numbers.
func FormatRound(num float64) string {
	switch {
	case math.IsNaN(num):
		return missingRound
	case math.IsInf(num, 1):
		return "inf"
	case math.IsInf(num, -1):
		return "-inf"
	}
	whole := math.Trunc(num)
	if whole == 0 {
		// no "-0"
		whole = 0
	}
	return strconv.FormatFloat(whole, 'f', -1, 64)
}
