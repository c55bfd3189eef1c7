package common

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumeric parses s as a finite decimal number. Surrounding whitespace is
// ignored; NaN, infinities and hexadecimal forms are not numeric.
func ParseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || HasAny(strings.ToLower(s), "0x", "nan", "inf") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// HasAny returns true if s contains any of the substrings.
func HasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
