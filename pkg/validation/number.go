package validation

import (
	"strconv"
	"strings"
)

// parseNumber reads the first number in answers such as "$1,000,000" or
// "10 years". Thousands separators are ignored.
func parseNumber(raw string) (float64, bool) {
	start := strings.IndexFunc(raw, func(r rune) bool { return r >= '0' && r <= '9' })
	if start < 0 {
		return 0, false
	}
	var digits strings.Builder
scan:
	for i := start; i < len(raw); i++ {
		switch c := raw[i]; {
		case c >= '0' && c <= '9', c == '.':
			digits.WriteByte(c)
		case c == ',':
		default:
			break scan
		}
	}
	v, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
