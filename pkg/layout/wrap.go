package layout

import (
	"strings"
	"unicode/utf8"
)

const epsilon = 1e-6

// WrapText greedily breaks text into lines no wider than width according to
// measure. Runs of whitespace collapse to one space. Words wider than width
// are split between runes; every line holds at least one rune.
func WrapText(measure func(string) float64, text string, width float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		lines   []string
		current string
	)
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= width+epsilon {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if measure(word) <= width+epsilon {
			current = word
			continue
		}
		pieces := breakWord(measure, word, width)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func breakWord(measure func(string) float64, word string, width float64) []string {
	var pieces []string
	for word != "" {
		end := 0
		for end < len(word) {
			_, size := utf8.DecodeRuneInString(word[end:])
			if end > 0 && measure(word[:end+size]) > width+epsilon {
				break
			}
			end += size
		}
		pieces = append(pieces, word[:end])
		word = word[end:]
	}
	return pieces
}

// truncate shortens s with a trailing ellipsis until it fits width. It returns
// "" when not even the ellipsis fits.
func truncate(measure func(string) float64, s string, width float64) string {
	if measure(s) <= width+epsilon {
		return s
	}
	const ellipsis = "..."
	runes := []rune(s)
	for n := len(runes) - 1; n >= 0; n-- {
		candidate := strings.TrimRight(string(runes[:n]), " ") + ellipsis
		if measure(candidate) <= width+epsilon {
			return candidate
		}
	}
	return ""
}
