package layout

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxIndentLevel = 4

var (
	numberedHeading = regexp.MustCompile(`^(?:\d+(?:\.\d+)+\.?|[IVX]+\.|(?i:article|section)\s+\d+(?:\.\d+)*\.?)\s+[A-Z][A-Za-z0-9 ,&'/()-]*$`)
	listMarker      = regexp.MustCompile(`^(?:\([a-zA-Z0-9]{1,3}\)|[a-z][.)]|\d+[.)]|[-*•·–]|[☐☑☒]|\[[ xX]\])\s+`)
)

// splitParagraphs splits content on blank lines and drops empty paragraphs.
func splitParagraphs(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	var (
		out     []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, strings.TrimRight(line, " \t"))
	}
	flush()
	return out
}

// isSubHeading reports whether a paragraph is a short single-line heading:
// either ALL CAPS or a multi-level, roman or article numbered title without
// sentence punctuation. "1. Item" stays a list item unless it is ALL CAPS.
func isSubHeading(paragraph string) bool {
	if strings.Contains(paragraph, "\n") {
		return false
	}
	text := strings.TrimSpace(paragraph)
	n := utf8.RuneCountInString(text)
	if n < 3 || n > 80 {
		return false
	}
	if numberedHeading.MatchString(text) {
		return true
	}
	hasLetter := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// indentLevel derives a nesting level from leading whitespace (two spaces or
// half a tab per level) plus one for a list marker.
func indentLevel(line string) int {
	spaces := 0
	for _, r := range line {
		if r == ' ' {
			spaces++
		} else if r == '\t' {
			spaces += 4
		} else {
			break
		}
	}
	level := spaces / 2
	if listMarker.MatchString(strings.TrimLeft(line, " \t")) {
		level++
	}
	if level > maxIndentLevel {
		level = maxIndentLevel
	}
	return level
}
