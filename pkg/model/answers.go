package model

import "strings"

// Answers maps intake question ids to free-form values. Absent keys are legal
// everywhere; consumers fall back to placeholder text.
type Answers map[string]string

// Lookup returns the trimmed answer for id, or fallback when the answer is
// missing or blank. Content functions should read every answer through Lookup.
func (a Answers) Lookup(id, fallback string) string {
	if a == nil {
		return fallback
	}
	value := strings.TrimSpace(a[id])
	if value == "" {
		return fallback
	}
	return value
}

// Answered reports whether id carries a non-blank value.
func (a Answers) Answered(id string) bool {
	if a == nil {
		return false
	}
	return strings.TrimSpace(a[id]) != ""
}

// Clone returns a shallow copy so runs never share the caller's map.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}
