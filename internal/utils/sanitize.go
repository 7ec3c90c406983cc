package utils

import (
	"strings"
	"unicode"
)

// markupRunes are stripped from every query before it reaches the engine.
// Matched terms get echoed back for highlighting, so none of these may
// survive sanitization.
const markupRunes = "<>\"'&"

// Sanitize strips markup and control characters from raw input, collapses
// whitespace runs to a single space and trims the result.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastSpace := false
	for _, r := range s {
		switch {
		case strings.ContainsRune(markupRunes, r):
			continue
		case unicode.IsControl(r):
			continue
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}
	return strings.TrimSpace(b.String())
}

// HasLetter reports whether s contains at least one letter rune.
func HasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// AbsDiff returns the absolute difference of two lengths.
func AbsDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
