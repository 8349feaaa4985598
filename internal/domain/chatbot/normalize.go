package chatbot

import (
	"strings"
	"unicode"
)

// Normalize produces the canonical form used on both sides of every
// comparison: lower-cased, punctuation deleted, whitespace collapsed.
func Normalize(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	var builder strings.Builder
	builder.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			builder.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				builder.WriteRune(' ')
				lastSpace = true
			}
		default:
			// punctuation and symbols are dropped, not turned into spaces
		}
	}
	return strings.TrimSpace(builder.String())
}
