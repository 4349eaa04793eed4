// Package normalize provides the deterministic text normalizer and
// the English-bias language heuristic for Discern.
package normalize

import (
	"regexp"
	"strings"
)

// stripRe removes characters outside the retained set: word
// characters, whitespace, and the sentence punctuation ? . ! , - '
var stripRe = regexp.MustCompile(`[^\w\s?.!,\-']`)

// spaceRe collapses runs of whitespace to a single space.
var spaceRe = regexp.MustCompile(`\s+`)

// Normalize lowercases the text, strips non-essential punctuation,
// collapses whitespace runs to one space, and trims. Pure function:
// identical input always yields identical output.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = stripRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
