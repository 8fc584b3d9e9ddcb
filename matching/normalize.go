package matching

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize canonicalizes free text for comparison: lowercase, runs of
// whitespace collapsed to a single space, leading/trailing space trimmed.
// Normalize is idempotent.
func Normalize(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(strings.ToLower(s), " "))
}

// Squeeze collapses internal whitespace without changing case, for scraped
// text that should keep its original capitalization.
func Squeeze(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
