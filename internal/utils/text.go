package utils

import (
	"regexp"
	"strings"
)

var (
	// Whitespace runs (including newlines) collapse to a single space
	whitespaceRuns = regexp.MustCompile(`\s+`)

	// Typographic punctuation mapped to the closest ASCII equivalent;
	// stray replacement characters from broken exports are dropped
	asciiPunct = strings.NewReplacer(
		"�", "",
		"‘", "'", "’", "'", "‚", "'", "‛", "'",
		"“", `"`, "”", `"`, "„", `"`, "‟", `"`,
		"–", "-", "—", "-", "―", "-",
	)
)

// SanitizeText cleans a raw annotation or title string: replacement
// characters removed, curly quotes and dashes mapped to ASCII, whitespace
// collapsed and trimmed. It always returns a string and is idempotent.
func SanitizeText(s string) string {
	if s == "" {
		return ""
	}
	s = asciiPunct.Replace(s)
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
