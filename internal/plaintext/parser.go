// Package plaintext parses the hand-maintained bulleted note format: a
// title line, an optional "by <author>" line, then "- " bullets.
package plaintext

import (
	"regexp"
	"strings"
)

// Notes is the parsed content of a single bulleted text file.
type Notes struct {
	Title  string
	Author string
	Items  []string
}

var (
	byPrefix = regexp.MustCompile(`(?i)^by\s+`)

	// Titles are sometimes underlined or framed with = or - runs
	equalsDeco = regexp.MustCompile(`^=+\s*|\s*=+$`)
	dashDeco   = regexp.MustCompile(`^-+\s*|\s*-+$`)
)

// Parser parses bulleted text note files.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads one note file. Lines that are neither the title, an author
// line nor a bullet are ignored; malformed input yields empty Notes.
func (p *Parser) Parse(raw string) Notes {
	var n Notes
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		l := strings.TrimSpace(line)
		if l == "" {
			continue
		}
		if n.Title == "" {
			n.Title = stripDecorations(l)
			continue
		}
		if n.Author == "" && byPrefix.MatchString(l) {
			n.Author = strings.TrimSpace(byPrefix.ReplaceAllString(l, ""))
			continue
		}
		if strings.HasPrefix(l, "- ") {
			n.Items = append(n.Items, strings.TrimSpace(l[2:]))
		}
	}
	return n
}

func stripDecorations(s string) string {
	s = equalsDeco.ReplaceAllString(s, "")
	s = dashDeco.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
