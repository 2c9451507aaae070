// Package identity derives the stable identifiers used across ingestion
// runs: book id slugs, book match keys, and content-hashed quote ids.
package identity

import (
	"crypto/sha1"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)

	// NFKD decomposition followed by removal of combining marks strips
	// diacritics without touching base letters
	deaccenter = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
)

// Slug normalizes arbitrary text into a URL-and-id-safe token: lower-cased,
// diacritics stripped, every run of non [a-z0-9] collapsed to one hyphen.
func Slug(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(deaccenter, s); err == nil {
		s = out
	}
	s = nonSlugRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// BookKey is the dedup key for book identity. Two (title, author) pairs
// with the same key are the same book regardless of casing, accents or
// punctuation.
func BookKey(title, author string) string {
	return Slug(title) + "|" + Slug(author)
}

// BookIDBase returns the id a book would get absent collisions. Collision
// probing happens at the index, which knows the taken ids.
func BookIDBase(title string) string {
	return "bk_" + Slug(title)
}

// QuoteID derives the quote identifier from the owning book id and the
// normalized text. The sha1 digest is truncated to 12 hex characters:
// short enough to scan by eye, and a collision only drops a legitimate
// duplicate quote instead of corrupting data, so the risk is accepted.
func QuoteID(bookID, text string) string {
	sum := sha1.Sum([]byte(bookID + "|" + text))
	return "q_" + hex.EncodeToString(sum[:])[:12]
}
