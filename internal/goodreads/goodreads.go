// Package goodreads imports a Goodreads library export CSV and optionally
// enriches the books collection with the metadata ingestion leaves blank:
// publication year, page count and genres.
package goodreads

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Book is one normalized row of a Goodreads library export.
type Book struct {
	GoodreadsID   string   `json:"goodreadsId"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	ISBN          string   `json:"isbn,omitempty"`
	ISBN13        string   `json:"isbn13,omitempty"`
	Pages         *int     `json:"pages"`
	Year          *int     `json:"year"`
	Publisher     string   `json:"publisher,omitempty"`
	Binding       string   `json:"binding,omitempty"`
	Rating        *int     `json:"rating"`
	AverageRating *float64 `json:"averageRating"`
	Shelves       []string `json:"shelves"`
	DateRead      string   `json:"dateRead,omitempty"`
	DateAdded     string   `json:"dateAdded,omitempty"`
}

// Library is the normalized export, persisted as goodreads.json.
type Library struct {
	Books []Book `json:"books"`
}

// Role suffixes Goodreads appends to additional authors, e.g. "(Translator)"
var authorRole = regexp.MustCompile(`\s*\(.*?\)\s*$`)

// Date layouts observed in Goodreads exports
var dateLayouts = []string{"2006/01/02", "2006-01-02", "02/01/2006", "01/02/2006"}

// ParseExport reads a Goodreads library export CSV. Columns are located by
// header name, so column order and extra columns do not matter.
func ParseExport(r io.Reader) (Library, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return Library{}, fmt.Errorf("failed to read header: %w", err)
	}
	headerIndex := make(map[string]int, len(header))
	for i, h := range header {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"title", "author"} {
		if _, ok := headerIndex[required]; !ok {
			return Library{}, fmt.Errorf("missing required header: %s", required)
		}
	}

	lib := Library{Books: []Book{}}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		get := func(name string) string {
			if idx, ok := headerIndex[name]; ok && idx < len(record) {
				return strings.TrimSpace(record[idx])
			}
			return ""
		}

		year := toInt(get("original publication year"))
		if year == nil {
			year = toInt(get("year published"))
		}

		lib.Books = append(lib.Books, Book{
			GoodreadsID:   get("book id"),
			Title:         get("title"),
			Authors:       splitAuthors(get("author"), get("additional authors")),
			ISBN:          cleanExcelEq(get("isbn")),
			ISBN13:        cleanExcelEq(get("isbn13")),
			Pages:         toInt(get("number of pages")),
			Year:          year,
			Publisher:     get("publisher"),
			Binding:       get("binding"),
			Rating:        toInt(get("my rating")),
			AverageRating: toFloat(get("average rating")),
			Shelves:       mergeShelves(get("bookshelves"), get("exclusive shelf")),
			DateRead:      normalizeDate(get("date read")),
			DateAdded:     normalizeDate(get("date added")),
		})
	}
	return lib, nil
}

// splitAuthors combines the primary author with the comma-separated
// additional authors, stripping role suffixes and duplicates.
func splitAuthors(primary, additional string) []string {
	var out []string
	if primary != "" {
		out = append(out, primary)
	}
	for _, part := range strings.Split(additional, ",") {
		name := strings.TrimSpace(authorRole.ReplaceAllString(strings.TrimSpace(part), ""))
		if name == "" || slices.Contains(out, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

// mergeShelves unions the shelf columns into a sorted, de-duplicated list.
func mergeShelves(fields ...string) []string {
	set := map[string]bool{}
	for _, field := range fields {
		for _, shelf := range strings.Split(field, ",") {
			if s := strings.TrimSpace(shelf); s != "" {
				set[s] = true
			}
		}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// cleanExcelEq removes the ="..." wrapping Goodreads uses to stop Excel
// from mangling ISBNs.
func cleanExcelEq(s string) string {
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) {
		s = s[2 : len(s)-1]
	}
	return strings.TrimSpace(s)
}

func normalizeDate(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

func toInt(s string) *int {
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n := int(f)
		return &n
	}
	return nil
}

func toFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return &f
	}
	return nil
}
