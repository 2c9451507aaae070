// Package kindlecsv parses the tabular "notebook" CSV that the Kindle web
// export produces: a free-text preamble with the book title and author,
// followed by a header row and comma-separated highlight rows.
package kindlecsv

import (
	"encoding/csv"
	"io"
	"regexp"
	"strings"
)

// Row is one highlight row from the table section of an export.
type Row struct {
	Annotation string
	Location   string
}

// Export is the parsed content of a single notebook CSV file.
type Export struct {
	Title  string
	Author string
	Rows   []Row
}

// The preamble mixes title and author lines with banners and promotional
// text. Noise rules are tried in order; the first line matching none of
// them becomes the title.
var (
	notesBanner    = regexp.MustCompile(`(?i)^your kindle notes for`)
	promoLine      = regexp.MustCompile(`(?i)^free kindle`)
	urlLine        = regexp.MustCompile(`(?i)^https?:`)
	decorativeRule = regexp.MustCompile(`^-{5,}$`)

	byPrefix    = regexp.MustCompile(`(?i)^by\s+`)
	outerQuotes = regexp.MustCompile(`^"(.*)"$`)
)

var preambleNoise = []*regexp.Regexp{notesBanner, promoLine, urlLine, decorativeRule}

// Parser parses Kindle notebook CSV exports.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse scans one export. It is total: unrecognized structure yields an
// empty Export, never an error.
func (p *Parser) Parse(raw string) Export {
	lines := splitLines(raw)

	var out Export
	headerIdx := -1
	for i, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "annotation type") && strings.Contains(lower, "location") {
			headerIdx = i
			break
		}

		// Preamble lines are padded to the table width with empty cells,
		// so only the first CSV cell matters.
		cell := strings.TrimSpace(firstCell(line))
		if cell == "" {
			continue
		}
		if out.Title == "" && !isNoise(cell) {
			out.Title = stripOuterQuotes(cell)
		}
		if out.Author == "" && byPrefix.MatchString(cell) {
			out.Author = strings.TrimSpace(byPrefix.ReplaceAllString(cell, ""))
		}
	}

	if headerIdx >= 0 {
		out.Rows = parseRows(strings.Join(lines[headerIdx+1:], "\n"))
	}
	return out
}

// parseRows reads the data section below the header. Rows that are too
// short or whose type is not a highlight are skipped silently.
func parseRows(data string) []Row {
	r := csv.NewReader(strings.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows []Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if len(record) < 4 {
			continue
		}
		if !strings.Contains(strings.ToLower(record[0]), "highlight") {
			continue
		}
		rows = append(rows, Row{
			Annotation: strings.TrimSpace(record[3]),
			Location:   strings.TrimSpace(record[1]),
		})
	}
	return rows
}

func isNoise(line string) bool {
	for _, pattern := range preambleNoise {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

func firstCell(line string) string {
	line = strings.TrimPrefix(line, "\uFEFF")
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	record, err := r.Read()
	if err != nil || len(record) == 0 {
		return strings.Trim(strings.TrimSpace(line), `"`)
	}
	return record[0]
}

func stripOuterQuotes(s string) string {
	return outerQuotes.ReplaceAllString(s, "$1")
}

func splitLines(raw string) []string {
	return strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
}
