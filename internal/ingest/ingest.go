// Package ingest orchestrates one pass over the raw export directory:
// every file is routed to its parser by extension, resolved against the
// book index, normalized, deduplicated by quote id and merged into the
// persistent collections.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/srinidhibhat/booknotes-v2/internal/catalog"
	"github.com/srinidhibhat/booknotes-v2/internal/config"
	"github.com/srinidhibhat/booknotes-v2/internal/entities"
	"github.com/srinidhibhat/booknotes-v2/internal/identity"
	"github.com/srinidhibhat/booknotes-v2/internal/kindlecsv"
	"github.com/srinidhibhat/booknotes-v2/internal/plaintext"
	"github.com/srinidhibhat/booknotes-v2/internal/store"
	"github.com/srinidhibhat/booknotes-v2/internal/utils"
)

// Result summarizes a single ingestion run.
type Result struct {
	RanAt        string        `json:"ran_at"`
	NewBooks     int           `json:"new_books"`
	NewQuotes    int           `json:"new_quotes"`
	FilesRead    int           `json:"files_read"`
	FilesSkipped int           `json:"files_skipped"`
	Files        []FileOutcome `json:"files,omitempty"`
}

// FileOutcome records what happened to one raw file during a run.
type FileOutcome struct {
	Name      string `json:"name"`
	Status    string `json:"status"` // ingested, empty or skipped
	NewQuotes int    `json:"new_quotes,omitempty"`
}

// NothingToDo reports whether the run saw no raw files at all.
func (r Result) NothingToDo() bool {
	return r.FilesRead == 0 && r.FilesSkipped == 0
}

// Ingestor runs the pipeline. Execution is single-threaded and
// all-or-nothing: any filesystem failure aborts before the write step,
// leaving the persisted collections untouched.
type Ingestor struct {
	RawDir  string
	DataDir string

	// Now is the clock used for the addedAt date; replaceable in tests.
	Now func() time.Time

	csvParser *kindlecsv.Parser
	txtParser *plaintext.Parser
}

func NewIngestor(rawDir, dataDir string) *Ingestor {
	return &Ingestor{
		RawDir:    rawDir,
		DataDir:   dataDir,
		Now:       time.Now,
		csvParser: kindlecsv.NewParser(),
		txtParser: plaintext.NewParser(),
	}
}

// Run executes one ingestion pass and persists both collections.
func (ing *Ingestor) Run() (Result, error) {
	result := Result{RanAt: ing.Now().UTC().Format("2006-01-02")}

	if err := os.MkdirAll(ing.DataDir, 0o755); err != nil {
		return result, fmt.Errorf("failed to create data directory %s: %w", ing.DataDir, err)
	}

	booksPath := filepath.Join(ing.DataDir, config.BooksFileName)
	quotesPath := filepath.Join(ing.DataDir, config.QuotesFileName)

	books, err := store.Load(booksPath, []entities.Book{})
	if err != nil {
		return result, err
	}
	quotes, err := store.Load(quotesPath, []entities.Quote{})
	if err != nil {
		return result, err
	}

	index := catalog.NewIndex(books)
	seen := make(map[string]bool, len(quotes))
	for _, q := range quotes {
		seen[q.ID] = true
	}

	entries, err := os.ReadDir(ing.RawDir)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return result, fmt.Errorf("failed to read raw directory %s: %w", ing.RawDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		raw, err := os.ReadFile(filepath.Join(ing.RawDir, name))
		if err != nil {
			return result, fmt.Errorf("failed to read %s: %w", name, err)
		}

		switch strings.ToLower(filepath.Ext(name)) {
		case ".csv":
			export := ing.csvParser.Parse(string(raw))
			result.FilesRead++
			if len(export.Rows) == 0 {
				result.Files = append(result.Files, FileOutcome{Name: name, Status: "empty"})
				continue
			}
			book, created := ing.resolveBook(index, export.Title, export.Author, name)
			if created {
				result.NewBooks++
			}
			added := 0
			for _, row := range export.Rows {
				loc := entities.Location{Raw: row.Location}
				if ing.addQuote(&quotes, seen, book.ID, row.Annotation, loc, result.RanAt) {
					added++
				}
			}
			result.NewQuotes += added
			result.Files = append(result.Files, FileOutcome{Name: name, Status: "ingested", NewQuotes: added})

		case ".txt":
			notes := ing.txtParser.Parse(string(raw))
			result.FilesRead++
			if len(notes.Items) == 0 {
				result.Files = append(result.Files, FileOutcome{Name: name, Status: "empty"})
				continue
			}
			book, created := ing.resolveBook(index, notes.Title, notes.Author, name)
			if created {
				result.NewBooks++
			}
			added := 0
			for _, item := range notes.Items {
				if ing.addQuote(&quotes, seen, book.ID, item, entities.Location{}, result.RanAt) {
					added++
				}
			}
			result.NewQuotes += added
			result.Files = append(result.Files, FileOutcome{Name: name, Status: "ingested", NewQuotes: added})

		default:
			logrus.WithField("file", name).Info("skipping unsupported file")
			result.FilesSkipped++
			result.Files = append(result.Files, FileOutcome{Name: name, Status: "skipped"})
		}
	}

	if result.NothingToDo() {
		return result, nil
	}

	if err := store.Save(booksPath, index.Books()); err != nil {
		return result, err
	}
	if err := store.Save(quotesPath, quotes); err != nil {
		return result, err
	}
	return result, nil
}

func (ing *Ingestor) resolveBook(index *catalog.Index, title, author, filename string) (entities.Book, bool) {
	if strings.TrimSpace(title) == "" {
		title = utils.TitleFromFilename(filename)
	}
	return index.Resolve(title, author)
}

// addQuote normalizes one raw annotation and appends it unless its id has
// been seen before, which makes re-ingestion of identical input a no-op.
func (ing *Ingestor) addQuote(quotes *[]entities.Quote, seen map[string]bool, bookID, raw string, loc entities.Location, addedAt string) bool {
	text := utils.SanitizeText(firstBulletLine(raw))
	if text == "" {
		return false
	}
	id := identity.QuoteID(bookID, text)
	if seen[id] {
		return false
	}
	*quotes = append(*quotes, entities.Quote{
		ID:       id,
		BookID:   bookID,
		Text:     text,
		Location: loc,
		Tags:     []string{},
		AddedAt:  addedAt,
	})
	seen[id] = true
	return true
}

// Some exports bundle several notes into one annotation cell as a bullet
// list; the first line is canonical.
func firstBulletLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if line != "" {
			return line
		}
	}
	return ""
}
