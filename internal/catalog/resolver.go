// Package catalog resolves parsed (title, author) pairs against the known
// books, creating new records only when no match key exists.
package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/srinidhibhat/booknotes-v2/internal/entities"
	"github.com/srinidhibhat/booknotes-v2/internal/identity"
)

var byPrefix = regexp.MustCompile(`(?i)^by\s+`)

// Index holds the books of one ingestion run keyed by id and by slug
// match key. It is confined to a single run; no locking.
type Index struct {
	byID  map[string]*entities.Book
	byKey map[string]*entities.Book
	books []*entities.Book
}

// NewIndex builds an index over previously persisted books. Insertion
// order is preserved so re-serialization keeps diffs minimal.
func NewIndex(books []entities.Book) *Index {
	idx := &Index{
		byID:  make(map[string]*entities.Book, len(books)),
		byKey: make(map[string]*entities.Book, len(books)),
	}
	for i := range books {
		b := books[i]
		idx.register(&b)
	}
	return idx
}

// Resolve returns the canonical book for a candidate (title, author) pair
// together with a flag indicating whether it was just created. Matched
// books are returned by value and never modified; a new book starts with
// empty genres and unset year/pages, which later curation fills in.
func (idx *Index) Resolve(title, author string) (entities.Book, bool) {
	t := strings.TrimSpace(title)
	if t == "" {
		t = "Untitled"
	}
	a := strings.TrimSpace(byPrefix.ReplaceAllString(strings.TrimSpace(author), ""))

	key := identity.BookKey(t, a)
	if b, ok := idx.byKey[key]; ok {
		return *b, false
	}

	b := &entities.Book{
		ID:      idx.nextID(t),
		Title:   t,
		Authors: []string{},
		Genres:  []string{},
	}
	if a != "" {
		b.Authors = []string{a}
	}
	idx.register(b)
	return *b, true
}

// Books returns the full collection, loaded and created, in insertion
// order.
func (idx *Index) Books() []entities.Book {
	out := make([]entities.Book, 0, len(idx.books))
	for _, b := range idx.books {
		out = append(out, *b)
	}
	return out
}

func (idx *Index) register(b *entities.Book) {
	idx.byID[b.ID] = b
	idx.byKey[identity.BookKey(b.Title, b.PrimaryAuthor())] = b
	idx.books = append(idx.books, b)
}

// nextID probes bk_<slug>, bk_<slug>_2, bk_<slug>_3, ... until the id is
// free. The same base re-derives across runs, so an existing book keeps
// its id and only a genuinely different book gets a suffix.
func (idx *Index) nextID(title string) string {
	base := identity.BookIDBase(title)
	id := base
	for i := 2; ; i++ {
		if _, taken := idx.byID[id]; !taken {
			return id
		}
		id = fmt.Sprintf("%s_%d", base, i)
	}
}
