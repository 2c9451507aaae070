package goodreads

import (
	"fmt"
	"slices"

	"github.com/srinidhibhat/booknotes-v2/internal/entities"
	"github.com/srinidhibhat/booknotes-v2/internal/identity"
)

// Enrich merges a parsed Goodreads library into the books collection.
// Matched books (same slug match key) only gain fields that are currently
// empty (authors, year, pages) plus the union of shelves into genres;
// populated fields are never overwritten. Export rows with no match
// become new book records with probed ids.
func Enrich(books []entities.Book, lib Library) []entities.Book {
	byID := make(map[string]int, len(books))
	byKey := make(map[string]int, len(books))
	for i, b := range books {
		byID[b.ID] = i
		byKey[identity.BookKey(b.Title, b.PrimaryAuthor())] = i
	}

	for _, item := range lib.Books {
		key := identity.BookKey(item.Title, primary(item.Authors))
		idx, ok := byKey[key]
		if !ok {
			b := entities.Book{
				ID:      nextID(byID, item.Title),
				Title:   item.Title,
				Authors: append([]string{}, item.Authors...),
				Year:    item.Year,
				Pages:   item.Pages,
				Genres:  append([]string{}, item.Shelves...),
			}
			books = append(books, b)
			byID[b.ID] = len(books) - 1
			byKey[key] = len(books) - 1
			continue
		}

		b := &books[idx]
		if len(b.Authors) == 0 && len(item.Authors) > 0 {
			b.Authors = append([]string{}, item.Authors...)
		}
		if b.Year == nil && item.Year != nil {
			b.Year = item.Year
		}
		if b.Pages == nil && item.Pages != nil {
			b.Pages = item.Pages
		}
		for _, shelf := range item.Shelves {
			if !slices.Contains(b.Genres, shelf) {
				b.Genres = append(b.Genres, shelf)
			}
		}
	}
	return books
}

func primary(authors []string) string {
	if len(authors) == 0 {
		return ""
	}
	return authors[0]
}

func nextID(byID map[string]int, title string) string {
	base := identity.BookIDBase(title)
	id := base
	for i := 2; ; i++ {
		if _, taken := byID[id]; !taken {
			return id
		}
		id = fmt.Sprintf("%s_%d", base, i)
	}
}
