package goodreads

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srinidhibhat/booknotes-v2/internal/entities"
)

const exportCSV = `Book Id,Title,Author,Additional Authors,ISBN,ISBN13,My Rating,Average Rating,Publisher,Binding,Number of Pages,Year Published,Original Publication Year,Date Read,Date Added,Bookshelves,Exclusive Shelf
123,War and Peace,Leo Tolstoy,"Aylmer Maude (Translator), Louise Maude (Translator)","=""0140447938""","=""9780140447934""",5,4.12,Penguin,Paperback,1392,2002,1869,2020/01/15,2019/12/01,"classics, russia",read
456,Untracked Novella,Some Author,,,,0,3.50,,,,,,,,,to-read
`

func TestParseExport(t *testing.T) {
	lib, err := ParseExport(strings.NewReader(exportCSV))
	require.NoError(t, err)
	require.Len(t, lib.Books, 2)

	b := lib.Books[0]
	assert.Equal(t, "123", b.GoodreadsID)
	assert.Equal(t, "War and Peace", b.Title)
	assert.Equal(t, []string{"Leo Tolstoy", "Aylmer Maude", "Louise Maude"}, b.Authors)
	assert.Equal(t, "0140447938", b.ISBN)
	assert.Equal(t, "9780140447934", b.ISBN13)
	require.NotNil(t, b.Pages)
	assert.Equal(t, 1392, *b.Pages)
	require.NotNil(t, b.Year)
	assert.Equal(t, 1869, *b.Year)
	require.NotNil(t, b.Rating)
	assert.Equal(t, 5, *b.Rating)
	require.NotNil(t, b.AverageRating)
	assert.InDelta(t, 4.12, *b.AverageRating, 0.001)
	assert.Equal(t, []string{"classics", "read", "russia"}, b.Shelves)
	assert.Equal(t, "2020-01-15", b.DateRead)
	assert.Equal(t, "2019-12-01", b.DateAdded)

	second := lib.Books[1]
	assert.Nil(t, second.Year)
	assert.Nil(t, second.Pages)
	assert.Equal(t, []string{"to-read"}, second.Shelves)
}

func TestParseExport_MissingRequiredHeader(t *testing.T) {
	_, err := ParseExport(strings.NewReader("Book Id,Something\n1,2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required header")
}

func TestEnrich_FillsOnlyMissingFields(t *testing.T) {
	year := 1800 // deliberately different from the export
	existing := []entities.Book{
		{
			ID:      "bk_war-and-peace",
			Title:   "War and Peace",
			Authors: []string{"Leo Tolstoy"},
			Year:    &year,
			Genres:  []string{"favorites"},
		},
	}

	lib, err := ParseExport(strings.NewReader(exportCSV))
	require.NoError(t, err)

	books := Enrich(existing, lib)
	require.Len(t, books, 2)

	enriched := books[0]
	// Populated fields stay; missing ones are filled
	require.NotNil(t, enriched.Year)
	assert.Equal(t, 1800, *enriched.Year)
	require.NotNil(t, enriched.Pages)
	assert.Equal(t, 1392, *enriched.Pages)
	assert.Equal(t, []string{"Leo Tolstoy"}, enriched.Authors)
	assert.Equal(t, []string{"favorites", "classics", "read", "russia"}, enriched.Genres)

	// Unmatched export rows become new books
	added := books[1]
	assert.Equal(t, "bk_untracked-novella", added.ID)
	assert.Equal(t, []string{"Some Author"}, added.Authors)
	assert.Equal(t, []string{"to-read"}, added.Genres)
}

func TestEnrich_IDCollisionProbed(t *testing.T) {
	existing := []entities.Book{
		{ID: "bk_war-and-peace", Title: "War and Peace", Authors: []string{"Someone Else"}},
	}

	lib := Library{Books: []Book{{Title: "War and Peace", Authors: []string{"Leo Tolstoy"}}}}
	books := Enrich(existing, lib)

	require.Len(t, books, 2)
	assert.Equal(t, "bk_war-and-peace_2", books[1].ID)
}
