package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srinidhibhat/booknotes-v2/internal/entities"
)

func TestIndex_Resolve_CreatesOnce(t *testing.T) {
	idx := NewIndex(nil)

	book, created := idx.Resolve("Great Expectations", "Charles Dickens")
	require.True(t, created)
	assert.Equal(t, "bk_great-expectations", book.ID)
	assert.Equal(t, "Great Expectations", book.Title)
	assert.Equal(t, []string{"Charles Dickens"}, book.Authors)
	assert.Nil(t, book.Year)
	assert.Nil(t, book.Pages)
	assert.Empty(t, book.Genres)

	again, created := idx.Resolve("Great Expectations", "Charles Dickens")
	assert.False(t, created)
	assert.Equal(t, book.ID, again.ID)
	assert.Len(t, idx.Books(), 1)
}

func TestIndex_Resolve_MatchIgnoresCaseAndWhitespace(t *testing.T) {
	idx := NewIndex(nil)

	first, _ := idx.Resolve("Great Expectations", "Charles Dickens")
	second, created := idx.Resolve("  GREAT EXPECTATIONS  ", "charles dickens")

	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestIndex_Resolve_StripsByPrefix(t *testing.T) {
	idx := NewIndex(nil)

	book, _ := idx.Resolve("Emma", "by Jane Austen")
	assert.Equal(t, []string{"Jane Austen"}, book.Authors)

	same, created := idx.Resolve("Emma", "Jane Austen")
	assert.False(t, created)
	assert.Equal(t, book.ID, same.ID)
}

func TestIndex_Resolve_BlankTitleDefaultsToUntitled(t *testing.T) {
	idx := NewIndex(nil)

	book, created := idx.Resolve("   ", "")
	require.True(t, created)
	assert.Equal(t, "Untitled", book.Title)
	assert.Equal(t, "bk_untitled", book.ID)
	assert.Empty(t, book.Authors)
}

func TestIndex_Resolve_IDCollisionProbing(t *testing.T) {
	idx := NewIndex(nil)

	first, _ := idx.Resolve("Dune", "Frank Herbert")
	second, created := idx.Resolve("Dune!", "Brian Herbert")
	third, _ := idx.Resolve("DUNE", "Kevin J. Anderson")

	require.True(t, created)
	assert.Equal(t, "bk_dune", first.ID)
	assert.Equal(t, "bk_dune_2", second.ID)
	assert.Equal(t, "bk_dune_3", third.ID)
}

func TestIndex_Resolve_MatchedBookUntouched(t *testing.T) {
	year := 1861
	existing := []entities.Book{
		{
			ID:      "bk_great-expectations",
			Title:   "Great Expectations",
			Authors: []string{"Charles Dickens"},
			Year:    &year,
			Genres:  []string{"classic"},
		},
	}
	idx := NewIndex(existing)

	book, created := idx.Resolve("great expectations", "Charles Dickens")
	assert.False(t, created)
	assert.Equal(t, "bk_great-expectations", book.ID)

	books := idx.Books()
	require.Len(t, books, 1)
	require.NotNil(t, books[0].Year)
	assert.Equal(t, 1861, *books[0].Year)
	assert.Equal(t, []string{"classic"}, books[0].Genres)
}

func TestIndex_Books_PreservesInsertionOrder(t *testing.T) {
	idx := NewIndex([]entities.Book{
		{ID: "bk_a", Title: "A"},
		{ID: "bk_b", Title: "B"},
	})
	idx.Resolve("C", "")

	books := idx.Books()
	require.Len(t, books, 3)
	assert.Equal(t, "bk_a", books[0].ID)
	assert.Equal(t, "bk_b", books[1].ID)
	assert.Equal(t, "bk_c", books[2].ID)
}
