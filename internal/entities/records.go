package entities

// Book is one curated library entry. Ingestion fills title and authors at
// creation time only; year, pages and genres are reserved for manual
// curation or the Goodreads import and are never touched when a book is
// matched again.
type Book struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Year    *int     `json:"year"`
	Pages   *int     `json:"pages"`
	Genres  []string `json:"genres"`
}

// PrimaryAuthor returns the first listed author, or the empty string.
func (b Book) PrimaryAuthor() string {
	if len(b.Authors) == 0 {
		return ""
	}
	return b.Authors[0]
}

// Location carries free-form positional metadata captured as-is from the
// source row. The plain-text format has none, which persists as an empty
// object.
type Location struct {
	Raw string `json:"raw,omitempty"`
}

// Quote is a single normalized highlight. Records are created once and
// never mutated afterwards; AddedAt is the calendar date of the run that
// first saw the quote.
type Quote struct {
	ID       string   `json:"id"`
	BookID   string   `json:"bookId"`
	Text     string   `json:"text"`
	Location Location `json:"location"`
	Tags     []string `json:"tags"`
	AddedAt  string   `json:"addedAt"`
}
