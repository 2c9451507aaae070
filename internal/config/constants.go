package config

// Default data locations
const (
	// DefaultDataDir is where the record collections live
	DefaultDataDir = "./data"

	// BooksFileName is the books collection inside the data directory
	BooksFileName = "books.json"

	// QuotesFileName is the quotes collection inside the data directory
	QuotesFileName = "quotes.json"

	// GoodreadsDirName is the subdirectory for Goodreads export data
	GoodreadsDirName = "goodreads"
)
