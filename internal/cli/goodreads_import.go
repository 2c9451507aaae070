package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/srinidhibhat/booknotes-v2/internal/config"
	"github.com/srinidhibhat/booknotes-v2/internal/entities"
	"github.com/srinidhibhat/booknotes-v2/internal/goodreads"
	"github.com/srinidhibhat/booknotes-v2/internal/store"
)

// GoodreadsImportCommand normalizes a Goodreads library export and
// optionally enriches the books collection with it.
type GoodreadsImportCommand struct {
	ExportPath string
	DataDir    string
	Merge      bool
}

func NewGoodreadsImportCommand() *GoodreadsImportCommand {
	return &GoodreadsImportCommand{}
}

func (cmd *GoodreadsImportCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	defaultExport := filepath.Join(cfg.Data.Dir, config.GoodreadsDirName, "export.csv")

	fs := flag.NewFlagSet("goodreads-import", flag.ExitOnError)
	fs.StringVar(&cmd.ExportPath, "file", defaultExport, "Path to the Goodreads library export CSV")
	fs.StringVar(&cmd.DataDir, "data", cfg.Data.Dir, "Directory holding books.json")
	fs.BoolVar(&cmd.Merge, "merge", false, "Also enrich books.json with year/pages/genres")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s goodreads-import [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Normalize a Goodreads library export into goodreads.json.\n\n")
		fmt.Fprintf(os.Stderr, "With -merge, matched books in books.json gain missing authors, year,\n")
		fmt.Fprintf(os.Stderr, "pages and genres; populated fields are never overwritten.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *GoodreadsImportCommand) Run() error {
	file, err := os.Open(cmd.ExportPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("Export not found: %s\n", cmd.ExportPath)
			return nil
		}
		return fmt.Errorf("failed to open export: %w", err)
	}
	defer file.Close()

	lib, err := goodreads.ParseExport(file)
	if err != nil {
		return fmt.Errorf("failed to parse export: %w", err)
	}

	goodreadsDir := filepath.Join(cmd.DataDir, config.GoodreadsDirName)
	if err := os.MkdirAll(goodreadsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", goodreadsDir, err)
	}
	outPath := filepath.Join(goodreadsDir, "goodreads.json")
	if err := store.Write(outPath, lib); err != nil {
		return err
	}
	fmt.Printf("Wrote %s with %d books.\n", outPath, len(lib.Books))

	if !cmd.Merge {
		return nil
	}

	booksPath := filepath.Join(cmd.DataDir, config.BooksFileName)
	books, err := store.Load(booksPath, []entities.Book{})
	if err != nil {
		return err
	}
	books = goodreads.Enrich(books, lib)
	if err := store.Save(booksPath, books); err != nil {
		return err
	}
	fmt.Printf("Enriched %s; total books: %d.\n", booksPath, len(books))
	return nil
}
