package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/srinidhibhat/booknotes-v2/internal/audit"
	"github.com/srinidhibhat/booknotes-v2/internal/config"
	"github.com/srinidhibhat/booknotes-v2/internal/ingest"
)

// IngestCommand runs one ingestion pass over the raw export directory.
type IngestCommand struct {
	DataDir  string
	RawDir   string
	AuditDir string
	Verbose  bool
}

func NewIngestCommand() *IngestCommand {
	return &IngestCommand{}
}

func (cmd *IngestCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("ingest", flag.ExitOnError)

	fs.StringVar(&cmd.DataDir, "data", cfg.Data.Dir, "Directory holding books.json and quotes.json")
	fs.StringVar(&cmd.RawDir, "raw", cfg.Data.RawDir, "Directory with raw export files (.csv, .txt)")
	fs.StringVar(&cmd.AuditDir, "audit", cfg.Audit.Dir, "Directory for per-run JSON reports (empty disables them)")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s ingest [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ingest raw highlight exports into the books and quotes collections.\n\n")
		fmt.Fprintf(os.Stderr, "Kindle notebook CSVs and bulleted .txt note files are picked up from\n")
		fmt.Fprintf(os.Stderr, "the raw directory; everything else is skipped. Re-running on the same\n")
		fmt.Fprintf(os.Stderr, "input adds nothing.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *IngestCommand) Run() error {
	ingestor := ingest.NewIngestor(cmd.RawDir, cmd.DataDir)
	result, err := ingestor.Run()
	if err != nil {
		return err
	}

	if result.NothingToDo() {
		fmt.Printf("No files found in %s. Nothing to do.\n", cmd.RawDir)
		return nil
	}

	fmt.Printf("Added %d quotes, %d new books.\n", result.NewQuotes, result.NewBooks)
	if cmd.Verbose {
		fmt.Printf("Files read: %d, skipped: %d\n", result.FilesRead, result.FilesSkipped)
	}

	if auditor := audit.NewAuditor(cmd.AuditDir); auditor.Enabled() {
		name, err := auditor.SaveReport(result)
		if err != nil {
			logrus.WithError(err).Warn("failed to save audit report")
		} else if cmd.Verbose {
			fmt.Printf("Audit report: %s\n", name)
		}
	}
	return nil
}
