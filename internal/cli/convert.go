package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/srinidhibhat/booknotes-v2/internal/exporters"
)

// ConvertCommand rewrites Kindle notebook CSVs as bulleted text files.
type ConvertCommand struct {
	Target string
}

func NewConvertCommand() *ConvertCommand {
	return &ConvertCommand{}
}

func (cmd *ConvertCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s convert <file-or-directory>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Convert Kindle notebook CSV exports to the bulleted .txt ingest format.\n")
		fmt.Fprintf(os.Stderr, "Each converted file is written next to its source.\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one file or directory argument")
	}
	cmd.Target = fs.Arg(0)
	return nil
}

func (cmd *ConvertCommand) Run() error {
	result, err := exporters.NewBulletExporter().ConvertPath(cmd.Target)
	if err != nil {
		return err
	}
	fmt.Printf("Converted %d files (%d skipped).\n", result.FilesConverted, result.FilesSkipped)
	return nil
}
