package main

import (
	"fmt"
	"os"

	"github.com/srinidhibhat/booknotes-v2/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// No arguments runs a single ingest pass
	command := "ingest"
	args := os.Args[1:]
	if len(os.Args) >= 2 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	switch command {
	case "ingest":
		runCommand(cli.NewIngestCommand(), args)

	case "goodreads-import":
		runCommand(cli.NewGoodreadsImportCommand(), args)

	case "convert":
		runCommand(cli.NewConvertCommand(), args)

	case "watch":
		runCommand(cli.NewWatchCommand(), args)

	case "version":
		fmt.Printf("booknotes %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func runCommand(cmd command, args []string) {
	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  ingest            Ingest raw highlight exports (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  goodreads-import  Import a Goodreads library export CSV\n")
	fmt.Fprintf(os.Stderr, "  convert           Convert notebook CSVs to bulleted .txt files\n")
	fmt.Fprintf(os.Stderr, "  watch             Ingest periodically on a cron schedule\n")
	fmt.Fprintf(os.Stderr, "  version           Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
