package cli

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/srinidhibhat/booknotes-v2/internal/config"
	"github.com/srinidhibhat/booknotes-v2/internal/ingest"
	"github.com/srinidhibhat/booknotes-v2/internal/scheduler"
)

// WatchCommand keeps ingesting on a cron schedule until interrupted.
type WatchCommand struct {
	DataDir  string
	RawDir   string
	Schedule string
	RunNow   bool
}

func NewWatchCommand() *WatchCommand {
	return &WatchCommand{}
}

func (cmd *WatchCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("watch", flag.ExitOnError)

	fs.StringVar(&cmd.DataDir, "data", cfg.Data.Dir, "Directory holding books.json and quotes.json")
	fs.StringVar(&cmd.RawDir, "raw", cfg.Data.RawDir, "Directory with raw export files")
	fs.StringVar(&cmd.Schedule, "schedule", cfg.Schedule.Ingest, "Cron schedule for ingest runs")
	fs.BoolVar(&cmd.RunNow, "now", false, "Run one ingest immediately on start")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s watch [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Run the ingest pipeline on a schedule until interrupted (Ctrl-C).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *WatchCommand) Run() error {
	ingestor := ingest.NewIngestor(cmd.RawDir, cmd.DataDir)
	runOnce := func() error {
		result, err := ingestor.Run()
		if err != nil {
			return err
		}
		fmt.Printf("Added %d quotes, %d new books.\n", result.NewQuotes, result.NewBooks)
		return nil
	}

	if cmd.RunNow {
		if err := runOnce(); err != nil {
			return err
		}
	}

	sched := scheduler.NewIngestScheduler(cmd.Schedule, runOnce)
	if err := sched.Start(); err != nil {
		return err
	}
	fmt.Printf("Watching %s on schedule %q. Ctrl-C to stop.\n", cmd.RawDir, cmd.Schedule)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	fmt.Println("Stopping...")
	sched.Stop()
	return nil
}
