// Package scheduler drives periodic ingestion runs for watch mode.
package scheduler

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// IngestScheduler runs the ingestion pipeline on a cron schedule.
// Overlapping runs are skipped rather than queued.
type IngestScheduler struct {
	schedule string
	run      func() error

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

func NewIngestScheduler(schedule string, run func() error) *IngestScheduler {
	return &IngestScheduler{
		schedule: schedule,
		run:      run,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start validates the schedule and begins firing ingest runs.
func (s *IngestScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.tick); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}
	s.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for an in-flight run to finish.
func (s *IngestScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *IngestScheduler) tick() {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		logrus.Info("previous ingest still running, skipping this tick")
		return
	}
	s.isRunning = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	if err := s.run(); err != nil {
		logrus.WithError(err).Error("scheduled ingest failed")
	}
}
