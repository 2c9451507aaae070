package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestScheduler_Start_InvalidSchedule(t *testing.T) {
	sched := NewIngestScheduler("not a schedule", func() error { return nil })

	err := sched.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cron schedule")
}

func TestIngestScheduler_StartStop(t *testing.T) {
	sched := NewIngestScheduler("* * * * *", func() error { return nil })

	require.NoError(t, sched.Start())
	sched.Stop()
}

func TestIngestScheduler_TickSkipsOverlappingRuns(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	runs := 0

	sched := NewIngestScheduler("* * * * *", func() error {
		runs++
		close(started)
		<-release
		return nil
	})

	go sched.tick()
	<-started

	// A second tick while the first run is in flight must not run again
	sched.tick()
	close(release)

	assert.Equal(t, 1, runs)
}
