package app

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Ivan200424/Voltyk/internal/config"
	"github.com/Ivan200424/Voltyk/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(jobs ...*scheduler.Scheduler) *App {
	return &App{
		cfg:  &config.Config{Server: config.ServerConfig{ShutdownTimeout: 2 * time.Second}},
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		jobs: jobs,
	}
}

func TestRun_ShutdownWaitsForRunningJobs(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	started := make(chan struct{})
	var finished atomic.Bool

	// задача завершает запись в БД уже после отмены контекста
	job := func(ctx context.Context) (int, error) {
		close(started)
		<-ctx.Done()
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
		return 0, nil
	}
	a := testApp(scheduler.NewScheduler("slow", job, scheduler.Fixed(time.Hour), log))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	<-started
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.True(t, finished.Load(), "shutdown returned before the job finished")
}

func TestWaitJobs_Timeout(t *testing.T) {
	a := testApp()
	a.jobsWG.Add(1)
	defer a.jobsWG.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, a.waitJobs(ctx), context.DeadlineExceeded)
}
