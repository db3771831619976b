package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// job is a named function run on a fixed interval.
type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// Scheduler runs registered jobs on their own intervals until stopped.
// All jobs must be registered before Start.
type Scheduler struct {
	jobs   []job
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// RegisterJob adds a named job. Not safe to call after Start.
func (s *Scheduler) RegisterJob(name string, interval time.Duration, run func(ctx context.Context) error) {
	s.jobs = append(s.jobs, job{name: name, interval: interval, run: run})
	slog.Info("Job registered", "name", name, "interval", interval)
}

// Start launches one goroutine per registered job. Each job runs once
// immediately, then on every interval tick.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	for _, j := range s.jobs {
		s.wg.Add(1)
		go func(j job) {
			defer s.wg.Done()
			s.loop(ctx, j)
		}(j)
	}

	slog.Info("Scheduler started", "jobs", len(s.jobs))
}

// Stop cancels the job contexts and waits for in-flight runs to return.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, j job) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	s.execute(ctx, j)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.execute(ctx, j)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, j job) {
	started := time.Now()
	if err := j.run(ctx); err != nil {
		slog.Error("Job failed", "name", j.name, "error", err, "duration", time.Since(started))
		return
	}
	slog.Debug("Job completed", "name", j.name, "duration", time.Since(started))
}
