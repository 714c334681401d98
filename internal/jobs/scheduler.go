// Package jobs runs background work on cron schedules.
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Runner is a job that can be registered with the scheduler.
type Runner interface {
	Spec(context.Context) string
	Func(context.Context) func()
}

// cronLogger adapts zerolog to the cron logger interface.
type cronLogger struct {
	logger zerolog.Logger
}

// Info logs routine messages about cron's operation.
func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

// Error logs an error condition.
func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}

// Scheduler is a cron-like job scheduler.
type Scheduler struct {
	cron   *cron.Cron
	logger zerolog.Logger

	mu   sync.Mutex
	jobs map[string]cron.EntryID
}

// NewScheduler returns a scheduler that recovers panicking jobs and skips a
// run while the previous one is still going.
func NewScheduler(logger zerolog.Logger) *Scheduler {
	logger = logger.With().Str("component", "cron").Logger()
	cl := cronLogger{logger: logger}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
		jobs:   make(map[string]cron.EntryID),
	}
}

// Register schedules runner under name. Registering a name twice replaces
// the earlier job. A runner with an empty spec is disabled: any earlier job
// under name is removed and nothing is scheduled.
func (s *Scheduler) Register(ctx context.Context, name string, runner Runner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.jobs[name]; ok {
		s.cron.Remove(id)
		delete(s.jobs, name)
	}

	spec := runner.Spec(ctx)
	if spec == "" {
		s.logger.Info().Str("job", name).Msg("Job disabled, no schedule configured")
		return nil
	}
	id, err := s.cron.AddFunc(spec, runner.Func(ctx))
	if err != nil {
		return fmt.Errorf("failed to schedule job %s (%q): %w", name, spec, err)
	}
	s.jobs[name] = id
	s.logger.Info().Str("job", name).Str("spec", spec).Msg("Job scheduled")
	return nil
}

// Jobs lists the registered job names with their next run time.
func (s *Scheduler) Jobs() map[string]time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]time.Time, len(s.jobs))
	for name, id := range s.jobs {
		out[name] = s.cron.Entry(id).Next
	}
	return out
}

// Start starts the Scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Shutdown stops scheduling and waits up to 30s for running jobs.
func (s *Scheduler) Shutdown() {
	ctx, cancel := context.WithTimeout(s.cron.Stop(), 30*time.Second)
	defer cancel()
	<-ctx.Done()
}
