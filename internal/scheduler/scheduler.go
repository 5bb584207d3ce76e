// Package scheduler runs periodic sky snapshots on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/randomtoy/natal-go/internal/domain"
)

// Job is one scheduled unit of work.
type Job interface {
	Run(ctx context.Context) (domain.BirthChart, error)
}

// parser accepts both 5-field and 6-field (leading seconds) specs as well as
// descriptors such as @hourly.
var parser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Scheduler manages the snapshot cron task.
type Scheduler struct {
	cron    *cron.Cron
	job     Job
	ctx     context.Context
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a Scheduler. Each run is bounded by timeout and cancelled with ctx.
func New(ctx context.Context, job Job, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithParser(parser), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		job:     job,
		ctx:     ctx,
		timeout: timeout,
		logger:  logger,
	}
}

// Register adds the snapshot task under spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RunNow); err != nil {
		return fmt.Errorf("register snapshot task %q: %w", spec, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", "entries", len(s.cron.Entries()))
}

// Stop stops the scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

// RunNow executes the snapshot task immediately.
func (s *Scheduler) RunNow() {
	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if _, err := s.job.Run(ctx); err != nil {
		s.logger.Error("snapshot task failed", "error", err)
	}
}
