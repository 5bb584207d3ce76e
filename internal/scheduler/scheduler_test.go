package scheduler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/randomtoy/natal-go/internal/domain"
	"github.com/randomtoy/natal-go/internal/scheduler"
)

type countingJob struct {
	calls    atomic.Int32
	deadline atomic.Bool
	err      error
}

func (j *countingJob) Run(ctx context.Context) (domain.BirthChart, error) {
	j.calls.Add(1)
	if _, ok := ctx.Deadline(); ok {
		j.deadline.Store(true)
	}
	return domain.BirthChart{}, j.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegister_AcceptsSpecForms(t *testing.T) {
	for _, spec := range []string{"0 * * * *", "30 0 * * * *", "@hourly", "@every 10m"} {
		s := scheduler.New(context.Background(), &countingJob{}, time.Second, discardLogger())
		if err := s.Register(spec); err != nil {
			t.Errorf("Register(%q): %v", spec, err)
		}
	}
}

func TestRegister_InvalidSpec(t *testing.T) {
	s := scheduler.New(context.Background(), &countingJob{}, time.Second, discardLogger())
	if err := s.Register("every tuesday"); err == nil {
		t.Fatal("expected error for invalid spec")
	}
}

func TestRunNow_AppliesTimeout(t *testing.T) {
	job := &countingJob{err: errors.New("ephemeris down")}
	s := scheduler.New(context.Background(), job, time.Second, discardLogger())

	s.RunNow()

	if job.calls.Load() != 1 {
		t.Fatalf("expected 1 call, got %d", job.calls.Load())
	}
	if !job.deadline.Load() {
		t.Error("expected run context to carry a deadline")
	}
}

func TestScheduler_FiresOnSchedule(t *testing.T) {
	job := &countingJob{}
	s := scheduler.New(context.Background(), job, time.Second, discardLogger())
	if err := s.Register("* * * * * *"); err != nil {
		t.Fatal(err)
	}
	s.Start()
	defer s.Stop()

	deadline := time.After(3 * time.Second)
	for job.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("job did not fire within 3s")
		case <-time.After(20 * time.Millisecond):
		}
	}
}
