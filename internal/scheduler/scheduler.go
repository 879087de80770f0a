// Package scheduler triggers the expiration sweeps on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron"

	"github.com/mishasvintus/document_review_service/internal/service"
)

// Sweeper is the part of the expiration service the scheduler drives.
type Sweeper interface {
	ExpirePending(ctx context.Context, now time.Time) ([]service.Transition, error)
	ExpireAccepted(ctx context.Context, now time.Time) ([]service.Transition, error)
}

// Config holds the cron specs (seconds first) for each sweep.
type Config struct {
	PendingSpec  string
	AcceptedSpec string
	Location     *time.Location
	// Timeout bounds a single sweep run.
	Timeout time.Duration
}

// Scheduler runs the pending and accepted sweeps on their own schedules.
type Scheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
	logger  *log.Logger
	now     func() time.Time
	timeout time.Duration
}

// New registers both sweeps. It fails on an invalid cron spec.
func New(cfg Config, sweeper Sweeper, logger *log.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = log.Default()
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}

	s := &Scheduler{
		cron:    cron.NewWithLocation(loc),
		sweeper: sweeper,
		logger:  logger,
		now:     time.Now,
		timeout: timeout,
	}

	if err := s.cron.AddFunc(cfg.PendingSpec, func() { s.run("pending", sweeper.ExpirePending) }); err != nil {
		return nil, fmt.Errorf("failed to schedule pending sweep %q: %w", cfg.PendingSpec, err)
	}
	if err := s.cron.AddFunc(cfg.AcceptedSpec, func() { s.run("accepted", sweeper.ExpireAccepted) }); err != nil {
		return nil, fmt.Errorf("failed to schedule accepted sweep %q: %w", cfg.AcceptedSpec, err)
	}

	return s, nil
}

// Start begins running sweeps in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops future runs. A sweep already in progress finishes on its own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) run(name string, sweep func(context.Context, time.Time) ([]service.Transition, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	started := s.now()
	transitions, err := sweep(ctx, started)
	if err != nil {
		s.logger.Printf("scheduler: %s sweep failed: %v", name, err)
		return
	}

	s.logger.Printf("scheduler: %s sweep expired %d review request(s) in %s", name, len(transitions), time.Since(started))
}
