// Package scheduler wires up the cron job that periodically closes job
// postings past their expiration date.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/rmatch-app/rmatch-backend/internal/services"
)

// Scheduler wraps robfig/cron and manages the expiry sweep.
type Scheduler struct {
	cron *cron.Cron
	jobs *services.JobService
	spec string // cron spec, e.g. "@every 1h"
}

// New creates a Scheduler that sweeps on the given cron spec.
func New(jobs *services.JobService, spec string) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cron.DefaultLogger)),
		jobs: jobs,
		spec: spec,
	}
}

// Start registers the sweep and starts the scheduler. Also runs one sweep
// immediately so postings that expired while the server was down close
// without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started with spec %q", s.spec)

	go s.runSweep(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

func (s *Scheduler) runSweep(ctx context.Context) {
	closed, err := s.jobs.CloseExpired(ctx)
	if err != nil {
		log.Printf("[scheduler] Expiry sweep error: %v", err)
		return
	}
	if closed > 0 {
		log.Printf("[scheduler] Closed %d expired job(s)", closed)
	}
}
