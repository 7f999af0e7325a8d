// Package scheduler runs the job import on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/logging"
)

// Scheduler wraps robfig/cron around a single task. Ticks are not
// serialized: a slow run may overlap the next one.
type Scheduler struct {
	cron *cron.Cron
	spec string
	task func(ctx context.Context)
	log  *logging.Logger
	ctx  context.Context

	// first tracks the run-on-start tick, which cron does not know about.
	first sync.WaitGroup
}

// New creates a Scheduler firing task on spec, e.g. "@every 6h" or
// "0 */6 * * *". An invalid spec is reported here, not at Start.
func New(spec string, task func(ctx context.Context), log *logging.Logger) (*Scheduler, error) {
	if log == nil {
		log = logging.Nop()
	}
	s := &Scheduler{
		cron: cron.New(),
		spec: spec,
		task: task,
		log:  log,
		ctx:  context.Background(),
	}
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start starts the cron loop. ctx is handed to every run; runOnStart also
// fires the task immediately in its own goroutine.
func (s *Scheduler) Start(ctx context.Context, runOnStart bool) {
	s.ctx = ctx
	s.cron.Start()
	s.log.Info("scheduler started", "spec", s.spec)

	if runOnStart {
		s.first.Add(1)
		go func() {
			defer s.first.Done()
			s.tick()
		}()
	}
}

// Stop stops scheduling new runs and waits for the running ones.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.first.Wait()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) tick() {
	if s.ctx.Err() != nil {
		return
	}
	s.log.Debug("scheduled run triggered", "spec", s.spec)
	s.task(s.ctx)
}
