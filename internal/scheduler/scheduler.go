// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scheduler runs the periodic sweeps.
//
// Cron entries never run business logic themselves: they only put a job
// name on a work queue, and a single worker goroutine executes queued jobs
// one at a time. A job that is already waiting is not queued twice, so a
// slow sweep never piles up behind itself.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/robfig/cron/v3"
)

const stopTimeout = 5 * time.Second

var ErrUnknownJob = errors.New("unknown job")

// Job is one unit of scheduled work. now is the wall-clock time the job
// started at.
type Job func(ctx context.Context, now time.Time) error

// Scheduler owns the cron table and the work queue.
type Scheduler struct {
	cron   *cron.Cron
	jobs   map[string]Job
	queue  chan string
	now    func() time.Time
	logger *logger.Logger

	mu     sync.Mutex
	queued map[string]bool
}

func New(log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		jobs:   make(map[string]Job),
		queue:  make(chan string, 16),
		now:    time.Now,
		logger: log,
		queued: make(map[string]bool),
	}
}

// Register adds a named job. A non-empty spec also schedules it; specs use
// the robfig/cron format with an optional seconds field, e.g. "@every 5m".
func (s *Scheduler) Register(name, spec string, job Job) error {
	if _, ok := s.jobs[name]; ok {
		return fmt.Errorf("job %q is already registered", name)
	}
	s.jobs[name] = job

	if spec == "" {
		return nil
	}

	if _, err := s.cron.AddFunc(spec, func() { s.Enqueue(name) }); err != nil {
		return fmt.Errorf("schedule job %q with spec %q: %w", name, spec, err)
	}

	s.logger.Info().Str("job", name).Str("spec", spec).Msg("job scheduled")
	return nil
}

// Enqueue puts a job on the work queue. It reports false when the job is
// unknown, already waiting or the queue is full.
func (s *Scheduler) Enqueue(name string) bool {
	if _, ok := s.jobs[name]; !ok {
		s.logger.Warn().Str("job", name).Msg("attempt to enqueue unknown job")
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queued[name] {
		s.logger.Debug().Str("job", name).Msg("job is already queued")
		return false
	}

	select {
	case s.queue <- name:
		s.queued[name] = true
		return true
	default:
		s.logger.Warn().Str("job", name).Msg("work queue is full")
		return false
	}
}

// runNow executes a registered job synchronously on the caller's goroutine.
func (s *Scheduler) runNow(ctx context.Context, name string) error {
	job, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	return job(ctx, s.now())
}

// Run starts the cron table and the worker and blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	s.cron.Start()
	s.logger.Info().Str("func", "*Scheduler.Run").Msg("scheduler started")

	for {
		select {
		case <-ctx.Done():
			s.stop()
			return
		case name := <-s.queue:
			s.mu.Lock()
			delete(s.queued, name)
			s.mu.Unlock()

			s.execute(ctx, name)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, name string) {
	log := s.logger.GetChildLogger()
	log.Logger = log.With().Str("job", name).Logger()
	ctx = log.WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("job panicked")
		}
	}()

	start := s.now()
	if err := s.jobs[name](ctx, start); err != nil {
		log.Err(err).Dur("took", time.Since(start)).Msg("job failed")
		return
	}

	log.Debug().Dur("took", time.Since(start)).Msg("job finished")
}

func (s *Scheduler) stop() {
	stopped := s.cron.Stop()

	select {
	case <-stopped.Done():
	case <-time.After(stopTimeout):
		s.logger.Warn().Msg("timed out waiting for cron entries to finish")
	}

	s.logger.Info().Str("func", "*Scheduler.stop").Msg("scheduler stopped")
}
