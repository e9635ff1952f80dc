// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/vaultkeeper/models"
)

// sweepService serializes the two background sweeps. Cron ticks and the
// system endpoint both go through it, so the sweeps never overlap.
type sweepService struct {
	monitor  InactivityMonitor
	requests AccessRequestService

	mu sync.Mutex
}

func NewSweepService(monitor InactivityMonitor, requests AccessRequestService) SweepService {
	return &sweepService{monitor: monitor, requests: requests}
}

func (s *sweepService) SweepInactivity(ctx context.Context, now time.Time) ([]models.AccessRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.monitor.SweepOnce(ctx, now)
}

func (s *sweepService) ResolveDue(ctx context.Context, now time.Time) ([]models.AccessRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests.ResolveAutoApprovals(ctx, now)
}

// RunAll raises inactivity requests first and then resolves everything that
// is due, so a request raised with a zero waiting period resolves in the same
// run.
func (s *sweepService) RunAll(ctx context.Context, now time.Time) (models.SweepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.monitor.SweepOnce(ctx, now)
	if err != nil {
		return models.SweepResult{}, err
	}

	resolved, err := s.requests.ResolveAutoApprovals(ctx, now)
	if err != nil {
		return models.SweepResult{Created: created}, err
	}

	return models.SweepResult{Created: created, Resolved: resolved}, nil
}
