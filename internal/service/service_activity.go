// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/store"
	"github.com/MKhiriev/vaultkeeper/models"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

type activityService struct {
	activity store.ActivityRepository
	logger   *logger.Logger
}

func NewActivityService(activity store.ActivityRepository, logger *logger.Logger) ActivityService {
	return &activityService{activity: activity, logger: logger}
}

// ListActivity returns the newest entries first. A zero limit means the
// default page size.
func (s *activityService) ListActivity(ctx context.Context, ownerID int64, limit uint64) ([]models.ActivityEntry, error) {
	switch {
	case limit == 0:
		limit = defaultActivityLimit
	case limit > maxActivityLimit:
		limit = maxActivityLimit
	}

	entries, err := s.activity.ListActivity(ctx, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing activity: %w", err)
	}

	return entries, nil
}
