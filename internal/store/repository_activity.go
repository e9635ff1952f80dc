// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/models"
)

// activityRepository appends to the activity_log table. Rows are never
// updated or deleted.
type activityRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *activityRepository) RecordActivity(ctx context.Context, entry models.ActivityEntry) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, recordActivity,
		entry.UserID,
		entry.ContactID,
		entry.RequestID,
		entry.Action,
		entry.Actor,
		entry.Details,
		entry.CreatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.RecordActivity").Msg("error recording activity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *activityRepository) ListActivity(ctx context.Context, ownerID int64, limit uint64) ([]models.ActivityEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListActivityQuery(ownerID, limit)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.ListActivity").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.ListActivity").Msg("error listing activity")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ActivityEntry, 0)
	for rows.Next() {
		var e models.ActivityEntry
		if err = rows.Scan(&e.ID, &e.UserID, &e.ContactID, &e.RequestID, &e.Action, &e.Actor, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
