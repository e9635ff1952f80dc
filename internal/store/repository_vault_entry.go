// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/models"
)

type vaultEntryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewVaultEntryRepository(db *DB, logger *logger.Logger) VaultEntryRepository {
	logger.Debug().Msg("creating vault entry repository")
	return &vaultEntryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *vaultEntryRepository) CreateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createEntry, entry.UserID, entry.Title, entry.Content, entry.AllowEmergencyAccess, entry.CreatedAt)

	created, err := scanEntry(row)
	if err != nil {
		log.Err(err).Str("func", "*vaultEntryRepository.CreateEntry").Msg("error creating vault entry")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *vaultEntryRepository) ListEntries(ctx context.Context, ownerID int64) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "*vaultEntryRepository.ListEntries").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, "*vaultEntryRepository.ListEntries", query, args...)
}

func (r *vaultEntryRepository) ListEmergencyEntries(ctx context.Context, ownerID int64) ([]models.VaultEntry, error) {
	return r.list(ctx, "*vaultEntryRepository.ListEmergencyEntries", listEmergencyEntries, ownerID)
}

func (r *vaultEntryRepository) list(ctx context.Context, funcName, query string, args ...any) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error listing vault entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.VaultEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning vault entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *vaultEntryRepository) SetEmergencyAccess(ctx context.Context, ownerID, entryID int64, allow bool, at time.Time) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, setEmergencyAccess, entryID, ownerID, allow, at))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultEntry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*vaultEntryRepository.SetEmergencyAccess").Msg("error updating vault entry")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

func scanEntry(row rowScanner) (models.VaultEntry, error) {
	var e models.VaultEntry
	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.AllowEmergencyAccess, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}
