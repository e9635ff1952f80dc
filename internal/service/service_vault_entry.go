// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/store"
	"github.com/MKhiriev/vaultkeeper/internal/validators"
	"github.com/MKhiriev/vaultkeeper/models"
)

type vaultEntryService struct {
	entries   store.VaultEntryRepository
	validator validators.Validator

	now    func() time.Time
	logger *logger.Logger
}

func NewVaultEntryService(entries store.VaultEntryRepository, logger *logger.Logger) VaultEntryService {
	return &vaultEntryService{
		entries:   entries,
		validator: validators.NewEmergencyValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// CreateEntry stores an entry whose title and content are already
// encrypted by the client.
func (s *vaultEntryService) CreateEntry(ctx context.Context, ownerID int64, input models.NewVaultEntry) (models.VaultEntry, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	entry, err := s.entries.CreateEntry(ctx, models.VaultEntry{
		UserID:               ownerID,
		Title:                input.Title,
		Content:              input.Content,
		AllowEmergencyAccess: input.AllowEmergencyAccess,
		Status:               models.EntryActive,
		CreatedAt:            s.now(),
	})
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("error creating vault entry: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("entry_id", entry.ID).Msg("vault entry created")
	return entry, nil
}

func (s *vaultEntryService) ListEntries(ctx context.Context, ownerID int64) ([]models.VaultEntry, error) {
	entries, err := s.entries.ListEntries(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing vault entries: %w", err)
	}

	return entries, nil
}

func (s *vaultEntryService) SetEmergencyAccess(ctx context.Context, ownerID, entryID int64, allow bool) (models.VaultEntry, error) {
	entry, err := s.entries.SetEmergencyAccess(ctx, ownerID, entryID, allow, s.now())
	if errors.Is(err, store.ErrEntryNotFound) {
		return models.VaultEntry{}, ErrNotFound
	}
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("error updating vault entry: %w", err)
	}

	return entry, nil
}
