// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/store"
	"github.com/MKhiriev/vaultkeeper/models"
)

// emergencyAccessGate returns the entries an owner flagged for emergency
// access. It holds no state of its own: every call re-verifies the token.
type emergencyAccessGate struct {
	verifier AccessRequestService
	entries  store.VaultEntryRepository
	keyWraps store.KeyWrapStore

	effects sideEffects

	now    func() time.Time
	logger *logger.Logger
}

func NewEmergencyAccessGate(verifier AccessRequestService, storages *store.Storages, logger *logger.Logger) EmergencyAccessGate {
	return &emergencyAccessGate{
		verifier: verifier,
		entries:  storages.VaultEntryRepository,
		keyWraps: storages.KeyWrapStore,
		effects:  sideEffects{activity: storages.ActivityRepository},
		now:      time.Now,
		logger:   logger,
	}
}

func (g *emergencyAccessGate) ListAccessibleEntries(ctx context.Context, token string, ownerID int64) (models.EmergencyEntries, error) {
	log := logger.FromContext(ctx)

	verification, err := g.verifier.VerifyToken(ctx, token)
	if err != nil {
		return models.EmergencyEntries{}, fmt.Errorf("error verifying access token: %w", err)
	}
	if !verification.Valid {
		return models.EmergencyEntries{}, ErrAccessDenied
	}
	if verification.OwnerID != ownerID {
		log.Warn().
			Int64("request_id", verification.RequestID).
			Int64("owner_id", ownerID).
			Msg("access token used for another owner's vault")
		return models.EmergencyEntries{}, ErrAccessDenied
	}

	entries, err := g.entries.ListEmergencyEntries(ctx, ownerID)
	if err != nil {
		return models.EmergencyEntries{}, fmt.Errorf("error listing emergency entries: %w", err)
	}

	views := make([]models.VaultEntryView, 0, len(entries))
	for _, entry := range entries {
		if !entry.AllowEmergencyAccess || entry.Status != models.EntryActive {
			continue
		}
		views = append(views, models.VaultEntryView{
			ID:        entry.ID,
			Title:     entry.Title,
			Content:   entry.Content,
			CreatedAt: entry.CreatedAt,
			UpdatedAt: entry.UpdatedAt,
		})
	}

	result := models.EmergencyEntries{
		OwnerID:   ownerID,
		ContactID: verification.ContactID,
		Entries:   views,
	}
	if verification.ExpiresAt != nil {
		result.ExpiresAt = *verification.ExpiresAt
	}

	wrapped, err := g.keyWraps.GetKeyWrap(ctx, verification.RequestID)
	switch {
	case err == nil:
		result.WrappedKey = wrapped
	case errors.Is(err, store.ErrKeyWrapNotFound):
	default:
		log.Warn().Err(err).Int64("request_id", verification.RequestID).Msg("wrapped key unavailable")
	}

	contactID, requestID := verification.ContactID, verification.RequestID
	g.effects.audit(ctx, models.ActivityEntry{
		UserID:    ownerID,
		ContactID: &contactID,
		RequestID: &requestID,
		Action:    models.ActivityEntriesAccessed,
		Actor:     models.ActorContact,
		Details:   strconv.Itoa(len(views)) + " entries",
		CreatedAt: g.now(),
	})

	log.Info().Int64("request_id", requestID).Int("entries", len(views)).Msg("emergency entries served")
	return result, nil
}
