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
	"github.com/MKhiriev/vaultkeeper/models"
)

// inactivityMonitor raises one access request per inactivity window.
//
// A contact is due once now is past LastInactivityResetDate plus the
// inactivity period. The sweep skips contacts that already have a request
// raised inside the current window, so running it twice creates nothing new
// until the owner resets the window or the window rolls over.
type inactivityMonitor struct {
	contacts store.TrustedContactRepository
	requests store.AccessRequestRepository
	creator  AccessRequestService

	logger *logger.Logger
}

func NewInactivityMonitor(contacts store.TrustedContactRepository, requests store.AccessRequestRepository, creator AccessRequestService, logger *logger.Logger) InactivityMonitor {
	return &inactivityMonitor{
		contacts: contacts,
		requests: requests,
		creator:  creator,
		logger:   logger,
	}
}

func (m *inactivityMonitor) SweepOnce(ctx context.Context, now time.Time) ([]models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	contacts, err := m.contacts.ListActiveContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing active contacts: %w", err)
	}

	created := make([]models.AccessRequest, 0)
	for _, contact := range contacts {
		if !now.After(contact.InactivityDeadline()) {
			continue
		}

		raised, err := m.requests.HasRequestSince(ctx, contact.ID, contact.LastInactivityResetDate)
		if err != nil {
			log.Err(err).Int64("contact_id", contact.ID).Msg("error checking existing requests, contact skipped")
			continue
		}
		if raised {
			continue
		}

		req, err := m.creator.Create(ctx, models.NewAccessRequest{
			ContactID:   contact.ID,
			Reason:      models.InactivityReason,
			Origin:      models.OriginInactivity,
			RequestedAt: now,
		})
		if errors.Is(err, ErrDuplicatePendingRequest) {
			continue
		}
		if err != nil {
			log.Err(err).Int64("contact_id", contact.ID).Msg("error raising inactivity request, contact skipped")
			continue
		}

		created = append(created, req)
	}

	log.Info().Int("checked", len(contacts)).Int("created", len(created)).Msg("inactivity sweep finished")
	return created, nil
}
