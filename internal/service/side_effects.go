// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/notify"
	"github.com/MKhiriev/vaultkeeper/internal/store"
	"github.com/MKhiriev/vaultkeeper/models"
)

// sideEffects performs the audit and notification calls that follow a state
// change. Both are best effort: a failure is logged and never undoes the
// change that triggered it.
type sideEffects struct {
	activity store.ActivityRepository
	sink     notify.Sink
}

func (s sideEffects) audit(ctx context.Context, entry models.ActivityEntry) {
	if s.activity == nil {
		return
	}

	if err := s.activity.RecordActivity(ctx, entry); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "sideEffects.audit").
			Str("action", string(entry.Action)).
			Msg("failed to record activity")
	}
}

func (s sideEffects) notify(ctx context.Context, n models.Notification) {
	if s.sink == nil {
		return
	}

	if err := s.sink.Notify(ctx, n); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "sideEffects.notify").
			Str("kind", string(n.Kind())).
			Msg("failed to hand over notification")
	}
}

func requestActivity(req models.AccessRequest, action models.ActivityAction, actor models.Actor, details string, at time.Time) models.ActivityEntry {
	contactID, requestID := req.ContactID, req.ID
	return models.ActivityEntry{
		UserID:    req.OwnerID,
		ContactID: &contactID,
		RequestID: &requestID,
		Action:    action,
		Actor:     actor,
		Details:   details,
		CreatedAt: at,
	}
}

func contactActivity(contact models.TrustedContact, action models.ActivityAction, actor models.Actor, at time.Time) models.ActivityEntry {
	contactID := contact.ID
	return models.ActivityEntry{
		UserID:    contact.UserID,
		ContactID: &contactID,
		Action:    action,
		Actor:     actor,
		CreatedAt: at,
	}
}

func ownerRecipient(u models.User) models.Recipient {
	return models.Recipient{UserID: u.UserID, Email: u.Email, Name: u.Name}
}

func contactRecipient(c models.TrustedContact) models.Recipient {
	return models.Recipient{Email: c.Email, Name: c.Name}
}
