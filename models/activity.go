// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ActivityAction names an audited event.
type ActivityAction string

const (
	ActivityContactAdded        ActivityAction = "contact_added"
	ActivityContactAccepted     ActivityAction = "contact_accepted"
	ActivityContactDeclined     ActivityAction = "contact_declined"
	ActivityContactRevoked      ActivityAction = "contact_revoked"
	ActivityInactivityReset     ActivityAction = "inactivity_reset"
	ActivityRequestCreated      ActivityAction = "access_request_created"
	ActivityRequestApproved     ActivityAction = "access_request_approved"
	ActivityRequestDenied       ActivityAction = "access_request_denied"
	ActivityRequestAutoApproved ActivityAction = "access_request_auto_approved"
	ActivityRequestExpired      ActivityAction = "access_request_expired"
	ActivityTokenVerified       ActivityAction = "access_token_verified"
	ActivityTokenRejected       ActivityAction = "access_token_rejected"
	ActivityEntriesAccessed     ActivityAction = "emergency_entries_accessed"
)

// Actor identifies who caused an audited event.
type Actor string

const (
	ActorOwner   Actor = "owner"
	ActorContact Actor = "contact"
	ActorSystem  Actor = "system"
)

// ActivityEntry is one row of the owner's audit trail.
type ActivityEntry struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	ContactID *int64         `json:"contact_id,omitempty"`
	RequestID *int64         `json:"request_id,omitempty"`
	Action    ActivityAction `json:"action"`
	Actor     Actor          `json:"actor"`
	Details   string         `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
