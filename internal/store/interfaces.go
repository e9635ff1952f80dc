// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/vaultkeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists vault owners.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// TouchLastActivity moves last_activity_at forward to at.
	TouchLastActivity(ctx context.Context, userID int64, at time.Time) error
}

// TrustedContactRepository persists trusted contacts. Status changes are
// conditional updates and report [ErrContactStateConflict] when the row is
// not in the state the change starts from.
type TrustedContactRepository interface {
	// CreateContact returns [ErrContactAlreadyExists] when the owner already
	// has a pending or active contact.
	CreateContact(ctx context.Context, contact models.TrustedContact) (models.TrustedContact, error)
	FindContactByID(ctx context.Context, contactID int64) (models.TrustedContact, error)

	// FindCurrentContact returns the owner's pending or active contact.
	FindCurrentContact(ctx context.Context, ownerID int64) (models.TrustedContact, error)
	FindContactByInvitation(ctx context.Context, invitationHash string) (models.TrustedContact, error)
	ListActiveContacts(ctx context.Context) ([]models.TrustedContact, error)

	// AnswerInvitation moves a pending contact to active or declined and
	// consumes the invitation code.
	AnswerInvitation(ctx context.Context, contactID int64, status models.ContactStatus, publicKey string, at time.Time) (models.TrustedContact, error)

	// ResetInactivity never moves the reset date backwards.
	ResetInactivity(ctx context.Context, contactID int64, at time.Time) (models.TrustedContact, error)
	ResetInactivityForOwner(ctx context.Context, ownerID int64, at time.Time) error

	// RevokeContact revokes the contact and denies its pending requests in
	// one transaction. The denied requests are returned.
	RevokeContact(ctx context.Context, contactID int64, at time.Time, message string) (models.TrustedContact, []models.AccessRequest, error)
}

// AccessRequestRepository persists emergency access requests. Requests are
// never deleted.
type AccessRequestRepository interface {
	// CreateRequest returns [ErrPendingRequestExists] when the contact
	// already has a pending request.
	CreateRequest(ctx context.Context, request models.AccessRequest) (models.AccessRequest, error)
	FindRequestByID(ctx context.Context, requestID int64) (models.AccessRequest, error)
	FindRequestByTokenHash(ctx context.Context, tokenHash string) (models.AccessRequest, error)
	FindPendingRequest(ctx context.Context, contactID int64) (models.AccessRequest, error)

	// HasRequestSince reports whether any request for the contact was raised
	// at or after since.
	HasRequestSince(ctx context.Context, contactID int64, since time.Time) (bool, error)

	// ListRequestsByOwner returns every request when no status is given.
	ListRequestsByOwner(ctx context.Context, ownerID int64, statuses ...models.RequestStatus) ([]models.AccessRequest, error)
	ListDueRequests(ctx context.Context, now time.Time) ([]models.AccessRequest, error)

	// ResolveRequest applies the resolution only if the request is still
	// pending and returns [ErrRequestNotPending] otherwise.
	ResolveRequest(ctx context.Context, resolution models.RequestResolution) (models.AccessRequest, error)
}

// VaultEntryRepository persists encrypted vault entries.
type VaultEntryRepository interface {
	CreateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)
	ListEntries(ctx context.Context, ownerID int64) ([]models.VaultEntry, error)

	// ListEmergencyEntries returns only active entries flagged for
	// emergency access.
	ListEmergencyEntries(ctx context.Context, ownerID int64) ([]models.VaultEntry, error)
	SetEmergencyAccess(ctx context.Context, ownerID, entryID int64, allow bool, at time.Time) (models.VaultEntry, error)
}

// ActivityRepository appends to and reads the owner's audit trail.
type ActivityRepository interface {
	RecordActivity(ctx context.Context, entry models.ActivityEntry) error
	ListActivity(ctx context.Context, ownerID int64, limit uint64) ([]models.ActivityEntry, error)
}

// KeyWrapStore keeps vault keys wrapped for a contact. Entries expire on
// their own and are never written to Postgres.
type KeyWrapStore interface {
	PutKeyWrap(ctx context.Context, requestID int64, wrappedKey string, ttl time.Duration) error

	// GetKeyWrap returns [ErrKeyWrapNotFound] for missing or expired keys.
	GetKeyWrap(ctx context.Context, requestID int64) (string, error)
	DeleteKeyWrap(ctx context.Context, requestID int64) error
}
