// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/vaultkeeper/models"
)

// AuthService registers and authenticates vault owners.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login also resets the inactivity window of the owner's contact.
	Login(ctx context.Context, user models.User) (models.User, error)
	Params(ctx context.Context, email string) (models.UserParams, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TrustedContactRegistry manages the single trusted contact of an owner.
type TrustedContactRegistry interface {
	AddContact(ctx context.Context, ownerID int64, contact models.NewTrustedContact) (models.ContactInvitation, error)
	GetContact(ctx context.Context, ownerID int64) (models.TrustedContact, error)
	AnswerInvitation(ctx context.Context, answer models.InvitationAnswer) (models.TrustedContact, error)
	ResetInactivity(ctx context.Context, ownerID, contactID int64) (models.TrustedContact, error)
	ResetInactivityForOwner(ctx context.Context, ownerID int64) error
	Revoke(ctx context.Context, ownerID, contactID int64) (models.TrustedContact, error)
}

// AccessRequestService is the access request state machine. A request
// leaves pending exactly once, to approved, denied or expired.
type AccessRequestService interface {
	Create(ctx context.Context, request models.NewAccessRequest) (models.AccessRequest, error)

	// SubmitByEmail is the public entry point used by contacts.
	SubmitByEmail(ctx context.Context, input models.EmergencyAccessInput) (models.AccessRequest, error)
	Respond(ctx context.Context, requestID, ownerID int64, input models.ResponseInput) (models.AccessRequest, error)

	// ResolveAutoApprovals resolves every pending request whose deadline
	// has passed. Calling it again is a no-op for requests it already
	// resolved.
	ResolveAutoApprovals(ctx context.Context, now time.Time) ([]models.AccessRequest, error)

	// VerifyToken fails closed and never consumes the token.
	VerifyToken(ctx context.Context, token string) (models.TokenVerification, error)
	Status(ctx context.Context, requestID int64, contactEmail string) (models.RequestStatusView, error)
	ListForOwner(ctx context.Context, ownerID int64, pendingOnly bool) ([]models.AccessRequest, error)
	DepositKeyWrap(ctx context.Context, ownerID, requestID int64, wrappedKey string) error
}

// InactivityMonitor raises access requests for owners who went silent.
type InactivityMonitor interface {
	SweepOnce(ctx context.Context, now time.Time) ([]models.AccessRequest, error)
}

// EmergencyAccessGate exposes flagged entries to a contact holding a valid
// access token.
type EmergencyAccessGate interface {
	ListAccessibleEntries(ctx context.Context, token string, ownerID int64) (models.EmergencyEntries, error)
}

// VaultEntryService is the minimal owner-side entry management.
type VaultEntryService interface {
	CreateEntry(ctx context.Context, ownerID int64, entry models.NewVaultEntry) (models.VaultEntry, error)
	ListEntries(ctx context.Context, ownerID int64) ([]models.VaultEntry, error)
	SetEmergencyAccess(ctx context.Context, ownerID, entryID int64, allow bool) (models.VaultEntry, error)
}

// ActivityService reads the owner's audit trail.
type ActivityService interface {
	ListActivity(ctx context.Context, ownerID int64, limit uint64) ([]models.ActivityEntry, error)
}

// AppInfoService reports the build the server runs.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.BuildInfo
}

// SweepService runs the background sweeps one at a time.
type SweepService interface {
	SweepInactivity(ctx context.Context, now time.Time) ([]models.AccessRequest, error)
	ResolveDue(ctx context.Context, now time.Time) ([]models.AccessRequest, error)
	RunAll(ctx context.Context, now time.Time) (models.SweepResult, error)
}
