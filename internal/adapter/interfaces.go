// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for the vaultkeeper
// server.
//
// [ServerAdapter] decouples the client services from the REST API. The
// package ships an HTTP implementation ([NewHTTPServerAdapter]) built on
// resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of the message
// the server sent (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/vaultkeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines communication with the vaultkeeper server on behalf
// of both an owner and a trusted contact.
type ServerAdapter interface {
	// SetToken stores the owner session token attached to authenticated
	// requests. Register and Login call it on success.
	SetToken(token string)

	// Token returns the stored session token, or an empty string.
	Token() string

	// Register creates an owner account. The user carries the email, the
	// client-derived auth hash and the salt it was derived with. Returns the
	// public parameters the server stored.
	Register(ctx context.Context, user models.User) (models.UserParams, error)

	// RequestParams fetches the encryption salt of an owner so the client can
	// derive keys before Login.
	RequestParams(ctx context.Context, email string) (models.UserParams, error)

	// Login authenticates an owner with a pre-computed auth hash.
	Login(ctx context.Context, user models.User) error

	// AddContact designates the owner's trusted contact. The returned
	// invitation code is shown once and must be passed to the contact.
	AddContact(ctx context.Context, contact models.NewTrustedContact) (models.ContactInvitation, error)

	// GetContact returns the owner's current trusted contact.
	GetContact(ctx context.Context) (models.TrustedContact, error)

	// RevokeContact revokes a trusted contact.
	RevokeContact(ctx context.Context, contactID int64) (models.TrustedContact, error)

	// ResetInactivity restarts the inactivity window of a contact.
	ResetInactivity(ctx context.Context, contactID int64) (models.TrustedContact, error)

	// ListAccessRequests returns the owner's requests, only pending ones
	// when pendingOnly is set.
	ListAccessRequests(ctx context.Context, pendingOnly bool) ([]models.AccessRequest, error)

	// Respond approves or denies a pending request.
	Respond(ctx context.Context, requestID int64, input models.ResponseInput) (models.AccessRequest, error)

	// DepositKeyWrap hands the server the vault key wrapped for the contact.
	DepositKeyWrap(ctx context.Context, requestID int64, wrappedKey string) error

	// CreateEntry stores an encrypted vault entry.
	CreateEntry(ctx context.Context, entry models.NewVaultEntry) (models.VaultEntry, error)

	// ListEntries returns the owner's vault entries.
	ListEntries(ctx context.Context) ([]models.VaultEntry, error)

	// SetEmergencyAccess toggles whether an entry is shared in an emergency.
	SetEmergencyAccess(ctx context.Context, entryID int64, allow bool) (models.VaultEntry, error)

	// ListActivity returns the newest activity log entries. A zero limit
	// leaves the choice to the server.
	ListActivity(ctx context.Context, limit uint) ([]models.ActivityEntry, error)

	// AnswerInvitation accepts or declines an invitation as the contact.
	AnswerInvitation(ctx context.Context, answer models.InvitationAnswer) (models.TrustedContact, error)

	// SubmitAccessRequest files an emergency access request as the contact.
	SubmitAccessRequest(ctx context.Context, input models.EmergencyAccessInput) (models.AccessRequest, error)

	// RequestStatus polls the state of a request. The contact email must
	// match the request.
	RequestStatus(ctx context.Context, requestID int64, contactEmail string) (models.RequestStatusView, error)

	// VerifyAccessToken asks the server whether an access token is valid.
	// An invalid token is reported as Valid=false, not as an error.
	VerifyAccessToken(ctx context.Context, token string) (models.TokenVerification, error)

	// EmergencyEntries fetches the shared entries of an owner with an access
	// token.
	EmergencyEntries(ctx context.Context, ownerID int64, token string) (models.EmergencyEntries, error)

	// ServerVersion returns the build information of the server.
	ServerVersion(ctx context.Context) (models.BuildInfo, error)
}
