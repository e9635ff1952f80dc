// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RequestStatus is the state of an emergency access request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestDenied   RequestStatus = "denied"
	RequestExpired  RequestStatus = "expired"
)

// IsTerminal reports whether no further transition is possible.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestApproved || s == RequestDenied || s == RequestExpired
}

// CanTransition reports whether a request may move from one status to another.
// Only pending requests move, and they move exactly once.
func CanTransition(from, to RequestStatus) bool {
	if from != RequestPending {
		return false
	}

	switch to {
	case RequestApproved, RequestDenied, RequestExpired:
		return true
	default:
		return false
	}
}

// Decision is an owner's answer to a pending request.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDeny    Decision = "deny"
)

// Valid reports whether the decision is approve or deny.
func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionDeny
}

// ResolvedBy records who moved a request out of pending.
type ResolvedBy string

const (
	ResolvedByOwner  ResolvedBy = "owner"
	ResolvedBySystem ResolvedBy = "system"
)

// RequestOrigin records what raised a request.
type RequestOrigin string

const (
	OriginContact    RequestOrigin = "contact"
	OriginInactivity RequestOrigin = "inactivity"
)

// AutoApprovalMessage is stored on requests the system approved because the
// owner never answered.
const AutoApprovalMessage = "system auto-approved due to no response"

// InactivityReason is the reason stored on requests raised by the
// inactivity monitor.
const InactivityReason = "automated: owner inactivity"

// AccessRequest is an emergency access request raised by or for a trusted
// contact.
type AccessRequest struct {
	ID        int64 `json:"id"`
	ContactID int64 `json:"contact_id"`

	// OwnerID is derived from the contact and is not stored on the request.
	OwnerID int64 `json:"owner_id,omitempty"`

	Reason string        `json:"reason"`
	Origin RequestOrigin `json:"origin"`
	Status RequestStatus `json:"status"`

	RequestedAt   time.Time  `json:"requested_at"`
	AutoApproveAt time.Time  `json:"auto_approve_at"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`

	ResponseMessage string     `json:"response_message,omitempty"`
	ResolvedBy      ResolvedBy `json:"resolved_by,omitempty"`

	// AccessTokenHash is the digest of the bearer token issued on approval.
	AccessTokenHash *string `json:"-"`

	// SealedToken is the raw token encrypted with the contact's public key.
	// Only the contact can open it, so it is safe to hand out on status
	// polls while the access window is open.
	SealedToken *string `json:"-"`

	// AccessToken holds the raw token only in memory, right after approval,
	// so that it can be delivered to the contact. It is never persisted.
	AccessToken string `json:"-"`
}

// NewAccessRequest is the input for raising a request. A zero RequestedAt
// means "now".
type NewAccessRequest struct {
	ContactID   int64
	Reason      string
	Origin      RequestOrigin
	RequestedAt time.Time
}

// EmergencyAccessInput is the public request a contact submits.
type EmergencyAccessInput struct {
	OwnerEmail   string `json:"owner_email"`
	ContactEmail string `json:"contact_email"`
	Reason       string `json:"reason"`
}

// ResponseInput is the owner's answer to a request.
type ResponseInput struct {
	Decision Decision `json:"decision"`
	Message  string   `json:"message,omitempty"`
}

// RequestResolution describes a conditional pending -> terminal update.
type RequestResolution struct {
	RequestID       int64
	Status          RequestStatus
	RespondedAt     time.Time
	ExpiresAt       *time.Time
	ResponseMessage string
	ResolvedBy      ResolvedBy
	AccessTokenHash *string
	SealedToken     *string
}

// RequestStatusView is what a contact may learn about their own request.
type RequestStatusView struct {
	RequestID     int64         `json:"request_id"`
	Status        RequestStatus `json:"status"`
	AutoApproveAt time.Time     `json:"auto_approve_at"`
	ExpiresAt     *time.Time    `json:"expires_at,omitempty"`

	// SecondsUntilAutoApproval counts down while the request is pending and
	// is zero afterwards.
	SecondsUntilAutoApproval int64 `json:"seconds_until_auto_approval"`

	// SealedAccessToken is set while an approved request is usable. It is
	// the access token encrypted with RSA-OAEP for the contact's key.
	SealedAccessToken string `json:"sealed_access_token,omitempty"`
}

// TokenVerification is the outcome of checking an emergency access token.
type TokenVerification struct {
	Valid     bool       `json:"valid"`
	RequestID int64      `json:"request_id,omitempty"`
	ContactID int64      `json:"contact_id,omitempty"`
	OwnerID   int64      `json:"owner_id,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// VerifyTokenInput is the body of a token verification call.
type VerifyTokenInput struct {
	Token string `json:"token"`
}

// KeyWrapInput carries the vault key wrapped for the contact's public key.
type KeyWrapInput struct {
	WrappedKey string `json:"wrapped_key"`
}

// SweepResult summarizes one run of the background sweeps.
type SweepResult struct {
	Created  []AccessRequest `json:"created"`
	Resolved []AccessRequest `json:"resolved"`
}
