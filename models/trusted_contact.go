// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ContactStatus is the lifecycle state of a trusted contact.
type ContactStatus string

const (
	// ContactPending means the invitation has not been answered yet.
	ContactPending ContactStatus = "pending"
	// ContactActive means the contact accepted and may request access.
	ContactActive ContactStatus = "active"
	// ContactDeclined means the contact refused the invitation.
	ContactDeclined ContactStatus = "declined"
	// ContactRevoked means the owner withdrew the contact.
	ContactRevoked ContactStatus = "revoked"
)

// IsCurrent reports whether the contact still occupies the owner's single
// trusted contact slot.
func (s ContactStatus) IsCurrent() bool {
	return s == ContactPending || s == ContactActive
}

// AccessLevel describes what an approved contact is allowed to see.
type AccessLevel string

const (
	AccessLevelView AccessLevel = "view"
	AccessLevelFull AccessLevel = "full"
)

// Valid reports whether the level is a known one.
func (l AccessLevel) Valid() bool {
	return l == AccessLevelView || l == AccessLevelFull
}

// TrustedContact is the person an owner designates to receive emergency
// access to the vault.
type TrustedContact struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	Name  string `json:"name"`
	Email string `json:"email"`

	Status      ContactStatus `json:"status"`
	AccessLevel AccessLevel   `json:"access_level"`

	// WaitingPeriod is how long the owner has to answer a request before it
	// is approved automatically.
	WaitingPeriod Period `json:"waiting_period"`

	// InactivityPeriod is how long the owner may stay silent before an
	// access request is raised on the contact's behalf.
	InactivityPeriod Period `json:"inactivity_period"`

	// LastInactivityResetDate is the start of the current inactivity window.
	// It only moves forward.
	LastInactivityResetDate time.Time `json:"last_inactivity_reset_date"`

	// PublicKey is the contact's RSA public key (base64 DER) supplied when
	// the invitation was accepted. Owners wrap the vault key with it.
	PublicKey string `json:"public_key,omitempty"`

	InvitationHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InactivityDeadline is the moment after which the owner counts as inactive.
func (c TrustedContact) InactivityDeadline() time.Time {
	return c.LastInactivityResetDate.Add(c.InactivityPeriod.Duration())
}

// NewTrustedContact carries owner input for designating a contact. Zero
// periods are replaced with configured defaults.
type NewTrustedContact struct {
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	AccessLevel      AccessLevel `json:"access_level"`
	WaitingPeriod    Period      `json:"waiting_period"`
	InactivityPeriod Period      `json:"inactivity_period"`
}

// ContactInvitation is returned to the owner once, right after a contact is
// added. The code is never stored in clear.
type ContactInvitation struct {
	Contact        TrustedContact `json:"contact"`
	InvitationCode string         `json:"invitation_code"`
}

// InvitationAnswer is the contact's reply to an invitation.
type InvitationAnswer struct {
	Code      string `json:"code"`
	Accept    bool   `json:"accept"`
	PublicKey string `json:"public_key,omitempty"`
}
