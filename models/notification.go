// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// NotificationVersion is the schema version stamped on every published
// notification envelope.
const NotificationVersion = 1

// NotificationKind discriminates the notification variants.
type NotificationKind string

const (
	KindContactInvited   NotificationKind = "contact_invited"
	KindContactAnswered  NotificationKind = "contact_answered"
	KindContactRevoked   NotificationKind = "contact_revoked"
	KindAccessRequested  NotificationKind = "access_requested"
	KindAccessGranted    NotificationKind = "access_granted"
	KindAccessDenied     NotificationKind = "access_denied"
	KindAccessExpired    NotificationKind = "access_expired"
	KindAutoApprovalSent NotificationKind = "auto_approval_notice"
)

// Recipient is the addressee of a notification. Owners are addressed by
// UserID as well, contacts by email only.
type Recipient struct {
	UserID int64  `json:"user_id,omitempty"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
}

// Notification is a closed set of messages the access subsystem emits.
// Every variant lives in this file.
type Notification interface {
	Kind() NotificationKind
	To() Recipient
	notification()
}

// ContactInvited tells a contact that an owner designated them.
type ContactInvited struct {
	Recipient      Recipient `json:"recipient"`
	OwnerName      string    `json:"owner_name"`
	OwnerEmail     string    `json:"owner_email"`
	InvitationCode string    `json:"invitation_code"`
}

// ContactAnswered tells the owner how the contact answered the invitation.
type ContactAnswered struct {
	Recipient    Recipient     `json:"recipient"`
	ContactID    int64         `json:"contact_id"`
	ContactName  string        `json:"contact_name"`
	ContactState ContactStatus `json:"contact_status"`
}

// ContactRevokedNotice tells a contact they are no longer trusted.
type ContactRevokedNotice struct {
	Recipient  Recipient `json:"recipient"`
	OwnerEmail string    `json:"owner_email"`
}

// AccessRequested tells the owner somebody asked for access.
type AccessRequested struct {
	Recipient     Recipient     `json:"recipient"`
	RequestID     int64         `json:"request_id"`
	ContactName   string        `json:"contact_name"`
	Reason        string        `json:"reason"`
	Origin        RequestOrigin `json:"origin"`
	AutoApproveAt time.Time     `json:"auto_approve_at"`
}

// AccessGranted carries the bearer token to the contact.
type AccessGranted struct {
	Recipient    Recipient `json:"recipient"`
	RequestID    int64     `json:"request_id"`
	OwnerID      int64     `json:"owner_id"`
	AccessToken  string    `json:"access_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	AutoApproved bool      `json:"auto_approved"`
}

// AccessDenied tells the contact the owner refused.
type AccessDenied struct {
	Recipient Recipient `json:"recipient"`
	RequestID int64     `json:"request_id"`
	Message   string    `json:"message,omitempty"`
}

// AccessExpired tells the contact a request lapsed without a grant.
type AccessExpired struct {
	Recipient Recipient `json:"recipient"`
	RequestID int64     `json:"request_id"`
}

// AutoApprovalNotice tells the owner access was granted without an answer.
type AutoApprovalNotice struct {
	Recipient   Recipient `json:"recipient"`
	RequestID   int64     `json:"request_id"`
	ContactName string    `json:"contact_name"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (n ContactInvited) Kind() NotificationKind       { return KindContactInvited }
func (n ContactAnswered) Kind() NotificationKind      { return KindContactAnswered }
func (n ContactRevokedNotice) Kind() NotificationKind { return KindContactRevoked }
func (n AccessRequested) Kind() NotificationKind      { return KindAccessRequested }
func (n AccessGranted) Kind() NotificationKind        { return KindAccessGranted }
func (n AccessDenied) Kind() NotificationKind         { return KindAccessDenied }
func (n AccessExpired) Kind() NotificationKind        { return KindAccessExpired }
func (n AutoApprovalNotice) Kind() NotificationKind   { return KindAutoApprovalSent }

func (n ContactInvited) To() Recipient       { return n.Recipient }
func (n ContactAnswered) To() Recipient      { return n.Recipient }
func (n ContactRevokedNotice) To() Recipient { return n.Recipient }
func (n AccessRequested) To() Recipient      { return n.Recipient }
func (n AccessGranted) To() Recipient        { return n.Recipient }
func (n AccessDenied) To() Recipient         { return n.Recipient }
func (n AccessExpired) To() Recipient        { return n.Recipient }
func (n AutoApprovalNotice) To() Recipient   { return n.Recipient }

func (ContactInvited) notification()       {}
func (ContactAnswered) notification()      {}
func (ContactRevokedNotice) notification() {}
func (AccessRequested) notification()      {}
func (AccessGranted) notification()        {}
func (AccessDenied) notification()         {}
func (AccessExpired) notification()        {}
func (AutoApprovalNotice) notification()   {}

// NotificationEnvelope is the versioned wire form published to external
// channels.
type NotificationEnvelope struct {
	Version int              `json:"version"`
	Kind    NotificationKind `json:"kind"`
	SentAt  time.Time        `json:"sent_at"`
	Payload json.RawMessage  `json:"payload"`
}

// NewNotificationEnvelope wraps a notification for publishing.
func NewNotificationEnvelope(n Notification, sentAt time.Time) (NotificationEnvelope, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return NotificationEnvelope{}, fmt.Errorf("marshal %s notification: %w", n.Kind(), err)
	}

	return NotificationEnvelope{
		Version: NotificationVersion,
		Kind:    n.Kind(),
		SentAt:  sentAt.UTC(),
		Payload: payload,
	}, nil
}

// Decode restores the concrete notification carried by the envelope.
func (e NotificationEnvelope) Decode() (Notification, error) {
	if e.Version != NotificationVersion {
		return nil, fmt.Errorf("unsupported notification version %d", e.Version)
	}

	var n Notification
	switch e.Kind {
	case KindContactInvited:
		n = &ContactInvited{}
	case KindContactAnswered:
		n = &ContactAnswered{}
	case KindContactRevoked:
		n = &ContactRevokedNotice{}
	case KindAccessRequested:
		n = &AccessRequested{}
	case KindAccessGranted:
		n = &AccessGranted{}
	case KindAccessDenied:
		n = &AccessDenied{}
	case KindAccessExpired:
		n = &AccessExpired{}
	case KindAutoApprovalSent:
		n = &AutoApprovalNotice{}
	default:
		return nil, fmt.Errorf("unknown notification kind %q", e.Kind)
	}

	if err := json.Unmarshal(e.Payload, n); err != nil {
		return nil, fmt.Errorf("unmarshal %s notification: %w", e.Kind, err)
	}

	return deref(n), nil
}

func deref(n Notification) Notification {
	switch v := n.(type) {
	case *ContactInvited:
		return *v
	case *ContactAnswered:
		return *v
	case *ContactRevokedNotice:
		return *v
	case *AccessRequested:
		return *v
	case *AccessGranted:
		return *v
	case *AccessDenied:
		return *v
	case *AccessExpired:
		return *v
	case *AutoApprovalNotice:
		return *v
	}
	return n
}
