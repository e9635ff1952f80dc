// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntryStatus is the lifecycle state of a vault entry.
type EntryStatus string

const (
	EntryActive   EntryStatus = "active"
	EntryArchived EntryStatus = "archived"
	EntryDeleted  EntryStatus = "deleted"
)

// VaultEntry is an encrypted item owned by a user. Title and Content are
// ciphertexts produced on the client; the server never sees plaintext.
type VaultEntry struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	Title   string `json:"title"`
	Content string `json:"content"`

	// AllowEmergencyAccess marks the entry as visible to an approved
	// trusted contact.
	AllowEmergencyAccess bool `json:"allow_emergency_access"`

	Status EntryStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVaultEntry is the owner input for storing an entry.
type NewVaultEntry struct {
	Title                string `json:"title"`
	Content              string `json:"content"`
	AllowEmergencyAccess bool   `json:"allow_emergency_access"`
}

// EmergencyAccessFlag toggles whether an entry is shared in an emergency.
type EmergencyAccessFlag struct {
	Allow bool `json:"allow"`
}

// VaultEntryView is the projection returned to an emergency contact.
type VaultEntryView struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmergencyEntries is the gate's answer to a valid token.
type EmergencyEntries struct {
	OwnerID   int64 `json:"owner_id"`
	ContactID int64 `json:"contact_id"`

	ExpiresAt time.Time `json:"expires_at"`

	// WrappedKey is the vault key encrypted for the contact, if the owner
	// deposited one.
	WrappedKey string `json:"wrapped_key,omitempty"`

	Entries []VaultEntryView `json:"entries"`
}

// PlainEntry is a decrypted vault entry as the client shows it.
type PlainEntry struct {
	ID                   int64
	Title                string
	Content              string
	AllowEmergencyAccess bool
}
