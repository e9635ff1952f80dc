// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserStatus is the lifecycle state of a vault owner account.
type UserStatus string

const (
	UserActive     UserStatus = "active"
	UserLocked     UserStatus = "locked"
	UserSuspended  UserStatus = "suspended"
	UserUnverified UserStatus = "unverified"
)

// User is a vault owner.
type User struct {
	// UserID is the internal identifier of the owner.
	UserID int64 `json:"user_id,omitempty"`

	// Email is the unique login of the owner. Contacts use it to address
	// emergency access requests.
	Email string `json:"email"`

	// Name is shown to trusted contacts in notifications.
	Name string `json:"name,omitempty"`

	// AuthHash is the client-derived authentication secret. The server stores
	// only an HMAC of it and never learns the vault encryption key.
	AuthHash string `json:"auth_hash,omitempty"`

	// EncryptionSalt is the per-owner salt fed into the client key derivation.
	EncryptionSalt string `json:"encryption_salt,omitempty"`

	Status UserStatus `json:"status,omitempty"`

	// LastActivityAt is refreshed on every successful login.
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// UserParams is the public part of the owner record the client needs before
// it can derive keys and log in.
type UserParams struct {
	Email          string `json:"email"`
	EncryptionSalt string `json:"encryption_salt"`
}

// Credentials is what the owner types into the client. The password never
// leaves the client.
type Credentials struct {
	Email    string
	Name     string
	Password string
}
