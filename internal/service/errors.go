// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Input and authentication errors.
var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrUserAlreadyExists       = errors.New("user with this email already exists")
	ErrAccountNotActive        = errors.New("account is not active")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// Ownership and lookup errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrOwnerNotFound = errors.New("owner not found")
	ErrForbidden     = errors.New("forbidden")
)

// Trusted contact errors.
var (
	ErrAlreadyHasContact  = errors.New("owner already has a trusted contact")
	ErrNotATrustedContact = errors.New("not a trusted contact")
	ErrContactNotCurrent  = errors.New("trusted contact is revoked or declined")
	ErrInvalidInvitation  = errors.New("invitation code is invalid or already used")
	ErrInvalidPublicKey   = errors.New("public key is invalid")
)

// Access request state machine errors. None of them is worth retrying.
var (
	ErrAlreadyResolved         = errors.New("access request is already resolved")
	ErrDuplicatePendingRequest = errors.New("a pending access request already exists for this contact")
)

// Emergency access gate errors.
var (
	ErrInvalidToken = errors.New("access token is invalid or expired")
	ErrAccessDenied = errors.New("emergency access denied")
)

// Client errors.
var (
	ErrVaultLocked      = errors.New("vault key is not set, log in first")
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrKeyNotShared     = errors.New("owner has not shared the vault key yet")
	ErrNoPublicKey      = errors.New("trusted contact has no public key")
	ErrTokenNotIssued   = errors.New("no access token is available for this request")
)
