// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Domain errors returned by repositories. Match with [errors.Is].
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user was not found")

	// ErrContactAlreadyExists is returned when the owner already has a
	// pending or active trusted contact.
	ErrContactAlreadyExists = errors.New("owner already has a trusted contact")
	ErrContactNotFound      = errors.New("trusted contact was not found")

	// ErrContactStateConflict is returned when a conditional status update
	// finds the contact in an unexpected state.
	ErrContactStateConflict = errors.New("trusted contact is not in the expected state")

	// ErrPendingRequestExists is returned when a contact already has a
	// pending access request.
	ErrPendingRequestExists = errors.New("pending access request already exists")
	ErrRequestNotFound      = errors.New("access request was not found")

	// ErrRequestNotPending is returned by the conditional resolve when
	// another actor has already moved the request out of pending.
	ErrRequestNotPending = errors.New("access request is no longer pending")

	ErrEntryNotFound = errors.New("vault entry was not found")

	ErrKeyWrapNotFound = errors.New("wrapped key was not found")
)

// Low-level errors wrapped around driver failures.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
