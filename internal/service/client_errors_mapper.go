// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/vaultkeeper/internal/adapter"
)

// serverErrors are the business errors the server reports by message.
var serverErrors = []error{
	ErrInvalidDataProvided,
	ErrInvalidCredentials,
	ErrUserAlreadyExists,
	ErrAccountNotActive,
	ErrTokenIsExpiredOrInvalid,
	ErrNotFound,
	ErrOwnerNotFound,
	ErrForbidden,
	ErrAlreadyHasContact,
	ErrNotATrustedContact,
	ErrContactNotCurrent,
	ErrInvalidInvitation,
	ErrInvalidPublicKey,
	ErrAlreadyResolved,
	ErrDuplicatePendingRequest,
	ErrInvalidToken,
	ErrAccessDenied,
}

// mapAdapterError translates the adapter's transport error into a service
// business error. Contact-facing endpoints only return status text, so for
// them the mapping falls back to the status class.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)
	for _, known := range serverErrors {
		if msg == known.Error() {
			return known
		}
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrInvalidToken
	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccessDenied
	case errors.Is(err, adapter.ErrNotFound):
		return ErrNotFound
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
