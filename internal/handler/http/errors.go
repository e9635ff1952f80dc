// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader means the owner sent no credentials.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
	// ErrInvalidAuthorizationHeader means the header is not "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	// ErrSessionExpired is written when the session token no longer parses.
	ErrSessionExpired = errors.New("session is invalid or expired")
)

// ErrInvalidSystemKey is returned by operator endpoints when the
// "X-System-Key" header is missing or wrong.
var ErrInvalidSystemKey = errors.New("invalid system key")
