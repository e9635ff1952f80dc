// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("name is required")
	ErrNameTooLong        = errors.New("name is too long")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidAccessLevel = errors.New("invalid access level")
	ErrInvalidPeriod      = errors.New("period must be positive")
	ErrReasonTooLong      = errors.New("reason is too long")
	ErrInvalidDecision    = errors.New("decision must be approve or deny")
	ErrMessageTooLong     = errors.New("message is too long")
	ErrEmptyWrappedKey    = errors.New("wrapped key is required")
	ErrWrappedKeyTooLarge = errors.New("wrapped key is too large")
	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyContent       = errors.New("content is required")
	ErrContentTooLarge    = errors.New("content is too large")
)
