// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is incomplete.
var (
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrMissingSystemKey      = errors.New("system key is required")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidNotifyConfigs  = errors.New("invalid notification configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
