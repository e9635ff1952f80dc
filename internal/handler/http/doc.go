// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the vault server.
//
// It exposes route wiring, request handlers and middleware. Owner routes are
// guarded by JWT authentication, contact routes are public or guarded by the
// emergency access token, and the sweep route requires the system key.
package http
