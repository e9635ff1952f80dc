// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates vaultkeeper configuration.
//
// Sources, later non-zero values overriding earlier ones:
//  1. Environment variables (with envDefault values)
//  2. Command-line flags (server only)
//  3. JSON config file named by CONFIG, -c or -config
//
// [GetStructuredConfig] serves the server and [GetClientConfig] the CLI.
package config
