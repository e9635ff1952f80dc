// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vaultkeeper command-line client.
//
// Each invocation runs one subcommand. Owner commands log in first with a
// password read from the terminal; trusted contact commands work with an
// invitation code or an access token plus a local private key file.
package client
