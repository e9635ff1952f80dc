// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transport server.
//
// Run blocks until ctx is done or the listener fails, and it shuts the
// server down gracefully before returning. It satisfies workers.Worker.
type Server interface {
	Run(ctx context.Context)

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
