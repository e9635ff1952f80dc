// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived background loops of the server,
// such as the notification dispatcher and the sweep scheduler.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is done and the worker
// has released its resources.
type Worker interface {
	Run(ctx context.Context)
}
