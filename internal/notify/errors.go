// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import "errors"

// ErrQueueFull is returned by [Dispatcher.Notify] when the buffer is full and
// the notification was dropped.
var ErrQueueFull = errors.New("notification queue is full")
