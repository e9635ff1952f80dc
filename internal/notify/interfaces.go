// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"

	"github.com/MKhiriev/vaultkeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notify_mock.go -package=mock

// Sink accepts a notification for delivery.
type Sink interface {
	Notify(ctx context.Context, n models.Notification) error
}
