// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/models"
	"github.com/rs/zerolog"
)

// LogSink writes one structured line per notification, through the request
// logger when the context carries one. Payloads are never logged because
// some of them carry access tokens.
type LogSink struct {
	logger *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{logger: log}
}

func (s *LogSink) Notify(ctx context.Context, n models.Notification) error {
	to := n.To()

	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = s.logger
	}

	event := log.Info().
		Str("func", "*LogSink.Notify").
		Str("kind", string(n.Kind())).
		Str("recipient", to.Email)
	if to.UserID != 0 {
		event = event.Int64("recipient_user_id", to.UserID)
	}

	event.Msg("notification")
	return nil
}
