// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/vaultkeeper/internal/config"
	"github.com/MKhiriev/vaultkeeper/internal/handler/http"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/service"
)

// Handlers groups the transport handlers exposed by the server.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
