// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/config"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/service"
)

type Handler struct {
	services *service.Services

	// systemKey guards the sweep endpoint. An empty key disables it.
	systemKey      string
	requestTimeout time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		systemKey:      cfg.SystemKey,
		requestTimeout: cfg.RequestTimeout,
		now:            time.Now,
		logger:         logger,
	}
}
