// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/models"
)

type appInfoService struct {
	build models.BuildInfo

	logger *logger.Logger
}

func NewAppInfoService(build models.BuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		build:  build,
		logger: logger,
	}
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	return s.build
}
