// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/vaultkeeper/internal/config"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/notify"
	"github.com/MKhiriev/vaultkeeper/internal/store"
	"github.com/MKhiriev/vaultkeeper/models"
)

type Services struct {
	AuthService            AuthService
	TrustedContactRegistry TrustedContactRegistry
	AccessRequestService   AccessRequestService
	InactivityMonitor      InactivityMonitor
	EmergencyAccessGate    EmergencyAccessGate
	VaultEntryService      VaultEntryService
	ActivityService        ActivityService
	SweepService           SweepService
	AppInfoService         AppInfoService
}

func NewServices(storages *store.Storages, sink notify.Sink, cfg config.App, build models.BuildInfo, logger *logger.Logger) *Services {
	contacts := NewTrustedContactRegistry(storages, sink, cfg, logger)
	requests := NewAccessRequestService(storages, sink, cfg, logger)
	monitor := NewInactivityMonitor(storages.TrustedContactRepository, storages.AccessRequestRepository, requests, logger)

	return &Services{
		AuthService:            NewAuthService(storages.UserRepository, contacts, cfg, logger),
		TrustedContactRegistry: contacts,
		AccessRequestService:   requests,
		InactivityMonitor:      monitor,
		EmergencyAccessGate:    NewEmergencyAccessGate(requests, storages, logger),
		VaultEntryService:      NewVaultEntryService(storages.VaultEntryRepository, logger),
		ActivityService:        NewActivityService(storages.ActivityRepository, logger),
		SweepService:           NewSweepService(monitor, requests),
		AppInfoService:         NewAppInfoService(build, logger),
	}
}
