// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *StructuredConfig) validate() error {
	if cfg.App.PasswordHashKey == "" || cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}
	if cfg.App.TokenDuration <= 0 || cfg.App.AccessWindow <= 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.App.SystemKey == "" {
		return ErrMissingSystemKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Notify.QueueSize <= 0 || (cfg.Notify.AMQPURL != "" && cfg.Notify.AMQPQueue == "") {
		return ErrInvalidNotifyConfigs
	}
	if cfg.Notify.RedisChannelPrefix != "" && cfg.Storage.Redis.Address == "" {
		return ErrInvalidNotifyConfigs
	}

	if strings.TrimSpace(cfg.Workers.InactivitySchedule) == "" || strings.TrimSpace(cfg.Workers.AutoApproveSchedule) == "" {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (a *Adapter) validate() error {
	if a.HTTPAddress == "" || a.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if !strings.HasPrefix(a.HTTPAddress, "http://") && !strings.HasPrefix(a.HTTPAddress, "https://") {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
