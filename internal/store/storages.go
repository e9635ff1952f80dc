// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/vaultkeeper/internal/config"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups every repository the services depend on.
type Storages struct {
	UserRepository           UserRepository
	TrustedContactRepository TrustedContactRepository
	AccessRequestRepository  AccessRequestRepository
	VaultEntryRepository     VaultEntryRepository
	ActivityRepository       ActivityRepository
	KeyWrapStore             KeyWrapStore

	// Redis is nil when no address is configured. It is shared with the
	// notification sinks.
	Redis *redis.Client

	db *DB
}

// NewStorages connects to Postgres, applies migrations and connects to
// Redis when it is configured.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	redisClient, err := NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return newStorages(db, redisClient, log), nil
}

func newStorages(db *DB, redisClient *redis.Client, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:           NewUserRepository(db, log),
		TrustedContactRepository: NewTrustedContactRepository(db, log),
		AccessRequestRepository:  NewAccessRequestRepository(db, log),
		VaultEntryRepository:     NewVaultEntryRepository(db, log),
		ActivityRepository:       NewActivityRepository(db, log),
		KeyWrapStore:             NewKeyWrapStore(redisClient, log),
		Redis:                    redisClient,
		db:                       db,
	}
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.Redis != nil {
		errs = append(errs, s.Redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
