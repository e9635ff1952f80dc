// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/config"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 3 * time.Second

// NewRedisClient connects to Redis and pings it. It returns nil without an
// error when no address is configured.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	if cfg.Address == "" {
		log.Info().Str("func", "NewRedisClient").Msg("redis address is empty, redis is disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Str("address", cfg.Address).Msg("error pinging redis")
		_ = client.Close()
		return nil, fmt.Errorf("error pinging redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Str("address", cfg.Address).Msg("connected to redis successfully")

	return client, nil
}
