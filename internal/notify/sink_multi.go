// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"errors"

	"github.com/MKhiriev/vaultkeeper/internal/config"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/models"
	"github.com/redis/go-redis/v9"
)

// MultiSink fans a notification out to every sink. One failing sink does
// not stop the others.
type MultiSink []Sink

func (m MultiSink) Notify(ctx context.Context, n models.Notification) error {
	var errs []error
	for _, s := range m {
		if err := s.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewSinks builds the configured delivery channels. The log sink is always
// present; Redis needs both a client and a channel prefix.
func NewSinks(cfg config.Notify, redisClient *redis.Client, log *logger.Logger) MultiSink {
	sinks := MultiSink{NewLogSink(log)}

	if redisClient != nil && cfg.RedisChannelPrefix != "" {
		log.Info().Str("prefix", cfg.RedisChannelPrefix).Msg("redis push notifications enabled")
		sinks = append(sinks, NewRedisSink(redisClient, cfg.RedisChannelPrefix))
	}

	if cfg.AMQPURL != "" {
		log.Info().Str("queue", cfg.AMQPQueue).Msg("amqp email notifications enabled")
		sinks = append(sinks, NewAMQPSink(cfg.AMQPURL, cfg.AMQPQueue))
	}

	return sinks
}
