// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vaultkeeper/models"
	"github.com/redis/go-redis/v9"
)

// RedisSink publishes the versioned envelope to "<prefix>:<email>". The
// WebSocket gateway subscribes to the channels of connected users.
type RedisSink struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

func NewRedisSink(client *redis.Client, prefix string) *RedisSink {
	return &RedisSink{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

// Channel returns the pub/sub channel of a recipient.
func (s *RedisSink) Channel(to models.Recipient) string {
	return s.prefix + ":" + strings.ToLower(to.Email)
}

func (s *RedisSink) Notify(ctx context.Context, n models.Notification) error {
	envelope, err := models.NewNotificationEnvelope(n, s.now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal notification envelope: %w", err)
	}

	if err = s.client.Publish(ctx, s.Channel(n.To()), body).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", n.Kind(), err)
	}

	return nil
}
