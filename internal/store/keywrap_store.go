// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

const keyWrapPrefix = "vaultkeeper:keywrap:"

// NewKeyWrapStore returns a Redis-backed store when client is set and an
// in-process one otherwise.
func NewKeyWrapStore(client *redis.Client, log *logger.Logger) KeyWrapStore {
	if client == nil {
		log.Warn().Msg("wrapped keys are kept in memory and are lost on restart")
		return NewMemoryKeyWrapStore(time.Now)
	}

	return NewRedisKeyWrapStore(client)
}

// RedisKeyWrapStore keeps wrapped keys under TTL keys.
type RedisKeyWrapStore struct {
	client *redis.Client
}

func NewRedisKeyWrapStore(client *redis.Client) *RedisKeyWrapStore {
	return &RedisKeyWrapStore{client: client}
}

func keyWrapKey(requestID int64) string {
	return keyWrapPrefix + strconv.FormatInt(requestID, 10)
}

func (s *RedisKeyWrapStore) PutKeyWrap(ctx context.Context, requestID int64, wrappedKey string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("key wrap ttl must be positive, got %s", ttl)
	}

	if err := s.client.Set(ctx, keyWrapKey(requestID), wrappedKey, ttl).Err(); err != nil {
		return fmt.Errorf("error storing wrapped key: %w", err)
	}

	return nil
}

func (s *RedisKeyWrapStore) GetKeyWrap(ctx context.Context, requestID int64) (string, error) {
	wrapped, err := s.client.Get(ctx, keyWrapKey(requestID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyWrapNotFound
	}
	if err != nil {
		return "", fmt.Errorf("error reading wrapped key: %w", err)
	}

	return wrapped, nil
}

func (s *RedisKeyWrapStore) DeleteKeyWrap(ctx context.Context, requestID int64) error {
	if err := s.client.Del(ctx, keyWrapKey(requestID)).Err(); err != nil {
		return fmt.Errorf("error deleting wrapped key: %w", err)
	}

	return nil
}

// MemoryKeyWrapStore is a mutex-guarded TTL map for single-instance
// deployments and tests.
type MemoryKeyWrapStore struct {
	mu    sync.Mutex
	now   func() time.Time
	items map[int64]memoryKeyWrap
}

type memoryKeyWrap struct {
	wrappedKey string
	expiresAt  time.Time
}

func NewMemoryKeyWrapStore(now func() time.Time) *MemoryKeyWrapStore {
	return &MemoryKeyWrapStore{
		now:   now,
		items: make(map[int64]memoryKeyWrap),
	}
}

func (s *MemoryKeyWrapStore) PutKeyWrap(_ context.Context, requestID int64, wrappedKey string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("key wrap ttl must be positive, got %s", ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanupLocked()
	s.items[requestID] = memoryKeyWrap{wrappedKey: wrappedKey, expiresAt: s.now().Add(ttl)}

	return nil
}

func (s *MemoryKeyWrapStore) GetKeyWrap(_ context.Context, requestID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanupLocked()
	item, ok := s.items[requestID]
	if !ok {
		return "", ErrKeyWrapNotFound
	}

	return item.wrappedKey, nil
}

func (s *MemoryKeyWrapStore) DeleteKeyWrap(_ context.Context, requestID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, requestID)

	return nil
}

func (s *MemoryKeyWrapStore) cleanupLocked() {
	now := s.now()
	for id, item := range s.items {
		if !now.Before(item.expiresAt) {
			delete(s.items, id)
		}
	}
}
