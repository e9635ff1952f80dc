// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/config"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisKeyWrapStore_RoundTripAndExpiry(t *testing.T) {
	mr, client := newMiniredisClient(t)
	s := NewRedisKeyWrapStore(client)
	ctx := context.Background()

	require.NoError(t, s.PutKeyWrap(ctx, 11, "wrapped", time.Hour))

	got, err := s.GetKeyWrap(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "wrapped", got)
	assert.Equal(t, time.Hour, mr.TTL("vaultkeeper:keywrap:11"))

	mr.FastForward(time.Hour + time.Second)

	_, err = s.GetKeyWrap(ctx, 11)
	assert.ErrorIs(t, err, ErrKeyWrapNotFound)
}

func TestRedisKeyWrapStore_Delete(t *testing.T) {
	_, client := newMiniredisClient(t)
	s := NewRedisKeyWrapStore(client)
	ctx := context.Background()

	require.NoError(t, s.PutKeyWrap(ctx, 11, "wrapped", time.Hour))
	require.NoError(t, s.DeleteKeyWrap(ctx, 11))

	_, err := s.GetKeyWrap(ctx, 11)
	assert.ErrorIs(t, err, ErrKeyWrapNotFound)
}

func TestKeyWrapStore_RejectsNonPositiveTTL(t *testing.T) {
	_, client := newMiniredisClient(t)
	ctx := context.Background()

	assert.Error(t, NewRedisKeyWrapStore(client).PutKeyWrap(ctx, 1, "w", 0))
	assert.Error(t, NewMemoryKeyWrapStore(time.Now).PutKeyWrap(ctx, 1, "w", -time.Second))
}

func TestMemoryKeyWrapStore_Expiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryKeyWrapStore(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, s.PutKeyWrap(ctx, 3, "wrapped", time.Minute))

	got, err := s.GetKeyWrap(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "wrapped", got)

	now = now.Add(time.Minute)

	_, err = s.GetKeyWrap(ctx, 3)
	assert.ErrorIs(t, err, ErrKeyWrapNotFound)
}

func TestNewKeyWrapStore_FallsBackToMemory(t *testing.T) {
	s := NewKeyWrapStore(nil, logger.Nop())
	_, ok := s.(*MemoryKeyWrapStore)
	assert.True(t, ok)
}

func TestNewRedisClient(t *testing.T) {
	t.Run("disabled without address", func(t *testing.T) {
		client, err := NewRedisClient(context.Background(), config.Redis{}, logger.Nop())
		require.NoError(t, err)
		assert.Nil(t, client)
	})

	t.Run("pings the server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := NewRedisClient(context.Background(), config.Redis{Address: mr.Addr()}, logger.Nop())
		require.NoError(t, err)
		require.NotNil(t, client)
		_ = client.Close()
	})

	t.Run("unreachable server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, err := NewRedisClient(context.Background(), config.Redis{Address: addr}, logger.Nop())
		assert.Error(t, err)
	})
}
