// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/config"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/store"
	"github.com/MKhiriev/vaultkeeper/internal/utils"
	"github.com/MKhiriev/vaultkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubRegistry is the part of TrustedContactRegistry that login touches.
type stubRegistry struct {
	TrustedContactRegistry
	resetFor []int64
	resetErr error
}

func (s *stubRegistry) ResetInactivityForOwner(_ context.Context, ownerID int64) error {
	s.resetFor = append(s.resetFor, ownerID)
	return s.resetErr
}

func newTestAuthService(t *testing.T) (*authService, *storeMocks, *stubRegistry) {
	t.Helper()
	m, storages := newStoreMocks(t)
	registry := &stubRegistry{}

	cfg := config.App{
		PasswordHashKey: "hash-key",
		TokenSignKey:    "sign-key",
		TokenIssuer:     "vaultkeeper",
		TokenDuration:   time.Hour,
	}
	svc := NewAuthService(storages.UserRepository, registry, cfg, logger.Nop()).(*authService)
	svc.now = fixedClock(baseTime)

	return svc, m, registry
}

func storedOwner() models.User {
	u := testOwner()
	u.AuthHash = utils.HashString("client-hash", "hash-key")
	u.EncryptionSalt = "c2FsdA=="
	return u
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuth_RegisterUser_HashesAndSalts(t *testing.T) {
	svc, m, _ := newTestAuthService(t)
	ctx := context.Background()

	m.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "owner@example.com", u.Email)
			assert.NotEqual(t, "client-hash", u.AuthHash)
			assert.Equal(t, utils.HashString("client-hash", "hash-key"), u.AuthHash)
			assert.NotEmpty(t, u.EncryptionSalt)
			assert.Equal(t, models.UserActive, u.Status)
			u.UserID = 1
			return u, nil
		})

	user, err := svc.RegisterUser(ctx, models.User{Email: " owner@example.com ", AuthHash: "client-hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuth_RegisterUser_KeepsClientSalt(t *testing.T) {
	svc, m, _ := newTestAuthService(t)
	ctx := context.Background()

	m.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "client-salt", u.EncryptionSalt)
			return u, nil
		})

	_, err := svc.RegisterUser(ctx, models.User{Email: "owner@example.com", AuthHash: "h", EncryptionSalt: "client-salt"})
	require.NoError(t, err)
}

func TestAuth_RegisterUser_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing auth hash", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t)
		_, err := svc.RegisterUser(ctx, models.User{Email: "owner@example.com"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, m, _ := newTestAuthService(t)
		m.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)
		_, err := svc.RegisterUser(ctx, models.User{Email: "owner@example.com", AuthHash: "h"})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuth_Login_ResetsInactivity(t *testing.T) {
	svc, m, registry := newTestAuthService(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByEmail(ctx, "owner@example.com").Return(storedOwner(), nil)
	m.users.EXPECT().TouchLastActivity(ctx, int64(1), baseTime).Return(nil)

	user, err := svc.Login(ctx, models.User{Email: "owner@example.com", AuthHash: "client-hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	require.NotNil(t, user.LastActivityAt)
	assert.Equal(t, baseTime, *user.LastActivityAt)
	assert.Equal(t, []int64{1}, registry.resetFor)
}

func TestAuth_Login_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong hash", func(t *testing.T) {
		svc, m, registry := newTestAuthService(t)
		m.users.EXPECT().FindUserByEmail(ctx, "owner@example.com").Return(storedOwner(), nil)
		_, err := svc.Login(ctx, models.User{Email: "owner@example.com", AuthHash: "guess"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, registry.resetFor)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, m, _ := newTestAuthService(t)
		m.users.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)
		_, err := svc.Login(ctx, models.User{Email: "ghost@example.com", AuthHash: "h"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("locked account", func(t *testing.T) {
		svc, m, _ := newTestAuthService(t)
		owner := storedOwner()
		owner.Status = models.UserLocked
		m.users.EXPECT().FindUserByEmail(ctx, "owner@example.com").Return(owner, nil)
		_, err := svc.Login(ctx, models.User{Email: "owner@example.com", AuthHash: "client-hash"})
		assert.ErrorIs(t, err, ErrAccountNotActive)
	})

	t.Run("reset fails", func(t *testing.T) {
		svc, m, registry := newTestAuthService(t)
		registry.resetErr = errors.New("db down")
		m.users.EXPECT().FindUserByEmail(ctx, "owner@example.com").Return(storedOwner(), nil)
		_, err := svc.Login(ctx, models.User{Email: "owner@example.com", AuthHash: "client-hash"})
		require.Error(t, err)
	})
}

func TestAuth_Params(t *testing.T) {
	svc, m, _ := newTestAuthService(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByEmail(ctx, "owner@example.com").Return(storedOwner(), nil)
	m.users.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)

	params, err := svc.Params(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserParams{Email: "owner@example.com", EncryptionSalt: "c2FsdA=="}, params)

	_, err = svc.Params(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuth_TokenRoundTrip(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 5})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
