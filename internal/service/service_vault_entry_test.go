// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/store"
	"github.com/MKhiriev/vaultkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVaultEntryService_CreateEntry(t *testing.T) {
	ctx := context.Background()
	m, _ := newStoreMocks(t)
	svc := NewVaultEntryService(m.entries, logger.Nop()).(*vaultEntryService)
	svc.now = fixedClock(baseTime)

	m.entries.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.VaultEntry) (models.VaultEntry, error) {
			assert.Equal(t, int64(1), e.UserID)
			assert.True(t, e.AllowEmergencyAccess)
			assert.Equal(t, models.EntryActive, e.Status)
			assert.Equal(t, baseTime, e.CreatedAt)
			e.ID = 5
			return e, nil
		})

	entry, err := svc.CreateEntry(ctx, 1, models.NewVaultEntry{Title: "t", Content: "c", AllowEmergencyAccess: true})
	require.NoError(t, err)
	assert.Equal(t, int64(5), entry.ID)

	_, err = svc.CreateEntry(ctx, 1, models.NewVaultEntry{Title: "t"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestVaultEntryService_SetEmergencyAccess(t *testing.T) {
	ctx := context.Background()
	m, _ := newStoreMocks(t)
	svc := NewVaultEntryService(m.entries, logger.Nop()).(*vaultEntryService)
	svc.now = fixedClock(baseTime)

	m.entries.EXPECT().SetEmergencyAccess(ctx, int64(1), int64(5), true, baseTime).
		Return(models.VaultEntry{ID: 5, AllowEmergencyAccess: true}, nil)
	m.entries.EXPECT().SetEmergencyAccess(ctx, int64(1), int64(6), false, baseTime).
		Return(models.VaultEntry{}, store.ErrEntryNotFound)

	entry, err := svc.SetEmergencyAccess(ctx, 1, 5, true)
	require.NoError(t, err)
	assert.True(t, entry.AllowEmergencyAccess)

	_, err = svc.SetEmergencyAccess(ctx, 1, 6, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityService_ListActivity_ClampsLimit(t *testing.T) {
	ctx := context.Background()
	m, _ := newStoreMocks(t)
	svc := NewActivityService(m.activity, logger.Nop())

	m.activity.EXPECT().ListActivity(ctx, int64(1), uint64(defaultActivityLimit)).Return(nil, nil)
	m.activity.EXPECT().ListActivity(ctx, int64(1), uint64(maxActivityLimit)).Return(nil, nil)
	m.activity.EXPECT().ListActivity(ctx, int64(1), uint64(7)).Return([]models.ActivityEntry{{ID: 1}}, nil)

	_, err := svc.ListActivity(ctx, 1, 0)
	require.NoError(t, err)
	_, err = svc.ListActivity(ctx, 1, 10_000)
	require.NoError(t, err)
	got, err := svc.ListActivity(ctx, 1, 7)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
