// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordActivity(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewActivityRepository(db, logger.Nop())

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	requestID := int64(11)

	mock.ExpectExec("INSERT INTO activity_log").
		WithArgs(int64(1), nil, requestID, models.ActivityTokenVerified, models.ActorContact, "", at).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.RecordActivity(testContext(), models.ActivityEntry{
		UserID:    1,
		RequestID: &requestID,
		Action:    models.ActivityTokenVerified,
		Actor:     models.ActorContact,
		CreatedAt: at,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActivity(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewActivityRepository(db, logger.Nop())

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM activity_log").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "contact_id", "request_id", "action", "actor", "details", "created_at"}).
			AddRow(1, 1, 5, nil, "contact_added", "owner", "", at))

	entries, err := repo.ListActivity(testContext(), 1, 20)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].ContactID)
	assert.Equal(t, int64(5), *entries[0].ContactID)
	assert.Nil(t, entries[0].RequestID)
}
