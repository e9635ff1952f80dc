// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contactRowColumns = []string{
	"id", "user_id", "name", "email", "status", "access_level", "waiting_period", "inactivity_period",
	"last_inactivity_reset_date", "public_key", "invitation_hash", "created_at", "updated_at",
}

var requestRowColumns = []string{
	"id", "contact_id", "user_id", "reason", "origin", "status", "requested_at",
	"auto_approve_at", "expires_at", "responded_at", "response_message", "resolved_by", "access_token_hash",
	"sealed_token",
}

func contactRow(status models.ContactStatus, at time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(contactRowColumns).
		AddRow(5, 1, "Alice", "alice@example.com", string(status), "view", "48 hours", "30 days", at, "", "", at, at)
}

func TestCreateContact_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrustedContactRepository(db, logger.Nop())

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO trusted_contacts").
		WithArgs(int64(1), "Alice", "alice@example.com", models.ContactPending, models.AccessLevelView,
			"48 hours", "30 days", at, "invitation-hash", at).
		WillReturnRows(contactRow(models.ContactPending, at))

	created, err := repo.CreateContact(testContext(), models.TrustedContact{
		UserID:                  1,
		Name:                    "Alice",
		Email:                   "alice@example.com",
		Status:                  models.ContactPending,
		AccessLevel:             models.AccessLevelView,
		WaitingPeriod:           models.ParsePeriod("48 hours"),
		InactivityPeriod:        models.ParsePeriod("30 days"),
		LastInactivityResetDate: at,
		InvitationHash:          "invitation-hash",
		CreatedAt:               at,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, 48*time.Hour, created.WaitingPeriod.Duration())
	assert.Equal(t, "48 hours", created.WaitingPeriod.String())
	assert.Equal(t, 30*24*time.Hour, created.InactivityPeriod.Duration())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContact_SecondContactRejected(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrustedContactRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO trusted_contacts").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateContact(testContext(), models.TrustedContact{UserID: 1})
	assert.ErrorIs(t, err, ErrContactAlreadyExists)
}

func TestFindCurrentContact_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrustedContactRepository(db, logger.Nop())

	mock.ExpectQuery("FROM trusted_contacts").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(contactRowColumns))

	_, err := repo.FindCurrentContact(testContext(), 1)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestListActiveContacts_RetriesTransientError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrustedContactRepository(db, logger.Nop())

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM trusted_contacts").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("FROM trusted_contacts").
		WillReturnRows(contactRow(models.ContactActive, at))

	contacts, err := repo.ListActiveContacts(testContext())
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, models.ContactActive, contacts[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveContacts_PermanentErrorNotRetried(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrustedContactRepository(db, logger.Nop())

	mock.ExpectQuery("FROM trusted_contacts").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.ListActiveContacts(testContext())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnswerInvitation_NotPending(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrustedContactRepository(db, logger.Nop())

	mock.ExpectQuery("UPDATE trusted_contacts").
		WillReturnRows(sqlmock.NewRows(contactRowColumns))

	_, err := repo.AnswerInvitation(testContext(), 5, models.ContactActive, "pub", time.Now())
	assert.ErrorIs(t, err, ErrContactStateConflict)
}

func TestResetInactivity(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrustedContactRepository(db, logger.Nop())

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("GREATEST\\(last_inactivity_reset_date").
		WithArgs(int64(5), at).
		WillReturnRows(contactRow(models.ContactActive, at))

	contact, err := repo.ResetInactivity(testContext(), 5, at)
	require.NoError(t, err)
	assert.True(t, contact.LastInactivityResetDate.Equal(at))
}

func TestRevokeContact_DeniesPendingRequests(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrustedContactRepository(db, logger.Nop())

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SET status = 'revoked'").
		WithArgs(int64(5), at).
		WillReturnRows(contactRow(models.ContactRevoked, at))
	mock.ExpectQuery("SET status = 'denied'").
		WithArgs(int64(5), at, "contact revoked").
		WillReturnRows(sqlmock.NewRows(requestRowColumns).
			AddRow(9, 5, 1, "help", "contact", "denied", at, at.Add(time.Hour), nil, at, "contact revoked", "owner", nil, nil))
	mock.ExpectCommit()

	contact, denied, err := repo.RevokeContact(testContext(), 5, at, "contact revoked")
	require.NoError(t, err)
	assert.Equal(t, models.ContactRevoked, contact.Status)
	require.Len(t, denied, 1)
	assert.Equal(t, models.RequestDenied, denied[0].Status)
	assert.Equal(t, int64(1), denied[0].OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokeContact_RollsBackOnFailure(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrustedContactRepository(db, logger.Nop())

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SET status = 'revoked'").
		WillReturnRows(contactRow(models.ContactRevoked, at))
	mock.ExpectQuery("SET status = 'denied'").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, _, err := repo.RevokeContact(testContext(), 5, at, "")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokeContact_AlreadyRevoked(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrustedContactRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("SET status = 'revoked'").
		WillReturnRows(sqlmock.NewRows(contactRowColumns))
	mock.ExpectRollback()

	_, _, err := repo.RevokeContact(testContext(), 5, time.Now(), "")
	assert.ErrorIs(t, err, ErrContactStateConflict)
}
