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

var userRowColumns = []string{"user_id", "email", "name", "auth_hash", "encryption_salt", "status", "last_activity_at", "created_at"}

func TestCreateUser_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows(userRowColumns).
		AddRow(1, "owner@example.com", "Owner", "hmac", "salt", "active", nil, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("owner@example.com", "Owner", "hmac", "salt", models.UserActive).
		WillReturnRows(rows)

	created, err := repo.CreateUser(testContext(), models.User{
		Email:          "owner@example.com",
		Name:           "Owner",
		AuthHash:       "hmac",
		EncryptionSalt: "salt",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, models.UserActive, created.Status)
	assert.Nil(t, created.LastActivityAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(testContext(), models.User{Email: "owner@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(testContext(), models.User{Email: "owner@example.com"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUserByEmail(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT user_id").
					WithArgs("Owner@Example.com").
					WillReturnRows(sqlmock.NewRows(userRowColumns).
						AddRow(7, "owner@example.com", "Owner", "hmac", "salt", "active", now, now))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT user_id").
					WillReturnRows(sqlmock.NewRows(userRowColumns))
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT user_id").
					WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewUserRepository(db, logger.Nop())
			tt.setup(mock)

			user, err := repo.FindUserByEmail(testContext(), "Owner@Example.com")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), user.UserID)
			require.NotNil(t, user.LastActivityAt)
			assert.True(t, user.LastActivityAt.Equal(now))
		})
	}
}

func TestTouchLastActivity(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("updated", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectExec("UPDATE users").
			WithArgs(int64(3), at).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.TouchLastActivity(testContext(), 3, at))
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectExec("UPDATE users").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.TouchLastActivity(testContext(), 3, at), ErrUserNotFound)
	})
}
