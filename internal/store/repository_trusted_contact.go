// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/models"
	"github.com/jackc/pgerrcode"
)

// trustedContactRepository is the PostgreSQL-backed implementation of
// [TrustedContactRepository]. The one-contact-per-owner rule is enforced by
// the trusted_contacts_one_per_owner partial unique index.
type trustedContactRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTrustedContactRepository(db *DB, logger *logger.Logger) TrustedContactRepository {
	logger.Debug().Msg("creating trusted contact repository")
	return &trustedContactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *trustedContactRepository) CreateContact(ctx context.Context, contact models.TrustedContact) (models.TrustedContact, error) {
	log := logger.FromContext(ctx)

	var invitation any
	if contact.InvitationHash != "" {
		invitation = contact.InvitationHash
	}

	row := r.db.QueryRowContext(ctx, createContact,
		contact.UserID,
		contact.Name,
		contact.Email,
		contact.Status,
		contact.AccessLevel,
		contact.WaitingPeriod,
		contact.InactivityPeriod,
		contact.LastInactivityResetDate,
		invitation,
		contact.CreatedAt,
	)

	created, err := scanContact(row)
	if err != nil {
		log.Err(err).Str("func", "*trustedContactRepository.CreateContact").Msg("error creating trusted contact")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.TrustedContact{}, ErrContactAlreadyExists
		default:
			return models.TrustedContact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

func (r *trustedContactRepository) FindContactByID(ctx context.Context, contactID int64) (models.TrustedContact, error) {
	return r.findOne(ctx, "*trustedContactRepository.FindContactByID", findContactByID, contactID)
}

func (r *trustedContactRepository) FindCurrentContact(ctx context.Context, ownerID int64) (models.TrustedContact, error) {
	return r.findOne(ctx, "*trustedContactRepository.FindCurrentContact", findCurrentContact, ownerID)
}

func (r *trustedContactRepository) FindContactByInvitation(ctx context.Context, invitationHash string) (models.TrustedContact, error) {
	return r.findOne(ctx, "*trustedContactRepository.FindContactByInvitation", findContactByInvitation, invitationHash)
}

func (r *trustedContactRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.TrustedContact, error) {
	log := logger.FromContext(ctx)

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TrustedContact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding trusted contact")
		return models.TrustedContact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

// ListActiveContacts is read by the inactivity sweep and retried on
// transient failures.
func (r *trustedContactRepository) ListActiveContacts(ctx context.Context) ([]models.TrustedContact, error) {
	log := logger.FromContext(ctx)

	var contacts []models.TrustedContact
	err := r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, listActiveContacts)
		if err != nil {
			return err
		}
		defer rows.Close()

		contacts = contacts[:0]
		for rows.Next() {
			c, err := scanContact(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			contacts = append(contacts, c)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*trustedContactRepository.ListActiveContacts").Msg("error listing active contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contacts, nil
}

func (r *trustedContactRepository) AnswerInvitation(ctx context.Context, contactID int64, status models.ContactStatus, publicKey string, at time.Time) (models.TrustedContact, error) {
	return r.conditionalUpdate(ctx, "*trustedContactRepository.AnswerInvitation", answerInvitation, contactID, status, publicKey, at)
}

func (r *trustedContactRepository) ResetInactivity(ctx context.Context, contactID int64, at time.Time) (models.TrustedContact, error) {
	return r.conditionalUpdate(ctx, "*trustedContactRepository.ResetInactivity", resetInactivity, contactID, at)
}

func (r *trustedContactRepository) conditionalUpdate(ctx context.Context, funcName, query string, args ...any) (models.TrustedContact, error) {
	log := logger.FromContext(ctx)

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TrustedContact{}, ErrContactStateConflict
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating trusted contact")
		return models.TrustedContact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

func (r *trustedContactRepository) ResetInactivityForOwner(ctx context.Context, ownerID int64, at time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, resetInactivityForOwner, ownerID, at); err != nil {
		log.Err(err).Str("func", "*trustedContactRepository.ResetInactivityForOwner").Msg("error resetting inactivity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// RevokeContact runs the revoke and the denial of pending requests in one
// transaction so a revoked contact never keeps a pending request.
func (r *trustedContactRepository) RevokeContact(ctx context.Context, contactID int64, at time.Time, message string) (models.TrustedContact, []models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*trustedContactRepository.RevokeContact").Msg("error beginning transaction")
		return models.TrustedContact{}, nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	contact, err := scanContact(tx.QueryRowContext(ctx, revokeContact, contactID, at))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TrustedContact{}, nil, ErrContactStateConflict
	}
	if err != nil {
		log.Err(err).Str("func", "*trustedContactRepository.RevokeContact").Msg("error revoking trusted contact")
		return models.TrustedContact{}, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := tx.QueryContext(ctx, denyPendingForContact, contactID, at, message)
	if err != nil {
		log.Err(err).Str("func", "*trustedContactRepository.RevokeContact").Msg("error denying pending requests")
		return models.TrustedContact{}, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	denied, err := scanRequests(rows)
	if err != nil {
		log.Err(err).Str("func", "*trustedContactRepository.RevokeContact").Msg("error scanning denied requests")
		return models.TrustedContact{}, nil, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*trustedContactRepository.RevokeContact").Msg("error committing transaction")
		return models.TrustedContact{}, nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return contact, denied, nil
}

func scanContact(row rowScanner) (models.TrustedContact, error) {
	var c models.TrustedContact
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Email,
		&c.Status,
		&c.AccessLevel,
		&c.WaitingPeriod,
		&c.InactivityPeriod,
		&c.LastInactivityResetDate,
		&c.PublicKey,
		&c.InvitationHash,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
