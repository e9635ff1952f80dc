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

// accessRequestRepository is the PostgreSQL-backed implementation of
// [AccessRequestRepository].
//
// The owner of a request is never stored on it; every read joins
// trusted_contacts to derive it.
type accessRequestRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAccessRequestRepository(db *DB, logger *logger.Logger) AccessRequestRepository {
	logger.Debug().Msg("creating access request repository")
	return &accessRequestRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRequest inserts a pending request. The access_requests_one_pending
// index turns a second pending request for the same contact into
// [ErrPendingRequestExists].
func (r *accessRequestRepository) CreateRequest(ctx context.Context, request models.AccessRequest) (models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createRequest,
		request.ContactID,
		request.Reason,
		request.Origin,
		request.RequestedAt,
		request.AutoApproveAt,
	)

	created, err := scanRequest(row)
	if err != nil {
		log.Err(err).Str("func", "*accessRequestRepository.CreateRequest").Msg("error creating access request")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.AccessRequest{}, ErrPendingRequestExists
		case pgerrcode.ForeignKeyViolation:
			return models.AccessRequest{}, ErrContactNotFound
		default:
			return models.AccessRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

func (r *accessRequestRepository) FindRequestByID(ctx context.Context, requestID int64) (models.AccessRequest, error) {
	return r.findOne(ctx, "*accessRequestRepository.FindRequestByID", findRequestByID, requestID)
}

func (r *accessRequestRepository) FindRequestByTokenHash(ctx context.Context, tokenHash string) (models.AccessRequest, error) {
	return r.findOne(ctx, "*accessRequestRepository.FindRequestByTokenHash", findRequestByTokenHash, tokenHash)
}

func (r *accessRequestRepository) FindPendingRequest(ctx context.Context, contactID int64) (models.AccessRequest, error) {
	return r.findOne(ctx, "*accessRequestRepository.FindPendingRequest", findPendingRequest, contactID)
}

func (r *accessRequestRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	request, err := scanRequest(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.AccessRequest{}, ErrRequestNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding access request")
		return models.AccessRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return request, nil
}

func (r *accessRequestRepository) HasRequestSince(ctx context.Context, contactID int64, since time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, hasRequestSince, contactID, since).Scan(&exists)
	})
	if err != nil {
		log.Err(err).Str("func", "*accessRequestRepository.HasRequestSince").Msg("error checking previous requests")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

func (r *accessRequestRepository) ListRequestsByOwner(ctx context.Context, ownerID int64, statuses ...models.RequestStatus) ([]models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRequestsQuery(ownerID, statuses)
	if err != nil {
		log.Err(err).Str("func", "*accessRequestRepository.ListRequestsByOwner").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accessRequestRepository.ListRequestsByOwner").Msg("error listing access requests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return scanRequests(rows)
}

// ListDueRequests is read by the auto-approval sweep and retried on
// transient failures.
func (r *accessRequestRepository) ListDueRequests(ctx context.Context, now time.Time) ([]models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	var requests []models.AccessRequest
	err := r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, listDueRequests, now)
		if err != nil {
			return err
		}

		requests, err = scanRequests(rows)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*accessRequestRepository.ListDueRequests").Msg("error listing due requests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return requests, nil
}

// ResolveRequest is a compare-and-swap on status. When no pending row
// matches, the request was either resolved by someone else or does not
// exist, and [ErrRequestNotPending] is returned.
func (r *accessRequestRepository) ResolveRequest(ctx context.Context, res models.RequestResolution) (models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, resolveRequest,
		res.RequestID,
		res.Status,
		res.RespondedAt,
		res.ExpiresAt,
		res.ResponseMessage,
		res.ResolvedBy,
		res.AccessTokenHash,
		res.SealedToken,
	)

	resolved, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info().
			Str("func", "*accessRequestRepository.ResolveRequest").
			Int64("request_id", res.RequestID).
			Msg("request is no longer pending")
		return models.AccessRequest{}, ErrRequestNotPending
	}
	if err != nil {
		log.Err(err).Str("func", "*accessRequestRepository.ResolveRequest").Msg("error resolving access request")
		return models.AccessRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return resolved, nil
}

func scanRequest(row rowScanner) (models.AccessRequest, error) {
	var a models.AccessRequest
	err := row.Scan(
		&a.ID,
		&a.ContactID,
		&a.OwnerID,
		&a.Reason,
		&a.Origin,
		&a.Status,
		&a.RequestedAt,
		&a.AutoApproveAt,
		&a.ExpiresAt,
		&a.RespondedAt,
		&a.ResponseMessage,
		&a.ResolvedBy,
		&a.AccessTokenHash,
		&a.SealedToken,
	)
	return a, err
}

// scanRequests drains and closes rows.
func scanRequests(rows *sql.Rows) ([]models.AccessRequest, error) {
	defer rows.Close()

	requests := make([]models.AccessRequest, 0)
	for rows.Next() {
		a, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		requests = append(requests, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return requests, nil
}
