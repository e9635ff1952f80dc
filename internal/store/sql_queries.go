// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/vaultkeeper/models"
)

// psql builds Postgres queries with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	userColumns = `user_id, email, name, auth_hash, encryption_salt, status, last_activity_at, created_at`

	createUser = `INSERT INTO users (email, name, auth_hash, encryption_salt, status)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE lower(email) = lower($1);`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	touchLastActivity = `UPDATE users
    SET last_activity_at = GREATEST(COALESCE(last_activity_at, $2), $2)
    WHERE user_id = $1;`
)

const (
	contactColumns = `id, user_id, name, email, status, access_level, waiting_period, inactivity_period,
    last_inactivity_reset_date, public_key, COALESCE(invitation_hash, ''), created_at, updated_at`

	createContact = `INSERT INTO trusted_contacts (
        user_id, name, email, status, access_level, waiting_period, inactivity_period,
        last_inactivity_reset_date, invitation_hash, created_at, updated_at
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
    RETURNING ` + contactColumns + `;`

	findContactByID = `SELECT ` + contactColumns + `
    FROM trusted_contacts
    WHERE id = $1;`

	findCurrentContact = `SELECT ` + contactColumns + `
    FROM trusted_contacts
    WHERE user_id = $1 AND status IN ('pending', 'active');`

	findContactByInvitation = `SELECT ` + contactColumns + `
    FROM trusted_contacts
    WHERE invitation_hash = $1;`

	listActiveContacts = `SELECT ` + contactColumns + `
    FROM trusted_contacts
    WHERE status = 'active'
    ORDER BY id;`

	// the invitation code is single use
	answerInvitation = `UPDATE trusted_contacts
    SET status = $2,
        public_key = $3,
        invitation_hash = NULL,
        last_inactivity_reset_date = GREATEST(last_inactivity_reset_date, $4),
        updated_at = $4
    WHERE id = $1 AND status = 'pending'
    RETURNING ` + contactColumns + `;`

	resetInactivity = `UPDATE trusted_contacts
    SET last_inactivity_reset_date = GREATEST(last_inactivity_reset_date, $2),
        updated_at = $2
    WHERE id = $1 AND status IN ('pending', 'active')
    RETURNING ` + contactColumns + `;`

	resetInactivityForOwner = `UPDATE trusted_contacts
    SET last_inactivity_reset_date = GREATEST(last_inactivity_reset_date, $2),
        updated_at = $2
    WHERE user_id = $1 AND status IN ('pending', 'active');`

	revokeContact = `UPDATE trusted_contacts
    SET status = 'revoked',
        invitation_hash = NULL,
        updated_at = $2
    WHERE id = $1 AND status IN ('pending', 'active')
    RETURNING ` + contactColumns + `;`
)

const (
	requestColumns = `r.id, r.contact_id, c.user_id, r.reason, r.origin, r.status, r.requested_at,
    r.auto_approve_at, r.expires_at, r.responded_at, r.response_message, r.resolved_by, r.access_token_hash,
    r.sealed_token`

	requestJoin = ` FROM access_requests r JOIN trusted_contacts c ON c.id = r.contact_id`

	// requestJoinCTE joins a data-modifying CTE named r.
	requestJoinCTE = ` FROM r JOIN trusted_contacts c ON c.id = r.contact_id`

	createRequest = `WITH r AS (
        INSERT INTO access_requests (contact_id, reason, origin, status, requested_at, auto_approve_at)
        VALUES ($1, $2, $3, 'pending', $4, $5)
        RETURNING *
    )
    SELECT ` + requestColumns + requestJoinCTE + `;`

	findRequestByID = `SELECT ` + requestColumns + requestJoin + `
    WHERE r.id = $1;`

	findRequestByTokenHash = `SELECT ` + requestColumns + requestJoin + `
    WHERE r.access_token_hash = $1;`

	findPendingRequest = `SELECT ` + requestColumns + requestJoin + `
    WHERE r.contact_id = $1 AND r.status = 'pending';`

	hasRequestSince = `SELECT EXISTS (
        SELECT 1 FROM access_requests
        WHERE contact_id = $1 AND requested_at >= $2
    );`

	listDueRequests = `SELECT ` + requestColumns + requestJoin + `
    WHERE r.status = 'pending' AND r.auto_approve_at <= $1
    ORDER BY r.auto_approve_at, r.id;`

	// resolveRequest is the compare-and-swap on status: it only touches a
	// pending row, so of two racing resolutions exactly one returns a row.
	resolveRequest = `WITH r AS (
        UPDATE access_requests
        SET status = $2,
            responded_at = $3,
            expires_at = $4,
            response_message = $5,
            resolved_by = $6,
            access_token_hash = $7,
            sealed_token = $8
        WHERE id = $1 AND status = 'pending'
        RETURNING *
    )
    SELECT ` + requestColumns + requestJoinCTE + `;`

	denyPendingForContact = `WITH r AS (
        UPDATE access_requests
        SET status = 'denied',
            responded_at = $2,
            response_message = $3,
            resolved_by = 'owner'
        WHERE contact_id = $1 AND status = 'pending'
        RETURNING *
    )
    SELECT ` + requestColumns + requestJoinCTE + `;`
)

const (
	entryColumns = `id, user_id, title, content, allow_emergency_access, status, created_at, updated_at`

	createEntry = `INSERT INTO vault_entries (user_id, title, content, allow_emergency_access, status, created_at, updated_at)
    VALUES ($1, $2, $3, $4, 'active', $5, $5)
    RETURNING ` + entryColumns + `;`

	listEmergencyEntries = `SELECT ` + entryColumns + `
    FROM vault_entries
    WHERE user_id = $1 AND allow_emergency_access AND status = 'active'
    ORDER BY id;`

	setEmergencyAccess = `UPDATE vault_entries
    SET allow_emergency_access = $3,
        updated_at = $4
    WHERE id = $1 AND user_id = $2 AND status <> 'deleted'
    RETURNING ` + entryColumns + `;`
)

const (
	recordActivity = `INSERT INTO activity_log (user_id, contact_id, request_id, action, actor, details, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7);`
)

// buildListRequestsQuery selects an owner's requests, newest first,
// optionally filtered by status.
func buildListRequestsQuery(ownerID int64, statuses []models.RequestStatus) (string, []any, error) {
	q := psql.Select(
		"r.id", "r.contact_id", "c.user_id", "r.reason", "r.origin", "r.status", "r.requested_at",
		"r.auto_approve_at", "r.expires_at", "r.responded_at", "r.response_message", "r.resolved_by", "r.access_token_hash",
		"r.sealed_token",
	).
		From("access_requests r").
		Join("trusted_contacts c ON c.id = r.contact_id").
		Where(sq.Eq{"c.user_id": ownerID}).
		OrderBy("r.requested_at DESC", "r.id DESC")

	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, string(s))
		}
		q = q.Where(sq.Eq{"r.status": values})
	}

	return q.ToSql()
}

// buildListEntriesQuery selects an owner's entries that are not deleted.
func buildListEntriesQuery(ownerID int64) (string, []any, error) {
	return psql.Select("id", "user_id", "title", "content", "allow_emergency_access", "status", "created_at", "updated_at").
		From("vault_entries").
		Where(sq.Eq{"user_id": ownerID}).
		Where(sq.NotEq{"status": string(models.EntryDeleted)}).
		OrderBy("id").
		ToSql()
}

// buildListActivityQuery selects the newest audit rows of an owner. A zero
// limit returns everything.
func buildListActivityQuery(ownerID int64, limit uint64) (string, []any, error) {
	q := psql.Select("id", "user_id", "contact_id", "request_id", "action", "actor", "details", "created_at").
		From("activity_log").
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	return q.ToSql()
}
