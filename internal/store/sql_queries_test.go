// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/vaultkeeper/models"
	"github.com/stretchr/testify/require"
)

func TestBuildListRequestsQuery(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []models.RequestStatus
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name: "no status filter",
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "from access_requests r")
				require.Contains(t, q, "join trusted_contacts c on c.id = r.contact_id")
				require.Contains(t, q, "c.user_id = $1")
				require.NotContains(t, q, "r.status in")

				require.Len(t, args, 1)
				require.Equal(t, int64(42), args[0])
			},
		},
		{
			name:     "several statuses",
			statuses: []models.RequestStatus{models.RequestPending, models.RequestApproved},
			checkQuery: func(t *testing.T, query string, args []any) {
				// squirrel generates IN ($2,$3) for a slice.
				require.Contains(t, query, "r.status IN ($2,$3)")

				require.Len(t, args, 3)
				require.Equal(t, "pending", args[1])
				require.Equal(t, "approved", args[2])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListRequestsQuery(42, tt.statuses)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func TestBuildListEntriesQuery_SkipsDeleted(t *testing.T) {
	query, args, err := buildListEntriesQuery(7)
	require.NoError(t, err)

	require.Contains(t, query, "user_id = $1")
	require.Contains(t, query, "status <> $2")
	require.Equal(t, []any{int64(7), "deleted"}, args)
}

func TestBuildListActivityQuery_Limit(t *testing.T) {
	query, _, err := buildListActivityQuery(7, 50)
	require.NoError(t, err)
	require.Contains(t, query, "LIMIT 50")

	query, _, err = buildListActivityQuery(7, 0)
	require.NoError(t, err)
	require.NotContains(t, query, "LIMIT")
}
