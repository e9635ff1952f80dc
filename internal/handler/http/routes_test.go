// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/vaultkeeper/internal/service"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestRouterHandler(t, &service.Services{}).Init()
}

// ---- Public routes: reachable without auth ----

// Bodies and queries are left empty so every handler stops at input
// validation before touching a service.
func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/version", http.StatusOK},
		{http.MethodPost, "/api/user/register", http.StatusBadRequest},
		{http.MethodPost, "/api/user/login", http.StatusBadRequest},
		{http.MethodGet, "/api/user/params", http.StatusBadRequest},
		{http.MethodPost, "/api/trusted-contacts/invitation", http.StatusBadRequest},
		{http.MethodPost, "/api/emergency-access-request", http.StatusBadRequest},
		{http.MethodGet, "/api/emergency-access-request/5/status", http.StatusBadRequest},
		{http.MethodPost, "/api/emergency-access/verify", http.StatusBadRequest},
		{http.MethodGet, "/api/emergency-access/5/entries", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/trusted-contacts"},
		{http.MethodPost, "/api/trusted-contacts"},
		{http.MethodDelete, "/api/trusted-contacts/3"},
		{http.MethodPost, "/api/trusted-contacts/3/reset-inactivity"},
		{http.MethodGet, "/api/access-requests"},
		{http.MethodGet, "/api/access-requests/pending"},
		{http.MethodPost, "/api/access-requests/9/respond"},
		{http.MethodPost, "/api/access-requests/9/key-wrap"},
		{http.MethodGet, "/api/entries"},
		{http.MethodPost, "/api/entries"},
		{http.MethodPut, "/api/entries/4/emergency-access"},
		{http.MethodGet, "/api/activity"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" without token → 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})

		t.Run(tt.method+" "+tt.path+" with foreign token → 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer someone.else")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

// ---- Protected routes: pass with valid token ----

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/trusted-contacts"},
		{http.MethodPost, "/api/access-requests/9/respond"},
		{http.MethodPost, "/api/access-requests/9/key-wrap"},
		{http.MethodPost, "/api/entries"},
		{http.MethodPut, "/api/entries/4/emergency-access"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" with token → 400 on empty body", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", ownerBearer)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

// ---- System route ----

func TestInit_CheckInactivity_RequiresSystemKey(t *testing.T) {
	router := newTestRouter(t)

	for _, key := range []string{"", "wrong", ownerBearer} {
		req := httptest.NewRequest(http.MethodGet, "/api/trusted-contacts/check-inactivity", nil)
		if key != "" {
			req.Header.Set(systemKeyHeader, key)
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "key %q", key)
	}
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method  string
		path    string
		addAuth bool
	}{
		{http.MethodGet, "/api/nonexistent", false},
		{http.MethodGet, "/api/entries/unknown/path", true},
		{http.MethodGet, "/totally/wrong", false},
		{http.MethodPatch, "/api/user/register", false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.addAuth {
				req.Header.Set("Authorization", ownerBearer)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Wrong method on existing route returns 404 (CheckHTTPMethod) ----

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"GET on register (POST only)", http.MethodGet, "/api/user/register"},
		{"GET on login (POST only)", http.MethodGet, "/api/user/login"},
		{"POST on version (GET only)", http.MethodPost, "/api/version"},
		{"DELETE on entries (GET and POST only)", http.MethodDelete, "/api/entries"},
		{"PUT on pending requests (GET only)", http.MethodPut, "/api/access-requests/pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", ownerBearer)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code,
				"CheckHTTPMethod should replace 405 with 404")
		})
	}
}

// ---- X-Trace-ID ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestRouter(t)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}
