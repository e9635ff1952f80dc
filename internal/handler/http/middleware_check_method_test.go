// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func methodRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
	router.Post("/api/access-requests/{requestID}/respond", ok)
	router.Get("/api/trusted-contacts", ok)
	router.Post("/api/trusted-contacts", ok)
	router.Delete("/api/trusted-contacts/{contactID}", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := methodRouter()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodPost, "/api/access-requests/5/respond", http.StatusOK},
		{http.MethodGet, "/api/access-requests/5/respond", http.StatusNotFound},
		{http.MethodPut, "/api/access-requests/5/respond", http.StatusNotFound},
		{http.MethodGet, "/api/trusted-contacts", http.StatusOK},
		{http.MethodPost, "/api/trusted-contacts", http.StatusOK},
		{http.MethodPatch, "/api/trusted-contacts", http.StatusNotFound},
		{http.MethodDelete, "/api/trusted-contacts/9", http.StatusOK},
		{http.MethodGet, "/api/trusted-contacts/9", http.StatusNotFound},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_WritesJSONError(t *testing.T) {
	rr := httptest.NewRecorder()
	methodRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/trusted-contacts", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rr.Body.String())
}

func TestCheckHTTPMethod_ForwardsRegisteredMethod(t *testing.T) {
	router := methodRouter()
	rr := httptest.NewRecorder()
	CheckHTTPMethod(router)(rr, httptest.NewRequest(http.MethodDelete, "/api/trusted-contacts/4", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}
