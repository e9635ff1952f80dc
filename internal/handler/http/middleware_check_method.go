// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/vaultkeeper/internal/utils"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
// A path served under another method answers 404 instead of 405, so the
// API does not reveal which verbs a route accepts.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}
		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
