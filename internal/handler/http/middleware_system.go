// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/utils"
)

const systemKeyHeader = "X-System-Key"

// system guards operator endpoints with the shared system key. The routes
// stay closed while no key is configured.
func (h *Handler) system(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(systemKeyHeader)
		if h.systemKey == "" || key == "" || !utils.EqualSecret(key, h.systemKey) {
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("system key rejected")
			utils.WriteError(w, ErrInvalidSystemKey.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
