// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/utils"
)

// auth admits requests that carry a valid owner session token and puts the
// owner id into the request context. Contacts never pass through here: their
// endpoints are authorized by access tokens instead.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		header := r.Header.Get("Authorization")
		if header == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		sessionToken, err := utils.ParseBearerToken(header)
		if err != nil {
			log.Warn().Err(err).Msg("malformed authorization header")
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, sessionToken)
		if err != nil {
			log.Warn().Err(err).Msg("rejected owner session token")
			utils.WriteError(w, ErrSessionExpired.Error(), http.StatusUnauthorized)
			return
		}

		l := log.With().Int64("owner_id", token.UserID).Logger()
		ctx = l.WithContext(utils.WithUserID(ctx, token.UserID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
