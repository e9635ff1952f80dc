// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/service"
	"github.com/MKhiriev/vaultkeeper/internal/utils"
	"github.com/MKhiriev/vaultkeeper/models"
)

// verifyAccessToken reports whether a token currently grants access. An
// invalid token is answered with 401 and {"valid": false}.
func (h *Handler) verifyAccessToken(w http.ResponseWriter, r *http.Request) {
	var input models.VerifyTokenInput
	if !decodeJSON(w, r, "verifyAccessToken", &input) {
		return
	}

	verification, err := h.services.AccessRequestService.VerifyToken(r.Context(), input.Token)
	if err != nil {
		writeContactError(w, r, "verifyAccessToken", err)
		return
	}
	if !verification.Valid {
		utils.WriteJSON(w, models.TokenVerification{Valid: false}, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, verification, http.StatusOK)
}

func (h *Handler) emergencyEntries(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "ownerID")
	if !ok {
		return
	}

	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("emergency entries requested without token")
		writeContactError(w, r, "emergencyEntries", service.ErrAccessDenied)
		return
	}

	entries, err := h.services.EmergencyAccessGate.ListAccessibleEntries(r.Context(), token, ownerID)
	if err != nil {
		writeContactError(w, r, "emergencyEntries", err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// checkInactivity runs the inactivity sweep followed by the auto-approval
// sweep. Cron jobs call the same service, so runs never overlap.
func (h *Handler) checkInactivity(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.SweepService.RunAll(r.Context(), h.now())
	if err != nil {
		writeServiceError(w, r, "checkInactivity", err)
		return
	}

	logger.FromRequest(r).Info().
		Int("created", len(result.Created)).
		Int("resolved", len(result.Resolved)).
		Msg("inactivity check finished")

	if result.Created == nil {
		result.Created = []models.AccessRequest{}
	}
	if result.Resolved == nil {
		result.Resolved = []models.AccessRequest{}
	}
	utils.WriteJSON(w, result, http.StatusOK)
}
