// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/vaultkeeper/internal/service"
	"github.com/MKhiriev/vaultkeeper/internal/utils"
	"github.com/MKhiriev/vaultkeeper/models"
)

func (h *Handler) listActivity(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := authorizedOwner(w, r)
	if !ok {
		return
	}

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.WriteError(w, service.ErrInvalidDataProvided.Error(), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	activity, err := h.services.ActivityService.ListActivity(r.Context(), ownerID, limit)
	if err != nil {
		writeServiceError(w, r, "listActivity", err)
		return
	}
	if activity == nil {
		activity = []models.ActivityEntry{}
	}

	utils.WriteJSON(w, activity, http.StatusOK)
}
