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

// submitAccessRequest is the contact's public entry point. It answers 202:
// the owner decides later or the waiting period runs out.
func (h *Handler) submitAccessRequest(w http.ResponseWriter, r *http.Request) {
	var input models.EmergencyAccessInput
	if !decodeJSON(w, r, "submitAccessRequest", &input) {
		return
	}

	request, err := h.services.AccessRequestService.SubmitByEmail(r.Context(), input)
	if err != nil {
		writeContactError(w, r, "submitAccessRequest", err)
		return
	}

	logger.FromRequest(r).Info().Int64("request_id", request.ID).Msg("emergency access requested")
	utils.WriteJSON(w, request, http.StatusAccepted)
}

func (h *Handler) accessRequestStatus(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		utils.WriteError(w, service.ErrInvalidDataProvided.Error(), http.StatusBadRequest)
		return
	}

	status, err := h.services.AccessRequestService.Status(r.Context(), requestID, email)
	if err != nil {
		writeContactError(w, r, "accessRequestStatus", err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) listAccessRequests(w http.ResponseWriter, r *http.Request) {
	h.listOwnerRequests(w, r, false)
}

func (h *Handler) listPendingAccessRequests(w http.ResponseWriter, r *http.Request) {
	h.listOwnerRequests(w, r, true)
}

func (h *Handler) listOwnerRequests(w http.ResponseWriter, r *http.Request, pendingOnly bool) {
	ownerID, ok := authorizedOwner(w, r)
	if !ok {
		return
	}

	requests, err := h.services.AccessRequestService.ListForOwner(r.Context(), ownerID, pendingOnly)
	if err != nil {
		writeServiceError(w, r, "listOwnerRequests", err)
		return
	}
	if requests == nil {
		requests = []models.AccessRequest{}
	}

	utils.WriteJSON(w, requests, http.StatusOK)
}

func (h *Handler) respondToAccessRequest(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := authorizedOwner(w, r)
	if !ok {
		return
	}
	requestID, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}

	var input models.ResponseInput
	if !decodeJSON(w, r, "respondToAccessRequest", &input) {
		return
	}

	request, err := h.services.AccessRequestService.Respond(r.Context(), requestID, ownerID, input)
	if err != nil {
		writeServiceError(w, r, "respondToAccessRequest", err)
		return
	}

	utils.WriteJSON(w, request, http.StatusOK)
}

// depositKeyWrap stores the vault key wrapped for the contact's public key.
// The server cannot unwrap it.
func (h *Handler) depositKeyWrap(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := authorizedOwner(w, r)
	if !ok {
		return
	}
	requestID, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}

	var input models.KeyWrapInput
	if !decodeJSON(w, r, "depositKeyWrap", &input) {
		return
	}

	if err := h.services.AccessRequestService.DepositKeyWrap(r.Context(), ownerID, requestID, input.WrappedKey); err != nil {
		writeServiceError(w, r, "depositKeyWrap", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
