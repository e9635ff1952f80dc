// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vaultkeeper/internal/utils"
	"github.com/MKhiriev/vaultkeeper/models"
)

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := authorizedOwner(w, r)
	if !ok {
		return
	}

	entries, err := h.services.VaultEntryService.ListEntries(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, "listEntries", err)
		return
	}
	if entries == nil {
		entries = []models.VaultEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := authorizedOwner(w, r)
	if !ok {
		return
	}

	var input models.NewVaultEntry
	if !decodeJSON(w, r, "createEntry", &input) {
		return
	}

	entry, err := h.services.VaultEntryService.CreateEntry(r.Context(), ownerID, input)
	if err != nil {
		writeServiceError(w, r, "createEntry", err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) setEmergencyAccess(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := authorizedOwner(w, r)
	if !ok {
		return
	}
	entryID, ok := pathID(w, r, "entryID")
	if !ok {
		return
	}

	var flag models.EmergencyAccessFlag
	if !decodeJSON(w, r, "setEmergencyAccess", &flag) {
		return
	}

	entry, err := h.services.VaultEntryService.SetEmergencyAccess(r.Context(), ownerID, entryID, flag.Allow)
	if err != nil {
		writeServiceError(w, r, "setEmergencyAccess", err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}
