// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vaultkeeper/internal/utils"
	"github.com/MKhiriev/vaultkeeper/models"
)

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := authorizedOwner(w, r)
	if !ok {
		return
	}

	contact, err := h.services.TrustedContactRegistry.GetContact(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, "getContact", err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

// addContact registers the owner's trusted contact. The invitation code is
// returned once and must be passed to the contact out of band.
func (h *Handler) addContact(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := authorizedOwner(w, r)
	if !ok {
		return
	}

	var input models.NewTrustedContact
	if !decodeJSON(w, r, "addContact", &input) {
		return
	}

	invitation, err := h.services.TrustedContactRegistry.AddContact(r.Context(), ownerID, input)
	if err != nil {
		writeServiceError(w, r, "addContact", err)
		return
	}

	utils.WriteJSON(w, invitation, http.StatusCreated)
}

func (h *Handler) revokeContact(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := authorizedOwner(w, r)
	if !ok {
		return
	}
	contactID, ok := pathID(w, r, "contactID")
	if !ok {
		return
	}

	contact, err := h.services.TrustedContactRegistry.Revoke(r.Context(), ownerID, contactID)
	if err != nil {
		writeServiceError(w, r, "revokeContact", err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) resetInactivity(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := authorizedOwner(w, r)
	if !ok {
		return
	}
	contactID, ok := pathID(w, r, "contactID")
	if !ok {
		return
	}

	contact, err := h.services.TrustedContactRegistry.ResetInactivity(r.Context(), ownerID, contactID)
	if err != nil {
		writeServiceError(w, r, "resetInactivity", err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

// answerInvitation is called by the invited contact, not by the owner.
func (h *Handler) answerInvitation(w http.ResponseWriter, r *http.Request) {
	var answer models.InvitationAnswer
	if !decodeJSON(w, r, "answerInvitation", &answer) {
		return
	}

	contact, err := h.services.TrustedContactRegistry.AnswerInvitation(r.Context(), answer)
	if err != nil {
		writeServiceError(w, r, "answerInvitation", err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}
