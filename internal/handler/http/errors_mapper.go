// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/service"
	"github.com/MKhiriev/vaultkeeper/internal/store"
	"github.com/MKhiriev/vaultkeeper/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidPublicKey:        http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAccountNotActive:        http.StatusForbidden,
	service.ErrUserAlreadyExists:       http.StatusConflict,

	service.ErrNotFound:         http.StatusNotFound,
	service.ErrOwnerNotFound:    http.StatusNotFound,
	service.ErrInvalidInvitation: http.StatusBadRequest,
	service.ErrForbidden:        http.StatusForbidden,

	service.ErrNotATrustedContact:      http.StatusForbidden,
	service.ErrAlreadyHasContact:       http.StatusConflict,
	service.ErrContactNotCurrent:       http.StatusConflict,
	service.ErrAlreadyResolved:         http.StatusConflict,
	service.ErrDuplicatePendingRequest: http.StatusConflict,

	service.ErrInvalidToken: http.StatusUnauthorized,
	service.ErrAccessDenied: http.StatusForbidden,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the mapped status. Messages of client
// errors are the sentinel texts; server errors never leak details.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	utils.WriteError(w, publicMessage(err), status)
}

// publicMessage returns the outermost sentinel text of err.
func publicMessage(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

// writeContactError answers contact-facing endpoints. Only the status text is
// sent so callers cannot probe owners or contacts by message.
func writeContactError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("contact request rejected")
	}
	utils.WriteError(w, http.StatusText(status), status)
}
