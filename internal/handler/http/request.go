// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

var errInvalidPathParam = errors.New("invalid path parameter")

// decodeJSON reads a size-limited JSON body into dst and answers 400 on
// failure. It reports whether the handler may continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, funcName string, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return false
	}
	return true
}

// pathID parses a positive int64 URL parameter and answers 400 otherwise.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		logger.FromRequest(r).Warn().Str("param", name).Msg(errInvalidPathParam.Error())
		utils.WriteError(w, errInvalidPathParam.Error(), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// authorizedOwner returns the id the auth middleware put into the context.
func authorizedOwner(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}
	return id, true
}
