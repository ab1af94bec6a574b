// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stratus/internal/database"
	"github.com/tomtom215/stratus/internal/logging"
	"github.com/tomtom215/stratus/internal/models"
	"github.com/tomtom215/stratus/internal/stac"
)

// respond writes v as JSON with the given status and content type.
func respond(w http.ResponseWriter, status int, contentType string, v interface{}) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("Failed to encode response")
	}
}

// respondJSON writes v as an application/json response.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	respond(w, status, stac.MediaTypeJSON, v)
}

// respondGeoJSON writes v as an application/geo+json response.
func respondGeoJSON(w http.ResponseWriter, status int, v interface{}) {
	respond(w, status, stac.MediaTypeGeoJSON, v)
}

// respondError writes the error envelope and logs server-side failures.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, description string) {
	if status >= http.StatusInternalServerError {
		logging.Ctx(r.Context()).Error().
			Int("status", status).
			Str("path", r.URL.Path).
			Msg(description)
	}
	respondJSON(w, status, models.ErrorResponse{Code: code, Description: description})
}

// respondStoreError maps store sentinel errors onto HTTP statuses.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(w, r, http.StatusNotFound, models.CodeNotFound, err.Error())
	case errors.Is(err, database.ErrConflict):
		respondError(w, r, http.StatusConflict, models.CodeConflict, err.Error())
	default:
		logging.CtxErr(r.Context(), err).Str("path", r.URL.Path).Msg("Store operation failed")
		respondError(w, r, http.StatusInternalServerError, models.CodeDatabaseError, "database operation failed")
	}
}
