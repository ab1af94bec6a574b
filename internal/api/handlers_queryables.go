// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/stratus/internal/stac"
)

// Queryables serves the catalog-wide queryables schema.
func (h *Handler) Queryables(w http.ResponseWriter, r *http.Request) {
	h.serveQueryables(w, r, "")
}

// CollectionQueryables serves one collection's queryables schema.
func (h *Handler) CollectionQueryables(w http.ResponseWriter, r *http.Request) {
	h.serveQueryables(w, r, chi.URLParam(r, "collectionID"))
}

func (h *Handler) serveQueryables(w http.ResponseWriter, r *http.Request, collectionID string) {
	schema, err := h.store.Queryables(r.Context(), collectionID)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	// The $id must address this endpoint, not whatever pgstac stored.
	schema["$id"] = join(baseURL(r), strings.Trim(r.URL.Path, "/"))

	respond(w, http.StatusOK, stac.MediaTypeSchemaJSON, schema)
}
