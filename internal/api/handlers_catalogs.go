// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/stratus/internal/hierarchy"
	"github.com/tomtom215/stratus/internal/models"
)

// BrowseCatalog serves a sub-catalog of the configured hierarchy. The
// wildcard path names the catalog by its slash-separated ancestry, for
// example /catalogs/landsat/level-2.
func (h *Handler) BrowseCatalog(w http.ResponseWriter, r *http.Request) {
	if h.root == nil {
		respondError(w, r, http.StatusNotFound, models.CodeNotFound, "no catalog hierarchy is configured")
		return
	}

	catalogPath := chi.URLParam(r, "*")
	node, err := hierarchy.FindCatalog(h.root, catalogPath)
	if err != nil {
		if errors.Is(err, hierarchy.ErrCatalogNotFound) {
			respondError(w, r, http.StatusNotFound, models.CodeNotFound, "catalog not found: "+catalogPath)
			return
		}
		respondError(w, r, http.StatusInternalServerError, models.CodeInternalError, err.Error())
		return
	}

	catalog, err := hierarchy.BrowsableCatalog(node, catalogPath, baseURL(r))
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.CodeInternalError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, catalog)
}
