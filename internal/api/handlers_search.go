// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stratus/internal/models"
	"github.com/tomtom215/stratus/internal/stac"
)

// SearchGET serves item search with query string parameters.
func (h *Handler) SearchGET(w http.ResponseWriter, r *http.Request) {
	req, err := models.DecodeSearchQuery(r.URL.Query())
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, err.Error())
		return
	}
	h.search(w, r, req)
}

// SearchPOST serves item search with a JSON body.
func (h *Handler) SearchPOST(w http.ResponseWriter, r *http.Request) {
	req := &models.SearchRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			respondError(w, r, http.StatusBadRequest, models.CodeValidationError, "request body is not valid JSON")
			return
		}
	}
	h.search(w, r, req)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, req *models.SearchRequest) {
	if err := req.Validate(); err != nil {
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, err.Error())
		return
	}
	if req.Limit == nil {
		limit := h.cfg.API.DefaultLimit
		req.Limit = &limit
	}

	result, err := h.store.Search(r.Context(), req)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	base := baseURL(r)
	for _, item := range result.Features {
		decorateItem(item, base)
	}

	searchHref := join(base, "search")
	result.Links = []stac.Link{
		{Rel: stac.RelSelf, Type: stac.MediaTypeGeoJSON, Href: searchHref},
		{Rel: stac.RelRoot, Type: stac.MediaTypeJSON, Href: base},
	}
	result.Links = paginationLinks(result.Links, result, searchHref)

	respondGeoJSON(w, http.StatusOK, result)
}
