// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/stratus/internal/models"
	"github.com/tomtom215/stratus/internal/stac"
)

// ListItems serves the items of one collection as a FeatureCollection. The
// bbox, datetime, limit and token query parameters filter and page the
// listing.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")

	// 404 before 400: an unknown collection wins over bad parameters.
	if _, err := h.store.GetCollection(r.Context(), collectionID); err != nil {
		respondStoreError(w, r, err)
		return
	}

	req, err := models.DecodeSearchQuery(r.URL.Query())
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, err.Error())
		return
	}
	req.Collections = []string{collectionID}
	if verr := req.Validate(); verr != nil {
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, verr.Error())
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

	itemsHref := join(base, "collections", collectionID, "items")
	result.Links = []stac.Link{
		{Rel: stac.RelSelf, Type: stac.MediaTypeGeoJSON, Href: itemsHref},
		{Rel: stac.RelParent, Type: stac.MediaTypeJSON, Href: join(base, "collections", collectionID)},
		{Rel: stac.RelCollection, Type: stac.MediaTypeJSON, Href: join(base, "collections", collectionID)},
		{Rel: stac.RelRoot, Type: stac.MediaTypeJSON, Href: base},
	}
	result.Links = paginationLinks(result.Links, result, itemsHref)

	respondGeoJSON(w, http.StatusOK, result)
}

// GetItem serves one item document.
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")
	itemID := chi.URLParam(r, "itemID")

	item, err := h.store.GetItem(r.Context(), collectionID, itemID)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	decorateItem(item, baseURL(r))
	respondGeoJSON(w, http.StatusOK, item)
}

// CreateItem stores a new item in a collection.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")

	var item stac.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, "request body is not valid JSON")
		return
	}
	if item.ID() == "" {
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, "item id is required")
		return
	}
	switch item.CollectionID() {
	case "":
		item["collection"] = collectionID
	case collectionID:
	default:
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, "item collection must match path")
		return
	}

	if err := h.store.CreateItem(r.Context(), item); err != nil {
		respondStoreError(w, r, err)
		return
	}
	decorateItem(item, baseURL(r))
	respondGeoJSON(w, http.StatusCreated, item)
}

// UpdateItem replaces an existing item document.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")
	itemID := chi.URLParam(r, "itemID")

	var item stac.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, "request body is not valid JSON")
		return
	}
	if item.ID() != itemID {
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, "item id in body must match path")
		return
	}
	if item.CollectionID() == "" {
		item["collection"] = collectionID
	} else if item.CollectionID() != collectionID {
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, "item collection must match path")
		return
	}

	if err := h.store.UpdateItem(r.Context(), item); err != nil {
		respondStoreError(w, r, err)
		return
	}
	decorateItem(item, baseURL(r))
	respondGeoJSON(w, http.StatusOK, item)
}

// DeleteItem removes one item from a collection.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")
	itemID := chi.URLParam(r, "itemID")

	if err := h.store.DeleteItem(r.Context(), collectionID, itemID); err != nil {
		respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
