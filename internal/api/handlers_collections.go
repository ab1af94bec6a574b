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

// ListCollections serves the collections listing.
func (h *Handler) ListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.store.AllCollections(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	base := baseURL(r)
	for _, c := range collections {
		decorateCollection(c, base)
	}
	if collections == nil {
		collections = []stac.Collection{}
	}

	respondJSON(w, http.StatusOK, stac.Collections{
		Collections: collections,
		Links: []stac.Link{
			{Rel: stac.RelSelf, Type: stac.MediaTypeJSON, Href: join(base, "collections")},
			{Rel: stac.RelParent, Type: stac.MediaTypeJSON, Href: base},
			{Rel: stac.RelRoot, Type: stac.MediaTypeJSON, Href: base},
		},
	})
}

// GetCollection serves one collection document.
func (h *Handler) GetCollection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "collectionID")
	collection, err := h.store.GetCollection(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	decorateCollection(collection, baseURL(r))
	respondJSON(w, http.StatusOK, collection)
}

// CreateCollection stores a new collection document.
func (h *Handler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var collection stac.Collection
	if err := json.NewDecoder(r.Body).Decode(&collection); err != nil {
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, "request body is not valid JSON")
		return
	}
	if collection.ID() == "" {
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, "collection id is required")
		return
	}

	if err := h.store.CreateCollection(r.Context(), collection); err != nil {
		respondStoreError(w, r, err)
		return
	}
	decorateCollection(collection, baseURL(r))
	respondJSON(w, http.StatusCreated, collection)
}

// UpdateCollection replaces an existing collection document addressed by
// path.
func (h *Handler) UpdateCollection(w http.ResponseWriter, r *http.Request) {
	h.updateCollection(w, r, chi.URLParam(r, "collectionID"))
}

// ReplaceCollection replaces an existing collection document addressed by
// the id in the body. Older STAC transaction clients PUT to /collections
// without a path id.
func (h *Handler) ReplaceCollection(w http.ResponseWriter, r *http.Request) {
	h.updateCollection(w, r, "")
}

func (h *Handler) updateCollection(w http.ResponseWriter, r *http.Request, pathID string) {
	var collection stac.Collection
	if err := json.NewDecoder(r.Body).Decode(&collection); err != nil {
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, "request body is not valid JSON")
		return
	}
	if collection.ID() == "" {
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, "collection id is required")
		return
	}
	if pathID != "" && collection.ID() != pathID {
		respondError(w, r, http.StatusBadRequest, models.CodeValidationError, "collection id in body must match path")
		return
	}

	if err := h.store.UpdateCollection(r.Context(), collection); err != nil {
		respondStoreError(w, r, err)
		return
	}
	decorateCollection(collection, baseURL(r))
	respondJSON(w, http.StatusOK, collection)
}

// DeleteCollection removes a collection and its items.
func (h *Handler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "collectionID")
	if err := h.store.DeleteCollection(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
