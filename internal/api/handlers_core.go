// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package api

import (
	_ "embed"
	"net/http"

	"github.com/tomtom215/stratus/internal/hierarchy"
	"github.com/tomtom215/stratus/internal/logging"
	"github.com/tomtom215/stratus/internal/models"
	"github.com/tomtom215/stratus/internal/stac"
)

//go:embed openapi.json
var openAPIDocument []byte

// LandingPage serves the root catalog document.
//
// Child links come from the browsable hierarchy when one is configured;
// otherwise every stored collection is listed as a child.
func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	base := baseURL(r)

	links := []stac.Link{
		{Rel: stac.RelSelf, Type: stac.MediaTypeJSON, Href: base},
		{Rel: stac.RelRoot, Type: stac.MediaTypeJSON, Href: base},
		{Rel: stac.RelData, Type: stac.MediaTypeJSON, Href: join(base, "collections")},
		{Rel: stac.RelConformance, Type: stac.MediaTypeJSON, Title: "STAC/OGC conformance classes implemented by this server", Href: join(base, "conformance")},
		{Rel: stac.RelSearch, Type: stac.MediaTypeGeoJSON, Href: join(base, "search"), Method: http.MethodGet},
		{Rel: stac.RelSearch, Type: stac.MediaTypeGeoJSON, Href: join(base, "search"), Method: http.MethodPost},
		{Rel: stac.RelQueryables, Type: stac.MediaTypeSchemaJSON, Title: "Queryables", Href: join(base, "queryables")},
		{Rel: stac.RelServiceDesc, Type: stac.MediaTypeOpenAPI, Title: "OpenAPI service description", Href: join(base, "api")},
	}

	children, err := h.childLinks(r, base)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.CodeInternalError, "failed to build child links")
		return
	}
	links = append(links, children...)

	respondJSON(w, http.StatusOK, stac.LandingPage{
		Type:           "Catalog",
		ID:             h.cfg.API.CatalogID,
		StacVersion:    stac.Version,
		StacExtensions: []string{},
		Title:          h.cfg.API.Title,
		Description:    h.cfg.API.Description,
		ConformsTo:     h.conformance(),
		Links:          links,
	})
}

// childLinks builds the landing page's child links, from the hierarchy when
// configured, else from the stored collections.
func (h *Handler) childLinks(r *http.Request, base string) ([]stac.Link, error) {
	if h.root != nil {
		links := make([]stac.Link, 0, len(h.root.Children))
		for _, child := range h.root.Children {
			link, err := hierarchy.ChildLink(child, base)
			if err != nil {
				return nil, err
			}
			links = append(links, link)
		}
		return links, nil
	}

	collections, err := h.store.AllCollections(r.Context())
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("Listing collections for landing page failed")
		return nil, err
	}
	links := make([]stac.Link, 0, len(collections))
	for _, c := range collections {
		links = append(links, stac.Link{
			Rel:   stac.RelChild,
			Type:  stac.MediaTypeJSON,
			Title: c.ID(),
			Href:  join(base, "collections", c.ID()),
		})
	}
	return links, nil
}

func (h *Handler) conformance() []string {
	conformsTo := stac.CoreConformance()
	if h.root != nil {
		conformsTo = append(conformsTo, stac.BrowsableConformance()...)
	}
	return conformsTo
}

// Conformance serves the conformance class listing.
func (h *Handler) Conformance(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"conformsTo": h.conformance(),
	})
}

// OpenAPI serves the OpenAPI 3.0 service description.
func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", stac.MediaTypeOpenAPI)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPIDocument)
}

// Health reports liveness and database reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"reason": "database unreachable",
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
