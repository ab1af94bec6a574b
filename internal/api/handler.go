// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package api

import (
	"net/http"

	"github.com/tomtom215/stratus/internal/config"
	"github.com/tomtom215/stratus/internal/hierarchy"
	"github.com/tomtom215/stratus/internal/middleware"
)

// Handler serves the STAC API endpoints.
type Handler struct {
	store Store
	cfg   *config.Config

	// root is the parsed browsable hierarchy, nil when none is configured.
	root *hierarchy.Node
}

// NewHandler wires a handler to its store and configuration. root may be nil
// when no hierarchy file is configured; the /catalogs routes then 404.
func NewHandler(store Store, cfg *config.Config, root *hierarchy.Node) *Handler {
	return &Handler{store: store, cfg: cfg, root: root}
}

// baseURL returns the externally visible base URL for the request, with a
// trailing slash. ProxyHeaders normally supplies it; the request host is the
// fallback when the middleware did not run.
func baseURL(r *http.Request) string {
	if base := middleware.BaseURL(r.Context()); base != "" {
		return base
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}
