// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/stratus/internal/config"
	"github.com/tomtom215/stratus/internal/database"
	"github.com/tomtom215/stratus/internal/hierarchy"
	"github.com/tomtom215/stratus/internal/middleware"
	"github.com/tomtom215/stratus/internal/models"
)

// database.DB is the production Store.
var _ Store = (*database.DB)(nil)

// NewRouter assembles the chi router with the full middleware chain and
// every API route. root may be nil when no hierarchy is configured.
func NewRouter(cfg *config.Config, store Store, root *hierarchy.Node) *chi.Mux {
	h := NewHandler(store, cfg, root)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.ProxyHeaders)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.API.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         86400,
	}))
	if cfg.API.RateLimitReqs > 0 {
		r.Use(httprate.LimitByIP(cfg.API.RateLimitReqs, cfg.API.RateLimitWindow))
	}
	r.Use(middleware.Compression)
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, models.CodeNotFound, "resource not found")
	})

	r.Get("/", h.LandingPage)
	r.Get("/conformance", h.Conformance)
	r.Get("/api", h.OpenAPI)
	r.Get("/healthz", h.Health)
	r.Get("/queryables", h.Queryables)

	r.Get("/search", h.SearchGET)
	r.Post("/search", h.SearchPOST)

	r.Route("/collections", func(r chi.Router) {
		r.Get("/", h.ListCollections)
		r.Post("/", h.CreateCollection)
		r.Put("/", h.ReplaceCollection)

		r.Route("/{collectionID}", func(r chi.Router) {
			r.Get("/", h.GetCollection)
			r.Put("/", h.UpdateCollection)
			r.Delete("/", h.DeleteCollection)
			r.Get("/queryables", h.CollectionQueryables)

			r.Route("/items", func(r chi.Router) {
				r.Get("/", h.ListItems)
				r.Post("/", h.CreateItem)
				r.Get("/{itemID}", h.GetItem)
				r.Put("/{itemID}", h.UpdateItem)
				r.Delete("/{itemID}", h.DeleteItem)
			})
		})
	})

	r.Get("/catalogs/*", h.BrowseCatalog)

	r.Handle("/metrics", promhttp.Handler())

	return r
}
