// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

// Package middleware provides HTTP middleware shared by the API router:
// request IDs, proxy-aware base URL resolution, Prometheus instrumentation,
// and response compression. All middleware uses the standard
// func(http.Handler) http.Handler shape so it composes with chi's Use.
package middleware
