// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

// Package api implements the STAC API HTTP surface: the landing page,
// collection and item resources, search, queryables, transactions, and the
// browsable catalog hierarchy. Routing uses chi with middleware from the
// chi ecosystem (cors, httprate) plus the project middleware for request
// IDs, proxy-aware base URLs and Prometheus instrumentation.
package api
