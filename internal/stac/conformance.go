// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package stac

// Conformance class URIs advertised by the server. Which of these appear in
// /conformance depends on the deployment: transaction classes require a
// writable store, browsable/children require a loaded hierarchy definition.
const (
	ConformanceCore        = "https://api.stacspec.org/v1.0.0/core"
	ConformanceCollections = "https://api.stacspec.org/v1.0.0/collections"
	ConformanceFeatures    = "https://api.stacspec.org/v1.0.0/ogcapi-features"
	ConformanceItemSearch  = "https://api.stacspec.org/v1.0.0/item-search"
	ConformanceTransaction = "https://api.stacspec.org/v1.0.0/ogcapi-features/extensions/transaction"
	ConformanceQuery       = "https://api.stacspec.org/v1.0.0/item-search#query"
	ConformanceSort        = "https://api.stacspec.org/v1.0.0/item-search#sort"
	ConformanceFields      = "https://api.stacspec.org/v1.0.0/item-search#fields"
	ConformanceBrowsable   = "https://api.stacspec.org/v1.0.0-rc.1/browseable"
	ConformanceChildren    = "https://api.stacspec.org/v1.0.0-rc.1/children"

	ConformanceOGCCore    = "http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core"
	ConformanceOGCOAS30   = "http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/oas30"
	ConformanceOGCGeoJSON = "http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/geojson"
)

// CoreConformance returns the conformance classes every Stratus deployment
// supports.
func CoreConformance() []string {
	return []string{
		ConformanceCore,
		ConformanceCollections,
		ConformanceFeatures,
		ConformanceItemSearch,
		ConformanceQuery,
		ConformanceSort,
		ConformanceFields,
		ConformanceTransaction,
		ConformanceOGCCore,
		ConformanceOGCOAS30,
		ConformanceOGCGeoJSON,
	}
}

// BrowsableConformance returns the classes added when a hierarchy definition
// is loaded.
func BrowsableConformance() []string {
	return []string{
		ConformanceBrowsable,
		ConformanceChildren,
	}
}
