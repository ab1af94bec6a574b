// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stratus_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stratus_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stratus_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Database metrics

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stratus_pgstac_query_duration_seconds",
			Help:    "Duration of pgstac function calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"function"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stratus_pgstac_query_errors_total",
			Help: "Total number of failed pgstac function calls",
		},
		[]string{"function"},
	)

	// Search metrics

	SearchResultsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stratus_search_results_returned",
			Help:    "Number of features returned per search",
			Buckets: []float64{0, 1, 10, 50, 100, 500, 1000, 5000, 10000},
		},
	)

	// Application info

	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stratus_app_info",
			Help: "Application version information",
		},
		[]string{"version", "stac_version"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordDBQuery records one pgstac function call.
func RecordDBQuery(fn string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(fn).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(fn).Inc()
	}
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordSearchResults records how many features a search returned.
func RecordSearchResults(n int) {
	SearchResultsReturned.Observe(float64(n))
}

// SetAppInfo publishes the build's version labels.
func SetAppInfo(version, stacVersion string) {
	AppInfo.WithLabelValues(version, stacVersion).Set(1)
}
