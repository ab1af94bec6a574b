// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/search", "200"))
	RecordAPIRequest("GET", "/search", "200", 25*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/search", "200"))
	if after != before+1 {
		t.Errorf("APIRequestsTotal = %v, want %v", after, before+1)
	}
}

func TestRecordDBQuery_Errors(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("search"))
	RecordDBQuery("search", 5*time.Millisecond, errors.New("boom"))
	RecordDBQuery("search", 5*time.Millisecond, nil)
	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("search"))
	if after != before+1 {
		t.Errorf("DBQueryErrors = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("APIActiveRequests = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("APIActiveRequests = %v, want %v", got, before)
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("1.0.0", "1.0.0")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("1.0.0", "1.0.0")); got != 1 {
		t.Errorf("AppInfo = %v, want 1", got)
	}
}
