// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/tomtom215/stratus/internal/models"
	"github.com/tomtom215/stratus/internal/stac"
)

func TestSearchGET(t *testing.T) {
	t.Parallel()

	store := itemStore()
	handler := newTestRouter(t, store, nil)
	rec := doRequest(t, handler, http.MethodGet, "/search?collections=test-collection&limit=7", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != stac.MediaTypeGeoJSON {
		t.Errorf("Content-Type = %q, want geo+json", got)
	}

	var result stac.ItemCollection
	decodeBody(t, rec, &result)
	if result.Type != "FeatureCollection" {
		t.Errorf("Type = %q", result.Type)
	}
	if *store.lastSearch.Limit != 7 {
		t.Errorf("Limit = %d, want 7", *store.lastSearch.Limit)
	}
}

func TestSearchGET_BadParameters(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, itemStore(), nil)

	tests := []struct {
		name  string
		query string
	}{
		{name: "zero limit", query: "limit=0"},
		{name: "huge limit", query: "limit=10001"},
		{name: "malformed datetime", query: "datetime=2020-XX-01/2020-10-30"},
		{name: "both-open interval", query: "datetime=../.."},
		{name: "bad bbox length", query: "bbox=1,2,3"},
		{name: "bare sort dash", query: "sortby=-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := doRequest(t, handler, http.MethodGet, "/search?"+tt.query, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestSearchPOST(t *testing.T) {
	t.Parallel()

	store := itemStore()
	handler := newTestRouter(t, store, nil)
	rec := doRequest(t, handler, http.MethodPost, "/search",
		`{"collections":["test-collection"],"bbox":[100,-50,170,-20],"limit":3}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if len(store.lastSearch.Bbox) != 4 || *store.lastSearch.Limit != 3 {
		t.Errorf("Search request = %+v", store.lastSearch)
	}
}

func TestSearchPOST_EmptyBody(t *testing.T) {
	t.Parallel()

	store := itemStore()
	handler := newTestRouter(t, store, nil)
	rec := doRequest(t, handler, http.MethodPost, "/search", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if store.lastSearch.Limit == nil || *store.lastSearch.Limit != 10 {
		t.Errorf("Limit = %v, want default 10", store.lastSearch.Limit)
	}
}

func TestSearchPOST_BadLimit(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, itemStore(), nil)
	rec := doRequest(t, handler, http.MethodPost, "/search", `{"limit":0}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", rec.Code)
	}
}

func TestSearchPOST_InvalidJSON(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, itemStore(), nil)
	rec := doRequest(t, handler, http.MethodPost, "/search", `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", rec.Code)
	}
}

func TestSearch_PaginationLinks(t *testing.T) {
	t.Parallel()

	store := itemStore()
	store.searchFn = func(_ context.Context, req *models.SearchRequest) (*stac.ItemCollection, error) {
		return &stac.ItemCollection{
			Type:           "FeatureCollection",
			Features:       []stac.Item{},
			Next:           "next-token",
			Prev:           "prev-token",
			NumberReturned: 0,
		}, nil
	}
	handler := newTestRouter(t, store, nil)
	rec := doRequest(t, handler, http.MethodGet, "/search", "")

	var result stac.ItemCollection
	decodeBody(t, rec, &result)

	var next, prev string
	for _, link := range result.Links {
		switch link.Rel {
		case stac.RelNext:
			next = link.Href
		case stac.RelPrevious:
			prev = link.Href
		}
	}
	if !strings.Contains(next, "token=next:next-token") {
		t.Errorf("Next link = %q", next)
	}
	if !strings.Contains(prev, "token=prev:prev-token") {
		t.Errorf("Prev link = %q", prev)
	}
}
