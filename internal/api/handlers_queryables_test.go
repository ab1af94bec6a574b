// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/tomtom215/stratus/internal/database"
	"github.com/tomtom215/stratus/internal/stac"
)

func TestQueryables(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, &mockStore{}, nil)
	rec := doRequest(t, handler, http.MethodGet, "/queryables", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != stac.MediaTypeSchemaJSON {
		t.Errorf("Content-Type = %q, want schema+json", got)
	}

	var schema map[string]interface{}
	decodeBody(t, rec, &schema)
	id, _ := schema["$id"].(string)
	if !strings.HasSuffix(id, "/queryables") {
		t.Errorf("$id = %q, want request URL", id)
	}
}

func TestCollectionQueryables(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		queryablesFn: func(_ context.Context, collectionID string) (map[string]interface{}, error) {
			if collectionID != "test-collection" {
				return nil, fmt.Errorf("collection %q: %w", collectionID, database.ErrNotFound)
			}
			return map[string]interface{}{
				"$schema":    "https://json-schema.org/draft/2019-09/schema",
				"$id":        "stale",
				"type":       "object",
				"properties": map[string]interface{}{"datetime": map[string]interface{}{"type": "string"}},
			}, nil
		},
	}
	handler := newTestRouter(t, store, nil)
	rec := doRequest(t, handler, http.MethodGet, "/collections/test-collection/queryables", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}

	var schema map[string]interface{}
	decodeBody(t, rec, &schema)
	id, _ := schema["$id"].(string)
	if !strings.HasSuffix(id, "/collections/test-collection/queryables") {
		t.Errorf("$id = %q, want request URL", id)
	}
}

func TestCollectionQueryables_UnknownCollection(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		queryablesFn: func(_ context.Context, collectionID string) (map[string]interface{}, error) {
			return nil, fmt.Errorf("collection %q: %w", collectionID, database.ErrNotFound)
		},
	}
	handler := newTestRouter(t, store, nil)
	rec := doRequest(t, handler, http.MethodGet, "/collections/ghost/queryables", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Status = %d, want 404", rec.Code)
	}
}
