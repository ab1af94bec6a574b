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

func collectionStore() *mockStore {
	return &mockStore{
		allCollectionsFn: func(_ context.Context) ([]stac.Collection, error) {
			return []stac.Collection{{"id": "test-collection", "title": "Test"}}, nil
		},
		getCollectionFn: func(_ context.Context, id string) (stac.Collection, error) {
			if id != "test-collection" {
				return nil, fmt.Errorf("collection %q: %w", id, database.ErrNotFound)
			}
			return stac.Collection{"id": "test-collection", "title": "Test"}, nil
		},
	}
}

func TestListCollections(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, collectionStore(), nil)
	rec := doRequest(t, handler, http.MethodGet, "/collections", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}

	var body stac.Collections
	decodeBody(t, rec, &body)
	if len(body.Collections) != 1 {
		t.Fatalf("Collections = %d, want 1", len(body.Collections))
	}

	links, ok := body.Collections[0]["links"].([]interface{})
	if !ok || len(links) == 0 {
		t.Fatal("Collection links missing")
	}
	first := links[0].(map[string]interface{})
	if first["rel"] != stac.RelSelf || !strings.HasSuffix(first["href"].(string), "/collections/test-collection") {
		t.Errorf("Self link = %v", first)
	}
}

func TestListCollections_Empty(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, &mockStore{}, nil)
	rec := doRequest(t, handler, http.MethodGet, "/collections", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"collections":[]`) {
		t.Error("Empty catalog must serialize collections as an empty array")
	}
}

func TestGetCollection(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, collectionStore(), nil)
	rec := doRequest(t, handler, http.MethodGet, "/collections/test-collection", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}
	var collection map[string]interface{}
	decodeBody(t, rec, &collection)
	if collection["id"] != "test-collection" {
		t.Errorf("id = %v", collection["id"])
	}
}

func TestGetCollection_NotFound(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, collectionStore(), nil)
	rec := doRequest(t, handler, http.MethodGet, "/collections/does-not-exist", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Status = %d, want 404", rec.Code)
	}
	var body map[string]interface{}
	decodeBody(t, rec, &body)
	if body["code"] != "NOT_FOUND" {
		t.Errorf("Error code = %v", body["code"])
	}
}

func TestCreateCollection(t *testing.T) {
	t.Parallel()

	var created stac.Collection
	store := &mockStore{
		createCollectionFn: func(_ context.Context, c stac.Collection) error {
			created = c
			return nil
		},
	}
	handler := newTestRouter(t, store, nil)
	rec := doRequest(t, handler, http.MethodPost, "/collections", `{"id":"new-collection","description":"d"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if created.ID() != "new-collection" {
		t.Errorf("Stored collection id = %q", created.ID())
	}
}

func TestCreateCollection_Conflict(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		createCollectionFn: func(_ context.Context, c stac.Collection) error {
			return fmt.Errorf("collection %q: %w", c.ID(), database.ErrConflict)
		},
	}
	handler := newTestRouter(t, store, nil)
	rec := doRequest(t, handler, http.MethodPost, "/collections", `{"id":"dup"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("Status = %d, want 409", rec.Code)
	}
}

func TestCreateCollection_MissingID(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, &mockStore{}, nil)
	rec := doRequest(t, handler, http.MethodPost, "/collections", `{"description":"no id"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", rec.Code)
	}
}

func TestUpdateCollection_IDMismatch(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, collectionStore(), nil)
	rec := doRequest(t, handler, http.MethodPut, "/collections/test-collection", `{"id":"other"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", rec.Code)
	}
}

func TestUpdateCollection_NotFound(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		updateCollectionFn: func(_ context.Context, c stac.Collection) error {
			return fmt.Errorf("collection %q: %w", c.ID(), database.ErrNotFound)
		},
	}
	handler := newTestRouter(t, store, nil)
	rec := doRequest(t, handler, http.MethodPut, "/collections/ghost", `{"id":"ghost"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Status = %d, want 404", rec.Code)
	}
}

func TestReplaceCollection_BodyAddressed(t *testing.T) {
	t.Parallel()

	var updated stac.Collection
	store := &mockStore{
		updateCollectionFn: func(_ context.Context, c stac.Collection) error {
			updated = c
			return nil
		},
	}
	handler := newTestRouter(t, store, nil)
	rec := doRequest(t, handler, http.MethodPut, "/collections", `{"id":"test-collection","title":"renamed"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if updated.ID() != "test-collection" {
		t.Errorf("Updated collection id = %q", updated.ID())
	}
}

func TestDeleteCollection(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, collectionStore(), nil)
	rec := doRequest(t, handler, http.MethodDelete, "/collections/test-collection", "")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("Status = %d, want 204", rec.Code)
	}
}
