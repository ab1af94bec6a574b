// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/tomtom215/stratus/internal/hierarchy"
	"github.com/tomtom215/stratus/internal/stac"
)

func testHierarchy() *hierarchy.Node {
	return &hierarchy.Node{
		Kind: hierarchy.KindCatalog,
		ID:   "root",
		Children: []*hierarchy.Node{
			{
				Kind:  hierarchy.KindCatalog,
				ID:    "landsat",
				Title: "Landsat",
				Children: []*hierarchy.Node{
					{Kind: hierarchy.KindCollection, ID: "landsat-c2-l2"},
				},
				Items: []hierarchy.ItemPath{
					{CollectionID: "landsat-c2-l2", ItemID: "scene-1"},
				},
			},
		},
	}
}

func TestBrowseCatalog(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, &mockStore{}, testHierarchy())
	rec := doRequest(t, handler, http.MethodGet, "/catalogs/landsat", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var catalog stac.Catalog
	decodeBody(t, rec, &catalog)
	if catalog.Type != "Catalog" || catalog.ID != "landsat" {
		t.Errorf("Catalog = %s/%s", catalog.Type, catalog.ID)
	}
	if len(catalog.Links) != 4 {
		t.Fatalf("Links = %d, want child, item, root, self", len(catalog.Links))
	}

	rels := []string{catalog.Links[0].Rel, catalog.Links[1].Rel, catalog.Links[2].Rel, catalog.Links[3].Rel}
	want := []string{stac.RelChild, stac.RelItem, stac.RelRoot, stac.RelSelf}
	for i := range want {
		if rels[i] != want[i] {
			t.Errorf("Link[%d] rel = %q, want %q", i, rels[i], want[i])
		}
	}
	if !strings.HasSuffix(catalog.Links[3].Href, "/catalogs/landsat") {
		t.Errorf("Self href = %q", catalog.Links[3].Href)
	}
}

func TestBrowseCatalog_NotFound(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, &mockStore{}, testHierarchy())
	rec := doRequest(t, handler, http.MethodGet, "/catalogs/does-not-exist", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Status = %d, want 404", rec.Code)
	}
}

func TestBrowseCatalog_NoHierarchyConfigured(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, &mockStore{}, nil)
	rec := doRequest(t, handler, http.MethodGet, "/catalogs/anything", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Status = %d, want 404", rec.Code)
	}
}

func TestBrowseCatalog_NestedPath(t *testing.T) {
	t.Parallel()

	root := testHierarchy()
	root.Children[0].Children = append(root.Children[0].Children, &hierarchy.Node{
		Kind: hierarchy.KindCatalog,
		ID:   "level-2",
	})

	handler := newTestRouter(t, &mockStore{}, root)
	rec := doRequest(t, handler, http.MethodGet, "/catalogs/landsat/level-2", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var catalog stac.Catalog
	decodeBody(t, rec, &catalog)
	if catalog.ID != "level-2" {
		t.Errorf("Catalog id = %q, want level-2", catalog.ID)
	}
	if catalog.Description != "Generated description for level-2" {
		t.Errorf("Description = %q", catalog.Description)
	}
}
