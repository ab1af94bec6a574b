// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/stratus/internal/config"
	"github.com/tomtom215/stratus/internal/database"
	"github.com/tomtom215/stratus/internal/models"
	"github.com/tomtom215/stratus/internal/stac"
)

// errTest stands in for an unexpected backend failure.
var errTest = errors.New("backend failure")

// mockStore implements Store with overridable function fields. Unset fields
// fall back to an empty catalog.
type mockStore struct {
	searchFn           func(ctx context.Context, req *models.SearchRequest) (*stac.ItemCollection, error)
	allCollectionsFn   func(ctx context.Context) ([]stac.Collection, error)
	getCollectionFn    func(ctx context.Context, id string) (stac.Collection, error)
	getItemFn          func(ctx context.Context, collectionID, itemID string) (stac.Item, error)
	createCollectionFn func(ctx context.Context, collection stac.Collection) error
	updateCollectionFn func(ctx context.Context, collection stac.Collection) error
	deleteCollectionFn func(ctx context.Context, id string) error
	createItemFn       func(ctx context.Context, item stac.Item) error
	updateItemFn       func(ctx context.Context, item stac.Item) error
	deleteItemFn       func(ctx context.Context, collectionID, itemID string) error
	queryablesFn       func(ctx context.Context, collectionID string) (map[string]interface{}, error)
	pingFn             func(ctx context.Context) error

	// lastSearch captures the request passed to Search.
	lastSearch *models.SearchRequest
}

func (m *mockStore) Search(ctx context.Context, req *models.SearchRequest) (*stac.ItemCollection, error) {
	m.lastSearch = req
	if m.searchFn != nil {
		return m.searchFn(ctx, req)
	}
	return &stac.ItemCollection{Type: "FeatureCollection", Features: []stac.Item{}}, nil
}

func (m *mockStore) AllCollections(ctx context.Context) ([]stac.Collection, error) {
	if m.allCollectionsFn != nil {
		return m.allCollectionsFn(ctx)
	}
	return nil, nil
}

func (m *mockStore) GetCollection(ctx context.Context, id string) (stac.Collection, error) {
	if m.getCollectionFn != nil {
		return m.getCollectionFn(ctx, id)
	}
	return nil, fmt.Errorf("collection %q: %w", id, database.ErrNotFound)
}

func (m *mockStore) GetItem(ctx context.Context, collectionID, itemID string) (stac.Item, error) {
	if m.getItemFn != nil {
		return m.getItemFn(ctx, collectionID, itemID)
	}
	return nil, fmt.Errorf("item %s/%s: %w", collectionID, itemID, database.ErrNotFound)
}

func (m *mockStore) CreateCollection(ctx context.Context, collection stac.Collection) error {
	if m.createCollectionFn != nil {
		return m.createCollectionFn(ctx, collection)
	}
	return nil
}

func (m *mockStore) UpdateCollection(ctx context.Context, collection stac.Collection) error {
	if m.updateCollectionFn != nil {
		return m.updateCollectionFn(ctx, collection)
	}
	return nil
}

func (m *mockStore) DeleteCollection(ctx context.Context, id string) error {
	if m.deleteCollectionFn != nil {
		return m.deleteCollectionFn(ctx, id)
	}
	return nil
}

func (m *mockStore) CreateItem(ctx context.Context, item stac.Item) error {
	if m.createItemFn != nil {
		return m.createItemFn(ctx, item)
	}
	return nil
}

func (m *mockStore) UpdateItem(ctx context.Context, item stac.Item) error {
	if m.updateItemFn != nil {
		return m.updateItemFn(ctx, item)
	}
	return nil
}

func (m *mockStore) DeleteItem(ctx context.Context, collectionID, itemID string) error {
	if m.deleteItemFn != nil {
		return m.deleteItemFn(ctx, collectionID, itemID)
	}
	return nil
}

func (m *mockStore) Queryables(ctx context.Context, collectionID string) (map[string]interface{}, error) {
	if m.queryablesFn != nil {
		return m.queryablesFn(ctx, collectionID)
	}
	return map[string]interface{}{
		"$schema":    "https://json-schema.org/draft/2019-09/schema",
		"$id":        "stale-id",
		"type":       "object",
		"properties": map[string]interface{}{},
	}, nil
}

func (m *mockStore) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

// testConfig returns a config with the defaults the handlers depend on.
func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			Title:           "Stratus",
			Description:     "Test catalog",
			CatalogID:       "stratus",
			DefaultLimit:    10,
			MaxLimit:        10000,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   0,
			RateLimitWindow: time.Minute,
		},
	}
}
