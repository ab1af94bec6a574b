// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package api

import (
	"context"

	"github.com/tomtom215/stratus/internal/models"
	"github.com/tomtom215/stratus/internal/stac"
)

// Store is the persistence boundary of the API layer. The production
// implementation is database.DB backed by pgstac; tests substitute a mock.
type Store interface {
	Search(ctx context.Context, req *models.SearchRequest) (*stac.ItemCollection, error)
	AllCollections(ctx context.Context) ([]stac.Collection, error)
	GetCollection(ctx context.Context, id string) (stac.Collection, error)
	GetItem(ctx context.Context, collectionID, itemID string) (stac.Item, error)
	CreateCollection(ctx context.Context, collection stac.Collection) error
	UpdateCollection(ctx context.Context, collection stac.Collection) error
	DeleteCollection(ctx context.Context, id string) error
	CreateItem(ctx context.Context, item stac.Item) error
	UpdateItem(ctx context.Context, item stac.Item) error
	DeleteItem(ctx context.Context, collectionID, itemID string) error
	Queryables(ctx context.Context, collectionID string) (map[string]interface{}, error)
	Ping(ctx context.Context) error
}
