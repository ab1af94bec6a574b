// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"

	"github.com/tomtom215/stratus/internal/metrics"
	"github.com/tomtom215/stratus/internal/models"
	"github.com/tomtom215/stratus/internal/stac"
)

// queryRower is the subset of pgxpool.Pool used by single-row reads.
type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// scanFunc runs one pgstac function returning a jsonb document and records
// its latency.
func scanFunc(ctx context.Context, pool queryRower, fn, sql string, dest *[]byte, args ...interface{}) error {
	start := time.Now()
	err := pool.QueryRow(ctx, sql, args...).Scan(dest)
	metrics.RecordDBQuery(fn, time.Since(start), err)
	return err
}

// Search runs a STAC item search through pgstac's search() function.
func (db *DB) Search(ctx context.Context, req *models.SearchRequest) (*stac.ItemCollection, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	var raw []byte
	if err := scanFunc(ctx, db.read, "search", "SELECT search($1::text::jsonb)", &raw, string(body)); err != nil {
		return nil, translateError(err)
	}

	result := &stac.ItemCollection{Type: "FeatureCollection"}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, fmt.Errorf("decode search result: %w", err)
	}
	result.NumberReturned = len(result.Features)
	metrics.RecordSearchResults(result.NumberReturned)
	return result, nil
}

// AllCollections lists every collection in the catalog.
func (db *DB) AllCollections(ctx context.Context) ([]stac.Collection, error) {
	var raw []byte
	if err := scanFunc(ctx, db.read, "all_collections", "SELECT all_collections()", &raw); err != nil {
		return nil, translateError(err)
	}

	var collections []stac.Collection
	if err := json.Unmarshal(raw, &collections); err != nil {
		return nil, fmt.Errorf("decode collections: %w", err)
	}
	return collections, nil
}

// GetCollection fetches one collection by id.
func (db *DB) GetCollection(ctx context.Context, id string) (stac.Collection, error) {
	var raw []byte
	if err := scanFunc(ctx, db.read, "get_collection", "SELECT get_collection($1::text)", &raw, id); err != nil {
		return nil, translateError(err)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("collection %q: %w", id, ErrNotFound)
	}

	var collection stac.Collection
	if err := json.Unmarshal(raw, &collection); err != nil {
		return nil, fmt.Errorf("decode collection %q: %w", id, err)
	}
	return collection, nil
}

// GetItem fetches one item by id within a collection. pgstac has no direct
// item getter, so this is a single-result search constrained to the ids.
func (db *DB) GetItem(ctx context.Context, collectionID, itemID string) (stac.Item, error) {
	one := 1
	result, err := db.Search(ctx, &models.SearchRequest{
		Collections: []string{collectionID},
		IDs:         []string{itemID},
		Limit:       &one,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Features) == 0 {
		return nil, fmt.Errorf("item %s/%s: %w", collectionID, itemID, ErrNotFound)
	}
	return result.Features[0], nil
}

// CreateCollection inserts a new collection document.
func (db *DB) CreateCollection(ctx context.Context, collection stac.Collection) error {
	return db.writeFunc(ctx, "create_collection", collection)
}

// UpdateCollection replaces an existing collection document.
func (db *DB) UpdateCollection(ctx context.Context, collection stac.Collection) error {
	return db.writeFunc(ctx, "update_collection", collection)
}

// DeleteCollection removes a collection and its items.
func (db *DB) DeleteCollection(ctx context.Context, id string) error {
	start := time.Now()
	_, err := db.write.Exec(ctx, "SELECT delete_collection($1::text)", id)
	metrics.RecordDBQuery("delete_collection", time.Since(start), err)
	return translateError(err)
}

// CreateItem inserts a new item document. The item's collection field names
// the owning collection.
func (db *DB) CreateItem(ctx context.Context, item stac.Item) error {
	return db.writeFunc(ctx, "create_item", item)
}

// UpdateItem replaces an existing item document.
func (db *DB) UpdateItem(ctx context.Context, item stac.Item) error {
	return db.writeFunc(ctx, "update_item", item)
}

// DeleteItem removes one item from a collection.
func (db *DB) DeleteItem(ctx context.Context, collectionID, itemID string) error {
	start := time.Now()
	_, err := db.write.Exec(ctx, "SELECT delete_item($1::text, $2::text)", itemID, collectionID)
	metrics.RecordDBQuery("delete_item", time.Since(start), err)
	return translateError(err)
}

// Queryables returns the JSON Schema of filterable properties, catalog-wide
// when collectionID is empty. Unknown collections are a not-found error so
// the API can 404 instead of returning an empty schema.
func (db *DB) Queryables(ctx context.Context, collectionID string) (map[string]interface{}, error) {
	var raw []byte
	var err error
	if collectionID == "" {
		err = scanFunc(ctx, db.read, "get_queryables", "SELECT get_queryables()", &raw)
	} else {
		if _, err = db.GetCollection(ctx, collectionID); err != nil {
			return nil, err
		}
		err = scanFunc(ctx, db.read, "get_queryables", "SELECT get_queryables($1::text)", &raw, collectionID)
	}
	if err != nil {
		return nil, translateError(err)
	}

	var schema map[string]interface{}
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("decode queryables: %w", err)
	}
	return schema, nil
}

// writeFunc calls a pgstac function taking one jsonb document argument.
func (db *DB) writeFunc(ctx context.Context, fn string, doc interface{}) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s argument: %w", fn, err)
	}
	start := time.Now()
	_, err = db.write.Exec(ctx, fmt.Sprintf("SELECT %s($1::text::jsonb)", fn), string(body))
	metrics.RecordDBQuery(fn, time.Since(start), err)
	return translateError(err)
}
