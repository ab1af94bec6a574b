// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package api

import (
	"strings"

	"github.com/tomtom215/stratus/internal/stac"
)

// join appends path segments to a base URL that carries a trailing slash.
func join(base string, parts ...string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.Join(parts, "/")
}

// decorateCollection rewrites a stored collection's links for the address
// the client used. Stored links point at whatever host ingested the
// document, so they are replaced wholesale.
func decorateCollection(c stac.Collection, base string) {
	id := c.ID()
	c.SetLinks([]stac.Link{
		{Rel: stac.RelSelf, Type: stac.MediaTypeJSON, Href: join(base, "collections", id)},
		{Rel: stac.RelParent, Type: stac.MediaTypeJSON, Href: base},
		{Rel: stac.RelRoot, Type: stac.MediaTypeJSON, Href: base},
		{Rel: stac.RelItems, Type: stac.MediaTypeGeoJSON, Href: join(base, "collections", id, "items")},
		{Rel: stac.RelQueryables, Type: stac.MediaTypeSchemaJSON, Href: join(base, "collections", id, "queryables")},
	})
}

// decorateItem rewrites a stored item's links for the address the client
// used.
func decorateItem(item stac.Item, base string) {
	collectionID := item.CollectionID()
	item.SetLinks([]stac.Link{
		{Rel: stac.RelSelf, Type: stac.MediaTypeGeoJSON, Href: join(base, "collections", collectionID, "items", item.ID())},
		{Rel: stac.RelParent, Type: stac.MediaTypeJSON, Href: join(base, "collections", collectionID)},
		{Rel: stac.RelCollection, Type: stac.MediaTypeJSON, Href: join(base, "collections", collectionID)},
		{Rel: stac.RelRoot, Type: stac.MediaTypeJSON, Href: base},
	})
}

// paginationLinks appends next and previous links for a search result using
// pgstac's continuation tokens.
func paginationLinks(links []stac.Link, result *stac.ItemCollection, searchHref string) []stac.Link {
	if result.Next != "" {
		links = append(links, stac.Link{
			Rel:  stac.RelNext,
			Type: stac.MediaTypeGeoJSON,
			Href: searchHref + "?token=next:" + result.Next,
		})
	}
	if result.Prev != "" {
		links = append(links, stac.Link{
			Rel:  stac.RelPrevious,
			Type: stac.MediaTypeGeoJSON,
			Href: searchHref + "?token=prev:" + result.Prev,
		})
	}
	return links
}
