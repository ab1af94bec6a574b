// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package hierarchy

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/stratus/internal/stac"
)

// ChildLink produces the child link for one node of a catalog's children
// list.
//
// Collection children resolve collections/{id} against the base URL, so
// they land under the flat /collections resource space. Catalog children
// instead append the catalog id as a literal sibling segment of the base
// URL. The asymmetry is deliberate: catalog hrefs compose recursively as a
// browse path (base/a, base/a/b, ...) while collection hrefs always address
// the stored resource. A generic node here is an invariant violation and
// returns ErrUntypedChild.
func ChildLink(node *Node, baseURL string) (stac.Link, error) {
	switch node.Kind {
	case KindCollection:
		href, err := resolve(baseURL, "collections/"+node.ID)
		if err != nil {
			return stac.Link{}, err
		}
		return stac.Link{
			Rel:   stac.RelChild,
			Type:  stac.MediaTypeJSON,
			Title: nodeTitle(node),
			Href:  href,
		}, nil

	case KindCatalog:
		return stac.Link{
			Rel:   stac.RelChild,
			Type:  stac.MediaTypeJSON,
			Title: nodeTitle(node),
			Href:  strings.Trim(baseURL, "/") + "/" + node.ID,
		}, nil

	default:
		return stac.Link{}, fmt.Errorf("child node: %w", ErrUntypedChild)
	}
}

// ItemLink produces the item link for one item reference.
func ItemLink(item ItemPath, baseURL string) (stac.Link, error) {
	href, err := resolve(baseURL, "collections/"+item.CollectionID+"/items/"+item.ItemID)
	if err != nil {
		return stac.Link{}, err
	}
	return stac.Link{
		Rel:  stac.RelItem,
		Type: stac.MediaTypeJSON,
		Href: href,
	}, nil
}

// BrowsableCatalog flattens one catalog node into a STAC Catalog document.
//
// The links array is ordered children, then items, then root and self; the
// order is client-facing and stable. The root link carries the base URL
// verbatim; the self link resolves /catalogs/{catalogPath} (slash-trimmed)
// absolute against the base. A missing description is replaced with a
// generated placeholder so the document stays STAC-valid.
func BrowsableCatalog(node *Node, catalogPath, baseURL string) (*stac.Catalog, error) {
	if node.Kind != KindCatalog {
		return nil, fmt.Errorf("%s node %q: %w", node.Kind, node.ID, ErrNotCatalog)
	}

	links := make([]stac.Link, 0, len(node.Children)+len(node.Items)+2)
	for _, child := range node.Children {
		link, err := ChildLink(child, baseURL)
		if err != nil {
			return nil, fmt.Errorf("catalog %q: %w", node.ID, err)
		}
		links = append(links, link)
	}
	for _, item := range node.Items {
		link, err := ItemLink(item, baseURL)
		if err != nil {
			return nil, fmt.Errorf("catalog %q: %w", node.ID, err)
		}
		links = append(links, link)
	}

	selfHref, err := resolve(baseURL, "/catalogs/"+strings.Trim(catalogPath, "/"))
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", node.ID, err)
	}
	links = append(links,
		stac.Link{Rel: stac.RelRoot, Type: stac.MediaTypeJSON, Href: baseURL},
		stac.Link{Rel: stac.RelSelf, Type: stac.MediaTypeJSON, Href: selfHref},
	)

	description := node.Description
	if description == "" {
		description = "Generated description for " + node.ID
	}

	return &stac.Catalog{
		Type:        "Catalog",
		ID:          node.ID,
		StacVersion: stac.Version,
		Description: description,
		Links:       links,
	}, nil
}

// resolve joins ref onto baseURL with RFC 3986 reference resolution,
// treating the base as a directory: a relative ref appends to the base path
// instead of replacing its last segment, and a ref with a leading slash
// replaces the whole path.
func resolve(baseURL, ref string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("base url %q: %w", baseURL, err)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("ref %q: %w", ref, err)
	}
	if !strings.HasPrefix(ref, "/") && !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(r).String(), nil
}

func nodeTitle(node *Node) string {
	if node.Title != "" {
		return node.Title
	}
	return node.ID
}
