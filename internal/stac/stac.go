// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

// Package stac defines the STAC document shapes served by Stratus.
//
// The types in this package mirror the STAC 1.0.0 specification: Catalogs,
// Collections, Items, and the Link records that cross-reference them. Stored
// documents (Collections, Items) round-trip through pgstac as raw JSON
// objects, so they are represented as maps with typed accessors; documents
// assembled by the server itself (Catalogs, landing page, ItemCollections)
// are structs.
package stac

// Version is the STAC specification version advertised in generated
// documents.
const Version = "1.0.0"

// Media types used in Link records and response Content-Type headers.
const (
	MediaTypeJSON       = "application/json"
	MediaTypeGeoJSON    = "application/geo+json"
	MediaTypeSchemaJSON = "application/schema+json"
	MediaTypeHTML       = "text/html"
	MediaTypeOpenAPI    = "application/vnd.oai.openapi+json;version=3.0"
)

// Link relation types.
const (
	RelSelf        = "self"
	RelRoot        = "root"
	RelParent      = "parent"
	RelChild       = "child"
	RelItem        = "item"
	RelItems       = "items"
	RelCollection  = "collection"
	RelConformance = "conformance"
	RelData        = "data"
	RelSearch      = "search"
	RelQueryables  = "http://www.opengis.net/def/rel/ogc/1.0/queryables"
	RelServiceDesc = "service-desc"
	RelNext        = "next"
	RelPrevious    = "previous"
)

// Link is a navigable relation between STAC documents.
type Link struct {
	Rel    string `json:"rel"`
	Type   string `json:"type,omitempty"`
	Title  string `json:"title,omitempty"`
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

// Catalog is a STAC Catalog document. Stratus generates these from the
// browsable hierarchy; they are never stored.
type Catalog struct {
	Type        string   `json:"type"`
	ID          string   `json:"id"`
	StacVersion string   `json:"stac_version"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description"`
	Links       []Link   `json:"links"`
	ConformsTo  []string `json:"conformsTo,omitempty"`
}

// LandingPage is the root STAC API document.
//
// StacExtensions is always serialized, even when empty, because API clients
// read its presence to decide extension handling.
type LandingPage struct {
	Type           string   `json:"type"`
	ID             string   `json:"id"`
	StacVersion    string   `json:"stac_version"`
	StacExtensions []string `json:"stac_extensions"`
	Title          string   `json:"title,omitempty"`
	Description    string   `json:"description"`
	ConformsTo     []string `json:"conformsTo"`
	Links          []Link   `json:"links"`
}

// Collection is a stored STAC Collection document. pgstac returns these as
// opaque JSON objects; the server only reads the id and rewrites links.
type Collection map[string]interface{}

// ID returns the collection id, or "" when absent or not a string.
func (c Collection) ID() string {
	id, _ := c["id"].(string)
	return id
}

// SetLinks replaces the document's links array.
func (c Collection) SetLinks(links []Link) {
	c["links"] = links
}

// Item is a stored STAC Item document (a GeoJSON Feature).
type Item map[string]interface{}

// ID returns the item id, or "" when absent or not a string.
func (i Item) ID() string {
	id, _ := i["id"].(string)
	return id
}

// CollectionID returns the id of the collection the item belongs to.
func (i Item) CollectionID() string {
	id, _ := i["collection"].(string)
	return id
}

// SetLinks replaces the document's links array.
func (i Item) SetLinks(links []Link) {
	i["links"] = links
}

// ItemCollection is a GeoJSON FeatureCollection of Items, the response shape
// of search and the items listing. stac_version and stac_extensions were
// dropped from this shape in STAC API v1.0.0-beta.3 and must not reappear.
type ItemCollection struct {
	Type           string `json:"type"`
	Features       []Item `json:"features"`
	Links          []Link `json:"links,omitempty"`
	NumberMatched  *int64 `json:"numberMatched,omitempty"`
	NumberReturned int    `json:"numberReturned"`
	Next           string `json:"next,omitempty"`
	Prev           string `json:"prev,omitempty"`
}

// Collections is the response shape of the collections listing.
type Collections struct {
	Collections []Collection `json:"collections"`
	Links       []Link       `json:"links"`
}

// Queryables is a JSON Schema document describing the properties a
// collection's items can be filtered on.
type Queryables struct {
	Schema               string                 `json:"$schema"`
	ID                   string                 `json:"$id"`
	Type                 string                 `json:"type"`
	Title                string                 `json:"title,omitempty"`
	Properties           map[string]interface{} `json:"properties"`
	AdditionalProperties bool                   `json:"additionalProperties"`
}
