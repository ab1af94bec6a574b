// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

// Package hierarchy builds browsable STAC catalog trees.
//
// A hierarchy definition is a nested mapping, typically loaded from a YAML
// or JSON file, that arranges Catalogs and Collections into a tree and
// attaches item references to its nodes. Parse converts the mapping into a
// typed node tree; BrowsableCatalog flattens one catalog node into a STAC
// Catalog document whose links point at the children, items, root, and the
// node itself.
//
// Node classification happens exactly once, at parse time: a mapping with a
// collection_id key is a Collection node, a mapping with a catalog_id key
// (and no collection_id) is a Catalog node, and a mapping with neither is a
// generic structural node. Generic nodes may only appear at the root; one
// reaching the link builders is a malformed definition and fails loudly.
package hierarchy

import (
	"errors"
	"fmt"
)

// DefaultMaxDepth bounds recursion when Options.MaxDepth is zero. Real
// catalog trees are a handful of levels deep; the bound exists so a
// self-referential or hostile definition fails instead of exhausting the
// stack.
const DefaultMaxDepth = 32

// Parse and traversal errors.
var (
	// ErrDepthExceeded indicates the definition nests deeper than MaxDepth.
	ErrDepthExceeded = errors.New("hierarchy depth exceeded")

	// ErrMalformedNode indicates a node or field with an unexpected shape.
	ErrMalformedNode = errors.New("malformed hierarchy node")

	// ErrMalformedItems indicates an items entry that is not a two-element
	// [collection_id, item_id] pair of strings.
	ErrMalformedItems = errors.New("malformed items entry")

	// ErrUntypedChild indicates a generic node in a children list reached
	// the link builders. Only Catalog and Collection nodes are meaningful
	// children, so this is an invariant violation, not a skippable entry.
	ErrUntypedChild = errors.New("untyped child node")

	// ErrNotCatalog indicates a non-catalog node was passed to
	// BrowsableCatalog.
	ErrNotCatalog = errors.New("node is not a catalog")

	// ErrCatalogNotFound indicates no catalog node exists at the requested
	// path.
	ErrCatalogNotFound = errors.New("catalog not found")
)

// NodeKind discriminates the three node variants.
type NodeKind int

const (
	// KindGeneric is a structural node carrying no STAC identity. Valid
	// only as the tree root.
	KindGeneric NodeKind = iota

	// KindCollection references a stored STAC Collection.
	KindCollection

	// KindCatalog is a browsable STAC Catalog.
	KindCatalog
)

// String returns the kind name for error messages and logs.
func (k NodeKind) String() string {
	switch k {
	case KindCollection:
		return "collection"
	case KindCatalog:
		return "catalog"
	default:
		return "generic"
	}
}

// ItemPath identifies a leaf item by the collection that stores it.
type ItemPath struct {
	CollectionID string
	ItemID       string
}

// Node is one node of a parsed hierarchy. Nodes are immutable after Parse
// returns; callers on concurrent request paths may share a tree freely.
type Node struct {
	Kind NodeKind

	// ID is the collection_id or catalog_id, depending on Kind. Empty for
	// generic nodes.
	ID string

	// Title and Description are only populated for catalog nodes, and only
	// when the definition supplies them.
	Title       string
	Description string

	Children []*Node
	Items    []ItemPath
}

// Options controls parsing.
type Options struct {
	// MaxDepth is the maximum nesting depth accepted; zero means
	// DefaultMaxDepth. Depth 1 is the root node.
	MaxDepth int
}

// Parse converts a nested mapping into a typed node tree.
//
// The mapping may contain children (a list of mappings, parsed recursively),
// items (a list of [collection_id, item_id] pairs), and the classification
// keys collection_id / catalog_id plus the optional catalog title and
// description. Absent children and items normalize to empty slices. All
// shape errors carry the path of the offending node, e.g.
// "children[1].items[0]".
func Parse(m map[string]interface{}, opts Options) (*Node, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return parseNode(m, "hierarchy", 1, maxDepth)
}

func parseNode(m map[string]interface{}, path string, depth, maxDepth int) (*Node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%s: depth %d: %w", path, depth, ErrDepthExceeded)
	}

	var children []*Node
	if raw, ok := m["children"]; ok {
		list, ok := raw.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: children is %T, want list: %w", path, raw, ErrMalformedNode)
		}
		children = make([]*Node, 0, len(list))
		for i, entry := range list {
			childMap, ok := entry.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%s.children[%d]: entry is %T, want mapping: %w", path, i, entry, ErrMalformedNode)
			}
			child, err := parseNode(childMap, fmt.Sprintf("%s.children[%d]", path, i), depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
	}

	items, err := parseItems(m, path)
	if err != nil {
		return nil, err
	}

	node := &Node{Children: children, Items: items}

	// Classification order matters: collection_id wins over catalog_id.
	if id, ok := m["collection_id"]; ok {
		s, err := stringField(id, path, "collection_id")
		if err != nil {
			return nil, err
		}
		node.Kind = KindCollection
		node.ID = s
		return node, nil
	}
	if id, ok := m["catalog_id"]; ok {
		s, err := stringField(id, path, "catalog_id")
		if err != nil {
			return nil, err
		}
		node.Kind = KindCatalog
		node.ID = s
		if title, ok := m["title"]; ok {
			if node.Title, err = stringField(title, path, "title"); err != nil {
				return nil, err
			}
		}
		if desc, ok := m["description"]; ok {
			if node.Description, err = stringField(desc, path, "description"); err != nil {
				return nil, err
			}
		}
		return node, nil
	}

	node.Kind = KindGeneric
	return node, nil
}

func parseItems(m map[string]interface{}, path string) ([]ItemPath, error) {
	raw, ok := m["items"]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s: items is %T, want list: %w", path, raw, ErrMalformedNode)
	}

	items := make([]ItemPath, 0, len(list))
	for i, entry := range list {
		pair, ok := entry.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("%s.items[%d]: want [collection_id, item_id] pair: %w", path, i, ErrMalformedItems)
		}
		collectionID, ok1 := pair[0].(string)
		itemID, ok2 := pair[1].(string)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%s.items[%d]: pair elements must be strings: %w", path, i, ErrMalformedItems)
		}
		items = append(items, ItemPath{CollectionID: collectionID, ItemID: itemID})
	}
	return items, nil
}

func stringField(v interface{}, path, key string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: %s is %T, want string: %w", path, key, v, ErrMalformedNode)
	}
	return s, nil
}

// FindCatalog resolves a slash-separated catalog path against a parsed
// tree. The first segment may address the root node itself when the root is
// a catalog; every segment after that addresses a catalog child of the
// previous node. Leading, trailing, and doubled slashes are ignored.
func FindCatalog(root *Node, path string) (*Node, error) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil, fmt.Errorf("empty catalog path: %w", ErrCatalogNotFound)
	}

	current := root
	start := 0
	if root.Kind == KindCatalog && root.ID == segments[0] {
		start = 1
	}
	for _, segment := range segments[start:] {
		next := catalogChild(current, segment)
		if next == nil {
			return nil, fmt.Errorf("%q: %w", path, ErrCatalogNotFound)
		}
		current = next
	}
	if current.Kind != KindCatalog {
		return nil, fmt.Errorf("%q: %w", path, ErrCatalogNotFound)
	}
	return current, nil
}

func catalogChild(node *Node, id string) *Node {
	for _, child := range node.Children {
		if child.Kind == KindCatalog && child.ID == id {
			return child
		}
	}
	return nil
}

func splitPath(path string) []string {
	var segments []string
	start := -1
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '/' {
			if start >= 0 {
				segments = append(segments, path[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	return segments
}
