// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

// Package models defines the request and error models of the Stratus API.
//
// SearchRequest is the POST /search body; the GET variants (query-string
// search and the items listing) decode into the same struct so both paths
// share validation and the pgstac call.
package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stratus/internal/validation"
)

// Bounding boxes are 4 (2D) or 6 (3D) coordinates.
const (
	bboxLen2D = 4
	bboxLen3D = 6
)

// SortBy is one sort clause of the sort extension.
type SortBy struct {
	Field     string `json:"field" validate:"required"`
	Direction string `json:"direction" validate:"required,oneof=asc desc"`
}

// SearchRequest models a STAC item search.
//
// Limit is a pointer so an explicit zero is distinguishable from an absent
// field: {"limit": 0} must be rejected, a missing limit falls back to the
// server default.
type SearchRequest struct {
	Collections []string                          `json:"collections,omitempty"`
	IDs         []string                          `json:"ids,omitempty"`
	Bbox        []float64                         `json:"bbox,omitempty"`
	Intersects  json.RawMessage                   `json:"intersects,omitempty"`
	Datetime    string                            `json:"datetime,omitempty"`
	Limit       *int                              `json:"limit,omitempty" validate:"omitempty,min=1,max=10000"`
	Query       map[string]map[string]interface{} `json:"query,omitempty"`
	SortBy      []SortBy                          `json:"sortby,omitempty" validate:"omitempty,dive"`
	Token       string                            `json:"token,omitempty"`
}

// Validate checks the request beyond what struct tags express: bbox shape
// and the datetime interval grammar.
func (r *SearchRequest) Validate() error {
	if verr := validation.ValidateStruct(r); verr != nil {
		return verr
	}
	if err := ValidateBbox(r.Bbox); err != nil {
		return err
	}
	if r.Datetime != "" {
		if _, err := ParseDatetimeInterval(r.Datetime); err != nil {
			return err
		}
	}
	return nil
}

// EffectiveLimit returns the limit to use, applying the server default when
// the request carries none.
func (r *SearchRequest) EffectiveLimit(defaultLimit int) int {
	if r.Limit == nil {
		return defaultLimit
	}
	return *r.Limit
}

// ValidateBbox checks the coordinate count and the axis ordering of the 2D
// corners.
func ValidateBbox(bbox []float64) error {
	switch len(bbox) {
	case 0:
		return nil
	case bboxLen2D:
		if bbox[0] > bbox[2] || bbox[1] > bbox[3] {
			return fmt.Errorf("bbox corners out of order: %v", bbox)
		}
	case bboxLen3D:
		if bbox[0] > bbox[3] || bbox[1] > bbox[4] {
			return fmt.Errorf("bbox corners out of order: %v", bbox)
		}
	default:
		return fmt.Errorf("bbox must have 4 or 6 coordinates, got %d", len(bbox))
	}
	return nil
}

// DatetimeInterval is a closed, half-open, or instantaneous time range.
// Nil endpoints are open ("..").
type DatetimeInterval struct {
	Start *time.Time
	End   *time.Time
}

// ParseDatetimeInterval parses the OGC datetime parameter grammar: a single
// RFC 3339 instant, or "start/end" where either side may be ".." (or empty)
// for an open range.
func ParseDatetimeInterval(s string) (DatetimeInterval, error) {
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 1:
		t, err := parseInstant(parts[0])
		if err != nil {
			return DatetimeInterval{}, err
		}
		return DatetimeInterval{Start: t, End: t}, nil
	case 2:
		start, err := parseIntervalEndpoint(parts[0])
		if err != nil {
			return DatetimeInterval{}, err
		}
		end, err := parseIntervalEndpoint(parts[1])
		if err != nil {
			return DatetimeInterval{}, err
		}
		if start == nil && end == nil {
			return DatetimeInterval{}, fmt.Errorf("datetime interval %q is open on both sides", s)
		}
		if start != nil && end != nil && start.After(*end) {
			return DatetimeInterval{}, fmt.Errorf("datetime interval %q ends before it starts", s)
		}
		return DatetimeInterval{Start: start, End: end}, nil
	default:
		return DatetimeInterval{}, fmt.Errorf("invalid datetime interval %q", s)
	}
}

func parseIntervalEndpoint(s string) (*time.Time, error) {
	if s == ".." || s == "" {
		return nil, nil
	}
	return parseInstant(s)
}

func parseInstant(s string) (*time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid RFC 3339 datetime %q", s)
	}
	return &t, nil
}

// DecodeSearchQuery builds a SearchRequest from GET /search query
// parameters. List parameters are comma-separated; query is a URL-encoded
// JSON object; sortby entries use the +field/-field shorthand.
func DecodeSearchQuery(values url.Values) (*SearchRequest, error) {
	req := &SearchRequest{
		Collections: splitList(values.Get("collections")),
		IDs:         splitList(values.Get("ids")),
		Datetime:    values.Get("datetime"),
		Token:       values.Get("token"),
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid limit %q", raw)
		}
		req.Limit = &limit
	}

	if raw := values.Get("bbox"); raw != "" {
		bbox, err := ParseBboxParam(raw)
		if err != nil {
			return nil, err
		}
		req.Bbox = bbox
	}

	if raw := values.Get("intersects"); raw != "" {
		if !json.Valid([]byte(raw)) {
			return nil, fmt.Errorf("intersects is not valid GeoJSON")
		}
		req.Intersects = json.RawMessage(raw)
	}

	if raw := values.Get("query"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Query); err != nil {
			return nil, fmt.Errorf("invalid query parameter: %w", err)
		}
	}

	if raw := values.Get("sortby"); raw != "" {
		sortby, err := parseSortParam(raw)
		if err != nil {
			return nil, err
		}
		req.SortBy = sortby
	}

	return req, nil
}

// ParseBboxParam parses a comma-separated bbox query parameter.
func ParseBboxParam(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	bbox := make([]float64, 0, len(parts))
	for _, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bbox coordinate %q", part)
		}
		bbox = append(bbox, f)
	}
	return bbox, nil
}

// parseSortParam parses the GET sortby shorthand: "-datetime,+id,cloud".
// A leading "-" sorts descending; "+" or no prefix sorts ascending.
func parseSortParam(raw string) ([]SortBy, error) {
	var sortby []SortBy
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		direction := "asc"
		switch entry[0] {
		case '-':
			direction = "desc"
			entry = entry[1:]
		case '+':
			entry = entry[1:]
		}
		if entry == "" {
			return nil, fmt.Errorf("sortby entry missing field name")
		}
		sortby = append(sortby, SortBy{Field: entry, Direction: direction})
	}
	return sortby, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
