// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package hierarchy

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load reads a hierarchy definition file and parses it into a node tree.
// The file is YAML; JSON definitions load through the same parser since
// YAML is a superset.
func Load(path string, opts Options) (*Node, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load hierarchy definition %q: %w", path, err)
	}
	root, err := Parse(k.Raw(), opts)
	if err != nil {
		return nil, fmt.Errorf("parse hierarchy definition %q: %w", path, err)
	}
	return root, nil
}
