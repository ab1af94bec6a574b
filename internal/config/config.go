// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

// Package config loads the Stratus configuration using Koanf v2 with
// layered sources (highest priority wins):
//
//  1. Environment variables with the STRATUS_ prefix
//  2. Optional YAML config file
//  3. Built-in defaults
//
// STRATUS_SERVER_PORT=8080 maps to server.port, STRATUS_DATABASE_READ_DSN
// to database.read_dsn, and so on.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// DefaultConfigPaths lists the paths searched for a config file, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/stratus/config.yaml",
	"/etc/stratus/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "STRATUS_CONFIG_PATH"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	API       APIConfig       `koanf:"api"`
	Hierarchy HierarchyConfig `koanf:"hierarchy"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatabaseConfig holds pgstac connection settings. ReadDSN and WriteDSN may
// point at the same database; splitting them allows read replicas.
type DatabaseConfig struct {
	ReadDSN        string        `koanf:"read_dsn"`
	WriteDSN       string        `koanf:"write_dsn"`
	MinConns       int32         `koanf:"min_conns"`
	MaxConns       int32         `koanf:"max_conns"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// APIConfig holds request handling settings.
type APIConfig struct {
	Title           string        `koanf:"title"`
	Description     string        `koanf:"description"`
	CatalogID       string        `koanf:"catalog_id"`
	DefaultLimit    int           `koanf:"default_limit"`
	MaxLimit        int           `koanf:"max_limit"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// HierarchyConfig holds browsable-catalog settings. An empty Path disables
// the /catalogs routes and the browsable conformance classes.
type HierarchyConfig struct {
	Path     string `koanf:"path"`
	MaxDepth int    `koanf:"max_depth"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns the built-in defaults, applied before file and env
// layers.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			ReadDSN:        "postgresql://pgstac@localhost:5432/postgis",
			WriteDSN:       "", // Empty means reuse read_dsn
			MinConns:       1,
			MaxConns:       10,
			ConnectTimeout: 10 * time.Second,
		},
		API: APIConfig{
			Title:           "Stratus",
			Description:     "STAC API served from a pgstac backend",
			CatalogID:       "stratus",
			DefaultLimit:    10,
			MaxLimit:        10000,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   300,
			RateLimitWindow: time.Minute,
		},
		Hierarchy: HierarchyConfig{
			Path:     "",
			MaxDepth: 0, // 0 = hierarchy.DefaultMaxDepth
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Database.ReadDSN == "" {
		return fmt.Errorf("database.read_dsn is required")
	}
	if c.API.DefaultLimit < 1 {
		return fmt.Errorf("api.default_limit must be positive, got %d", c.API.DefaultLimit)
	}
	if c.API.MaxLimit < c.API.DefaultLimit {
		return fmt.Errorf("api.max_limit %d below api.default_limit %d",
			c.API.MaxLimit, c.API.DefaultLimit)
	}
	if c.Hierarchy.Path != "" {
		if _, err := os.Stat(c.Hierarchy.Path); err != nil {
			return fmt.Errorf("hierarchy.path: %w", err)
		}
	}
	return nil
}

// WriteDSNOrRead returns the write DSN, falling back to the read DSN when a
// separate writer is not configured.
func (c *DatabaseConfig) WriteDSNOrRead() string {
	if c.WriteDSN != "" {
		return c.WriteDSN
	}
	return c.ReadDSN
}

// Addr returns the host:port the HTTP server binds.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// envTransform maps STRATUS_SECTION_SOME_KEY to section.some_key. The first
// underscore separates the section; the rest of the name keeps its
// underscores.
func envTransform(key string) string {
	key = strings.TrimPrefix(key, envPrefix)
	key = strings.ToLower(key)
	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 {
		return key
	}
	return parts[0] + "." + parts[1]
}
