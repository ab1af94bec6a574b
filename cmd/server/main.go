// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

// Package main is the entry point for the Stratus server.
//
// Stratus is a STAC (SpatioTemporal Asset Catalog) API server backed by a
// pgstac PostgreSQL database. It serves the STAC API core endpoints
// (landing page, collections, items, search), transactions, queryables,
// and an optional browsable catalog hierarchy loaded from a YAML or JSON
// file.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from defaults, config file, and
//     STRATUS_* environment variables (Koanf v2)
//  2. Logging: structured zerolog output, JSON or console
//  3. Database: pgx connection pools against pgstac, optionally split
//     read/write
//  4. Hierarchy: the browsable catalog tree, when configured
//  5. HTTP server: chi router with the full STAC API surface
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections, waits for in-flight requests up to the
// configured shutdown timeout, then closes the database pools.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/stratus/internal/api"
	"github.com/tomtom215/stratus/internal/config"
	"github.com/tomtom215/stratus/internal/database"
	"github.com/tomtom215/stratus/internal/hierarchy"
	"github.com/tomtom215/stratus/internal/logging"
	"github.com/tomtom215/stratus/internal/metrics"
	"github.com/tomtom215/stratus/internal/stac"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("version", version).
		Str("stac_version", stac.Version).
		Msg("Starting Stratus")
	metrics.SetAppInfo(version, stac.Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	var root *hierarchy.Node
	if cfg.Hierarchy.Path != "" {
		root, err = hierarchy.Load(cfg.Hierarchy.Path, hierarchy.Options{MaxDepth: cfg.Hierarchy.MaxDepth})
		if err != nil {
			return err
		}
		logging.Info().
			Str("path", cfg.Hierarchy.Path).
			Int("children", len(root.Children)).
			Msg("Loaded catalog hierarchy")
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewRouter(cfg, db, root),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logging.Info().Msg("Shutdown complete")
	return nil
}
