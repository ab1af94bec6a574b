// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

// Package database provides the pgstac access layer.
//
// pgstac keeps the STAC logic (search, filtering, pagination tokens) inside
// PostgreSQL functions operating on jsonb; this package is a thin wrapper
// that marshals requests in, scans documents out, and translates pgstac
// errors into sentinels the API layer can map to HTTP statuses. Reads and
// writes go through separate pools so deployments can point reads at a
// replica.
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tomtom215/stratus/internal/config"
	"github.com/tomtom215/stratus/internal/logging"
)

// Sentinel errors translated from pgstac failures.
var (
	// ErrNotFound indicates the addressed collection or item does not
	// exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a create for an id that already exists.
	ErrConflict = errors.New("already exists")
)

// pgstac RAISEs use SQLSTATE P0001; uniqueness failures surface as 23505.
const (
	sqlstateRaiseException  = "P0001"
	sqlstateUniqueViolation = "23505"
)

// DB holds the read and write pools for one pgstac database.
type DB struct {
	read  *pgxpool.Pool
	write *pgxpool.Pool
}

// Connect opens the read and write pools. When no separate write DSN is
// configured both handles share one pool.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	read, err := newPool(ctx, cfg, cfg.ReadDSN)
	if err != nil {
		return nil, fmt.Errorf("connect read pool: %w", err)
	}

	write := read
	if cfg.WriteDSN != "" && cfg.WriteDSN != cfg.ReadDSN {
		write, err = newPool(ctx, cfg, cfg.WriteDSN)
		if err != nil {
			read.Close()
			return nil, fmt.Errorf("connect write pool: %w", err)
		}
	}

	logging.Info().
		Bool("split_pools", read != write).
		Msg("Connected to pgstac database")

	return &DB{read: read, write: write}, nil
}

func newPool(ctx context.Context, cfg config.DatabaseConfig, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	// pgstac resolves unqualified function names through the search path.
	poolCfg.ConnConfig.RuntimeParams["search_path"] = "pgstac,public"

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

// Close releases both pools.
func (db *DB) Close() {
	if db.write != db.read {
		db.write.Close()
	}
	db.read.Close()
}

// Ping verifies the read pool is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.read.Ping(ctx)
}

// translateError maps pgstac failures to sentinel errors. pgstac signals
// missing documents with RAISE EXCEPTION '... not found', so the message
// text is part of the contract.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == sqlstateUniqueViolation:
			return fmt.Errorf("%s: %w", pgErr.Message, ErrConflict)
		case pgErr.Code == sqlstateRaiseException && strings.Contains(strings.ToLower(pgErr.Message), "not found"):
			return fmt.Errorf("%s: %w", pgErr.Message, ErrNotFound)
		case pgErr.Code == sqlstateRaiseException && strings.Contains(strings.ToLower(pgErr.Message), "already exists"):
			return fmt.Errorf("%s: %w", pgErr.Message, ErrConflict)
		}
	}
	return err
}
