// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
)

// DB wraps the standard library connection pool together with the
// squirrel statement builder configured for the active driver's placeholder
// format and the goose dialect name used by migrations.
type DB struct {
	*sql.DB

	// builder carries the placeholder format matching the driver:
	// $1-style for PostgreSQL, ?-style for SQLite.
	builder sq.StatementBuilderType

	// dialect is the goose dialect name ("pgx" or "sqlite3").
	dialect string

	logger *logger.Logger
}

// Dialect returns the goose dialect name for the open connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// NewDB opens the database described by cfg.DSN and verifies the connection
// with a ping. A "postgres://" or "postgresql://" DSN prefix selects the pgx
// driver; any other DSN is treated as an SQLite file path (created on first
// use).
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return newConnectPostgres(ctx, cfg, log)
	}
	return newConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func newConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "newConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "newConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "newConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:      conn,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		dialect: "pgx",
		logger:  log,
	}, nil
}

func newConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "newConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "newConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "newConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "newConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:      conn,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		dialect: "sqlite3",
		logger:  log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
