// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tomtom215/mealmatch/internal/config"
	"github.com/tomtom215/mealmatch/internal/logging"
)

// Driver names accepted in DatabaseConfig.Driver.
const (
	DriverDuckDB = "duckdb"
	DriverSQLite = "sqlite"
)

// DB wraps the ratings store connection.
type DB struct {
	conn   *sql.DB
	cfg    *config.DatabaseConfig
	driver string
}

// New opens the store described by cfg and creates the schema.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	if cfg.Path != ":memory:" {
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	driverName, dsn, err := connectionString(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, cfg: cfg, driver: cfg.Driver}
	db.configureConnectionPool()

	if err := db.initialize(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Info().
		Str("driver", db.driver).
		Str("path", cfg.Path).
		Msg("Ratings store ready")
	return db, nil
}

func connectionString(cfg *config.DatabaseConfig) (driverName, dsn string, err error) {
	switch cfg.Driver {
	case DriverDuckDB, "":
		threads := cfg.Threads
		if threads <= 0 {
			threads = runtime.NumCPU()
		}
		maxMemory := cfg.MaxMemory
		if maxMemory == "" {
			maxMemory = "1GB"
		}
		return "duckdb", fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
			cfg.Path, threads, maxMemory), nil
	case DriverSQLite:
		if cfg.Path == ":memory:" {
			return "sqlite3", ":memory:", nil
		}
		return "sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.Path), nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// configureConnectionPool sizes the pool per driver. SQLite allows a single
// writer, so it gets one connection.
func (db *DB) configureConnectionPool() {
	if db.driver == DriverSQLite {
		db.conn.SetMaxOpenConns(1)
		db.conn.SetMaxIdleConns(1)
		db.conn.SetConnMaxLifetime(0)
		return
	}
	db.conn.SetMaxOpenConns(runtime.NumCPU())
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	if db.driver == "" {
		return DriverDuckDB
	}
	return db.driver
}

// Ping checks the connection.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close closes the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}
