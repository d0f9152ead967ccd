// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

func (db *DB) initialize() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range db.schemaQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

func (db *DB) schemaQueries() []string {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_ratings_user_id ON ratings(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_ratings_recipe_id ON ratings(recipe_id)`,
	}

	if db.driver == DriverSQLite {
		return append([]string{
			`CREATE TABLE IF NOT EXISTS ratings (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id TEXT NOT NULL,
				recipe_id INTEGER NOT NULL,
				rating REAL NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
		}, indexes...)
	}

	return append([]string{
		`CREATE SEQUENCE IF NOT EXISTS ratings_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS ratings (
			id BIGINT PRIMARY KEY DEFAULT nextval('ratings_id_seq'),
			user_id VARCHAR NOT NULL,
			recipe_id INTEGER NOT NULL,
			rating DOUBLE NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}, indexes...)
}
