// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/mealmatch/internal/metrics"
)

const queryTimeout = 10 * time.Second

// Rating is one stored rating row.
type Rating struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	RecipeID  int       `json:"recipe_id"`
	Value     float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// InsertRating appends a rating and returns the stored row.
func (db *DB) InsertRating(ctx context.Context, userID string, recipeID int, value float64) (*Rating, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	r := &Rating{
		UserID:    userID,
		RecipeID:  recipeID,
		Value:     value,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	err := db.conn.QueryRowContext(ctx,
		`INSERT INTO ratings (user_id, recipe_id, rating, created_at) VALUES (?, ?, ?, ?) RETURNING id`,
		userID, recipeID, value, r.CreatedAt,
	).Scan(&r.ID)
	metrics.RecordDBQuery("insert_rating", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("insert rating: %w", err)
	}
	metrics.RecordRatingInserted()
	return r, nil
}

// GetUserRatings returns every rating of userID in insertion order.
func (db *DB) GetUserRatings(ctx context.Context, userID string) ([]Rating, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, recipe_id, rating, created_at FROM ratings WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		metrics.RecordDBQuery("get_user_ratings", time.Since(start), err)
		return nil, fmt.Errorf("query user ratings: %w", err)
	}
	defer rows.Close()

	ratings := []Rating{}
	for rows.Next() {
		var r Rating
		if err := rows.Scan(&r.ID, &r.UserID, &r.RecipeID, &r.Value, &r.CreatedAt); err != nil {
			metrics.RecordDBQuery("get_user_ratings", time.Since(start), err)
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	err = rows.Err()
	metrics.RecordDBQuery("get_user_ratings", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}
	return ratings, nil
}

// GetPopularityCounts returns recipe id -> number of rating rows across
// all users. Recipes never rated are absent.
func (db *DB) GetPopularityCounts(ctx context.Context) (map[int]int, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT recipe_id, COUNT(*) FROM ratings GROUP BY recipe_id`,
	)
	if err != nil {
		metrics.RecordDBQuery("popularity", time.Since(start), err)
		return nil, fmt.Errorf("query popularity: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var recipeID int
		var n int64
		if err := rows.Scan(&recipeID, &n); err != nil {
			metrics.RecordDBQuery("popularity", time.Since(start), err)
			return nil, fmt.Errorf("scan popularity: %w", err)
		}
		counts[recipeID] = int(n)
	}
	err = rows.Err()
	metrics.RecordDBQuery("popularity", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("iterate popularity: %w", err)
	}
	return counts, nil
}

// CountRatings returns the total number of rating rows.
func (db *DB) CountRatings(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return n, nil
}
