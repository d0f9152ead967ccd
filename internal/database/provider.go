// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package database

import (
	"context"

	"github.com/tomtom215/mealmatch/internal/recommend"
)

// RatingsStore is the subset of DB the provider reads from.
type RatingsStore interface {
	GetUserRatings(ctx context.Context, userID string) ([]Rating, error)
	GetPopularityCounts(ctx context.Context) (map[int]int, error)
}

// RecommendationDataProvider serves ratings to the recommendation engine.
type RecommendationDataProvider struct {
	store RatingsStore
}

// NewRecommendationDataProvider wraps store.
func NewRecommendationDataProvider(store RatingsStore) *RecommendationDataProvider {
	return &RecommendationDataProvider{store: store}
}

// GetUserRatings returns recipe id -> rating. Rows come back in id order, so
// a later rating of the same recipe overwrites an earlier one.
func (p *RecommendationDataProvider) GetUserRatings(ctx context.Context, userID string) (map[int]float64, error) {
	rows, err := p.store.GetUserRatings(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make(map[int]float64, len(rows))
	for _, r := range rows {
		out[r.RecipeID] = r.Value
	}
	return out, nil
}

// GetPopularity returns recipe id -> rating count.
func (p *RecommendationDataProvider) GetPopularity(ctx context.Context) (map[int]int, error) {
	return p.store.GetPopularityCounts(ctx)
}

var _ recommend.RatingsSource = (*RecommendationDataProvider)(nil)
