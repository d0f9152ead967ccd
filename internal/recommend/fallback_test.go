// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"math/rand"
	"reflect"
	"testing"
)

func candidateIDs(items []Candidate) []int {
	ids := make([]int, len(items))
	for i, c := range items {
		ids[i] = c.RecipeID
	}
	return ids
}

func TestSelectFallback_PopularityOrder(t *testing.T) {
	pool := []int{101, 102, 103, 104, 105}
	popularity := map[int]int{101: 5, 102: 3, 103: 0}

	got := SelectFallback(pool, popularity, 10, 0.8, rand.New(rand.NewSource(1)))

	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[0].RecipeID != 101 || got[1].RecipeID != 102 {
		t.Errorf("first two = %v, want [101 102 ...]", candidateIDs(got))
	}
	if got[0].Tier != TierFallbackPopular {
		t.Errorf("Tier = %q, want %q", got[0].Tier, TierFallbackPopular)
	}
	if got[0].Score != 5 {
		t.Errorf("Score = %v, want popularity 5", got[0].Score)
	}
}

func TestSelectFallback_Split(t *testing.T) {
	pool := make([]int, 20)
	popularity := make(map[int]int, 20)
	for i := range pool {
		pool[i] = i + 1
		popularity[i+1] = 100 - i
	}

	tests := []struct {
		name        string
		limit       int
		share       float64
		wantPopular int
	}{
		{name: "default share", limit: 5, share: 0.8, wantPopular: 4},
		{name: "rounds up", limit: 3, share: 0.5, wantPopular: 2},
		{name: "all popular", limit: 4, share: 1, wantPopular: 4},
		{name: "all random", limit: 4, share: 0, wantPopular: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectFallback(pool, popularity, tt.limit, tt.share, rand.New(rand.NewSource(7)))
			if len(got) != tt.limit {
				t.Fatalf("len = %d, want %d", len(got), tt.limit)
			}

			popular := 0
			seen := make(map[int]bool)
			for i, c := range got {
				if seen[c.RecipeID] {
					t.Errorf("duplicate id %d", c.RecipeID)
				}
				seen[c.RecipeID] = true
				if c.Tier == TierFallbackPopular {
					popular++
					if c.RecipeID != i+1 {
						t.Errorf("popular[%d] = %d, want %d", i, c.RecipeID, i+1)
					}
				}
			}
			if popular != tt.wantPopular {
				t.Errorf("popular count = %d, want %d", popular, tt.wantPopular)
			}
		})
	}
}

func TestSelectFallback_DeterministicWithSeed(t *testing.T) {
	pool := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	a := SelectFallback(pool, nil, 5, 0.2, rand.New(rand.NewSource(99)))
	b := SelectFallback(pool, nil, 5, 0.2, rand.New(rand.NewSource(99)))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave %v and %v", candidateIDs(a), candidateIDs(b))
	}
}

func TestSelectFallback_Empty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := SelectFallback(nil, nil, 5, 0.8, rng); len(got) != 0 {
		t.Errorf("empty pool = %v, want empty", got)
	}
	if got := SelectFallback([]int{1, 2}, nil, 0, 0.8, rng); len(got) != 0 {
		t.Errorf("zero limit = %v, want empty", got)
	}
}

func TestSampleWithoutReplacement_DoesNotMutateInput(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5}
	sampleWithoutReplacement(ids, 3, rand.New(rand.NewSource(3)))
	if !reflect.DeepEqual(ids, []int{1, 2, 3, 4, 5}) {
		t.Errorf("input mutated to %v", ids)
	}
}
