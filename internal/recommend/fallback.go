// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"math"
	"math/rand"
)

// SelectFallback ranks pool by popularity (ties by ascending id), keeps the
// top ceil(limit × popularShare) and fills up to limit with distinct random
// picks from the rest. A pool smaller than limit returns everything it has.
// rng must not be nil.
func SelectFallback(pool []int, popularity map[int]int, limit int, popularShare float64, rng *rand.Rand) []Candidate {
	if limit <= 0 || len(pool) == 0 {
		return []Candidate{}
	}

	ranked := rankByPopularity(pool, popularity)
	popularCount := int(math.Ceil(float64(limit) * popularShare))
	popularCount = min(max(popularCount, 0), limit, len(ranked))

	out := make([]Candidate, 0, min(limit, len(ranked)))
	for _, id := range ranked[:popularCount] {
		out = append(out, Candidate{
			RecipeID: id,
			Score:    float64(popularity[id]),
			Tier:     TierFallbackPopular,
		})
	}

	for _, id := range sampleWithoutReplacement(ranked[popularCount:], limit-popularCount, rng) {
		out = append(out, Candidate{
			RecipeID: id,
			Score:    float64(popularity[id]),
			Tier:     TierFallbackRandom,
		})
	}
	return out
}
