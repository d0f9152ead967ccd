// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"math"
	"math/rand"
	"sort"
)

// AssembleInput carries everything Assemble needs for one request.
type AssembleInput struct {
	// Pool is every recommendable recipe id.
	Pool []int

	// Rated holds the ids the user has rated. They are never returned
	// unless Blend.RepeatRatedWhenExhausted applies.
	Rated map[int]struct{}

	// Scores is the Scorer output, nil when there is no usable profile.
	Scores []RecipeScore

	Popularity map[int]int
	Limit      int
	Blend      BlendConfig
}

// tierSizes splits limit into score, popularity and random counts. Each is
// non-negative and together they never exceed limit.
func tierSizes(limit int, blend BlendConfig) (scoreN, popN, randN int) {
	scoreN = max(1, int(math.Floor(float64(limit)*blend.ScoreShare)))
	popN = max(0, int(math.Floor(float64(limit)*blend.PopularityShare)))
	scoreN = min(scoreN, limit)
	popN = min(popN, limit-scoreN)
	randN = limit - scoreN - popN
	return scoreN, popN, randN
}

// Assemble builds the final list of at most in.Limit distinct recipes.
//
// With scores the list is the score tier, then the popularity tier, then
// random picks, then a popularity fill for any shortfall, all drawn from
// unrated recipes. Without scores the fallback selector runs over the
// unrated recipes. When every recipe is rated the result is empty, or the
// fallback over the whole pool if Blend.RepeatRatedWhenExhausted is set.
func Assemble(in AssembleInput, rng *rand.Rand) []Candidate {
	if in.Limit <= 0 {
		return []Candidate{}
	}

	unrated := without(in.Pool, in.Rated)
	if len(unrated) == 0 {
		if in.Blend.RepeatRatedWhenExhausted {
			return SelectFallback(in.Pool, in.Popularity, in.Limit, in.Blend.FallbackPopularShare, rng)
		}
		return []Candidate{}
	}

	if in.Scores == nil {
		return SelectFallback(unrated, in.Popularity, in.Limit, in.Blend.FallbackPopularShare, rng)
	}

	scoreN, popN, randN := tierSizes(in.Limit, in.Blend)
	selected := make(map[int]struct{}, in.Limit)
	out := make([]Candidate, 0, min(in.Limit, len(unrated)))
	take := func(id int, score float64, tier Tier) {
		selected[id] = struct{}{}
		out = append(out, Candidate{RecipeID: id, Score: score, Tier: tier})
	}

	for _, s := range topScored(in.Scores, unrated, scoreN) {
		take(s.RecipeID, s.Score, TierScore)
	}

	byPopularity := rankByPopularity(without(unrated, selected), in.Popularity)
	for _, id := range byPopularity[:min(popN, len(byPopularity))] {
		take(id, float64(in.Popularity[id]), TierPopularity)
	}

	for _, id := range sampleWithoutReplacement(without(unrated, selected), randN, rng) {
		take(id, float64(in.Popularity[id]), TierRandom)
	}

	if len(out) < in.Limit {
		for _, id := range rankByPopularity(without(unrated, selected), in.Popularity) {
			if len(out) == in.Limit {
				break
			}
			take(id, float64(in.Popularity[id]), TierFill)
		}
	}
	return out
}

// topScored returns the n highest scores among eligible ids, ties broken by
// ascending id. Ids without a score are not eligible.
func topScored(scores []RecipeScore, eligible []int, n int) []RecipeScore {
	allowed := make(map[int]struct{}, len(eligible))
	for _, id := range eligible {
		allowed[id] = struct{}{}
	}

	ranked := make([]RecipeScore, 0, len(eligible))
	for _, s := range scores {
		if _, ok := allowed[s.RecipeID]; ok {
			ranked = append(ranked, s)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].RecipeID < ranked[j].RecipeID
	})
	return ranked[:min(n, len(ranked))]
}
