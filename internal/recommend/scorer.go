// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import "math"

// Score returns (row · profile) / sum(profile) for every recipe of m, in
// m.RecipeIDs() order. Scores are only meaningful relative to each other
// and may be negative under IDF weighting.
func Score(m *TermMatrix, p *Profile) ([]RecipeScore, error) {
	if p == nil || math.Abs(p.sum) < zeroSumEpsilon {
		return nil, ErrNoUsableProfile
	}
	if p.matrix != m {
		return nil, ErrProfileMismatch
	}

	dots := m.Project(p.weights)
	scores := make([]RecipeScore, len(dots))
	for r, dot := range dots {
		scores[r] = RecipeScore{RecipeID: m.recipeIDs[r], Score: dot / p.sum}
	}
	return scores, nil
}
