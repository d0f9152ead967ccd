// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"math"
	"sort"
)

// zeroSumEpsilon is the magnitude below which a profile sum counts as zero.
const zeroSumEpsilon = 1e-12

// Profile is one user's taste vector over the vocabulary of a TermMatrix.
type Profile struct {
	matrix  *TermMatrix
	weights []float64
	sum     float64
	valid   []int
}

// BuildProfile sums rating × row over the rated recipes that exist in m.
// Unknown recipe ids are ignored. ErrNoUsableProfile is returned when no
// rated recipe is known or the resulting weights sum to zero.
func BuildProfile(m *TermMatrix, ratings map[int]float64) (*Profile, error) {
	ids := make([]int, 0, len(ratings))
	for id := range ratings {
		if m.Has(id) {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, ErrNoUsableProfile
	}
	sort.Ints(ids)

	weights := make([]float64, len(m.terms))
	for _, id := range ids {
		m.addScaled(weights, m.rowIndex[id], ratings[id])
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum) < zeroSumEpsilon || math.IsNaN(sum) {
		return nil, ErrNoUsableProfile
	}

	return &Profile{matrix: m, weights: weights, sum: sum, valid: ids}, nil
}

// Sum returns the sum of all profile weights, the score normalizer.
func (p *Profile) Sum() float64 { return p.sum }

// ValidRecipeIDs returns the rated ids that contributed, ascending.
func (p *Profile) ValidRecipeIDs() []int {
	out := make([]int, len(p.valid))
	copy(out, p.valid)
	return out
}

// Weights returns the non-zero profile weights keyed by term.
func (p *Profile) Weights() map[string]float64 {
	out := make(map[string]float64)
	for i, w := range p.weights {
		if w != 0 {
			out[p.matrix.terms[i]] = w
		}
	}
	return out
}
