// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

// matrixFromRows builds a matrix with explicit cell weights.
func matrixFromRows(order []int, rows map[int]map[string]float64) *TermMatrix {
	m := &TermMatrix{
		weighting: WeightingRaw,
		termIndex: make(map[string]int),
		rowIndex:  make(map[int]int, len(order)),
	}
	vocab := make(map[string]struct{})
	for _, row := range rows {
		for term := range row {
			vocab[term] = struct{}{}
		}
	}
	for term := range vocab {
		m.terms = append(m.terms, term)
	}
	sort.Strings(m.terms)
	for i, term := range m.terms {
		m.termIndex[term] = i
	}
	m.docFreq = make([]int, len(m.terms))
	m.idf = make([]float64, len(m.terms))

	for r, id := range order {
		m.rowIndex[id] = r
		m.recipeIDs = append(m.recipeIDs, id)
		var sr sparseRow
		for _, term := range m.terms {
			if w, ok := rows[id][term]; ok {
				sr.idx = append(sr.idx, m.termIndex[term])
				sr.val = append(sr.val, w)
				m.docFreq[m.termIndex[term]]++
			}
		}
		m.rows = append(m.rows, sr)
	}
	return m
}

func scoreMap(scores []RecipeScore) map[int]float64 {
	out := make(map[int]float64, len(scores))
	for _, s := range scores {
		out[s.RecipeID] = s.Score
	}
	return out
}

func TestScore_SharedTokenBeatsNoOverlap(t *testing.T) {
	m := matrixFromRows([]int{201, 202, 203}, map[int]map[string]float64{
		201: {"chicken": 1.0, "grill": 0.8},
		202: {"chicken": 1.0, "rice": 1.0},
		203: {"tofu": 1.0, "soy": 1.0},
	})

	p, err := BuildProfile(m, map[int]float64{201: 5})
	if err != nil {
		t.Fatalf("BuildProfile() error = %v", err)
	}
	scores, err := Score(m, p)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	got := scoreMap(scores)
	if got[203] != 0 {
		t.Errorf("score(203) = %v, want 0", got[203])
	}
	if got[202] <= got[203] {
		t.Errorf("score(202) = %v, want > score(203) = %v", got[202], got[203])
	}
	// profile = {chicken: 5, grill: 4}, sum 9; 202 · profile = 5
	if !approxEqual(got[202], 5.0/9.0) {
		t.Errorf("score(202) = %v, want %v", got[202], 5.0/9.0)
	}
}

func TestScore_OrderMatchesMatrix(t *testing.T) {
	m := BuildTermMatrix(sampleDocs(), WeightingRaw)
	p, err := BuildProfile(m, map[int]float64{1: 5})
	if err != nil {
		t.Fatalf("BuildProfile() error = %v", err)
	}
	scores, err := Score(m, p)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	ids := make([]int, len(scores))
	for i, s := range scores {
		ids[i] = s.RecipeID
	}
	if !reflect.DeepEqual(ids, m.RecipeIDs()) {
		t.Errorf("score ids = %v, want %v", ids, m.RecipeIDs())
	}
}

func TestScore_Idempotent(t *testing.T) {
	m := BuildTermMatrix(sampleDocs(), WeightingIDF)
	p, err := BuildProfile(m, map[int]float64{1: 5, 3: 2})
	if err != nil {
		t.Fatalf("BuildProfile() error = %v", err)
	}

	first, err := Score(m, p)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	second, err := Score(m, p)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Score() not idempotent: %v vs %v", first, second)
	}
}

func TestScore_InvariantUnderRatingRescale(t *testing.T) {
	for _, w := range []Weighting{WeightingRaw, WeightingIDF} {
		t.Run(string(w), func(t *testing.T) {
			m := BuildTermMatrix(sampleDocs(), w)

			base, err := BuildProfile(m, map[int]float64{1: 4, 2: 1})
			if err != nil {
				t.Fatalf("BuildProfile() error = %v", err)
			}
			scaled, err := BuildProfile(m, map[int]float64{1: 12, 2: 3})
			if err != nil {
				t.Fatalf("BuildProfile(scaled) error = %v", err)
			}

			a, _ := Score(m, base)
			b, _ := Score(m, scaled)
			for i := range a {
				if !approxEqual(a[i].Score, b[i].Score) {
					t.Errorf("score(%d) = %v after rescale, want %v", a[i].RecipeID, b[i].Score, a[i].Score)
				}
			}
		})
	}
}

func TestScore_Errors(t *testing.T) {
	m := BuildTermMatrix(sampleDocs(), WeightingRaw)
	other := BuildTermMatrix(sampleDocs(), WeightingRaw)

	if _, err := Score(m, nil); !errors.Is(err, ErrNoUsableProfile) {
		t.Errorf("Score(nil) error = %v, want ErrNoUsableProfile", err)
	}

	p, err := BuildProfile(other, map[int]float64{1: 5})
	if err != nil {
		t.Fatalf("BuildProfile() error = %v", err)
	}
	if _, err := Score(m, p); !errors.Is(err, ErrProfileMismatch) {
		t.Errorf("Score(other profile) error = %v, want ErrProfileMismatch", err)
	}
}
