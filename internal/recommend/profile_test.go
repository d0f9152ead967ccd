// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildProfile(t *testing.T) {
	m := BuildTermMatrix(sampleDocs(), WeightingRaw)

	p, err := BuildProfile(m, map[int]float64{1: 5, 2: 3, 999: 4})
	if err != nil {
		t.Fatalf("BuildProfile() error = %v", err)
	}

	want := map[string]float64{
		"chicken": 10,
		"rice":    8,
		"thai":    8,
		"beef":    3,
	}
	if got := p.Weights(); !reflect.DeepEqual(got, want) {
		t.Errorf("Weights() = %v, want %v", got, want)
	}
	if p.Sum() != 29 {
		t.Errorf("Sum() = %v, want 29", p.Sum())
	}
	if got := p.ValidRecipeIDs(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("ValidRecipeIDs() = %v, want [1 2]", got)
	}
}

func TestBuildProfile_NoUsableProfile(t *testing.T) {
	m := BuildTermMatrix(sampleDocs(), WeightingRaw)
	cancelling := BuildTermMatrix([]Document{
		{RecipeID: 1, Tokens: []string{"a"}},
		{RecipeID: 2, Tokens: []string{"a"}},
	}, WeightingRaw)

	tests := []struct {
		name    string
		matrix  *TermMatrix
		ratings map[int]float64
	}{
		{name: "no ratings", matrix: m, ratings: map[int]float64{}},
		{name: "only unknown ids", matrix: m, ratings: map[int]float64{100: 5, 200: 1}},
		{name: "zero rating", matrix: m, ratings: map[int]float64{1: 0}},
		{name: "empty row", matrix: m, ratings: map[int]float64{4: 5}},
		{name: "cancelling ratings", matrix: cancelling, ratings: map[int]float64{1: 2, 2: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildProfile(tt.matrix, tt.ratings)
			if !errors.Is(err, ErrNoUsableProfile) {
				t.Errorf("BuildProfile() error = %v, want ErrNoUsableProfile", err)
			}
		})
	}
}

func TestBuildProfile_LinearInRatings(t *testing.T) {
	m := BuildTermMatrix(sampleDocs(), WeightingIDF)
	ratings := map[int]float64{1: 4, 3: 2}

	base, err := BuildProfile(m, ratings)
	if err != nil {
		t.Fatalf("BuildProfile() error = %v", err)
	}

	const c = 2.5
	scaled := make(map[int]float64, len(ratings))
	for id, r := range ratings {
		scaled[id] = r * c
	}
	sp, err := BuildProfile(m, scaled)
	if err != nil {
		t.Fatalf("BuildProfile(scaled) error = %v", err)
	}

	bw, sw := base.Weights(), sp.Weights()
	if len(bw) != len(sw) {
		t.Fatalf("len(Weights) = %d, want %d", len(sw), len(bw))
	}
	for term, w := range bw {
		if !approxEqual(sw[term], w*c) {
			t.Errorf("scaled weight[%q] = %v, want %v", term, sw[term], w*c)
		}
	}
	if !approxEqual(sp.Sum(), base.Sum()*c) {
		t.Errorf("scaled Sum() = %v, want %v", sp.Sum(), base.Sum()*c)
	}
}
