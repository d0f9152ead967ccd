// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"math/rand"
	"sort"
)

// rankByPopularity returns a copy of ids ordered by popularity descending,
// ties broken by ascending id. Missing ids count as zero.
func rankByPopularity(ids []int, popularity map[int]int) []int {
	ranked := make([]int, len(ids))
	copy(ranked, ids)
	sort.Slice(ranked, func(i, j int) bool {
		pi, pj := popularity[ranked[i]], popularity[ranked[j]]
		if pi != pj {
			return pi > pj
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}

// sampleWithoutReplacement draws n distinct ids uniformly from ids using a
// partial Fisher-Yates shuffle on a copy. The draw depends only on rng and
// the order of ids.
func sampleWithoutReplacement(ids []int, n int, rng *rand.Rand) []int {
	if n > len(ids) {
		n = len(ids)
	}
	if n <= 0 {
		return nil
	}
	pool := make([]int, len(ids))
	copy(pool, ids)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// without returns ids not present in skip, preserving order.
func without(ids []int, skip map[int]struct{}) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := skip[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
