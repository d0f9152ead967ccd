// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"math"
	"sort"
)

// Document is one recipe's token sequence. Tokens may repeat.
type Document struct {
	RecipeID int
	Tokens   []string
}

// TermMatrix is an immutable recipe × term weight table.
//
// Every recipe passed to BuildTermMatrix has a row, possibly empty. Rows are
// stored sparsely with term indices in ascending order, so every dot product
// sums in the same order and repeated calls return bit-identical results.
// A TermMatrix is safe for concurrent readers.
type TermMatrix struct {
	weighting Weighting

	terms     []string // sorted
	termIndex map[string]int
	docFreq   []int
	idf       []float64

	recipeIDs []int // document order
	rowIndex  map[int]int
	rows      []sparseRow
}

type sparseRow struct {
	idx []int
	val []float64
}

// BuildTermMatrix builds the matrix for docs. Documents sharing a recipe id
// are merged into one row.
func BuildTermMatrix(docs []Document, weighting Weighting) *TermMatrix {
	m := &TermMatrix{
		weighting: weighting,
		termIndex: make(map[string]int),
		rowIndex:  make(map[int]int, len(docs)),
	}

	counts := make([]map[string]int, 0, len(docs))
	vocab := make(map[string]struct{})
	for _, doc := range docs {
		row, seen := m.rowIndex[doc.RecipeID]
		if !seen {
			row = len(m.recipeIDs)
			m.rowIndex[doc.RecipeID] = row
			m.recipeIDs = append(m.recipeIDs, doc.RecipeID)
			counts = append(counts, make(map[string]int, len(doc.Tokens)))
		}
		for _, tok := range doc.Tokens {
			counts[row][tok]++
			vocab[tok] = struct{}{}
		}
	}

	m.terms = make([]string, 0, len(vocab))
	for term := range vocab {
		m.terms = append(m.terms, term)
	}
	sort.Strings(m.terms)
	for i, term := range m.terms {
		m.termIndex[term] = i
	}

	m.docFreq = make([]int, len(m.terms))
	for _, c := range counts {
		for term := range c {
			m.docFreq[m.termIndex[term]]++
		}
	}

	n := float64(len(m.recipeIDs))
	m.idf = make([]float64, len(m.terms))
	for i, df := range m.docFreq {
		m.idf[i] = math.Log(n / float64(df+1))
	}

	m.rows = make([]sparseRow, len(counts))
	for r, c := range counts {
		idx := make([]int, 0, len(c))
		for term := range c {
			idx = append(idx, m.termIndex[term])
		}
		sort.Ints(idx)

		val := make([]float64, len(idx))
		for k, ti := range idx {
			val[k] = float64(c[m.terms[ti]])
			if weighting == WeightingIDF {
				val[k] *= m.idf[ti]
			}
		}
		m.rows[r] = sparseRow{idx: idx, val: val}
	}

	return m
}

// Weighting returns the policy the matrix was built with.
func (m *TermMatrix) Weighting() Weighting { return m.weighting }

// Len returns the number of recipe rows.
func (m *TermMatrix) Len() int { return len(m.recipeIDs) }

// TermCount returns the vocabulary size.
func (m *TermMatrix) TermCount() int { return len(m.terms) }

// Has reports whether recipeID has a row.
func (m *TermMatrix) Has(recipeID int) bool {
	_, ok := m.rowIndex[recipeID]
	return ok
}

// RecipeIDs returns the row ids in build order.
func (m *TermMatrix) RecipeIDs() []int {
	out := make([]int, len(m.recipeIDs))
	copy(out, m.recipeIDs)
	return out
}

// Terms returns the vocabulary in ascending order.
func (m *TermMatrix) Terms() []string {
	out := make([]string, len(m.terms))
	copy(out, m.terms)
	return out
}

// DocumentFrequency returns how many recipes contain term, 0 if unknown.
func (m *TermMatrix) DocumentFrequency(term string) int {
	if i, ok := m.termIndex[term]; ok {
		return m.docFreq[i]
	}
	return 0
}

// IDF returns log(N / (df + 1)) for term. The second result is false for
// terms outside the vocabulary.
func (m *TermMatrix) IDF(term string) (float64, bool) {
	if i, ok := m.termIndex[term]; ok {
		return m.idf[i], true
	}
	return 0, false
}

// Row returns the non-zero weights of one recipe. The map is a copy.
// A recipe with an empty token list returns an empty, non-nil map.
func (m *TermMatrix) Row(recipeID int) (map[string]float64, bool) {
	r, ok := m.rowIndex[recipeID]
	if !ok {
		return nil, false
	}
	row := m.rows[r]
	out := make(map[string]float64, len(row.idx))
	for k, ti := range row.idx {
		out[m.terms[ti]] = row.val[k]
	}
	return out, true
}

// Rows selects a subset of rows. Unknown ids are skipped.
func (m *TermMatrix) Rows(recipeIDs []int) map[int]map[string]float64 {
	out := make(map[int]map[string]float64, len(recipeIDs))
	for _, id := range recipeIDs {
		if row, ok := m.Row(id); ok {
			out[id] = row
		}
	}
	return out
}

// Project multiplies the matrix by a dense term vector indexed like Terms().
// The result has one entry per row, in RecipeIDs() order.
func (m *TermMatrix) Project(v []float64) []float64 {
	out := make([]float64, len(m.rows))
	for r, row := range m.rows {
		out[r] = row.dot(v)
	}
	return out
}

func (r sparseRow) dot(v []float64) float64 {
	var sum float64
	for k, ti := range r.idx {
		if ti < len(v) {
			sum += r.val[k] * v[ti]
		}
	}
	return sum
}

// addScaled adds scale × row r into dst.
func (m *TermMatrix) addScaled(dst []float64, r int, scale float64) {
	row := m.rows[r]
	for k, ti := range row.idx {
		dst[ti] += scale * row.val[k]
	}
}
