// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"time"

	"github.com/tomtom215/mealmatch/internal/corpus"
)

// Model is an immutable snapshot of the corpus and its term matrix. The
// engine replaces the whole value on rebuild and never mutates it.
type Model struct {
	Version       int64
	Catalog       *corpus.Catalog
	Matrix        *TermMatrix
	BuiltAt       time.Time
	BuildDuration time.Duration
}

// NewModel extracts features from every recipe of catalog and builds the
// term matrix.
func NewModel(version int64, catalog *corpus.Catalog, weighting Weighting) *Model {
	start := time.Now()
	matrix := BuildTermMatrix(Documents(catalog.Recipes()), weighting)
	return &Model{
		Version:       version,
		Catalog:       catalog,
		Matrix:        matrix,
		BuiltAt:       time.Now(),
		BuildDuration: time.Since(start),
	}
}

// Info summarizes the model.
func (m *Model) Info() ModelInfo {
	return ModelInfo{
		Version:         m.Version,
		Weighting:       m.Matrix.Weighting(),
		Recipes:         m.Matrix.Len(),
		Terms:           m.Matrix.TermCount(),
		BuiltAt:         m.BuiltAt,
		BuildDurationMS: m.BuildDuration.Milliseconds(),
	}
}
