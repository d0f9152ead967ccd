// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import "github.com/tomtom215/mealmatch/internal/corpus"

// ExtractFeatures returns ingredients, tags, kitchen and course concatenated
// in that order. Tokens are neither deduplicated nor normalized.
//
//nolint:gocritic // hugeParam: Features is read-only here
func ExtractFeatures(f corpus.Features) []string {
	tokens := make([]string, 0, len(f.Ingredients)+len(f.Tags)+len(f.Kitchen)+len(f.Course))
	tokens = append(tokens, f.Ingredients...)
	tokens = append(tokens, f.Tags...)
	tokens = append(tokens, f.Kitchen...)
	tokens = append(tokens, f.Course...)
	return tokens
}

// Documents extracts one Document per recipe in catalog order.
func Documents(recipes []corpus.Recipe) []Document {
	docs := make([]Document, len(recipes))
	for i := range recipes {
		docs[i] = Document{
			RecipeID: recipes[i].ID,
			Tokens:   ExtractFeatures(recipes[i].Features),
		}
	}
	return docs
}
