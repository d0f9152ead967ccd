// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package corpus

import (
	"errors"

	"github.com/goccy/go-json"
)

var (
	// ErrInvalidRecipe marks a record that failed decoding or validation.
	ErrInvalidRecipe = errors.New("invalid recipe")

	// ErrDuplicateID marks a record whose id was already seen.
	ErrDuplicateID = errors.New("duplicate recipe id")
)

// Features are the token lists a recipe is described by.
type Features struct {
	Ingredients []string `json:"ingredients"`
	Tags        []string `json:"tags"`
	Kitchen     []string `json:"kitchen"`
	Course      []string `json:"course"`
}

// Recipe is one validated corpus record.
type Recipe struct {
	ID       int      `json:"id" validate:"gt=0"`
	Title    string   `json:"title" validate:"required"`
	Features Features `json:"features"`

	// Raw is the record exactly as it appeared in the corpus file.
	Raw json.RawMessage `json:"-"`
}

// Summary is the search result shape.
type Summary struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// MarshalJSON returns the stored record so extra fields survive.
func (r Recipe) MarshalJSON() ([]byte, error) { //nolint:gocritic // value receiver keeps Recipe usable as a map value
	if len(r.Raw) > 0 {
		return r.Raw, nil
	}
	type plain Recipe
	return json.Marshal(plain(r))
}

// rawRecipe uses pointers so a missing key can be told apart from an empty value.
type rawRecipe struct {
	ID       *int    `json:"id"`
	Title    *string `json:"title"`
	Features *struct {
		Ingredients *[]string `json:"ingredients"`
		Tags        *[]string `json:"tags"`
		Kitchen     *[]string `json:"kitchen"`
		Course      *[]string `json:"course"`
	} `json:"features"`
}
