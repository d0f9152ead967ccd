// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package corpus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mealmatch/internal/validation"
)

// Load reads and validates the corpus file at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from trusted configuration
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load corpus %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a JSON array of recipe records. Every invalid record is
// reported; the returned error wraps ErrInvalidRecipe or ErrDuplicateID.
func Parse(r io.Reader) (*Catalog, error) {
	var records []json.RawMessage
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	recipes := make([]Recipe, 0, len(records))
	seen := make(map[int]int, len(records))
	var errs []error

	for i, raw := range records {
		rec, err := parseRecord(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		if first, dup := seen[rec.ID]; dup {
			errs = append(errs, fmt.Errorf("record %d: %w: %d (first at record %d)", i, ErrDuplicateID, rec.ID, first))
			continue
		}
		seen[rec.ID] = i
		recipes = append(recipes, rec)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return newCatalog(recipes), nil
}

func parseRecord(raw json.RawMessage) (Recipe, error) {
	var rr rawRecipe
	if err := json.Unmarshal(raw, &rr); err != nil {
		return Recipe{}, fmt.Errorf("%w: %v", ErrInvalidRecipe, err)
	}

	var missing []string
	if rr.ID == nil {
		missing = append(missing, "id")
	}
	if rr.Title == nil {
		missing = append(missing, "title")
	}
	if rr.Features == nil {
		missing = append(missing, "features")
	} else {
		if rr.Features.Ingredients == nil {
			missing = append(missing, "features.ingredients")
		}
		if rr.Features.Tags == nil {
			missing = append(missing, "features.tags")
		}
		if rr.Features.Kitchen == nil {
			missing = append(missing, "features.kitchen")
		}
		if rr.Features.Course == nil {
			missing = append(missing, "features.course")
		}
	}
	if len(missing) > 0 {
		return Recipe{}, fmt.Errorf("%w: missing %s", ErrInvalidRecipe, strings.Join(missing, ", "))
	}

	rec := Recipe{
		ID:    *rr.ID,
		Title: *rr.Title,
		Features: Features{
			Ingredients: *rr.Features.Ingredients,
			Tags:        *rr.Features.Tags,
			Kitchen:     *rr.Features.Kitchen,
			Course:      *rr.Features.Course,
		},
		Raw: append(json.RawMessage(nil), raw...),
	}
	if verr := validation.ValidateStruct(&rec); verr != nil {
		return Recipe{}, fmt.Errorf("%w: id %d: %s", ErrInvalidRecipe, rec.ID, verr.Error())
	}
	return rec, nil
}
