// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package corpus

import (
	"strings"

	"github.com/tomtom215/mealmatch/internal/config"
)

// Catalog is an immutable, indexed corpus.
type Catalog struct {
	recipes []Recipe
	index   map[int]int
	titles  []string // lower-cased, parallel to recipes
}

func newCatalog(recipes []Recipe) *Catalog {
	c := &Catalog{
		recipes: recipes,
		index:   make(map[int]int, len(recipes)),
		titles:  make([]string, len(recipes)),
	}
	for i := range recipes {
		c.index[recipes[i].ID] = i
		c.titles[i] = strings.ToLower(recipes[i].Title)
	}
	return c
}

// NewCatalog builds a catalog from already validated recipes. Later
// duplicates of an id are dropped.
func NewCatalog(recipes []Recipe) *Catalog {
	kept := make([]Recipe, 0, len(recipes))
	seen := make(map[int]struct{}, len(recipes))
	for i := range recipes {
		if _, ok := seen[recipes[i].ID]; ok {
			continue
		}
		seen[recipes[i].ID] = struct{}{}
		kept = append(kept, recipes[i])
	}
	return newCatalog(kept)
}

// Get returns the recipe with id.
func (c *Catalog) Get(id int) (Recipe, bool) {
	i, ok := c.index[id]
	if !ok {
		return Recipe{}, false
	}
	return c.recipes[i], true
}

// Search returns recipes whose title contains query, ignoring case, in
// corpus order. An empty query matches nothing.
func (c *Catalog) Search(query string) []Summary {
	q := strings.ToLower(query)
	if q == "" {
		return []Summary{}
	}
	out := []Summary{}
	for i, title := range c.titles {
		if strings.Contains(title, q) {
			out = append(out, Summary{ID: c.recipes[i].ID, Title: c.recipes[i].Title})
		}
	}
	return out
}

// Recipes returns the recipes in corpus order. Callers must not modify them.
func (c *Catalog) Recipes() []Recipe {
	return c.recipes
}

// IDs returns recipe ids in corpus order.
func (c *Catalog) IDs() []int {
	ids := make([]int, len(c.recipes))
	for i := range c.recipes {
		ids[i] = c.recipes[i].ID
	}
	return ids
}

// Len returns the number of recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// Watch calls onChange whenever the corpus file at path is written.
// Callers reload with Load and should debounce bursts of writes.
func Watch(path string, onChange func()) (stop func() error, err error) {
	return config.WatchFile(path, onChange)
}
