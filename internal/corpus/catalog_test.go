// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package corpus

import (
	"reflect"
	"testing"
)

func testCatalog() *Catalog {
	return NewCatalog([]Recipe{
		{ID: 3, Title: "Thai Green Curry"},
		{ID: 1, Title: "Pad Thai"},
		{ID: 2, Title: "Apple Pie"},
		{ID: 1, Title: "Duplicate"},
	})
}

func TestCatalog_Search(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		query string
		want  []int
	}{
		{query: "thai", want: []int{3, 1}},
		{query: "THAI", want: []int{3, 1}},
		{query: "pie", want: []int{2}},
		{query: "sushi", want: []int{}},
		{query: "", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := c.Search(tt.query)
			ids := make([]int, len(got))
			for i, s := range got {
				ids[i] = s.ID
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, ids, tt.want)
			}
		})
	}
}

func TestCatalog_Accessors(t *testing.T) {
	c := testCatalog()

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if got, want := c.IDs(), []int{3, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
	r, ok := c.Get(1)
	if !ok || r.Title != "Pad Thai" {
		t.Errorf("Get(1) = %+v, %v, want Pad Thai", r, ok)
	}
	if _, ok := c.Get(99); ok {
		t.Error("Get(99) found, want missing")
	}
}
