// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

const validCorpus = `[
  {"id": 101, "title": "Pad Thai", "features": {"ingredients": ["noodles", "egg"], "tags": ["quick"], "kitchen": ["thai"], "course": ["main"]}, "url": "https://example.com/101"},
  {"id": 102, "title": "Green Curry", "features": {"ingredients": ["coconut milk"], "tags": [], "kitchen": ["thai"], "course": ["main"]}},
  {"id": 103, "title": "Apple Pie", "features": {"ingredients": [], "tags": [], "kitchen": [], "course": []}}
]`

func TestParse_Valid(t *testing.T) {
	c, err := Parse(strings.NewReader(validCorpus))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}

	r, ok := c.Get(101)
	if !ok {
		t.Fatal("Get(101) not found")
	}
	if r.Title != "Pad Thai" {
		t.Errorf("Title = %q, want Pad Thai", r.Title)
	}
	if got := len(r.Features.Ingredients); got != 2 {
		t.Errorf("len(Ingredients) = %d, want 2", got)
	}

	empty, _ := c.Get(103)
	if empty.Features.Course == nil {
		t.Error("Course = nil, want empty slice")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing kitchen",
			input:   `[{"id": 1, "title": "A", "features": {"ingredients": [], "tags": [], "course": []}}]`,
			wantErr: ErrInvalidRecipe,
			wantMsg: "features.kitchen",
		},
		{
			name:    "missing features",
			input:   `[{"id": 1, "title": "A"}]`,
			wantErr: ErrInvalidRecipe,
			wantMsg: "missing features",
		},
		{
			name:    "zero id",
			input:   `[{"id": 0, "title": "A", "features": {"ingredients": [], "tags": [], "kitchen": [], "course": []}}]`,
			wantErr: ErrInvalidRecipe,
			wantMsg: "id must be greater than 0",
		},
		{
			name:    "empty title",
			input:   `[{"id": 1, "title": "", "features": {"ingredients": [], "tags": [], "kitchen": [], "course": []}}]`,
			wantErr: ErrInvalidRecipe,
			wantMsg: "title is required",
		},
		{
			name:    "wrong type",
			input:   `[{"id": "one", "title": "A", "features": {"ingredients": [], "tags": [], "kitchen": [], "course": []}}]`,
			wantErr: ErrInvalidRecipe,
		},
		{
			name: "duplicate id",
			input: `[{"id": 1, "title": "A", "features": {"ingredients": [], "tags": [], "kitchen": [], "course": []}},
			         {"id": 1, "title": "B", "features": {"ingredients": [], "tags": [], "kitchen": [], "course": []}}]`,
			wantErr: ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Parse() error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParse_ReportsEveryBadRecord(t *testing.T) {
	input := `[
	  {"id": 1, "title": "A"},
	  {"id": 2, "title": "B", "features": {"ingredients": [], "tags": [], "kitchen": [], "course": []}},
	  {"id": -3, "title": "C", "features": {"ingredients": [], "tags": [], "kitchen": [], "course": []}}
	]`
	_, err := Parse(strings.NewReader(input))
	if err == nil {
		t.Fatal("Parse() error = nil, want error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "record 0") || !strings.Contains(msg, "record 2") {
		t.Errorf("Parse() error = %q, want records 0 and 2 reported", msg)
	}
	if strings.Contains(msg, "record 1") {
		t.Errorf("Parse() error = %q, record 1 is valid", msg)
	}
}

func TestParse_NotAnArray(t *testing.T) {
	if _, err := Parse(strings.NewReader(`{"id": 1}`)); err == nil {
		t.Error("Parse(object) error = nil, want error")
	}
}

func TestRecipe_MarshalJSONKeepsExtraFields(t *testing.T) {
	c, err := Parse(strings.NewReader(validCorpus))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	r, _ := c.Get(101)
	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(out), `"url"`) {
		t.Errorf("Marshal() = %s, want url field preserved", out)
	}

	built := Recipe{ID: 7, Title: "Soup", Features: Features{Ingredients: []string{"leek"}}}
	out, err = json.Marshal(built)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(out), `"title":"Soup"`) {
		t.Errorf("Marshal() = %s, want title", out)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recipes.json")
	if err := os.WriteFile(path, []byte(validCorpus), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}
