// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEngine_ReloadCorpus(t *testing.T) {
	e := newTestEngine(t, &mockRatings{ratings: map[string]map[int]float64{}})
	before := e.Model().Version

	path := filepath.Join(t.TempDir(), "recipes.json")
	data := `[{"id": 7, "title": "Ramen", "features": {"ingredients": ["noodles"], "tags": [], "kitchen": ["japanese"], "course": ["main"]}}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	info, err := e.ReloadCorpus(path)
	if err != nil {
		t.Fatalf("ReloadCorpus() error = %v", err)
	}
	if info.Recipes != 1 {
		t.Errorf("Recipes = %d, want 1", info.Recipes)
	}
	if info.Version <= before {
		t.Errorf("Version = %d, want > %d", info.Version, before)
	}
	if _, ok := e.Model().Catalog.Get(7); !ok {
		t.Error("new catalog should contain recipe 7")
	}
}

func TestEngine_ReloadCorpusKeepsModelOnError(t *testing.T) {
	e := newTestEngine(t, &mockRatings{ratings: map[string]map[int]float64{}})
	before := e.Model()

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`[{"id": "x"}]`), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := e.ReloadCorpus(path); err == nil {
		t.Fatal("ReloadCorpus() error = nil, want error")
	}
	if _, err := e.ReloadCorpus(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("ReloadCorpus(missing) error = nil, want error")
	}
	if e.Model() != before {
		t.Error("model changed after failed reload")
	}
}
