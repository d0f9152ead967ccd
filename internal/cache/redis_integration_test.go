// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/mealmatch/internal/testinfra"
)

type cachedValue struct {
	IDs   []int  `json:"ids"`
	Label string `json:"label"`
}

func TestRedisCache_Integration(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx := context.Background()
	container, err := testinfra.NewRedisContainer(ctx)
	if err != nil {
		t.Fatalf("NewRedisContainer() error = %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, container)

	rc, err := NewRedisCache(ctx, RedisOptions{Addr: container.Addr, KeyPrefix: "test:"})
	if err != nil {
		t.Fatalf("NewRedisCache() error = %v", err)
	}
	defer rc.Close()

	if err := rc.SetJSON(ctx, "rec:alice:1:5", cachedValue{IDs: []int{1, 2}, Label: "a"}, time.Minute); err != nil {
		t.Fatalf("SetJSON() error = %v", err)
	}
	if err := rc.SetJSON(ctx, "rec:alice:1:10", cachedValue{IDs: []int{3}}, time.Minute); err != nil {
		t.Fatalf("SetJSON() error = %v", err)
	}
	if err := rc.SetJSON(ctx, "rec:bob:1:5", cachedValue{IDs: []int{4}}, time.Minute); err != nil {
		t.Fatalf("SetJSON() error = %v", err)
	}

	var got cachedValue
	found, err := rc.GetJSON(ctx, "rec:alice:1:5", &got)
	if err != nil || !found {
		t.Fatalf("GetJSON() = %v, %v, want found", found, err)
	}
	if len(got.IDs) != 2 || got.Label != "a" {
		t.Errorf("GetJSON() value = %+v", got)
	}

	n, err := rc.DeletePrefix(ctx, "rec:alice:")
	if err != nil {
		t.Fatalf("DeletePrefix() error = %v", err)
	}
	if n != 2 {
		t.Errorf("DeletePrefix() = %d, want 2", n)
	}

	found, err = rc.GetJSON(ctx, "rec:bob:1:5", &got)
	if err != nil || !found {
		t.Errorf("GetJSON(bob) = %v, %v, want found", found, err)
	}

	if err := rc.SetJSON(ctx, "short", cachedValue{}, 50*time.Millisecond); err != nil {
		t.Fatalf("SetJSON() error = %v", err)
	}
	time.Sleep(200 * time.Millisecond)
	found, _ = rc.GetJSON(ctx, "short", &got)
	if found {
		t.Error("GetJSON(short) found after TTL, want miss")
	}
}
