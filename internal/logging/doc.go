// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

// Package logging wraps a process-wide zerolog logger for Mealmatch.
//
// Production output is JSON; development output uses zerolog's console
// writer. Request handlers log through Ctx so that request and correlation
// IDs follow a request from the router into the recommendation engine.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("corpus", path).Int("recipes", n).Msg("Corpus loaded")
//	logging.Ctx(ctx).Warn().Str("user_id", uid).Msg("No usable profile, using fallback")
//
// Two adapters bridge other logging interfaces onto the same logger:
// SlogHandler for suture's sutureslog hook and WatermillAdapter for the
// rating event router.
//
// Always terminate an event chain with Msg or Send, otherwise nothing is
// written.
package logging
