// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package api

import "errors"

var (
	// ErrModelNotLoaded is returned by catalog lookups before the first build.
	ErrModelNotLoaded = errors.New("recipe model is not loaded")

	// ErrReloadUnavailable means the server was started without a reload hook.
	ErrReloadUnavailable = errors.New("corpus reload is not configured")
)
