// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/mealmatch/internal/logging"
)

// ErrUnsupportedDriver is returned by New for a driver other than duckdb or sqlite.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// closeWithLog closes a resource and logs, rather than returns, any error.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource on an error path where the close error is
// not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
