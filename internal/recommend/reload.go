// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"fmt"

	"github.com/tomtom215/mealmatch/internal/corpus"
	"github.com/tomtom215/mealmatch/internal/metrics"
)

// ReloadCorpus loads the corpus file at path and rebuilds the model from
// it. On any error the current model keeps serving.
func (e *Engine) ReloadCorpus(path string) (ModelInfo, error) {
	catalog, err := corpus.Load(path)
	if err != nil {
		metrics.RecordCorpusReload(err)
		e.logger.Error().Err(err).Str("path", path).Msg("corpus reload failed")
		return ModelInfo{}, fmt.Errorf("reload corpus: %w", err)
	}

	info, err := e.Rebuild(catalog)
	metrics.RecordCorpusReload(err)
	if err != nil {
		return ModelInfo{}, fmt.Errorf("reload corpus: %w", err)
	}
	return info, nil
}
