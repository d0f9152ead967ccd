// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/mealmatch/internal/corpus"
	"github.com/tomtom215/mealmatch/internal/logging"
	"github.com/tomtom215/mealmatch/internal/recommend"
)

// CorpusReloader is satisfied by *recommend.Engine.
type CorpusReloader interface {
	ReloadCorpus(path string) (recommend.ModelInfo, error)
}

// WatchFunc starts watching path and returns a function that stops it.
type WatchFunc func(path string, onChange func()) (stop func() error, err error)

// CorpusWatchService rebuilds the term matrix when the corpus file changes.
// Writes arriving within the debounce window collapse into one reload. A
// failed reload leaves the previous model serving.
type CorpusWatchService struct {
	path     string
	debounce time.Duration
	reloader CorpusReloader
	watch    WatchFunc
	logger   zerolog.Logger
}

// NewCorpusWatchService watches path with corpus.Watch. A non-positive
// debounce becomes 500ms.
func NewCorpusWatchService(path string, debounce time.Duration, reloader CorpusReloader) *CorpusWatchService {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &CorpusWatchService{
		path:     path,
		debounce: debounce,
		reloader: reloader,
		watch:    corpus.Watch,
		logger:   logging.WithComponent("corpus_watch"),
	}
}

// WithWatchFunc replaces the file watcher.
func (c *CorpusWatchService) WithWatchFunc(fn WatchFunc) *CorpusWatchService {
	c.watch = fn
	return c
}

// Serve implements suture.Service.
func (c *CorpusWatchService) Serve(ctx context.Context) error {
	changes := make(chan struct{}, 1)
	stop, err := c.watch(c.path, func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("watch corpus: %w", err)
	}
	defer func() {
		if err := stop(); err != nil {
			c.logger.Warn().Err(err).Msg("stop corpus watcher")
		}
	}()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changes:
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(c.debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			c.reload()
		}
	}
}

func (c *CorpusWatchService) reload() {
	info, err := c.reloader.ReloadCorpus(c.path)
	if err != nil {
		c.logger.Error().Err(err).Str("path", c.path).Msg("corpus changed but reload failed; keeping current model")
		return
	}
	c.logger.Info().
		Str("path", c.path).
		Int64("version", info.Version).
		Int("recipes", info.Recipes).
		Msg("corpus reloaded")
}

func (c *CorpusWatchService) String() string {
	return "corpus-watch"
}
