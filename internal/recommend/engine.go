// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/mealmatch/internal/corpus"
	"github.com/tomtom215/mealmatch/internal/metrics"
)

// Engine serves recommendations from the current model. It is safe for
// concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	model        atomic.Pointer[Model]
	modelVersion atomic.Int64
	rebuildMu    sync.Mutex
	onRebuild    []func(ModelInfo)

	ratings RatingsSource
	cache   ResponseCache

	// generations holds a *atomic.Uint64 per user. InvalidateUser bumps it so
	// a response computed from ratings read before the bump is stored under a
	// key no later request looks up.
	generations sync.Map

	// Random source for determinism (protected by rngMu for concurrent access)
	rng   *rand.Rand
	rngMu sync.Mutex

	requestCount  atomic.Int64
	fallbackCount atomic.Int64
	cacheHits     atomic.Int64
	cacheMisses   atomic.Int64
	errorCount    atomic.Int64
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRand replaces the seeded random source. Tests inject their own.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithRatingsSource sets where ratings and popularity come from.
func WithRatingsSource(src RatingsSource) Option {
	return func(e *Engine) { e.ratings = src }
}

// WithCache sets the response cache. It is only consulted when
// Config.Cache.Enabled is true.
func WithCache(c ResponseCache) Option {
	return func(e *Engine) { e.cache = c }
}

// NewEngine creates an engine without a model; call Rebuild before serving.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}

	e := &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
		rng:    rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for recommendation sampling
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// OnRebuild registers fn to run after every successful model swap.
// Register listeners before the engine is shared.
func (e *Engine) OnRebuild(fn func(ModelInfo)) {
	e.onRebuild = append(e.onRebuild, fn)
}

// Model returns the current model, or nil before the first Rebuild.
func (e *Engine) Model() *Model {
	return e.model.Load()
}

// Rebuild builds a model from catalog and swaps it in. Concurrent calls are
// serialized; readers are never blocked.
func (e *Engine) Rebuild(catalog *corpus.Catalog) (ModelInfo, error) {
	if catalog == nil {
		return ModelInfo{}, fmt.Errorf("rebuild: nil catalog")
	}

	e.rebuildMu.Lock()
	defer e.rebuildMu.Unlock()

	m := NewModel(e.modelVersion.Add(1), catalog, e.config.Weighting)
	e.model.Store(m)
	info := m.Info()

	if e.cache != nil && e.config.Cache.Enabled && e.config.Cache.ClearOnRebuild {
		e.cache.Clear(context.Background())
	}

	metrics.RecordMatrixBuild(string(info.Weighting), m.BuildDuration, info.Recipes, info.Terms, info.Version)
	e.logger.Info().
		Int64("model_version", info.Version).
		Str("weighting", string(info.Weighting)).
		Int("recipes", info.Recipes).
		Int("terms", info.Terms).
		Int64("build_ms", info.BuildDurationMS).
		Msg("term matrix built")

	for _, fn := range e.onRebuild {
		fn(info)
	}
	return info, nil
}

// Recommend returns up to req.Limit recipes the user has not rated.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req)

	model := e.model.Load()
	if model == nil {
		e.errorCount.Add(1)
		return nil, ErrModelNotReady
	}

	cacheKey := responseCacheKey(req.UserID, e.userGeneration(req.UserID), model.Version, req.Limit)
	if resp := e.tryGetCachedResponse(ctx, cacheKey, start, logger); resp != nil {
		return resp, nil
	}

	if e.ratings == nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("ratings source not set")
	}
	ratings, err := e.ratings.GetUserRatings(ctx, req.UserID)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendError("user_ratings")
		return nil, fmt.Errorf("get user ratings: %w", err)
	}
	popularity, err := e.ratings.GetPopularity(ctx)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendError("popularity")
		return nil, fmt.Errorf("get popularity: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores, err := e.scoreUser(model.Matrix, ratings)
	fallback := errors.Is(err, ErrNoUsableProfile)
	if err != nil && !fallback {
		e.errorCount.Add(1)
		metrics.RecordRecommendError("score")
		return nil, fmt.Errorf("score recipes: %w", err)
	}
	if fallback {
		e.fallbackCount.Add(1)
		logger.Debug().Int("rated", len(ratings)).Msg("no usable profile, using fallback")
	}

	rated := make(map[int]struct{}, len(ratings))
	for id := range ratings {
		rated[id] = struct{}{}
	}

	in := AssembleInput{
		Pool:       model.Matrix.recipeIDs,
		Rated:      rated,
		Scores:     scores,
		Popularity: popularity,
		Limit:      req.Limit,
		Blend:      e.config.Blend,
	}
	e.rngMu.Lock()
	items := Assemble(in, e.rng)
	e.rngMu.Unlock()

	for i := range items {
		if r, ok := model.Catalog.Get(items[i].RecipeID); ok {
			items[i].Title = r.Title
		}
	}

	resp := &Response{
		Items:    items,
		Metadata: e.buildResponseMetadata(req, model, fallback, len(ratings), start),
	}
	e.cacheResponse(ctx, cacheKey, resp)

	metrics.RecordRecommendation(fallback, time.Since(start), tierCounts(items))
	logger.Debug().
		Bool("fallback", fallback).
		Int("rated", len(ratings)).
		Int("returned", len(items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// scoreUser builds the profile and scores every recipe. A nil slice with
// ErrNoUsableProfile means the caller should fall back.
func (e *Engine) scoreUser(m *TermMatrix, ratings map[int]float64) ([]RecipeScore, error) {
	if len(ratings) == 0 {
		return nil, ErrNoUsableProfile
	}
	profile, err := BuildProfile(m, ratings)
	if err != nil {
		return nil, err
	}
	return Score(m, profile)
}

// prepareRequest applies limit defaults and generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	if req.Limit <= 0 {
		req.Limit = e.config.Limits.DefaultLimit
	}
	if req.Limit > e.config.Limits.MaxLimit {
		req.Limit = e.config.Limits.MaxLimit
	}
	return req
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("user_id", req.UserID).
		Int("limit", req.Limit).
		Logger()
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponseMetadata(req Request, m *Model, fallback bool, rated int, start time.Time) ResponseMetadata {
	return ResponseMetadata{
		RequestID:     req.RequestID,
		UserID:        req.UserID,
		Limit:         req.Limit,
		ScorerVersion: e.config.Version,
		Weighting:     m.Matrix.Weighting(),
		ModelVersion:  m.Version,
		Fallback:      fallback,
		RatedCount:    rated,
		LatencyMS:     time.Since(start).Milliseconds(),
		Timestamp:     time.Now(),
	}
}

func (e *Engine) tryGetCachedResponse(ctx context.Context, key string, start time.Time, logger zerolog.Logger) *Response {
	if e.cache == nil || !e.config.Cache.Enabled {
		return nil
	}

	cached, ok := e.cache.Get(ctx, key)
	if !ok {
		e.cacheMisses.Add(1)
		metrics.RecordRecommendCache(false)
		return nil
	}

	e.cacheHits.Add(1)
	metrics.RecordRecommendCache(true)

	resp := &Response{Items: make([]Candidate, len(cached.Items)), Metadata: cached.Metadata}
	copy(resp.Items, cached.Items)
	resp.Metadata.CacheHit = true
	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	logger.Debug().Msg("cache hit")
	return resp
}

func (e *Engine) cacheResponse(ctx context.Context, key string, resp *Response) {
	if e.cache == nil || !e.config.Cache.Enabled {
		return
	}
	stored := &Response{Items: make([]Candidate, len(resp.Items)), Metadata: resp.Metadata}
	copy(stored.Items, resp.Items)
	e.cache.Set(ctx, key, stored, e.config.Cache.TTL)
}

// InvalidateUser drops every cached response of userID. It is called when
// the user submits a new rating.
func (e *Engine) InvalidateUser(ctx context.Context, userID string) int {
	if e.cache == nil {
		return 0
	}
	e.generationCounter(userID).Add(1)
	return e.cache.DeletePrefix(ctx, userCachePrefix(userID))
}

func (e *Engine) generationCounter(userID string) *atomic.Uint64 {
	if c, ok := e.generations.Load(userID); ok {
		return c.(*atomic.Uint64)
	}
	c, _ := e.generations.LoadOrStore(userID, new(atomic.Uint64))
	return c.(*atomic.Uint64)
}

func (e *Engine) userGeneration(userID string) uint64 {
	if c, ok := e.generations.Load(userID); ok {
		return c.(*atomic.Uint64).Load()
	}
	return 0
}

// Status returns counters and the current model summary.
func (e *Engine) Status() Status {
	s := Status{
		ScorerVersion: e.config.Version,
		RequestCount:  e.requestCount.Load(),
		FallbackCount: e.fallbackCount.Load(),
		CacheHits:     e.cacheHits.Load(),
		CacheMisses:   e.cacheMisses.Load(),
		ErrorCount:    e.errorCount.Load(),
	}
	if m := e.model.Load(); m != nil {
		info := m.Info()
		s.Ready = true
		s.Model = &info
	}
	return s
}

// userCachePrefix escapes the user id so that one user's prefix never
// matches another user's keys.
func userCachePrefix(userID string) string {
	return "rec:" + url.QueryEscape(userID) + ":"
}

func responseCacheKey(userID string, generation uint64, modelVersion int64, limit int) string {
	return userCachePrefix(userID) + "g" + strconv.FormatUint(generation, 10) + ":" +
		strconv.FormatInt(modelVersion, 10) + ":" + strconv.Itoa(limit)
}

func tierCounts(items []Candidate) map[string]int {
	counts := make(map[string]int, 4)
	for _, c := range items {
		counts[string(c.Tier)]++
	}
	return counts
}
