// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ratings store
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mealmatch_db_query_duration_seconds",
			Help:    "Duration of ratings store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealmatch_db_query_errors_total",
			Help: "Total number of ratings store query errors",
		},
		[]string{"operation"},
	)

	RatingsInserted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mealmatch_ratings_inserted_total",
			Help: "Total number of ratings stored",
		},
	)

	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealmatch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mealmatch_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mealmatch_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealmatch_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"limiter"}, // "ip", "user"
	)

	// Recommendation engine
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mealmatch_recommend_duration_seconds",
			Help:    "Time to produce a recommendation list",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
		[]string{"path"}, // "profile", "fallback"
	)

	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealmatch_recommend_requests_total",
			Help: "Recommendation lists produced, by path",
		},
		[]string{"path"},
	)

	RecommendTierItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealmatch_recommend_tier_items_total",
			Help: "Recommended items by the tier that selected them",
		},
		[]string{"tier"},
	)

	RecommendCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealmatch_recommend_cache_lookups_total",
			Help: "Response cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss"
	)

	RecommendErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealmatch_recommend_errors_total",
			Help: "Recommendation failures by stage",
		},
		[]string{"stage"},
	)

	// Term matrix
	MatrixBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mealmatch_matrix_build_duration_seconds",
			Help:    "Time to build the term matrix",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"weighting"},
	)

	MatrixRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mealmatch_matrix_recipes",
			Help: "Recipes in the current term matrix",
		},
	)

	MatrixTerms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mealmatch_matrix_terms",
			Help: "Distinct terms in the current term matrix",
		},
	)

	ModelVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mealmatch_model_version",
			Help: "Version of the model currently serving",
		},
	)

	CorpusReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealmatch_corpus_reloads_total",
			Help: "Corpus reload attempts by result",
		},
		[]string{"result"}, // "success", "failure"
	)

	// Events
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealmatch_events_published_total",
			Help: "Events published by topic and result",
		},
		[]string{"topic", "result"},
	)

	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealmatch_events_consumed_total",
			Help: "Events handled by topic and result",
		},
		[]string{"topic", "result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mealmatch_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealmatch_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// WebSocket
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mealmatch_ws_connections",
			Help: "Current number of WebSocket clients",
		},
	)

	WSMessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealmatch_ws_messages_sent_total",
			Help: "WebSocket messages broadcast, by type",
		},
		[]string{"type"},
	)

	WSDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mealmatch_ws_dropped_total",
			Help: "WebSocket messages dropped because a client was too slow",
		},
	)

	// Authorization
	AuthzDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealmatch_authz_decisions_total",
			Help: "Authorization decisions by role and result",
		},
		[]string{"role", "result"},
	)

	// Process
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mealmatch_app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a ratings store query.
func RecordDBQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordRatingInserted counts a stored rating.
func RecordRatingInserted() {
	RatingsInserted.Inc()
}

// RecordAPIRequest records an API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimited counts a rejection by the named limiter.
func RecordRateLimited(limiter string) {
	APIRateLimitHits.WithLabelValues(limiter).Inc()
}

// RecordRecommendation records one served list and the tiers its items came from.
func RecordRecommendation(fallback bool, duration time.Duration, tiers map[string]int) {
	path := "profile"
	if fallback {
		path = "fallback"
	}
	RecommendRequests.WithLabelValues(path).Inc()
	RecommendDuration.WithLabelValues(path).Observe(duration.Seconds())
	for tier, n := range tiers {
		RecommendTierItems.WithLabelValues(tier).Add(float64(n))
	}
}

// RecordRecommendCache records a response cache lookup.
func RecordRecommendCache(hit bool) {
	if hit {
		RecommendCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	RecommendCacheLookups.WithLabelValues("miss").Inc()
}

// RecordRecommendError records a failure in the named stage.
func RecordRecommendError(stage string) {
	RecommendErrors.WithLabelValues(stage).Inc()
}

// RecordMatrixBuild records a model rebuild.
func RecordMatrixBuild(weighting string, duration time.Duration, recipes, terms int, version int64) {
	MatrixBuildDuration.WithLabelValues(weighting).Observe(duration.Seconds())
	MatrixRecipes.Set(float64(recipes))
	MatrixTerms.Set(float64(terms))
	ModelVersion.Set(float64(version))
}

// RecordCorpusReload records the outcome of a corpus reload.
func RecordCorpusReload(err error) {
	if err != nil {
		CorpusReloads.WithLabelValues("failure").Inc()
		return
	}
	CorpusReloads.WithLabelValues("success").Inc()
}

// RecordEventPublished records a publish attempt.
func RecordEventPublished(topic string, err error) {
	EventsPublished.WithLabelValues(topic, resultLabel(err)).Inc()
}

// RecordEventConsumed records a handled message.
func RecordEventConsumed(topic string, err error) {
	EventsConsumed.WithLabelValues(topic, resultLabel(err)).Inc()
}

// RecordCircuitBreakerTransition records a state change. States use the
// gobreaker names: "closed", "half-open", "open".
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
}

// RecordWSBroadcast counts a broadcast message.
func RecordWSBroadcast(msgType string) {
	WSMessagesSent.WithLabelValues(msgType).Inc()
}

// RecordAuthzDecision records a casbin decision.
func RecordAuthzDecision(role string, allowed bool) {
	AuthzDecisions.WithLabelValues(role, strconv.FormatBool(allowed)).Inc()
}

// SetAppInfo publishes build information.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

func resultLabel(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

func breakerStateValue(state string) float64 {
	switch state {
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return 0
	}
}
