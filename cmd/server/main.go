// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/mealmatch/docs" // registers /swagger/doc.json
	"github.com/tomtom215/mealmatch/internal/api"
	"github.com/tomtom215/mealmatch/internal/auth"
	"github.com/tomtom215/mealmatch/internal/authz"
	"github.com/tomtom215/mealmatch/internal/config"
	"github.com/tomtom215/mealmatch/internal/corpus"
	"github.com/tomtom215/mealmatch/internal/database"
	"github.com/tomtom215/mealmatch/internal/logging"
	"github.com/tomtom215/mealmatch/internal/metrics"
	"github.com/tomtom215/mealmatch/internal/recommend"
	"github.com/tomtom215/mealmatch/internal/supervisor"
	"github.com/tomtom215/mealmatch/internal/supervisor/services"
	ws "github.com/tomtom215/mealmatch/internal/websocket"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

//nolint:gocyclo // sequential startup
func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	metrics.SetAppInfo(version, runtime.Version())

	logging.Info().
		Str("version", version).
		Str("corpus", cfg.Corpus.Path).
		Str("db_driver", cfg.Database.Driver).
		Str("auth_mode", cfg.Security.AuthMode).
		Msg("Starting Mealmatch")

	// The corpus is mandatory; there is nothing to recommend without it.
	catalog, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Corpus.Path).Msg("Failed to load recipe corpus")
	}
	logging.Info().Int("recipes", catalog.Len()).Msg("Recipe corpus loaded")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open ratings store")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing ratings store")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	responses, closeCache, err := initResponseCache(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize response cache")
	}
	defer closeCache()

	engineCfg, err := recommend.ConfigFromApp(&cfg.Recommend, &cfg.Cache)
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid recommendation settings")
	}
	opts := []recommend.Option{recommend.WithRatingsSource(database.NewRecommendationDataProvider(db))}
	if responses != nil {
		opts = append(opts, recommend.WithCache(responses))
	}
	engine, err := recommend.NewEngine(engineCfg, logging.Logger(), opts...)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	wsHub := ws.NewHub()
	engine.OnRebuild(wsHub.BroadcastModelRebuilt)

	info, err := engine.Rebuild(catalog)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build term matrix")
	}
	logging.Info().
		Int64("version", info.Version).
		Str("weighting", string(info.Weighting)).
		Int("terms", info.Terms).
		Int64("build_ms", info.BuildDurationMS).
		Msg("Term matrix built")

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	events, err := initEvents(cfg, engine, wsHub)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize rating events")
	}
	defer events.Close()

	authMode, err := auth.ParseAuthMode(cfg.Security.AuthMode)
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid auth mode")
	}
	var jwtManager *auth.JWTManager
	if authMode == auth.AuthModeJWT {
		jwtManager, err = auth.NewJWTManager(&cfg.Security)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
		}
		logging.Info().Msg("JWT authentication enabled")
	} else {
		logging.Warn().Msg("Authentication is DISABLED (AUTH_MODE=none); every user id is writable by any caller")
	}
	authMiddleware, err := auth.NewMiddleware(jwtManager, authMode)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create auth middleware")
	}

	enforcer, err := authz.NewEnforcer(authz.DefaultEnforcerConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load authorization policy")
	}
	defer enforcer.Close()

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	deps := api.Dependencies{
		Engine: engine,
		Store:  db,
		Hub:    wsHub,
		Reload: func(context.Context) (recommend.ModelInfo, error) {
			return engine.ReloadCorpus(cfg.Corpus.Path)
		},
		RatingLimiter:    auth.NewRateLimiter(cfg.Security.RatingsPerMinute, cfg.Security.RatingsBurst),
		RecommendTimeout: cfg.Recommend.RequestTimeout,
		Version:          version,
	}
	if events.publisher != nil {
		deps.Publisher = events.publisher
	}
	handler := api.NewHandler(deps)

	router := api.NewRouter(handler, api.RouterOptions{
		ChiMiddleware:   api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)),
		AuthMiddleware:  authMiddleware,
		AuthzMiddleware: authz.NewMiddleware(enforcer, authMode),
		WebSocket:       ws.NewHandler(wsHub, cfg.Security.CORSOrigins),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	if cfg.Corpus.Watch {
		tree.AddDataService(services.NewCorpusWatchService(cfg.Corpus.Path, cfg.Corpus.ReloadDebounce, engine))
		logging.Info().Dur("debounce", cfg.Corpus.ReloadDebounce).Msg("Corpus watcher added to supervisor tree")
	}
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	if events.router != nil {
		tree.AddMessagingService(services.NewEventRouterService(events.router))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	unstopped, _ := tree.UnstoppedServiceReport() //nolint:errcheck // best effort during shutdown
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Mealmatch stopped")
}
