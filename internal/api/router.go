// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/mealmatch/internal/auth"
	"github.com/tomtom215/mealmatch/internal/authz"
	"github.com/tomtom215/mealmatch/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler         *Handler
	chiMiddleware   *ChiMiddleware
	authMiddleware  *auth.Middleware
	authzMiddleware *authz.Middleware
	wsHandler       http.Handler
}

// RouterOptions carries the optional pieces of the router.
type RouterOptions struct {
	ChiMiddleware   *ChiMiddleware
	AuthMiddleware  *auth.Middleware
	AuthzMiddleware *authz.Middleware

	// WebSocket serves /api/v1/ws behind AuthMiddleware. The route is not
	// registered when nil.
	WebSocket http.Handler
}

// NewRouter creates a router. Missing middleware defaults to open access
// and the default rate limits.
func NewRouter(handler *Handler, opts RouterOptions) *Router {
	if opts.ChiMiddleware == nil {
		opts.ChiMiddleware = NewChiMiddleware(nil)
	}
	if opts.AuthMiddleware == nil {
		opts.AuthMiddleware, _ = auth.NewMiddleware(nil, auth.AuthModeNone) //nolint:errcheck // none mode cannot fail
	}
	if opts.AuthzMiddleware == nil {
		opts.AuthzMiddleware = authz.NewMiddleware(nil, auth.AuthModeNone)
	}
	return &Router{
		handler:         handler,
		chiMiddleware:   opts.ChiMiddleware,
		authMiddleware:  opts.AuthMiddleware,
		authzMiddleware: opts.AuthzMiddleware,
		wsHandler:       opts.WebSocket,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to all routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom("health", RateLimitHealth))
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// The recipe routes answer both at the root and under /api/v1.
	r.Route("/recipes", router.registerRecipeRoutes)
	r.Route("/api/v1/recipes", router.registerRecipeRoutes)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())

		r.With(router.chiMiddleware.RateLimit()).Get("/recommend/status", router.handler.RecommendStatus)

		if router.wsHandler != nil {
			r.With(
				router.chiMiddleware.RateLimitCustom("websocket", RateLimitWebSocket),
				router.authMiddleware.Authenticate,
			).Handle("/ws", router.wsHandler)
		}

		r.Route("/admin", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitCustom("admin", RateLimitAdmin))
			r.Use(router.authMiddleware.Authenticate)
			r.Use(router.authzMiddleware.Authorize)
			r.Post("/corpus/reload", router.handler.ReloadCorpus)
		})
	})

	return r
}

func (router *Router) registerRecipeRoutes(r chi.Router) {
	r.Use(router.chiMiddleware.RateLimit())
	r.Use(APISecurityHeaders())

	r.Get("/search", router.handler.SearchRecipes)
	r.Get("/{id}", router.handler.GetRecipe)

	r.Group(func(r chi.Router) {
		r.Use(router.authMiddleware.Authenticate)
		r.Use(router.authzMiddleware.Authorize)

		r.With(router.chiMiddleware.RateLimitCustom("ratings", RateLimitWrite)).Post("/rate", router.handler.RateRecipe)
		r.Get("/get_recommendations/{user_id}", router.handler.GetRecommendations)
	})
}
