// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/puneet-jr/course-recommender/internal/analytics"
	"github.com/puneet-jr/course-recommender/internal/config"
	"github.com/puneet-jr/course-recommender/internal/middleware"
	"github.com/puneet-jr/course-recommender/internal/recommend"
	"github.com/puneet-jr/course-recommender/internal/search"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so it can be used with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router wires handlers and middleware into the Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router over built query components.
func NewRouter(cfg *config.Config, engine *recommend.Engine, searcher *search.Searcher, aggregator *analytics.Aggregator) *Router {
	return &Router{
		handler: NewHandler(engine, searcher, aggregator),
		chiMiddleware: NewChiMiddleware(&ChiMiddlewareConfig{
			CORSAllowedOrigins: cfg.API.CORSOrigins,
			RateLimitRequests:  cfg.API.RateLimitReqs,
			RateLimitWindow:    cfg.API.RateLimitWindow,
		}),
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Health endpoints get a permissive limit so monitoring cannot
	// exhaust the data-endpoint budget.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Core catalog and recommendation endpoints
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/courses", router.handler.Courses)
		r.Get("/courses/{id}", router.handler.Course)
		r.Get("/courses/{id}/similar", router.handler.SimilarCourses)
		r.Get("/courses/{id}/similarity/{other}", router.handler.CourseSimilarity)
		r.Get("/users", router.handler.Users)
		r.Get("/users/{id}/recommendations", router.handler.UserRecommendations)
		r.Get("/subjects", router.handler.Subjects)
		r.Get("/levels", router.handler.Levels)
		r.Get("/trending", router.handler.Trending)
	})

	// Analytics endpoints
	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/subjects", router.handler.AnalyticsSubjects)
		r.Get("/levels", router.handler.AnalyticsLevels)
		r.Get("/ratings", router.handler.AnalyticsRatings)
		r.Get("/platform", router.handler.AnalyticsPlatform)
		r.Get("/engagement", router.handler.AnalyticsEngagement)
		r.Get("/trending", router.handler.AnalyticsTrending)
		r.Get("/users/{id}", router.handler.AnalyticsUser)
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
