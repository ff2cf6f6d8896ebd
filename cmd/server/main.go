// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/puneet-jr/course-recommender/internal/analytics"
	"github.com/puneet-jr/course-recommender/internal/api"
	"github.com/puneet-jr/course-recommender/internal/config"
	"github.com/puneet-jr/course-recommender/internal/database"
	"github.com/puneet-jr/course-recommender/internal/logging"
	"github.com/puneet-jr/course-recommender/internal/metrics"
	"github.com/puneet-jr/course-recommender/internal/recommend"
	"github.com/puneet-jr/course-recommender/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logging.Info().
		Str("addr", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)).
		Msg("Starting course recommender")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ingest the CSV tables. The connection is only needed during
	// startup; everything downstream works on in-memory snapshots.
	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}

	courses, err := db.LoadCourses(ctx)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load course catalog")
	}
	interactions, err := db.LoadInteractions(ctx)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load interaction log")
	}
	profiles, err := db.LoadUserProfiles(ctx)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load user profiles")
	}
	if err := db.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close ingestion database")
	}

	// Build the engine before serving. The readiness gate is implicit:
	// the listener does not exist until the index is complete.
	engine, err := recommend.NewEngine(courses, interactions, &cfg.Recommend)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build recommendation engine")
	}
	metrics.RecordEngineBuild(engine.BuildDuration(), engine.CourseCount(), engine.VocabularySize())
	logging.Info().
		Int("courses", engine.CourseCount()).
		Int("vocabulary", engine.VocabularySize()).
		Int("users", len(engine.UserIDs())).
		Dur("build_time", engine.BuildDuration()).
		Msg("Recommendation engine built")

	searcher := search.NewSearcher(courses)
	aggregator := analytics.NewAggregator(courses, interactions, profiles, cfg.Recommend.Trending)
	router := api.NewRouter(cfg, engine, searcher, aggregator)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Application stopped gracefully")
}
