// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

// Package metrics defines the Prometheus instrumentation for the
// service: API latency and throughput, ingestion volume, engine build
// time and query counts by strategy.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Ingestion Metrics
	IngestRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_rows_total",
			Help: "Total number of rows ingested from CSV, by table",
		},
		[]string{"table"},
	)

	// Engine Metrics
	EngineBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "engine_build_duration_seconds",
			Help: "Time spent building the feature index and user profiles",
		},
	)

	EngineCorpusSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "engine_corpus_size",
			Help: "Number of courses in the feature index",
		},
	)

	EngineVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "engine_vocabulary_size",
			Help: "Number of terms in the feature vocabulary",
		},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation queries, by strategy",
		},
		[]string{"strategy"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	APIRequestDuration.WithLabelValues(method, endpoint, code).Observe(duration.Seconds())
	APIRequestsTotal.WithLabelValues(method, endpoint, code).Inc()
}

// RecordEngineBuild records the outcome of an engine build.
func RecordEngineBuild(duration time.Duration, corpusSize, vocabularySize int) {
	EngineBuildDuration.Set(duration.Seconds())
	EngineCorpusSize.Set(float64(corpusSize))
	EngineVocabularySize.Set(float64(vocabularySize))
}
