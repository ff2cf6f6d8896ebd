// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

// Package recommend implements the content-based recommendation engine
// for the course catalog.
//
// # Architecture
//
// The engine composes three components over an immutable catalog snapshot:
//
//   - FeatureIndex: TF-IDF vectors over each course's weighted text fields
//   - SimilarityEngine: cosine similarity and ranked nearest neighbors
//   - ProfileAggregator: per-user subject/level affinity from interactions
//
// The Engine is the sole entry point consumed by the presentation layer.
// It answers "similar to course X" and "for user U" queries, blending
// content similarity with profile affinity, and falls back to a trending
// ranking for cold-start users.
//
// # Design Principles
//
//   - Deterministic: identical inputs produce identical ordered output;
//     all ties are broken by rating, then by course id
//   - Immutable: the index is built once at startup; queries are pure
//     functions over the snapshot and are safe for unlimited concurrent
//     readers without locking
//   - Explainable: every result carries its score and match percentage
//
// # Usage
//
//	cfg := recommend.DefaultConfig()
//	engine, err := recommend.NewEngine(courses, interactions, cfg)
//	if err != nil {
//	    return err
//	}
//
//	similar, err := engine.RecommendByCourse("C001", 10)
//	forUser, err := engine.RecommendByUser("U042", 10)
//
// # Limitations
//
// The vocabulary is fixed at build time. Adding a course after the build
// requires constructing a new Engine over the full corpus; there is no
// incremental vocabulary update.
//
// # Errors
//
// The engine never logs or prints; it returns errors wrapping the shared
// taxonomy in internal/models (ErrNotFound, ErrInvalidArgument,
// ErrEmptyCorpus). Cold-start users are not an error: they receive the
// trending fallback, tagged in the response strategy.
package recommend
