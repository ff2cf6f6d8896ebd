// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

// Package analytics computes read-only statistical rollups over the
// catalog and interaction tables: subject and level distributions,
// rating histograms, trending rankings, platform-wide totals and
// per-user engagement summaries.
//
// Every method is a pure function over the immutable snapshot taken at
// construction; there is no caching and no shared mutable state, so the
// aggregator is safe for unlimited concurrent readers.
package analytics
