// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

// Package models defines the shared data structures for the course
// recommendation service.
//
// Key types:
//   - Course: Immutable catalog entry loaded at startup
//   - Interaction: User-course engagement record
//   - UserProfile: Aggregated per-user study statistics
//   - APIResponse: Standardized API response wrapper
//
// The package also defines the error taxonomy shared by the engine,
// search, and analytics packages. All errors are deterministic input
// errors and are never retried internally.
package models
