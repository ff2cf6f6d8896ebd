// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

// Package api provides the HTTP surface over the recommendation engine,
// search and analytics using the Chi router.
//
// Handlers are intentionally thin: parse and validate parameters, call
// the engine, wrap the result in the standard response envelope and map
// the shared error taxonomy to HTTP status codes (unknown id -> 404,
// bad parameter -> 400, everything else -> 500). All responses are JSON
// encoded with goccy/go-json and carry an ETag.
package api
