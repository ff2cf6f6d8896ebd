// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

// Command server runs the course recommendation HTTP service.
//
// Startup is strictly build-then-serve: configuration is loaded, the
// CSV tables are ingested through DuckDB, the feature index and user
// profiles are built, and only then does the server start listening.
// Queries therefore never observe a partially built index.
package main
