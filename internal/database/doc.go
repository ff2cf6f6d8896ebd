// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

// Package database loads the course catalog, interaction log and user
// profile tables from CSV files through DuckDB and hands the engine
// fully-typed, coerced in-memory slices.
//
// DuckDB's read_csv handles quoting, type sniffing and malformed-row
// rejection; this package then trims strings, clamps numeric ranges and
// normalizes difficulty levels so downstream components can assume
// well-formed rows. The connection is only needed during startup
// ingestion; the engine itself never touches the database afterwards.
package database
