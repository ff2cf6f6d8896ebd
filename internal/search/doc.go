// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

// Package search implements faceted catalog search: case-insensitive
// keyword matching over title, description, subject and skills, combined
// with subject, level and minimum-rating filters and configurable
// sorting. All filters AND together; an empty query returns the full
// catalog in the requested order.
//
// The searcher operates on the same immutable catalog snapshot as the
// recommendation engine and is safe for concurrent use.
package search
