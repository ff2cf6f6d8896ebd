// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

// errors.go - Shared error taxonomy
//
// Sentinel errors wrapped with fmt.Errorf("%w: ...") by callers and
// matched with errors.Is at the API boundary.
package models

import "errors"

var (
	// ErrNotFound indicates a referenced id does not exist in the loaded tables.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument indicates an out-of-range or malformed query parameter,
	// such as top_n < 1 or an unknown sort key.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyCorpus indicates an index build was attempted with zero courses.
	ErrEmptyCorpus = errors.New("empty corpus")
)
