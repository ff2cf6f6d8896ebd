// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/puneet-jr/course-recommender/internal/models"
)

// Sort keys accepted by Query.SortBy.
const (
	SortByRating     = "rating"
	SortByEnrollment = "enrollment_count"
	SortByDuration   = "duration_hours"
	SortByTitle      = "title"
)

// Query is one faceted search request. Zero-value fields are inactive;
// an entirely zero Query matches the whole catalog.
type Query struct {
	// Keyword matches case-insensitively as a substring of title,
	// description or any skill.
	Keyword string `json:"keyword,omitempty"`

	// Subject filters to an exact subject (case-insensitive).
	Subject string `json:"subject,omitempty"`

	// Level filters to an exact level (case-insensitive).
	Level string `json:"level,omitempty"`

	// MinRating excludes courses rated below the threshold.
	MinRating float64 `json:"min_rating,omitempty"`

	// SortBy is one of rating, enrollment_count, duration_hours, title.
	// Empty defaults to rating.
	SortBy string `json:"sort_by,omitempty"`

	// Ascending flips the sort direction. Defaults descending, except
	// title which callers usually want ascending.
	Ascending bool `json:"ascending,omitempty"`

	// Limit caps the result count; zero means no cap.
	Limit int `json:"limit,omitempty"`
}

// Searcher answers faceted queries over an immutable catalog snapshot.
type Searcher struct {
	courses []models.Course
}

// NewSearcher snapshots the catalog for searching. The slice is copied
// so later caller mutations cannot corrupt result ordering.
func NewSearcher(courses []models.Course) *Searcher {
	snapshot := make([]models.Course, len(courses))
	copy(snapshot, courses)
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].ID < snapshot[j].ID })
	return &Searcher{courses: snapshot}
}

// Search returns the courses matching every active filter in q, ordered
// by the requested sort key with id as the final tie-break.
// Returns models.ErrInvalidArgument for an unknown sort key.
func (s *Searcher) Search(q Query) ([]models.Course, error) {
	less, err := comparatorFor(q.SortBy, q.Ascending)
	if err != nil {
		return nil, err
	}
	if q.MinRating < 0 || q.MinRating > 5 {
		return nil, fmt.Errorf("%w: min_rating %f outside [0, 5]", models.ErrInvalidArgument, q.MinRating)
	}

	keyword := strings.ToLower(strings.TrimSpace(q.Keyword))
	subject := strings.TrimSpace(q.Subject)
	level := strings.TrimSpace(q.Level)

	matched := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		if subject != "" && !strings.EqualFold(c.Subject, subject) {
			continue
		}
		if level != "" && !strings.EqualFold(c.Level, level) {
			continue
		}
		if c.Rating < q.MinRating {
			continue
		}
		if keyword != "" && !matchesKeyword(c, keyword) {
			continue
		}
		matched = append(matched, c)
	}

	sort.Slice(matched, func(i, j int) bool { return less(matched[i], matched[j]) })

	if q.Limit > 0 && q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

// Subjects returns the distinct subjects in the catalog, ascending.
func (s *Searcher) Subjects() []string {
	return s.distinct(func(c models.Course) string { return c.Subject })
}

// Levels returns the distinct levels in the catalog, ascending.
func (s *Searcher) Levels() []string {
	return s.distinct(func(c models.Course) string { return c.Level })
}

func (s *Searcher) distinct(key func(models.Course) string) []string {
	seen := make(map[string]struct{})
	for _, c := range s.courses {
		if k := key(c); k != "" {
			seen[k] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// matchesKeyword reports whether the lowercased keyword is a substring
// of any searchable text field.
func matchesKeyword(c models.Course, keyword string) bool {
	if strings.Contains(strings.ToLower(c.Title), keyword) ||
		strings.Contains(strings.ToLower(c.Description), keyword) {
		return true
	}
	for _, skill := range c.Skills {
		if strings.Contains(strings.ToLower(skill), keyword) {
			return true
		}
	}
	return false
}

// comparatorFor builds the ordering for a sort key. The id tie-break
// keeps results stable regardless of input order.
func comparatorFor(sortBy string, ascending bool) (func(a, b models.Course) bool, error) {
	if sortBy == "" {
		sortBy = SortByRating
	}

	var cmp func(a, b models.Course) int
	switch sortBy {
	case SortByRating:
		cmp = func(a, b models.Course) int { return compareFloat(a.Rating, b.Rating) }
	case SortByEnrollment:
		cmp = func(a, b models.Course) int { return a.EnrollmentCount - b.EnrollmentCount }
	case SortByDuration:
		cmp = func(a, b models.Course) int { return compareFloat(a.DurationHours, b.DurationHours) }
	case SortByTitle:
		cmp = func(a, b models.Course) int { return strings.Compare(a.Title, b.Title) }
	default:
		return nil, fmt.Errorf("%w: unknown sort key %q", models.ErrInvalidArgument, sortBy)
	}

	return func(a, b models.Course) bool {
		c := cmp(a, b)
		if c == 0 {
			return a.ID < b.ID
		}
		if ascending {
			return c < 0
		}
		return c > 0
	}, nil
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
