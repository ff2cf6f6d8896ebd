// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package recommend

import (
	"math"
	"sort"
)

// SimilarityEngine answers cosine-similarity queries over a built
// FeatureIndex. It carries no state of its own and is safe for
// concurrent use.
type SimilarityEngine struct {
	index *FeatureIndex
}

// NewSimilarityEngine wraps a built feature index.
func NewSimilarityEngine(index *FeatureIndex) *SimilarityEngine {
	return &SimilarityEngine{index: index}
}

// scoredCourse pairs a course id with a relevance score during ranking.
type scoredCourse struct {
	id    string
	score float64
}

// Similarity returns the cosine similarity between two courses, in [0, 1].
// Returns models.ErrNotFound when either id is unknown.
func (s *SimilarityEngine) Similarity(courseA, courseB string) (float64, error) {
	va, err := s.index.VectorFor(courseA)
	if err != nil {
		return 0, err
	}
	vb, err := s.index.VectorFor(courseB)
	if err != nil {
		return 0, err
	}
	return clampUnit(va.Dot(vb)), nil
}

// neighbors returns up to topN courses most similar to the given course,
// excluding the course itself, ordered by score descending with
// rating-then-id tie-breaks. topN larger than the remaining corpus
// returns every other course.
func (s *SimilarityEngine) neighbors(courseID string, topN int) ([]scoredCourse, error) {
	target, err := s.index.VectorFor(courseID)
	if err != nil {
		return nil, err
	}

	scored := make([]scoredCourse, 0, s.index.Size()-1)
	for _, id := range s.index.CourseIDs() {
		if id == courseID {
			continue
		}
		vec, _ := s.index.VectorFor(id)
		scored = append(scored, scoredCourse{id: id, score: clampUnit(target.Dot(vec))})
	}

	s.rank(scored)
	if topN < len(scored) {
		scored = scored[:topN]
	}
	return scored, nil
}

// rank orders scored courses by score descending, then rating
// descending, then id ascending. The full ordering is deterministic so
// repeated queries return identical results.
func (s *SimilarityEngine) rank(scored []scoredCourse) {
	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.score != b.score {
			return a.score > b.score
		}
		ca, _ := s.index.Course(a.id)
		cb, _ := s.index.Course(b.id)
		if ca.Rating != cb.Rating {
			return ca.Rating > cb.Rating
		}
		return a.id < b.id
	})
}

// clampUnit guards against floating point drift pushing a cosine of unit
// vectors marginally outside [0, 1].
func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
