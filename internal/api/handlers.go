// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/puneet-jr/course-recommender/internal/analytics"
	"github.com/puneet-jr/course-recommender/internal/metrics"
	"github.com/puneet-jr/course-recommender/internal/recommend"
	"github.com/puneet-jr/course-recommender/internal/search"
)

// Handler bundles the query components behind the HTTP surface.
type Handler struct {
	engine    *recommend.Engine
	searcher  *search.Searcher
	analytics *analytics.Aggregator
}

// NewHandler creates the handler set over built components.
func NewHandler(engine *recommend.Engine, searcher *search.Searcher, aggregator *analytics.Aggregator) *Handler {
	return &Handler{engine: engine, searcher: searcher, analytics: aggregator}
}

// HealthLive reports process liveness.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]string{"status": "alive"}, time.Now())
}

// HealthReady reports readiness. The engine is built before the server
// listens, so a serving process is always ready; the payload carries
// corpus dimensions for operators.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]interface{}{
		"status":        "ready",
		"courses":       h.engine.CourseCount(),
		"vocabulary":    h.engine.VocabularySize(),
		"users":         len(h.engine.UserIDs()),
		"build_time_ms": h.engine.BuildDuration().Milliseconds(),
	}, time.Now())
}

// searchRequest carries the validated query parameters for course search.
type searchRequest struct {
	Keyword   string  `validate:"omitempty,max=200"`
	Subject   string  `validate:"omitempty,max=100"`
	Level     string  `validate:"omitempty,max=50"`
	MinRating float64 `validate:"min=0,max=5"`
	SortBy    string  `validate:"omitempty,oneof=rating enrollment_count duration_hours title"`
	Order     string  `validate:"omitempty,oneof=asc desc"`
	Limit     int     `validate:"min=0,max=500"`
}

// Courses handles GET /api/v1/courses with faceted search parameters.
func (h *Handler) Courses(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	q := r.URL.Query()

	req := searchRequest{
		Keyword:   q.Get("keyword"),
		Subject:   q.Get("subject"),
		Level:     q.Get("level"),
		MinRating: getFloatParam(r, "min_rating", 0),
		SortBy:    q.Get("sort_by"),
		Order:     q.Get("order"),
		Limit:     getIntParam(r, "limit", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	results, err := h.searcher.Search(search.Query{
		Keyword:   req.Keyword,
		Subject:   req.Subject,
		Level:     req.Level,
		MinRating: req.MinRating,
		SortBy:    req.SortBy,
		Ascending: strings.EqualFold(req.Order, "asc"),
		Limit:     req.Limit,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, map[string]interface{}{
		"total":   len(results),
		"courses": results,
	}, started)
}

// Course handles GET /api/v1/courses/{id}.
func (h *Handler) Course(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	course, err := h.engine.Course(chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, course, started)
}

// SimilarCourses handles GET /api/v1/courses/{id}/similar.
func (h *Handler) SimilarCourses(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	courseID := chi.URLParam(r, "id")

	recs, err := h.engine.RecommendByCourse(courseID, getIntParam(r, "top_n", h.engine.DefaultTopN()))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, map[string]interface{}{
		"course_id":       courseID,
		"recommendations": recs,
	}, started)
}

// CourseSimilarity handles GET /api/v1/courses/{id}/similarity/{other}.
func (h *Handler) CourseSimilarity(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	a, b := chi.URLParam(r, "id"), chi.URLParam(r, "other")

	score, err := h.engine.Similarity(a, b)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, map[string]interface{}{
		"course_a":   a,
		"course_b":   b,
		"similarity": score,
	}, started)
}

// Users handles GET /api/v1/users, enumerating users with history.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	ids := h.engine.UserIDs()

	respondSuccess(w, map[string]interface{}{
		"total": len(ids),
		"users": ids,
	}, started)
}

// UserRecommendations handles GET /api/v1/users/{id}/recommendations.
func (h *Handler) UserRecommendations(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	result, err := h.engine.RecommendByUser(chi.URLParam(r, "id"), getIntParam(r, "top_n", h.engine.DefaultTopN()))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	metrics.RecommendationsTotal.WithLabelValues(result.Strategy).Inc()
	respondSuccess(w, result, started)
}

// Subjects handles GET /api/v1/subjects.
func (h *Handler) Subjects(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, h.searcher.Subjects(), time.Now())
}

// Levels handles GET /api/v1/levels.
func (h *Handler) Levels(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, h.searcher.Levels(), time.Now())
}

// Trending handles GET /api/v1/trending.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	respondSuccess(w, h.engine.Trending(getIntParam(r, "top_n", 0)), started)
}
