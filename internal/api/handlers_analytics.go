// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// AnalyticsSubjects handles GET /api/v1/analytics/subjects.
func (h *Handler) AnalyticsSubjects(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, h.analytics.SubjectDistribution(), time.Now())
}

// AnalyticsLevels handles GET /api/v1/analytics/levels.
func (h *Handler) AnalyticsLevels(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, h.analytics.LevelDistribution(), time.Now())
}

// AnalyticsRatings handles GET /api/v1/analytics/ratings.
func (h *Handler) AnalyticsRatings(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, h.analytics.RatingHistogram(), time.Now())
}

// AnalyticsPlatform handles GET /api/v1/analytics/platform.
func (h *Handler) AnalyticsPlatform(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, h.analytics.Platform(), time.Now())
}

// AnalyticsEngagement handles GET /api/v1/analytics/engagement.
func (h *Handler) AnalyticsEngagement(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, h.analytics.Engagement(), time.Now())
}

// AnalyticsTrending handles GET /api/v1/analytics/trending.
func (h *Handler) AnalyticsTrending(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	respondSuccess(w, h.analytics.Trending(getIntParam(r, "top_n", 10)), started)
}

// AnalyticsUser handles GET /api/v1/analytics/users/{id}.
func (h *Handler) AnalyticsUser(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	stats, err := h.analytics.User(chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, stats, started)
}
