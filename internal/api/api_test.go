// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/puneet-jr/course-recommender/internal/analytics"
	"github.com/puneet-jr/course-recommender/internal/config"
	"github.com/puneet-jr/course-recommender/internal/models"
	"github.com/puneet-jr/course-recommender/internal/recommend"
	"github.com/puneet-jr/course-recommender/internal/search"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()

	courses := []models.Course{
		{ID: "C001", Title: "Python Basics", Subject: "Programming", Level: models.LevelBeginner,
			Description: "Learn Python", Rating: 4.8, EnrollmentCount: 1000, DurationHours: 12},
		{ID: "C002", Title: "Advanced Python", Subject: "Programming", Level: models.LevelAdvanced,
			Description: "Python internals", Rating: 4.6, EnrollmentCount: 5000, DurationHours: 20},
		{ID: "C003", Title: "Watercolor Painting", Subject: "Art", Level: models.LevelBeginner,
			Description: "Painting landscapes", Rating: 4.9, EnrollmentCount: 100, DurationHours: 8},
	}
	interactions := []models.Interaction{
		{UserID: "U1", CourseID: "C001", Rating: 5.0, Subject: "Programming",
			Level: models.LevelBeginner, CompletionPercent: 95},
	}

	engine, err := recommend.NewEngine(courses, interactions, recommend.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	cfg := &config.Config{}
	cfg.API.CORSOrigins = []string{"*"}
	cfg.API.RateLimitReqs = 1000
	cfg.API.RateLimitWindow = time.Minute

	aggregator := analytics.NewAggregator(courses, interactions, nil, recommend.DefaultConfig().Trending)
	return NewRouter(cfg, engine, search.NewSearcher(courses), aggregator).Setup()
}

func doRequest(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, models.APIResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal %s response: %v (body %q)", path, err, rec.Body.String())
	}
	return rec, resp
}

func TestHealthEndpoints(t *testing.T) {
	h := testServer(t)

	rec, resp := doRequest(t, h, "/api/v1/health/live")
	if rec.Code != http.StatusOK || resp.Status != "success" {
		t.Errorf("live: code=%d status=%q", rec.Code, resp.Status)
	}

	rec, resp = doRequest(t, h, "/api/v1/health/ready")
	if rec.Code != http.StatusOK {
		t.Fatalf("ready: code=%d", rec.Code)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["courses"].(float64) != 3 {
		t.Errorf("ready payload = %+v", resp.Data)
	}
}

func TestCoursesSearchEndpoint(t *testing.T) {
	h := testServer(t)

	rec, resp := doRequest(t, h, "/api/v1/courses?keyword=python")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	data := resp.Data.(map[string]interface{})
	if data["total"].(float64) != 2 {
		t.Errorf("total = %v, want 2", data["total"])
	}
}

func TestCoursesSearchValidation(t *testing.T) {
	h := testServer(t)

	rec, resp := doRequest(t, h, "/api/v1/courses?min_rating=9")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != codeValidation {
		t.Errorf("error = %+v, want %s", resp.Error, codeValidation)
	}
}

func TestCoursesSearchUnknownSortKey(t *testing.T) {
	h := testServer(t)

	rec, resp := doRequest(t, h, "/api/v1/courses?sort_by=popularity")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
	if resp.Error == nil {
		t.Fatal("expected error payload")
	}
}

func TestCourseDetailEndpoint(t *testing.T) {
	h := testServer(t)

	rec, resp := doRequest(t, h, "/api/v1/courses/C001")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	data := resp.Data.(map[string]interface{})
	if data["title"] != "Python Basics" {
		t.Errorf("title = %v", data["title"])
	}
}

func TestCourseNotFound(t *testing.T) {
	h := testServer(t)

	rec, resp := doRequest(t, h, "/api/v1/courses/C999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != codeNotFound {
		t.Errorf("error = %+v, want %s", resp.Error, codeNotFound)
	}
}

func TestSimilarCoursesEndpoint(t *testing.T) {
	h := testServer(t)

	rec, resp := doRequest(t, h, "/api/v1/courses/C001/similar?top_n=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	data := resp.Data.(map[string]interface{})
	recs := data["recommendations"].([]interface{})
	if len(recs) != 2 {
		t.Fatalf("len(recommendations) = %d, want 2", len(recs))
	}
	first := recs[0].(map[string]interface{})
	if first["course_id"] != "C002" {
		t.Errorf("top similar = %v, want C002", first["course_id"])
	}
}

func TestSimilarCoursesZeroTopN(t *testing.T) {
	h := testServer(t)

	rec, resp := doRequest(t, h, "/api/v1/courses/C001/similar?top_n=0")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != codeInvalidArgument {
		t.Errorf("error = %+v, want %s", resp.Error, codeInvalidArgument)
	}
}

func TestUserRecommendationsPersonalized(t *testing.T) {
	h := testServer(t)

	rec, resp := doRequest(t, h, "/api/v1/users/U1/recommendations")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	data := resp.Data.(map[string]interface{})
	if data["strategy"] != "personalized" {
		t.Errorf("strategy = %v, want personalized", data["strategy"])
	}
}

func TestUserRecommendationsColdStart(t *testing.T) {
	h := testServer(t)

	_, resp := doRequest(t, h, "/api/v1/users/stranger/recommendations")
	data := resp.Data.(map[string]interface{})
	if data["strategy"] != "trending_fallback" {
		t.Errorf("strategy = %v, want trending_fallback", data["strategy"])
	}
}

func TestTrendingEndpoint(t *testing.T) {
	h := testServer(t)

	rec, resp := doRequest(t, h, "/api/v1/trending?top_n=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	items := resp.Data.([]interface{})
	if len(items) != 1 {
		t.Fatalf("len = %d, want 1", len(items))
	}
	top := items[0].(map[string]interface{})
	if top["course_id"] != "C002" {
		t.Errorf("top trending = %v, want C002", top["course_id"])
	}
}

func TestAnalyticsEndpoints(t *testing.T) {
	h := testServer(t)

	rec, resp := doRequest(t, h, "/api/v1/analytics/subjects")
	if rec.Code != http.StatusOK {
		t.Fatalf("subjects code = %d", rec.Code)
	}
	dist := resp.Data.(map[string]interface{})
	if dist["Programming"].(float64) != 2 {
		t.Errorf("Programming count = %v, want 2", dist["Programming"])
	}

	rec, resp = doRequest(t, h, "/api/v1/analytics/platform")
	if rec.Code != http.StatusOK {
		t.Fatalf("platform code = %d", rec.Code)
	}
	platform := resp.Data.(map[string]interface{})
	if platform["total_courses"].(float64) != 3 {
		t.Errorf("total_courses = %v, want 3", platform["total_courses"])
	}

	rec, resp = doRequest(t, h, "/api/v1/analytics/users/nobody")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown user code = %d, want 404", rec.Code)
	}
	if resp.Error == nil {
		t.Error("expected error payload for unknown user")
	}
}

func TestResponseHeaders(t *testing.T) {
	h := testServer(t)

	rec, _ := doRequest(t, h, "/api/v1/subjects")
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("missing ETag header")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := testServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
}
