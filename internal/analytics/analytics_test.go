// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package analytics

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/puneet-jr/course-recommender/internal/models"
	"github.com/puneet-jr/course-recommender/internal/recommend"
)

func testAggregator() *Aggregator {
	courses := []models.Course{
		{ID: "C001", Title: "Python Basics", Subject: "Programming", Level: models.LevelBeginner, Rating: 4.8, EnrollmentCount: 1000},
		{ID: "C002", Title: "Advanced Python", Subject: "Programming", Level: models.LevelAdvanced, Rating: 4.6, EnrollmentCount: 5000},
		{ID: "C003", Title: "Watercolor Painting", Subject: "Art", Level: models.LevelBeginner, Rating: 4.9, EnrollmentCount: 100},
		{ID: "C004", Title: "Figure Drawing", Subject: "Art", Level: models.LevelBeginner, Rating: 2.5, EnrollmentCount: 400},
	}
	interactions := []models.Interaction{
		{UserID: "U1", CourseID: "C001", Rating: 5.0, Subject: "Programming", CompletionPercent: 95, WatchTimeHours: 10},
		{UserID: "U1", CourseID: "C002", Rating: 4.0, Subject: "Programming", CompletionPercent: 55, WatchTimeHours: 8},
		{UserID: "U1", CourseID: "C003", Subject: "Art", CompletionPercent: 5, WatchTimeHours: 0.5},
		{UserID: "U2", CourseID: "C003", Rating: 4.8, Subject: "Art", CompletionPercent: 20, WatchTimeHours: 2},
	}
	profiles := []models.UserProfile{
		{UserID: "U1", AvgStudyHours: 2.5, CoursesCompleted: 3, ConsistencyScore: 0.8},
	}
	return NewAggregator(courses, interactions, profiles, recommend.DefaultConfig().Trending)
}

func TestSubjectDistribution(t *testing.T) {
	want := map[string]int{"Programming": 2, "Art": 2}
	if got := testAggregator().SubjectDistribution(); !reflect.DeepEqual(got, want) {
		t.Errorf("SubjectDistribution = %v, want %v", got, want)
	}
}

func TestLevelDistribution(t *testing.T) {
	want := map[string]int{
		models.LevelBeginner: 3,
		models.LevelAdvanced: 1,
	}
	if got := testAggregator().LevelDistribution(); !reflect.DeepEqual(got, want) {
		t.Errorf("LevelDistribution = %v, want %v", got, want)
	}
}

func TestRatingHistogram(t *testing.T) {
	want := map[string]int{"0-1": 0, "1-2": 0, "2-3": 1, "3-4": 0, "4-5": 3}
	if got := testAggregator().RatingHistogram(); !reflect.DeepEqual(got, want) {
		t.Errorf("RatingHistogram = %v, want %v", got, want)
	}
}

func TestRatingHistogramTopEdge(t *testing.T) {
	agg := NewAggregator(
		[]models.Course{{ID: "C1", Rating: 5.0}},
		nil, nil, recommend.DefaultConfig().Trending,
	)
	if got := agg.RatingHistogram()["4-5"]; got != 1 {
		t.Errorf("rating 5.0 bucket = %d, want 1", got)
	}
}

func TestPlatformStats(t *testing.T) {
	got := testAggregator().Platform()

	if got.TotalCourses != 4 {
		t.Errorf("TotalCourses = %d, want 4", got.TotalCourses)
	}
	if got.TotalUsers != 2 {
		t.Errorf("TotalUsers = %d, want 2", got.TotalUsers)
	}
	if got.TotalEnrollments != 6500 {
		t.Errorf("TotalEnrollments = %d, want 6500", got.TotalEnrollments)
	}
	if got.TotalSubjects != 2 {
		t.Errorf("TotalSubjects = %d, want 2", got.TotalSubjects)
	}
	// (4.8 + 4.6 + 4.9 + 2.5) / 4 = 4.2
	if math.Abs(got.AverageRating-4.2) > 1e-9 {
		t.Errorf("AverageRating = %f, want 4.2", got.AverageRating)
	}
	if math.Abs(got.AverageEnrollment-1625) > 1e-9 {
		t.Errorf("AverageEnrollment = %f, want 1625", got.AverageEnrollment)
	}
}

func TestUserStats(t *testing.T) {
	got, err := testAggregator().User("U1")
	if err != nil {
		t.Fatalf("User: %v", err)
	}

	if got.TotalInteractions != 3 {
		t.Errorf("TotalInteractions = %d, want 3", got.TotalInteractions)
	}
	// unrated interaction excluded: (5.0 + 4.0) / 2 = 4.5
	if math.Abs(got.AverageRating-4.5) > 1e-9 {
		t.Errorf("AverageRating = %f, want 4.5", got.AverageRating)
	}
	if got.FavoriteSubject != "Programming" {
		t.Errorf("FavoriteSubject = %q, want Programming", got.FavoriteSubject)
	}
	if got.CoursesCompleted != 3 || got.AvgStudyHours != 2.5 || got.ConsistencyScore != 0.8 {
		t.Errorf("profile fields not merged: %+v", got)
	}
	if math.Abs(got.TotalWatchHours-18.5) > 1e-9 {
		t.Errorf("TotalWatchHours = %f, want 18.5", got.TotalWatchHours)
	}
}

func TestUserStatsWithoutProfileRow(t *testing.T) {
	got, err := testAggregator().User("U2")
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if got.TotalInteractions != 1 || got.CoursesCompleted != 0 {
		t.Errorf("unexpected stats for profile-less user: %+v", got)
	}
}

func TestUserStatsUnknown(t *testing.T) {
	_, err := testAggregator().User("nobody")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEngagementSummary(t *testing.T) {
	got := testAggregator().Engagement()

	if got.TotalInteractions != 4 {
		t.Errorf("TotalInteractions = %d, want 4", got.TotalInteractions)
	}
	if got.Completed != 1 || got.Engaged != 1 || got.Sampled != 1 || got.Abandoned != 1 {
		t.Errorf("tier counts = %+v, want 1 each", got)
	}
	// (95 + 55 + 5 + 20) / 4 = 43.75
	if math.Abs(got.AverageCompletion-43.75) > 1e-9 {
		t.Errorf("AverageCompletion = %f, want 43.75", got.AverageCompletion)
	}
}

func TestTrendingRanking(t *testing.T) {
	ranked := testAggregator().Trending(10)

	got := make([]string, len(ranked))
	for i, tc := range ranked {
		got[i] = tc.CourseID
	}
	// rating * ln(1+enrollment):
	//   C002 ~ 39.2, C001 ~ 33.2, C003 ~ 22.6, C004 ~ 15.0
	want := []string{"C002", "C001", "C003", "C004"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Trending order = %v, want %v", got, want)
	}

	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].TrendingScore < ranked[i].TrendingScore {
			t.Fatalf("trending scores not descending: %+v", ranked)
		}
	}
}

func TestTrendingTopN(t *testing.T) {
	if got := len(testAggregator().Trending(2)); got != 2 {
		t.Errorf("len = %d, want 2", got)
	}
	if got := len(testAggregator().Trending(0)); got != 4 {
		t.Errorf("topN=0 len = %d, want 4 (no cap)", got)
	}
}
