// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/puneet-jr/course-recommender/internal/models"
	"github.com/puneet-jr/course-recommender/internal/recommend"
)

// PlatformStats are catalog-wide totals.
type PlatformStats struct {
	TotalCourses      int     `json:"total_courses"`
	TotalUsers        int     `json:"total_users"`
	TotalEnrollments  int     `json:"total_enrollments"`
	TotalSubjects     int     `json:"total_subjects"`
	AverageRating     float64 `json:"average_rating"`
	AverageEnrollment float64 `json:"average_enrollment"`
}

// UserStats summarize one user's interaction history and derived profile.
type UserStats struct {
	UserID            string  `json:"user_id"`
	TotalInteractions int     `json:"total_interactions"`
	AverageRating     float64 `json:"average_rating"`
	FavoriteSubject   string  `json:"favorite_subject"`
	CoursesCompleted  int     `json:"courses_completed"`
	AvgStudyHours     float64 `json:"avg_study_hours"`
	ConsistencyScore  float64 `json:"consistency_score"`
	TotalWatchHours   float64 `json:"total_watch_hours"`
}

// EngagementSummary buckets all interactions by completion tier.
type EngagementSummary struct {
	TotalInteractions int     `json:"total_interactions"`
	Completed         int     `json:"completed"`
	Engaged           int     `json:"engaged"`
	Sampled           int     `json:"sampled"`
	Abandoned         int     `json:"abandoned"`
	AverageCompletion float64 `json:"average_completion"`
	AverageWatchHours float64 `json:"average_watch_hours"`
}

// TrendingCourse is one entry in the popularity ranking.
type TrendingCourse struct {
	CourseID        string  `json:"course_id"`
	Title           string  `json:"title"`
	Subject         string  `json:"subject"`
	Rating          float64 `json:"rating"`
	EnrollmentCount int     `json:"enrollment_count"`
	TrendingScore   float64 `json:"trending_score"`
}

// Aggregator computes rollups over an immutable snapshot of the catalog
// and interaction tables.
type Aggregator struct {
	courses      []models.Course
	interactions []models.Interaction
	profiles     map[string]models.UserProfile
	trending     recommend.TrendingConfig
}

// NewAggregator snapshots the input tables. The trending configuration
// is shared with the recommendation engine so both rank popularity
// identically.
func NewAggregator(
	courses []models.Course,
	interactions []models.Interaction,
	profiles []models.UserProfile,
	trending recommend.TrendingConfig,
) *Aggregator {
	byUser := make(map[string]models.UserProfile, len(profiles))
	for _, p := range profiles {
		byUser[p.UserID] = p
	}

	snapshot := make([]models.Course, len(courses))
	copy(snapshot, courses)
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].ID < snapshot[j].ID })

	return &Aggregator{
		courses:      snapshot,
		interactions: interactions,
		profiles:     byUser,
		trending:     trending,
	}
}

// SubjectDistribution returns course counts per subject.
func (a *Aggregator) SubjectDistribution() map[string]int {
	dist := make(map[string]int)
	for _, c := range a.courses {
		dist[c.Subject]++
	}
	return dist
}

// LevelDistribution returns course counts per difficulty level.
func (a *Aggregator) LevelDistribution() map[string]int {
	dist := make(map[string]int)
	for _, c := range a.courses {
		dist[c.Level]++
	}
	return dist
}

// RatingHistogram buckets course ratings into unit-wide bins labelled
// "0-1" through "4-5". A rating of exactly 5.0 counts in the top bin.
func (a *Aggregator) RatingHistogram() map[string]int {
	hist := map[string]int{"0-1": 0, "1-2": 0, "2-3": 0, "3-4": 0, "4-5": 0}
	for _, c := range a.courses {
		bin := int(c.Rating)
		if bin > 4 {
			bin = 4
		}
		if bin < 0 {
			bin = 0
		}
		hist[fmt.Sprintf("%d-%d", bin, bin+1)]++
	}
	return hist
}

// Platform returns catalog-wide totals and averages.
func (a *Aggregator) Platform() PlatformStats {
	stats := PlatformStats{TotalCourses: len(a.courses)}

	var ratingSum float64
	subjects := make(map[string]struct{})
	for _, c := range a.courses {
		ratingSum += c.Rating
		stats.TotalEnrollments += c.EnrollmentCount
		subjects[c.Subject] = struct{}{}
	}
	stats.TotalSubjects = len(subjects)

	users := make(map[string]struct{})
	for _, it := range a.interactions {
		users[it.UserID] = struct{}{}
	}
	stats.TotalUsers = len(users)

	if len(a.courses) > 0 {
		stats.AverageRating = round2(ratingSum / float64(len(a.courses)))
		stats.AverageEnrollment = round2(float64(stats.TotalEnrollments) / float64(len(a.courses)))
	}
	return stats
}

// User returns one user's interaction summary merged with their derived
// profile. Returns models.ErrNotFound for a user with no interactions
// and no profile row.
func (a *Aggregator) User(userID string) (UserStats, error) {
	stats := UserStats{UserID: userID}

	var ratingSum float64
	var rated int
	subjectCounts := make(map[string]int)
	for _, it := range a.interactions {
		if it.UserID != userID {
			continue
		}
		stats.TotalInteractions++
		stats.TotalWatchHours += it.WatchTimeHours
		if it.Rating > 0 {
			ratingSum += it.Rating
			rated++
		}
		if it.Subject != "" {
			subjectCounts[it.Subject]++
		}
	}

	profile, hasProfile := a.profiles[userID]
	if stats.TotalInteractions == 0 && !hasProfile {
		return UserStats{}, fmt.Errorf("%w: user %q", models.ErrNotFound, userID)
	}

	if rated > 0 {
		stats.AverageRating = round2(ratingSum / float64(rated))
	}
	stats.FavoriteSubject = topSubject(subjectCounts)
	if hasProfile {
		stats.CoursesCompleted = profile.CoursesCompleted
		stats.AvgStudyHours = profile.AvgStudyHours
		stats.ConsistencyScore = profile.ConsistencyScore
	}
	return stats, nil
}

// Engagement buckets every interaction by completion tier. Tier
// boundaries match the profile aggregator's engagement multipliers.
func (a *Aggregator) Engagement() EngagementSummary {
	var sum EngagementSummary
	var completionSum, watchSum float64

	for _, it := range a.interactions {
		sum.TotalInteractions++
		completionSum += it.CompletionPercent
		watchSum += it.WatchTimeHours

		switch {
		case it.CompletionPercent >= 90:
			sum.Completed++
		case it.CompletionPercent >= 50:
			sum.Engaged++
		case it.CompletionPercent >= 10:
			sum.Sampled++
		default:
			sum.Abandoned++
		}
	}

	if sum.TotalInteractions > 0 {
		n := float64(sum.TotalInteractions)
		sum.AverageCompletion = round2(completionSum / n)
		sum.AverageWatchHours = round2(watchSum / n)
	}
	return sum
}

// Trending returns the topN courses by popularity score, descending,
// ties broken by rating then id.
func (a *Aggregator) Trending(topN int) []TrendingCourse {
	ranked := make([]TrendingCourse, 0, len(a.courses))
	for _, c := range a.courses {
		ranked = append(ranked, TrendingCourse{
			CourseID:        c.ID,
			Title:           c.Title,
			Subject:         c.Subject,
			Rating:          c.Rating,
			EnrollmentCount: c.EnrollmentCount,
			TrendingScore:   round2(a.trending.Score(c.Rating, c.EnrollmentCount)),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TrendingScore != ranked[j].TrendingScore {
			return ranked[i].TrendingScore > ranked[j].TrendingScore
		}
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].CourseID < ranked[j].CourseID
	})

	if topN > 0 && topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}

// topSubject picks the most frequent subject, alphabetical tie-break.
func topSubject(counts map[string]int) string {
	var best string
	var bestCount int
	for subject, count := range counts {
		if count > bestCount || (count == bestCount && (best == "" || subject < best)) {
			best, bestCount = subject, count
		}
	}
	return best
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
