// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package models

// Course difficulty levels. The catalog uses exactly these three values;
// the ingestion layer coerces free-form input before it reaches the engine.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course is an immutable catalog entry. Courses are loaded once at startup
// and never mutated; every downstream structure indexes them by ID.
type Course struct {
	// ID uniquely identifies exactly one course.
	ID string `json:"course_id"`

	// Title is the display title.
	Title string `json:"title"`

	// Subject is the categorical subject (e.g. "Programming", "Art").
	Subject string `json:"subject"`

	// Level is one of Beginner, Intermediate, Advanced.
	Level string `json:"level"`

	// Description is free text.
	Description string `json:"description"`

	// Rating is the average course rating in [0, 5].
	Rating float64 `json:"rating"`

	// EnrollmentCount is the number of enrolled students (>= 0).
	EnrollmentCount int `json:"enrollment_count"`

	// DurationHours is the course length in hours (> 0).
	DurationHours float64 `json:"duration_hours"`

	// Instructor is the instructor display name.
	Instructor string `json:"instructor"`

	// Skills is the set of skills the course teaches.
	Skills []string `json:"skills"`
}

// Interaction is a user-course engagement record. A user may interact with
// many courses and with the same course a bounded small number of times.
type Interaction struct {
	// UserID is the interacting user.
	UserID string `json:"user_id"`

	// CourseID is the course interacted with.
	CourseID string `json:"course_id"`

	// Rating is the user's rating in [0, 5]; zero means no rating was given.
	Rating float64 `json:"rating"`

	// Subject is the course subject, denormalized for profile aggregation.
	Subject string `json:"subject"`

	// Level is the course level, denormalized for profile aggregation.
	Level string `json:"level"`

	// CompletionPercent is how much of the course was completed (0-100).
	CompletionPercent float64 `json:"completion_percent"`

	// WatchTimeHours is the total engagement time in hours.
	WatchTimeHours float64 `json:"watch_time_hours"`
}

// UserProfile holds aggregated per-user study statistics. It is derived
// from the history tables by the ingestion layer and never independently
// mutated.
type UserProfile struct {
	UserID           string  `json:"user_id"`
	AvgStudyHours    float64 `json:"avg_study_hours"`
	CoursesCompleted int     `json:"courses_completed"`
	ConsistencyScore float64 `json:"consistency_score"`
}
