// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package database

import (
	"strings"

	"github.com/puneet-jr/course-recommender/internal/models"
)

// coerceCourse normalizes one raw catalog row. Returns false when the
// row lacks an id or title and must be dropped.
func coerceCourse(id, title, subject, level, description string,
	rating float64, enrollment int64, duration float64,
	instructor, skills string) (models.Course, bool) {
	id = strings.TrimSpace(id)
	title = strings.TrimSpace(title)
	if id == "" || title == "" {
		return models.Course{}, false
	}

	return models.Course{
		ID:              id,
		Title:           title,
		Subject:         strings.TrimSpace(subject),
		Level:           normalizeLevel(level),
		Description:     strings.TrimSpace(description),
		Rating:          clamp(rating, 0, 5),
		EnrollmentCount: int(max64(enrollment, 0)),
		DurationHours:   nonNegative(duration),
		Instructor:      strings.TrimSpace(instructor),
		Skills:          parseSkills(skills),
	}, true
}

// coerceInteraction normalizes one raw interaction row. Returns false
// when user or course id is missing.
func coerceInteraction(userID, courseID string, rating float64,
	subject, level string, completion, watch float64) (models.Interaction, bool) {
	userID = strings.TrimSpace(userID)
	courseID = strings.TrimSpace(courseID)
	if userID == "" || courseID == "" {
		return models.Interaction{}, false
	}

	return models.Interaction{
		UserID:            userID,
		CourseID:          courseID,
		Rating:            clamp(rating, 0, 5),
		Subject:           strings.TrimSpace(subject),
		Level:             normalizeLevel(level),
		CompletionPercent: clamp(completion, 0, 100),
		WatchTimeHours:    nonNegative(watch),
	}, true
}

// normalizeLevel maps free-form difficulty text to the three canonical
// values. Unrecognized input is kept trimmed as-is rather than guessed.
func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "beginner", "basic", "introductory":
		return models.LevelBeginner
	case "intermediate", "medium":
		return models.LevelIntermediate
	case "advanced", "expert":
		return models.LevelAdvanced
	default:
		return strings.TrimSpace(level)
	}
}

// parseSkills splits a skills cell on commas and semicolons.
func parseSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})

	skills := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			skills = append(skills, f)
		}
	}
	if len(skills) == 0 {
		return nil
	}
	return skills
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
