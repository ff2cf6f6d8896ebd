// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package database

import (
	"reflect"
	"testing"

	"github.com/puneet-jr/course-recommender/internal/models"
)

func TestCoerceCourse(t *testing.T) {
	c, ok := coerceCourse(" C001 ", " Python Basics ", " Programming ", "beginner",
		" Learn Python ", 6.5, -10, -2, " Jane Doe ", "python; data analysis,")
	if !ok {
		t.Fatal("expected valid course")
	}

	if c.ID != "C001" || c.Title != "Python Basics" || c.Subject != "Programming" {
		t.Errorf("strings not trimmed: %+v", c)
	}
	if c.Level != models.LevelBeginner {
		t.Errorf("Level = %q, want %q", c.Level, models.LevelBeginner)
	}
	if c.Rating != 5 {
		t.Errorf("Rating = %f, want clamped 5", c.Rating)
	}
	if c.EnrollmentCount != 0 {
		t.Errorf("EnrollmentCount = %d, want clamped 0", c.EnrollmentCount)
	}
	if c.DurationHours != 0 {
		t.Errorf("DurationHours = %f, want clamped 0", c.DurationHours)
	}
	if want := []string{"python", "data analysis"}; !reflect.DeepEqual(c.Skills, want) {
		t.Errorf("Skills = %v, want %v", c.Skills, want)
	}
}

func TestCoerceCourseDropsMissingFields(t *testing.T) {
	if _, ok := coerceCourse("", "Title", "", "", "", 4, 0, 1, "", ""); ok {
		t.Error("course without id accepted")
	}
	if _, ok := coerceCourse("C1", "  ", "", "", "", 4, 0, 1, "", ""); ok {
		t.Error("course without title accepted")
	}
}

func TestCoerceInteraction(t *testing.T) {
	it, ok := coerceInteraction(" U1 ", " C1 ", -2, "Art", "EXPERT", 140, -3)
	if !ok {
		t.Fatal("expected valid interaction")
	}
	if it.UserID != "U1" || it.CourseID != "C1" {
		t.Errorf("ids not trimmed: %+v", it)
	}
	if it.Rating != 0 {
		t.Errorf("Rating = %f, want clamped 0", it.Rating)
	}
	if it.Level != models.LevelAdvanced {
		t.Errorf("Level = %q, want %q", it.Level, models.LevelAdvanced)
	}
	if it.CompletionPercent != 100 {
		t.Errorf("CompletionPercent = %f, want clamped 100", it.CompletionPercent)
	}
	if it.WatchTimeHours != 0 {
		t.Errorf("WatchTimeHours = %f, want clamped 0", it.WatchTimeHours)
	}

	if _, ok := coerceInteraction("", "C1", 4, "", "", 50, 1); ok {
		t.Error("interaction without user id accepted")
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"beginner", models.LevelBeginner},
		{"Basic", models.LevelBeginner},
		{"INTRODUCTORY", models.LevelBeginner},
		{"intermediate", models.LevelIntermediate},
		{"Medium", models.LevelIntermediate},
		{"advanced", models.LevelAdvanced},
		{"expert", models.LevelAdvanced},
		{"  Advanced  ", models.LevelAdvanced},
		{"Masterclass", "Masterclass"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeLevel(tt.input); got != tt.want {
			t.Errorf("normalizeLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseSkills(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"python", []string{"python"}},
		{"python, sql; statistics", []string{"python", "sql", "statistics"}},
		{" ; , ", nil},
		{"", nil},
	}

	for _, tt := range tests {
		if got := parseSkills(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseSkills(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestQuoteLiteral(t *testing.T) {
	if got := quoteLiteral("data/courses.csv"); got != "'data/courses.csv'" {
		t.Errorf("quoteLiteral = %q", got)
	}
	if got := quoteLiteral("it's.csv"); got != "'it''s.csv'" {
		t.Errorf("quoteLiteral with quote = %q", got)
	}
}
