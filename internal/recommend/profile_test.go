// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package recommend

import (
	"math"
	"reflect"
	"testing"

	"github.com/puneet-jr/course-recommender/internal/models"
)

func testInteractions() []models.Interaction {
	return []models.Interaction{
		{UserID: "U1", CourseID: "C001", Rating: 5.0, Subject: "Programming", Level: models.LevelBeginner, CompletionPercent: 95},
		{UserID: "U1", CourseID: "C002", Rating: 4.0, Subject: "Programming", Level: models.LevelAdvanced, CompletionPercent: 60},
		{UserID: "U1", CourseID: "C003", Rating: 2.0, Subject: "Art", Level: models.LevelBeginner, CompletionPercent: 5},
		{UserID: "U2", CourseID: "C003", Rating: 4.8, Subject: "Art", Level: models.LevelBeginner, CompletionPercent: 100},
	}
}

func TestEngagementMultiplierTiers(t *testing.T) {
	m := DefaultConfig().Profile.Engagement

	tests := []struct {
		completion float64
		want       float64
	}{
		{100, 1.0},
		{90, 1.0},
		{89.9, 0.7},
		{50, 0.7},
		{49.9, 0.3},
		{10, 0.3},
		{9.9, 0.1},
		{0, 0.1},
	}

	for _, tt := range tests {
		if got := m.Multiplier(tt.completion); got != tt.want {
			t.Errorf("Multiplier(%v) = %v, want %v", tt.completion, got, tt.want)
		}
	}
}

func TestSignalUnknownUser(t *testing.T) {
	agg := BuildProfileAggregator(testInteractions(), DefaultConfig().Profile)

	if sig := agg.Signal("nobody"); sig != nil {
		t.Errorf("Signal for unknown user = %+v, want nil", sig)
	}
}

func TestSignalAffinityNormalized(t *testing.T) {
	agg := BuildProfileAggregator(testInteractions(), DefaultConfig().Profile)

	sig := agg.Signal("U1")
	if sig == nil {
		t.Fatal("expected signal for U1")
	}

	// Programming dominates U1's history, so it must normalize to 1.0
	// and Art must land strictly below.
	if got := sig.SubjectAffinity["Programming"]; math.Abs(got-1) > 1e-9 {
		t.Errorf("SubjectAffinity[Programming] = %f, want 1", got)
	}
	if got := sig.SubjectAffinity["Art"]; got <= 0 || got >= 1 {
		t.Errorf("SubjectAffinity[Art] = %f, want in (0, 1)", got)
	}

	for k, v := range sig.SubjectAffinity {
		if v < 0 || v > 1 {
			t.Errorf("SubjectAffinity[%s] = %f, outside [0, 1]", k, v)
		}
	}
	for k, v := range sig.LevelAffinity {
		if v < 0 || v > 1 {
			t.Errorf("LevelAffinity[%s] = %f, outside [0, 1]", k, v)
		}
	}
}

func TestSignalInteractedSet(t *testing.T) {
	agg := BuildProfileAggregator(testInteractions(), DefaultConfig().Profile)

	sig := agg.Signal("U1")
	want := map[string]struct{}{"C001": {}, "C002": {}, "C003": {}}
	if !reflect.DeepEqual(sig.Interacted, want) {
		t.Errorf("Interacted = %v, want %v", sig.Interacted, want)
	}
}

// Seeds prefer courses at or above the like threshold.
func TestSeedsPreferLikedCourses(t *testing.T) {
	agg := BuildProfileAggregator(testInteractions(), DefaultConfig().Profile)

	seeds := agg.Signal("U1").SeedCourses
	if !reflect.DeepEqual(seeds, []string{"C001"}) {
		t.Errorf("SeedCourses = %v, want [C001]", seeds)
	}
}

// A user with no course above the threshold seeds from their full
// history instead.
func TestSeedsFallBackToFullHistory(t *testing.T) {
	interactions := []models.Interaction{
		{UserID: "U3", CourseID: "C010", Rating: 3.0, Subject: "Music", CompletionPercent: 80},
		{UserID: "U3", CourseID: "C011", Rating: 4.0, Subject: "Music", CompletionPercent: 30},
	}
	agg := BuildProfileAggregator(interactions, DefaultConfig().Profile)

	seeds := agg.Signal("U3").SeedCourses
	if !reflect.DeepEqual(seeds, []string{"C011", "C010"}) {
		t.Errorf("SeedCourses = %v, want [C011 C010]", seeds)
	}
}

func TestSeedsCapped(t *testing.T) {
	cfg := DefaultConfig().Profile
	cfg.MaxSeedCourses = 2

	interactions := []models.Interaction{
		{UserID: "U4", CourseID: "A", Rating: 5.0, CompletionPercent: 100},
		{UserID: "U4", CourseID: "B", Rating: 4.9, CompletionPercent: 100},
		{UserID: "U4", CourseID: "C", Rating: 4.8, CompletionPercent: 100},
	}
	agg := BuildProfileAggregator(interactions, cfg)

	seeds := agg.Signal("U4").SeedCourses
	if !reflect.DeepEqual(seeds, []string{"A", "B"}) {
		t.Errorf("SeedCourses = %v, want [A B]", seeds)
	}
}

// Repeat interactions with the same course collapse to the strongest one.
func TestSeedsDeduplicateRepeatInteractions(t *testing.T) {
	interactions := []models.Interaction{
		{UserID: "U5", CourseID: "C020", Rating: 3.0, CompletionPercent: 20},
		{UserID: "U5", CourseID: "C020", Rating: 4.8, CompletionPercent: 90},
	}
	agg := BuildProfileAggregator(interactions, DefaultConfig().Profile)

	seeds := agg.Signal("U5").SeedCourses
	if !reflect.DeepEqual(seeds, []string{"C020"}) {
		t.Errorf("SeedCourses = %v, want [C020]", seeds)
	}
}

func TestUnratedInteractionUsesDefaultRating(t *testing.T) {
	interactions := []models.Interaction{
		{UserID: "U6", CourseID: "C030", Subject: "History", CompletionPercent: 95},
	}
	agg := BuildProfileAggregator(interactions, DefaultConfig().Profile)

	sig := agg.Signal("U6")
	if got := sig.SubjectAffinity["History"]; math.Abs(got-1) > 1e-9 {
		t.Errorf("SubjectAffinity[History] = %f, want 1 (default rating applied)", got)
	}
}

func TestBuildSkipsMalformedInteractions(t *testing.T) {
	interactions := []models.Interaction{
		{UserID: "", CourseID: "C001", Rating: 5.0},
		{UserID: "U7", CourseID: "", Rating: 5.0},
	}
	agg := BuildProfileAggregator(interactions, DefaultConfig().Profile)

	if agg.Size() != 0 {
		t.Errorf("Size = %d, want 0", agg.Size())
	}
}

func TestUserIDsSorted(t *testing.T) {
	agg := BuildProfileAggregator(testInteractions(), DefaultConfig().Profile)

	if got := agg.UserIDs(); !reflect.DeepEqual(got, []string{"U1", "U2"}) {
		t.Errorf("UserIDs = %v, want [U1 U2]", got)
	}
}
