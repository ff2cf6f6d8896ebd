// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package recommend

import (
	"sort"

	"github.com/puneet-jr/course-recommender/internal/models"
)

// UserSignal is the aggregated taste profile for one user, derived from
// their interaction history. Affinity maps are normalized so the
// strongest subject and level each score 1.0.
type UserSignal struct {
	UserID string

	// SubjectAffinity maps subject -> normalized preference in [0, 1].
	SubjectAffinity map[string]float64

	// LevelAffinity maps level -> normalized preference in [0, 1].
	LevelAffinity map[string]float64

	// Interacted is the set of course ids the user has touched.
	Interacted map[string]struct{}

	// SeedCourses are the user's top-rated interacted course ids, used to
	// anchor content similarity. At most MaxSeedCourses entries.
	SeedCourses []string
}

// ProfileAggregator builds user signals from the interaction log. Like
// the feature index it is built once at startup and read-only afterwards.
type ProfileAggregator struct {
	cfg     ProfileConfig
	signals map[string]*UserSignal
	userIDs []string
}

// BuildProfileAggregator aggregates all interactions into per-user
// signals. An empty interaction log is valid; every user is then a
// cold-start user.
func BuildProfileAggregator(interactions []models.Interaction, cfg ProfileConfig) *ProfileAggregator {
	agg := &ProfileAggregator{
		cfg:     cfg,
		signals: make(map[string]*UserSignal),
	}

	byUser := make(map[string][]models.Interaction)
	for _, it := range interactions {
		if it.UserID == "" || it.CourseID == "" {
			continue
		}
		byUser[it.UserID] = append(byUser[it.UserID], it)
	}

	for userID, history := range byUser {
		agg.signals[userID] = agg.aggregate(userID, history)
		agg.userIDs = append(agg.userIDs, userID)
	}
	sort.Strings(agg.userIDs)

	return agg
}

// aggregate folds one user's history into a signal. Each interaction
// contributes weight (rating/5) * engagementMultiplier(completion) to
// its subject and level buckets; unrated interactions use the default
// rating.
func (a *ProfileAggregator) aggregate(userID string, history []models.Interaction) *UserSignal {
	sig := &UserSignal{
		UserID:          userID,
		SubjectAffinity: make(map[string]float64),
		LevelAffinity:   make(map[string]float64),
		Interacted:      make(map[string]struct{}, len(history)),
	}

	for _, it := range history {
		sig.Interacted[it.CourseID] = struct{}{}

		rating := it.Rating
		if rating <= 0 {
			rating = a.cfg.DefaultRating
		}
		w := (rating / 5.0) * a.cfg.Engagement.Multiplier(it.CompletionPercent)

		if it.Subject != "" {
			sig.SubjectAffinity[it.Subject] += w
		}
		if it.Level != "" {
			sig.LevelAffinity[it.Level] += w
		}
	}

	normalizeByMax(sig.SubjectAffinity)
	normalizeByMax(sig.LevelAffinity)
	sig.SeedCourses = a.selectSeeds(history)

	return sig
}

// selectSeeds picks the user's highest-rated courses to anchor content
// similarity. Courses at or above the like threshold are preferred; a
// user with no liked course falls back to their full history. Ordered
// by rating descending, completion descending, then course id, capped
// at MaxSeedCourses. Duplicate interactions with the same course keep
// only the strongest.
func (a *ProfileAggregator) selectSeeds(history []models.Interaction) []string {
	best := make(map[string]models.Interaction, len(history))
	for _, it := range history {
		prev, seen := best[it.CourseID]
		if !seen || it.Rating > prev.Rating ||
			(it.Rating == prev.Rating && it.CompletionPercent > prev.CompletionPercent) {
			best[it.CourseID] = it
		}
	}

	liked := make([]models.Interaction, 0, len(best))
	all := make([]models.Interaction, 0, len(best))
	for _, it := range best {
		all = append(all, it)
		if it.Rating >= a.cfg.LikeThreshold {
			liked = append(liked, it)
		}
	}

	pool := liked
	if len(pool) == 0 {
		pool = all
	}

	sort.Slice(pool, func(i, j int) bool {
		if pool[i].Rating != pool[j].Rating {
			return pool[i].Rating > pool[j].Rating
		}
		if pool[i].CompletionPercent != pool[j].CompletionPercent {
			return pool[i].CompletionPercent > pool[j].CompletionPercent
		}
		return pool[i].CourseID < pool[j].CourseID
	})

	if len(pool) > a.cfg.MaxSeedCourses {
		pool = pool[:a.cfg.MaxSeedCourses]
	}

	seeds := make([]string, len(pool))
	for i, it := range pool {
		seeds[i] = it.CourseID
	}
	return seeds
}

// Signal returns the signal for a user id, or nil for a user with no
// interaction history.
func (a *ProfileAggregator) Signal(userID string) *UserSignal {
	return a.signals[userID]
}

// UserIDs returns all known user ids in ascending order.
func (a *ProfileAggregator) UserIDs() []string {
	return a.userIDs
}

// Size returns the number of users with at least one interaction.
func (a *ProfileAggregator) Size() int {
	return len(a.userIDs)
}

// normalizeByMax scales the map so its largest value becomes 1.0.
func normalizeByMax(m map[string]float64) {
	var max float64
	for _, v := range m {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return
	}
	for k := range m {
		m[k] /= max
	}
}
