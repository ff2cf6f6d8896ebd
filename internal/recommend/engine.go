// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package recommend

import (
	"fmt"
	"math"
	"time"

	"github.com/puneet-jr/course-recommender/internal/models"
)

// Recommendation strategies, reported in UserRecommendations so callers
// can tell a personalized ranking from a cold-start fallback.
const (
	StrategyPersonalized     = "personalized"
	StrategyTrendingFallback = "trending_fallback"
)

// descriptionPreviewLen caps descriptions in result payloads.
const descriptionPreviewLen = 200

// Recommendation is one ranked result. Score is the raw relevance in
// [0, 1]; MatchPercent is the same value presented as a percentage
// rounded to one decimal.
type Recommendation struct {
	CourseID        string  `json:"course_id"`
	Title           string  `json:"title"`
	Subject         string  `json:"subject"`
	Level           string  `json:"level"`
	Description     string  `json:"description"`
	Rating          float64 `json:"rating"`
	EnrollmentCount int     `json:"enrollment_count"`
	DurationHours   float64 `json:"duration_hours"`
	Score           float64 `json:"score"`
	MatchPercent    float64 `json:"match_percent"`
}

// UserRecommendations is the response to a per-user query, tagged with
// the strategy that produced it.
type UserRecommendations struct {
	UserID   string           `json:"user_id"`
	Strategy string           `json:"strategy"`
	Items    []Recommendation `json:"items"`
}

// Engine is the recommendation entry point. It is built once over the
// full catalog and interaction log and is immutable afterwards; all
// query methods are safe for concurrent use.
type Engine struct {
	cfg      *Config
	index    *FeatureIndex
	sim      *SimilarityEngine
	profiles *ProfileAggregator

	buildDuration time.Duration
}

// NewEngine builds the feature index and user profiles and returns a
// ready engine. Returns models.ErrEmptyCorpus for an empty course list
// and models.ErrInvalidArgument for an invalid configuration or
// duplicate course ids.
func NewEngine(courses []models.Course, interactions []models.Interaction, cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidArgument, err)
	}
	cfg = cfg.Clone()
	cfg.Blend = cfg.Blend.Normalize()

	start := time.Now()

	index, err := BuildFeatureIndex(courses, cfg.Features)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:           cfg,
		index:         index,
		sim:           NewSimilarityEngine(index),
		profiles:      BuildProfileAggregator(interactions, cfg.Profile),
		buildDuration: time.Since(start),
	}, nil
}

// RecommendByCourse returns up to topN courses most similar to the given
// course, excluding the course itself. topN < 1 is
// models.ErrInvalidArgument; values above the configured maximum are
// clamped.
func (e *Engine) RecommendByCourse(courseID string, topN int) ([]Recommendation, error) {
	topN, err := e.resolveTopN(topN)
	if err != nil {
		return nil, err
	}

	neighbors, err := e.sim.neighbors(courseID, topN)
	if err != nil {
		return nil, err
	}
	return e.materialize(neighbors), nil
}

// RecommendByUser returns up to topN courses for a user, blending
// content similarity to their top-rated courses with their subject and
// level affinity, and excluding every course they already interacted
// with. A user with no interaction history receives the trending
// ranking instead, tagged with the fallback strategy.
func (e *Engine) RecommendByUser(userID string, topN int) (*UserRecommendations, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", models.ErrInvalidArgument)
	}
	topN, err := e.resolveTopN(topN)
	if err != nil {
		return nil, err
	}

	sig := e.profiles.Signal(userID)
	if sig == nil {
		return &UserRecommendations{
			UserID:   userID,
			Strategy: StrategyTrendingFallback,
			Items:    e.trending(topN),
		}, nil
	}

	seeds := make([]FeatureVector, 0, len(sig.SeedCourses))
	for _, id := range sig.SeedCourses {
		if vec, err := e.index.VectorFor(id); err == nil {
			seeds = append(seeds, vec)
		}
	}

	b := e.cfg.Blend
	scored := make([]scoredCourse, 0, e.index.Size())
	for _, id := range e.index.CourseIDs() {
		if _, done := sig.Interacted[id]; done {
			continue
		}
		c, _ := e.index.Course(id)

		var content float64
		if len(seeds) > 0 {
			vec, _ := e.index.VectorFor(id)
			for _, seed := range seeds {
				content += clampUnit(seed.Dot(vec))
			}
			content /= float64(len(seeds))
		}

		affinity := b.SubjectAffinityWeight*sig.SubjectAffinity[c.Subject] +
			b.LevelAffinityWeight*sig.LevelAffinity[c.Level]

		scored = append(scored, scoredCourse{
			id:    id,
			score: b.ContentWeight*content + b.AffinityWeight*affinity,
		})
	}

	e.sim.rank(scored)
	if topN < len(scored) {
		scored = scored[:topN]
	}

	return &UserRecommendations{
		UserID:   userID,
		Strategy: StrategyPersonalized,
		Items:    e.materialize(scored),
	}, nil
}

// Trending returns the catalog-wide popularity ranking, up to topN.
// topN < 1 uses the configured default.
func (e *Engine) Trending(topN int) []Recommendation {
	if topN < 1 {
		topN = e.cfg.Limits.DefaultTopN
	}
	if topN > e.cfg.Limits.MaxTopN {
		topN = e.cfg.Limits.MaxTopN
	}
	return e.trending(topN)
}

// trending ranks every course by the popularity score, normalized into
// [0, 1] against the top course.
func (e *Engine) trending(topN int) []Recommendation {
	scored := make([]scoredCourse, 0, e.index.Size())
	for _, id := range e.index.CourseIDs() {
		c, _ := e.index.Course(id)
		scored = append(scored, scoredCourse{
			id:    id,
			score: e.cfg.Trending.Score(c.Rating, c.EnrollmentCount),
		})
	}

	e.sim.rank(scored)
	if topN < len(scored) {
		scored = scored[:topN]
	}

	if len(scored) > 0 && scored[0].score > 0 {
		max := scored[0].score
		for i := range scored {
			scored[i].score /= max
		}
	}

	return e.materialize(scored)
}

// Similarity returns the cosine similarity between two courses.
func (e *Engine) Similarity(courseA, courseB string) (float64, error) {
	return e.sim.Similarity(courseA, courseB)
}

// Course returns the catalog entry for an id.
// Returns models.ErrNotFound for an unknown id.
func (e *Engine) Course(courseID string) (models.Course, error) {
	c, ok := e.index.Course(courseID)
	if !ok {
		return models.Course{}, fmt.Errorf("%w: course %q", models.ErrNotFound, courseID)
	}
	return c, nil
}

// CourseIDs returns all course ids in ascending order.
func (e *Engine) CourseIDs() []string {
	return e.index.CourseIDs()
}

// UserIDs returns all user ids with interaction history, ascending.
func (e *Engine) UserIDs() []string {
	return e.profiles.UserIDs()
}

// UserSignal returns the aggregated signal for a user, or nil for a
// cold-start user.
func (e *Engine) UserSignal(userID string) *UserSignal {
	return e.profiles.Signal(userID)
}

// CourseCount returns the number of indexed courses.
func (e *Engine) CourseCount() int {
	return e.index.Size()
}

// VocabularySize returns the number of feature terms.
func (e *Engine) VocabularySize() int {
	return e.index.VocabularySize()
}

// BuildDuration reports how long the engine build took.
func (e *Engine) BuildDuration() time.Duration {
	return e.buildDuration
}

// Config returns a copy of the effective configuration.
func (e *Engine) Config() *Config {
	return e.cfg.Clone()
}

// DefaultTopN returns the configured result count for requests that do
// not specify one.
func (e *Engine) DefaultTopN() int {
	return e.cfg.Limits.DefaultTopN
}

// resolveTopN rejects non-positive requests and clamps to the
// configured maximum.
func (e *Engine) resolveTopN(topN int) (int, error) {
	if topN < 1 {
		return 0, fmt.Errorf("%w: top_n must be at least 1, got %d", models.ErrInvalidArgument, topN)
	}
	if topN > e.cfg.Limits.MaxTopN {
		return e.cfg.Limits.MaxTopN, nil
	}
	return topN, nil
}

// materialize converts ranked ids into result payloads.
func (e *Engine) materialize(scored []scoredCourse) []Recommendation {
	recs := make([]Recommendation, len(scored))
	for i, sc := range scored {
		c, _ := e.index.Course(sc.id)
		recs[i] = Recommendation{
			CourseID:        c.ID,
			Title:           c.Title,
			Subject:         c.Subject,
			Level:           c.Level,
			Description:     truncate(c.Description, descriptionPreviewLen),
			Rating:          c.Rating,
			EnrollmentCount: c.EnrollmentCount,
			DurationHours:   c.DurationHours,
			Score:           sc.score,
			MatchPercent:    math.Round(sc.score*1000) / 10,
		}
	}
	return recs
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
