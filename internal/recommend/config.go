// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package recommend

import (
	"fmt"
	"math"
)

// Config contains all configuration for the recommendation engine.
// Every tunable the engine uses lives here so behavior is reproducible
// and testable independently of the defaults.
type Config struct {
	// Features contains parameters for the TF-IDF feature index.
	Features FeatureConfig `json:"features" koanf:"features"`

	// Profile contains parameters for user profile aggregation.
	Profile ProfileConfig `json:"profile" koanf:"profile"`

	// Blend defines how content similarity and profile affinity combine
	// in personalized recommendations.
	Blend BlendConfig `json:"blend" koanf:"blend"`

	// Trending contains parameters for the popularity fallback ranking.
	Trending TrendingConfig `json:"trending" koanf:"trending"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`
}

// FeatureConfig enumerates which course fields enter the feature space
// and their relative weights. Weights are integer repeat counts: a field
// with weight 3 contributes each of its terms three times, biasing
// matching toward explicit labels over free text.
type FeatureConfig struct {
	// TitleWeight is the repeat count for title terms.
	// Default: 3.
	TitleWeight int `json:"title_weight" koanf:"title_weight"`

	// SubjectWeight is the repeat count for the subject term.
	// Default: 2.
	SubjectWeight int `json:"subject_weight" koanf:"subject_weight"`

	// LevelWeight is the repeat count for the level term.
	// Default: 1.
	LevelWeight int `json:"level_weight" koanf:"level_weight"`

	// DescriptionWeight is the repeat count for description terms.
	// Default: 1.
	DescriptionWeight int `json:"description_weight" koanf:"description_weight"`

	// SkillsWeight is the repeat count for skill terms.
	// Default: 3.
	SkillsWeight int `json:"skills_weight" koanf:"skills_weight"`

	// MinDocFrequency excludes terms appearing in fewer documents.
	// Default: 1 (keep everything).
	MinDocFrequency int `json:"min_doc_frequency" koanf:"min_doc_frequency"`

	// MaxVocabulary caps the vocabulary at the terms with the highest
	// corpus frequency, ties broken alphabetically for determinism.
	// Default: 500.
	MaxVocabulary int `json:"max_vocabulary" koanf:"max_vocabulary"`

	// ExtraStopwords are excluded in addition to the built-in English set.
	ExtraStopwords []string `json:"extra_stopwords,omitempty" koanf:"extra_stopwords"`
}

// ProfileConfig contains parameters for user profile aggregation.
type ProfileConfig struct {
	// DefaultRating is assumed for interactions without a rating.
	// Default: 3.0.
	DefaultRating float64 `json:"default_rating" koanf:"default_rating"`

	// LikeThreshold is the minimum rating for an interaction to seed
	// content similarity. If a user has no interaction at or above the
	// threshold, all of their interactions seed instead.
	// Default: 4.5.
	LikeThreshold float64 `json:"like_threshold" koanf:"like_threshold"`

	// MaxSeedCourses caps how many of the user's top courses seed the
	// content-similarity half of the personalized score.
	// Default: 5.
	MaxSeedCourses int `json:"max_seed_courses" koanf:"max_seed_courses"`

	// Engagement maps completion tiers to weight multipliers.
	Engagement EngagementMultipliers `json:"engagement" koanf:"engagement"`
}

// EngagementMultipliers weight interactions by how far the user got.
// Tier boundaries are fixed (>=90%, >=50%, >=10%, below); the multiplier
// per tier is tunable.
type EngagementMultipliers struct {
	// Completed applies at >= 90% completion. Default: 1.0.
	Completed float64 `json:"completed" koanf:"completed"`

	// Engaged applies at >= 50% completion. Default: 0.7.
	Engaged float64 `json:"engaged" koanf:"engaged"`

	// Sampled applies at >= 10% completion. Default: 0.3.
	Sampled float64 `json:"sampled" koanf:"sampled"`

	// Abandoned applies below 10% completion.
	// Default: 0.1 (non-zero so every interaction leaves a trace).
	Abandoned float64 `json:"abandoned" koanf:"abandoned"`
}

// Multiplier returns the multiplier for a completion percentage.
func (m EngagementMultipliers) Multiplier(completionPercent float64) float64 {
	switch {
	case completionPercent >= 90:
		return m.Completed
	case completionPercent >= 50:
		return m.Engaged
	case completionPercent >= 10:
		return m.Sampled
	default:
		return m.Abandoned
	}
}

// BlendConfig defines the weighted combination used by personalized
// recommendations:
//
//	score = ContentWeight * meanSimilarityToSeeds +
//	        AffinityWeight * (SubjectAffinityWeight * subjectAffinity +
//	                          LevelAffinityWeight * levelAffinity)
//
// The content/affinity split and the subject/level split are each
// normalized to sum to 1 at query time, so the weights only need to be
// relative.
type BlendConfig struct {
	// ContentWeight is the share of content similarity to the user's
	// highest-rated courses. Default: 0.7.
	ContentWeight float64 `json:"content_weight" koanf:"content_weight"`

	// AffinityWeight is the share of subject/level affinity.
	// Default: 0.3.
	AffinityWeight float64 `json:"affinity_weight" koanf:"affinity_weight"`

	// SubjectAffinityWeight is the subject share within affinity.
	// Default: 0.6.
	SubjectAffinityWeight float64 `json:"subject_affinity_weight" koanf:"subject_affinity_weight"`

	// LevelAffinityWeight is the level share within affinity.
	// Default: 0.4.
	LevelAffinityWeight float64 `json:"level_affinity_weight" koanf:"level_affinity_weight"`
}

// Normalize returns a copy with the content/affinity pair and the
// subject/level pair each scaled to sum to 1.0.
func (b BlendConfig) Normalize() BlendConfig {
	if sum := b.ContentWeight + b.AffinityWeight; sum > 0 {
		b.ContentWeight /= sum
		b.AffinityWeight /= sum
	} else {
		b.ContentWeight, b.AffinityWeight = 0.5, 0.5
	}

	if sum := b.SubjectAffinityWeight + b.LevelAffinityWeight; sum > 0 {
		b.SubjectAffinityWeight /= sum
		b.LevelAffinityWeight /= sum
	} else {
		b.SubjectAffinityWeight, b.LevelAffinityWeight = 0.5, 0.5
	}

	return b
}

// TrendingConfig parameterizes the popularity proxy used for cold-start
// fallback and the trending analytics list:
//
//	score = rating^RatingExponent * ln(1 + enrollment)^EnrollmentExponent
//
// With both exponents at their default of 1.0 this is the documented
// rating x log(1+enrollment) formula.
type TrendingConfig struct {
	// RatingExponent controls how strongly rating drives the score.
	// Default: 1.0.
	RatingExponent float64 `json:"rating_exponent" koanf:"rating_exponent"`

	// EnrollmentExponent controls how strongly enrollment volume drives
	// the score. Default: 1.0.
	EnrollmentExponent float64 `json:"enrollment_exponent" koanf:"enrollment_exponent"`
}

// Score computes the trending score for a rating and enrollment count.
func (t TrendingConfig) Score(rating float64, enrollmentCount int) float64 {
	if rating < 0 {
		rating = 0
	}
	if enrollmentCount < 0 {
		enrollmentCount = 0
	}
	return math.Pow(rating, t.RatingExponent) *
		math.Pow(math.Log1p(float64(enrollmentCount)), t.EnrollmentExponent)
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultTopN is the result count used when the caller passes none.
	// Default: 10.
	DefaultTopN int `json:"default_top_n" koanf:"default_top_n"`

	// MaxTopN caps the requested result count. Requests above the cap are
	// clamped, not rejected. Default: 100.
	MaxTopN int `json:"max_top_n" koanf:"max_top_n"`
}

// DefaultConfig returns a Config with documented production defaults.
func DefaultConfig() *Config {
	return &Config{
		Features: FeatureConfig{
			TitleWeight:       3,
			SubjectWeight:     2,
			LevelWeight:       1,
			DescriptionWeight: 1,
			SkillsWeight:      3,
			MinDocFrequency:   1,
			MaxVocabulary:     500,
		},
		Profile: ProfileConfig{
			DefaultRating:  3.0,
			LikeThreshold:  4.5,
			MaxSeedCourses: 5,
			Engagement: EngagementMultipliers{
				Completed: 1.0,
				Engaged:   0.7,
				Sampled:   0.3,
				Abandoned: 0.1,
			},
		},
		Blend: BlendConfig{
			ContentWeight:         0.7,
			AffinityWeight:        0.3,
			SubjectAffinityWeight: 0.6,
			LevelAffinityWeight:   0.4,
		},
		Trending: TrendingConfig{
			RatingExponent:     1.0,
			EnrollmentExponent: 1.0,
		},
		Limits: LimitsConfig{
			DefaultTopN: 10,
			MaxTopN:     100,
		},
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	f := c.Features
	if f.TitleWeight < 0 || f.SubjectWeight < 0 || f.LevelWeight < 0 ||
		f.DescriptionWeight < 0 || f.SkillsWeight < 0 {
		return fmt.Errorf("features: field weights must be non-negative")
	}
	if f.TitleWeight+f.SubjectWeight+f.LevelWeight+f.DescriptionWeight+f.SkillsWeight == 0 {
		return fmt.Errorf("features: at least one field weight must be positive")
	}
	if f.MinDocFrequency < 1 {
		return fmt.Errorf("features.min_doc_frequency must be >= 1, got %d", f.MinDocFrequency)
	}
	if f.MaxVocabulary < 1 {
		return fmt.Errorf("features.max_vocabulary must be >= 1, got %d", f.MaxVocabulary)
	}

	p := c.Profile
	if p.DefaultRating < 0 || p.DefaultRating > 5 {
		return fmt.Errorf("profile.default_rating must be in [0, 5], got %f", p.DefaultRating)
	}
	if p.LikeThreshold < 0 || p.LikeThreshold > 5 {
		return fmt.Errorf("profile.like_threshold must be in [0, 5], got %f", p.LikeThreshold)
	}
	if p.MaxSeedCourses < 1 {
		return fmt.Errorf("profile.max_seed_courses must be >= 1, got %d", p.MaxSeedCourses)
	}
	e := p.Engagement
	if e.Completed < 0 || e.Engaged < 0 || e.Sampled < 0 || e.Abandoned < 0 {
		return fmt.Errorf("profile.engagement multipliers must be non-negative")
	}

	b := c.Blend
	if b.ContentWeight < 0 || b.AffinityWeight < 0 ||
		b.SubjectAffinityWeight < 0 || b.LevelAffinityWeight < 0 {
		return fmt.Errorf("blend weights must be non-negative")
	}

	t := c.Trending
	if t.RatingExponent <= 0 || t.EnrollmentExponent <= 0 {
		return fmt.Errorf("trending exponents must be positive")
	}

	l := c.Limits
	if l.DefaultTopN < 1 {
		return fmt.Errorf("limits.default_top_n must be >= 1, got %d", l.DefaultTopN)
	}
	if l.MaxTopN < l.DefaultTopN {
		return fmt.Errorf("limits.max_top_n must be >= limits.default_top_n, got %d < %d",
			l.MaxTopN, l.DefaultTopN)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	if c.Features.ExtraStopwords != nil {
		cp.Features.ExtraStopwords = append([]string(nil), c.Features.ExtraStopwords...)
	}
	return &cp
}
