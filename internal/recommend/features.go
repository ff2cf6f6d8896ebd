// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/puneet-jr/course-recommender/internal/models"
)

// FeatureVector is a sparse TF-IDF vector over the corpus vocabulary,
// keyed by term index and normalized to unit length.
type FeatureVector map[int]float64

// Dot returns the dot product of two sparse vectors. For unit vectors
// this is the cosine similarity.
func (v FeatureVector) Dot(other FeatureVector) float64 {
	// Iterate the smaller map
	if len(other) < len(v) {
		v, other = other, v
	}

	var sum float64
	for i, w := range v {
		if ow, ok := other[i]; ok {
			sum += w * ow
		}
	}
	return sum
}

// FeatureIndex owns the corpus vocabulary and the per-course feature
// vectors. It is built once from the full course set and is immutable
// afterwards; adding a course requires a full rebuild.
type FeatureIndex struct {
	cfg FeatureConfig

	vocab   map[string]int // term -> index
	terms   []string       // index -> term
	idf     []float64      // index -> inverse document frequency
	vectors map[string]FeatureVector

	courses map[string]models.Course
	ids     []string // course ids in ascending order for deterministic iteration
}

// BuildFeatureIndex builds the TF-IDF feature space from the full course
// corpus. Each course's text fields are concatenated with their
// configured repeat weights into one document; terms below the minimum
// document frequency or in the stopword set are excluded; the vocabulary
// is capped at the configured size by corpus frequency.
//
// Returns models.ErrEmptyCorpus when courses is empty and
// models.ErrInvalidArgument on duplicate course ids.
func BuildFeatureIndex(courses []models.Course, cfg FeatureConfig) (*FeatureIndex, error) {
	if len(courses) == 0 {
		return nil, fmt.Errorf("%w: cannot build feature index", models.ErrEmptyCorpus)
	}

	stop := buildStopwordSet(cfg.ExtraStopwords)

	ix := &FeatureIndex{
		cfg:     cfg,
		vocab:   make(map[string]int),
		vectors: make(map[string]FeatureVector, len(courses)),
		courses: make(map[string]models.Course, len(courses)),
		ids:     make([]string, 0, len(courses)),
	}

	// Tokenize every course document once; term counts are reused for
	// both vocabulary selection and vector construction.
	docs := make([]map[string]int, len(courses))
	for i, c := range courses {
		if _, dup := ix.courses[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate course id %q", models.ErrInvalidArgument, c.ID)
		}
		ix.courses[c.ID] = c
		ix.ids = append(ix.ids, c.ID)
		docs[i] = tokenizeCourse(c, cfg, stop)
	}
	sort.Strings(ix.ids)

	ix.selectVocabulary(docs)
	ix.computeIDF(docs)

	for i, c := range courses {
		ix.vectors[c.ID] = ix.vectorize(docs[i])
	}

	return ix, nil
}

// selectVocabulary picks the terms meeting the minimum document
// frequency, capped at MaxVocabulary by total corpus frequency with
// alphabetical tie-break for determinism.
func (ix *FeatureIndex) selectVocabulary(docs []map[string]int) {
	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)
	for _, doc := range docs {
		for term, count := range doc {
			docFreq[term]++
			corpusFreq[term] += count
		}
	}

	candidates := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df >= ix.cfg.MinDocFrequency {
			candidates = append(candidates, term)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if corpusFreq[a] != corpusFreq[b] {
			return corpusFreq[a] > corpusFreq[b]
		}
		return a < b
	})

	if len(candidates) > ix.cfg.MaxVocabulary {
		candidates = candidates[:ix.cfg.MaxVocabulary]
	}

	// Stable term indices independent of frequency ordering
	sort.Strings(candidates)

	ix.terms = candidates
	for i, term := range candidates {
		ix.vocab[term] = i
	}
}

// computeIDF computes smoothed inverse document frequencies:
// idf(t) = ln((1+N)/(1+df(t))) + 1. Smoothing keeps idf positive and
// avoids division by zero for terms present in every document.
func (ix *FeatureIndex) computeIDF(docs []map[string]int) {
	docFreq := make([]int, len(ix.terms))
	for _, doc := range docs {
		for term := range doc {
			if i, ok := ix.vocab[term]; ok {
				docFreq[i]++
			}
		}
	}

	n := float64(len(docs))
	ix.idf = make([]float64, len(ix.terms))
	for i, df := range docFreq {
		ix.idf[i] = math.Log((1+n)/(1+float64(df))) + 1
	}
}

// vectorize builds the unit-length TF-IDF vector for one document.
func (ix *FeatureIndex) vectorize(doc map[string]int) FeatureVector {
	vec := make(FeatureVector, len(doc))
	var norm float64
	for term, count := range doc {
		i, ok := ix.vocab[term]
		if !ok {
			continue
		}
		w := float64(count) * ix.idf[i]
		vec[i] = w
		norm += w * w
	}

	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}

// VectorFor returns the feature vector for a course id.
// Returns models.ErrNotFound for an unknown id.
func (ix *FeatureIndex) VectorFor(courseID string) (FeatureVector, error) {
	vec, ok := ix.vectors[courseID]
	if !ok {
		return nil, fmt.Errorf("%w: course %q", models.ErrNotFound, courseID)
	}
	return vec, nil
}

// Course returns the course for an id.
func (ix *FeatureIndex) Course(courseID string) (models.Course, bool) {
	c, ok := ix.courses[courseID]
	return c, ok
}

// CourseIDs returns all course ids in ascending order.
func (ix *FeatureIndex) CourseIDs() []string {
	return ix.ids
}

// Size returns the number of indexed courses.
func (ix *FeatureIndex) Size() int {
	return len(ix.ids)
}

// VocabularySize returns the number of vocabulary terms.
func (ix *FeatureIndex) VocabularySize() int {
	return len(ix.terms)
}

// tokenizeCourse produces the weighted term counts for one course.
func tokenizeCourse(c models.Course, cfg FeatureConfig, stop map[string]struct{}) map[string]int {
	doc := make(map[string]int)

	addTokens(doc, c.Title, cfg.TitleWeight, stop)
	addTokens(doc, c.Subject, cfg.SubjectWeight, stop)
	addTokens(doc, c.Level, cfg.LevelWeight, stop)
	addTokens(doc, c.Description, cfg.DescriptionWeight, stop)
	for _, skill := range c.Skills {
		addTokens(doc, skill, cfg.SkillsWeight, stop)
	}

	return doc
}

// addTokens tokenizes text and adds each token weight times.
func addTokens(doc map[string]int, text string, weight int, stop map[string]struct{}) {
	if weight <= 0 || text == "" {
		return
	}
	for _, tok := range tokenize(text) {
		if _, skip := stop[tok]; skip {
			continue
		}
		doc[tok] += weight
	}
}

// tokenize lowercases and splits on non-alphanumeric runes, dropping
// single-character tokens.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// englishStopwords is a compact English stopword set. Terms here carry
// no matching signal between course documents.
var englishStopwords = []string{
	"a", "about", "above", "after", "again", "all", "an", "and", "any",
	"are", "as", "at", "be", "been", "before", "below", "between", "both",
	"but", "by", "can", "did", "do", "does", "down", "during", "each",
	"few", "for", "from", "further", "had", "has", "have", "he", "her",
	"here", "his", "how", "i", "if", "in", "into", "is", "it", "its",
	"just", "me", "more", "most", "my", "no", "nor", "not", "of", "off",
	"on", "once", "only", "or", "other", "our", "out", "over", "own",
	"same", "she", "so", "some", "such", "than", "that", "the", "their",
	"them", "then", "there", "these", "they", "this", "those", "through",
	"to", "too", "under", "up", "very", "was", "we", "were", "what",
	"when", "where", "which", "who", "whom", "why", "will", "with", "you",
	"your",
}

func buildStopwordSet(extra []string) map[string]struct{} {
	stop := make(map[string]struct{}, len(englishStopwords)+len(extra))
	for _, w := range englishStopwords {
		stop[w] = struct{}{}
	}
	for _, w := range extra {
		stop[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return stop
}
