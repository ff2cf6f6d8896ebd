// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/puneet-jr/course-recommender/internal/logging"
	"github.com/puneet-jr/course-recommender/internal/metrics"
	"github.com/puneet-jr/course-recommender/internal/models"
)

// LoadCourses ingests the course catalog CSV. Rows without a course id
// or title are dropped; numeric fields are clamped into their valid
// ranges and levels are normalized to the three canonical values.
func (db *DB) LoadCourses(ctx context.Context) ([]models.Course, error) {
	query := fmt.Sprintf(`
		SELECT
			course_id, title, subject, level, description,
			rating, enrollment_count, duration_hours, instructor, skills
		FROM read_csv(%s, header = true, columns = {
			'course_id': 'VARCHAR',
			'title': 'VARCHAR',
			'subject': 'VARCHAR',
			'level': 'VARCHAR',
			'description': 'VARCHAR',
			'rating': 'DOUBLE',
			'enrollment_count': 'BIGINT',
			'duration_hours': 'DOUBLE',
			'instructor': 'VARCHAR',
			'skills': 'VARCHAR'
		})`, quoteLiteral(db.cfg.CoursesCSV))

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read courses CSV %s: %w", db.cfg.CoursesCSV, err)
	}
	defer closeQuietly(rows)

	var courses []models.Course
	var dropped int
	for rows.Next() {
		var (
			id, title, subject, level, description, instructor, skills sql.NullString
			rating, duration                                           sql.NullFloat64
			enrollment                                                 sql.NullInt64
		)
		if err := rows.Scan(&id, &title, &subject, &level, &description,
			&rating, &enrollment, &duration, &instructor, &skills); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}

		course, ok := coerceCourse(id.String, title.String, subject.String, level.String,
			description.String, rating.Float64, enrollment.Int64, duration.Float64,
			instructor.String, skills.String)
		if !ok {
			dropped++
			continue
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate course rows: %w", err)
	}

	metrics.IngestRowsTotal.WithLabelValues("courses").Add(float64(len(courses)))
	logging.Info().
		Int("loaded", len(courses)).
		Int("dropped", dropped).
		Str("path", db.cfg.CoursesCSV).
		Msg("Course catalog ingested")

	return courses, nil
}

// LoadInteractions ingests the interaction log CSV. Rows missing a user
// or course id are dropped.
func (db *DB) LoadInteractions(ctx context.Context) ([]models.Interaction, error) {
	if db.cfg.InteractionsCSV == "" {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT
			user_id, course_id, rating, subject, level,
			completion_percent, watch_time_hours
		FROM read_csv(%s, header = true, columns = {
			'user_id': 'VARCHAR',
			'course_id': 'VARCHAR',
			'rating': 'DOUBLE',
			'subject': 'VARCHAR',
			'level': 'VARCHAR',
			'completion_percent': 'DOUBLE',
			'watch_time_hours': 'DOUBLE'
		})`, quoteLiteral(db.cfg.InteractionsCSV))

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read interactions CSV %s: %w", db.cfg.InteractionsCSV, err)
	}
	defer closeQuietly(rows)

	var interactions []models.Interaction
	var dropped int
	for rows.Next() {
		var (
			userID, courseID, subject, level sql.NullString
			rating, completion, watch        sql.NullFloat64
		)
		if err := rows.Scan(&userID, &courseID, &rating, &subject, &level,
			&completion, &watch); err != nil {
			return nil, fmt.Errorf("failed to scan interaction row: %w", err)
		}

		interaction, ok := coerceInteraction(userID.String, courseID.String,
			rating.Float64, subject.String, level.String, completion.Float64, watch.Float64)
		if !ok {
			dropped++
			continue
		}
		interactions = append(interactions, interaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate interaction rows: %w", err)
	}

	metrics.IngestRowsTotal.WithLabelValues("interactions").Add(float64(len(interactions)))
	logging.Info().
		Int("loaded", len(interactions)).
		Int("dropped", dropped).
		Str("path", db.cfg.InteractionsCSV).
		Msg("Interaction log ingested")

	return interactions, nil
}

// LoadUserProfiles ingests the optional user profile CSV. An empty
// configured path returns no profiles without error.
func (db *DB) LoadUserProfiles(ctx context.Context) ([]models.UserProfile, error) {
	if db.cfg.ProfilesCSV == "" {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT user_id, avg_study_hours, courses_completed, consistency_score
		FROM read_csv(%s, header = true, columns = {
			'user_id': 'VARCHAR',
			'avg_study_hours': 'DOUBLE',
			'courses_completed': 'BIGINT',
			'consistency_score': 'DOUBLE'
		})`, quoteLiteral(db.cfg.ProfilesCSV))

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles CSV %s: %w", db.cfg.ProfilesCSV, err)
	}
	defer closeQuietly(rows)

	var profiles []models.UserProfile
	for rows.Next() {
		var (
			userID         sql.NullString
			study, consist sql.NullFloat64
			completed      sql.NullInt64
		)
		if err := rows.Scan(&userID, &study, &completed, &consist); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		if userID.String == "" {
			continue
		}
		profiles = append(profiles, models.UserProfile{
			UserID:           userID.String,
			AvgStudyHours:    study.Float64,
			CoursesCompleted: int(completed.Int64),
			ConsistencyScore: consist.Float64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profile rows: %w", err)
	}

	metrics.IngestRowsTotal.WithLabelValues("profiles").Add(float64(len(profiles)))
	logging.Info().
		Int("loaded", len(profiles)).
		Str("path", db.cfg.ProfilesCSV).
		Msg("User profiles ingested")

	return profiles, nil
}

// quoteLiteral wraps a string as a single-quoted SQL literal. read_csv
// cannot take its path as a bound parameter in all DuckDB versions, so
// the path is inlined with quotes escaped.
func quoteLiteral(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			out = append(out, '\'')
		}
		out = append(out, s[i])
	}
	return string(append(out, '\''))
}
