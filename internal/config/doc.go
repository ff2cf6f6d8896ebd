// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

// Package config loads and validates application configuration using
// Koanf v2 with layered sources:
//
//  1. Built-in defaults
//  2. Optional YAML config file (CONFIG_PATH or the default search paths)
//  3. Environment variables (highest priority)
//
// Environment variables map to nested keys via a fixed transform table,
// e.g. HTTP_PORT -> server.port and COURSES_CSV -> database.courses_csv.
package config
