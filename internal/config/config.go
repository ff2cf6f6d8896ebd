// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

package config

import (
	"fmt"
	"time"

	"github.com/puneet-jr/course-recommender/internal/recommend"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Database  DatabaseConfig   `koanf:"database"`
	API       APIConfig        `koanf:"api"`
	Logging   LoggingConfig    `koanf:"logging"`
	Recommend recommend.Config `koanf:"recommend"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Default: 0.0.0.0.
	Host string `koanf:"host"`

	// Port is the listen port. Default: 8080.
	Port int `koanf:"port"`

	// ReadTimeout bounds request reads. Default: 15s.
	ReadTimeout time.Duration `koanf:"read_timeout"`

	// WriteTimeout bounds response writes. Default: 30s.
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown. Default: 10s.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatabaseConfig holds the DuckDB ingestion settings.
type DatabaseConfig struct {
	// Path is the DuckDB database path; empty uses an in-memory
	// database, which suffices since the tables are rebuilt at startup.
	Path string `koanf:"path"`

	// MaxMemory caps DuckDB memory usage. Default: 1GB.
	MaxMemory string `koanf:"max_memory"`

	// Threads is the DuckDB thread count; 0 uses runtime.NumCPU().
	Threads int `koanf:"threads"`

	// CoursesCSV is the course catalog CSV path.
	CoursesCSV string `koanf:"courses_csv"`

	// InteractionsCSV is the interaction log CSV path.
	InteractionsCSV string `koanf:"interactions_csv"`

	// ProfilesCSV is the optional user profile CSV path; empty skips
	// profile loading.
	ProfilesCSV string `koanf:"profiles_csv"`
}

// APIConfig holds HTTP API behavior settings.
type APIConfig struct {
	// RateLimitReqs is the per-IP request budget per window. Default: 100.
	RateLimitReqs int `koanf:"rate_limit_reqs"`

	// RateLimitWindow is the rate limit window. Default: 1m.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// CORSOrigins lists allowed origins. Default: ["*"].
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error. Default: info.
	Level string `koanf:"level"`

	// Format is json or console. Default: json.
	Format string `koanf:"format"`

	// Caller adds file:line to log lines. Default: false.
	Caller bool `koanf:"caller"`
}

// defaultConfig returns a Config with all defaults applied.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path:            "",
			MaxMemory:       "1GB",
			Threads:         0,
			CoursesCSV:      "data/courses.csv",
			InteractionsCSV: "data/interactions.csv",
			ProfilesCSV:     "",
		},
		API: APIConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: *recommend.DefaultConfig(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	if c.Database.CoursesCSV == "" {
		return fmt.Errorf("database.courses_csv is required")
	}
	if c.API.RateLimitReqs < 1 {
		return fmt.Errorf("api.rate_limit_reqs must be >= 1, got %d", c.API.RateLimitReqs)
	}
	if c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("api.rate_limit_window must be positive")
	}
	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}
