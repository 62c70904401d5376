package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Database. Empty runs the service on in-memory stores.
	DatabaseURL  string
	SeedTaxonomy bool // Insert the built-in taxonomy on startup

	// TaxonomyRefreshInterval controls how often the stored taxonomy is reloaded
	// into memory. Zero reads the database on every lookup.
	TaxonomyRefreshInterval time.Duration

	// Redis backs the rate limiter when set, so limits hold across replicas.
	RedisURL     string
	RateLimitMax int // Requests per minute per client, 0 disables the limiter

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json or text

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Matching
	StoreTimeout       time.Duration // Per-tier store deadline
	BatchConcurrency   int
	LibraryFuzzyFloor  float64
	TaxonomyFuzzyFloor float64
	MaxDistanceRatio   float64

	// Feedback
	FeedbackWorkers      int           // Library writes applied at once
	FeedbackWriteTimeout time.Duration // Deadline of one library write

	// Imports
	AutoApplyThreshold int // Rows at or above this confidence are confirmed automatically
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		SeedTaxonomy: getEnvBool("SEED_TAXONOMY", true),

		TaxonomyRefreshInterval: getEnvDuration("TAXONOMY_REFRESH_INTERVAL", 5*time.Minute),

		RedisURL:     getEnv("REDIS_URL", ""),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 600),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		CORSOrigins:  getEnv("CORS_ORIGINS", ""),

		StoreTimeout:       getEnvDuration("STORE_TIMEOUT", 2*time.Second),
		BatchConcurrency:   getEnvInt("BATCH_CONCURRENCY", 8),
		LibraryFuzzyFloor:  getEnvFloat("LIBRARY_FUZZY_FLOOR", 0.80),
		TaxonomyFuzzyFloor: getEnvFloat("TAXONOMY_FUZZY_FLOOR", 0.70),
		MaxDistanceRatio:   getEnvFloat("MAX_DISTANCE_RATIO", 0.5),
		AutoApplyThreshold: getEnvInt("AUTO_APPLY_THRESHOLD", 85),

		FeedbackWorkers:      getEnvInt("FEEDBACK_WORKERS", 4),
		FeedbackWriteTimeout: getEnvDuration("FEEDBACK_WRITE_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// UsesDatabase returns true if a Postgres connection string is configured.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}
