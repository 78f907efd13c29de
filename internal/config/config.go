package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Data sources for the customer dataset
const (
	DataSourceMemory   = "memory"
	DataSourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	API        APIConfig
	Log        LogConfig
	DataSource string
	Database   DatabaseConfig
	Cache      CacheConfig
}

// APIConfig holds API server configuration
type APIConfig struct {
	Port         int
	AllowOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level slog.Level
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// CacheConfig holds response cache configuration (Redis).
// An empty RedisURL disables caching.
type CacheConfig struct {
	RedisURL  string
	KeyPrefix string
	TTL       time.Duration
}

// Enabled reports whether a cache backend is configured
func (c CacheConfig) Enabled() bool {
	return c.RedisURL != ""
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	apiPort, err := strconv.Atoi(getEnv("API_PORT", "3001"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_PORT: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	dataSource := getEnv("DATA_SOURCE", DataSourceMemory)
	if dataSource != DataSourceMemory && dataSource != DataSourcePostgres {
		return nil, fmt.Errorf("invalid DATA_SOURCE: %q (must be %q or %q)", dataSource, DataSourceMemory, DataSourcePostgres)
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return nil, fmt.Errorf("invalid CACHE_TTL: must be positive")
	}

	return &Config{
		API: APIConfig{
			Port:         apiPort,
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		},
		Log: LogConfig{
			Level: level,
		},
		DataSource: dataSource,
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "customers"),
			Password: getEnv("DB_PASSWORD", "customers"),
			DBName:   getEnv("DB_NAME", "customers"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Cache: CacheConfig{
			RedisURL:  os.Getenv("REDIS_URL"),
			KeyPrefix: getEnv("CACHE_KEY_PREFIX", "customers:"),
			TTL:       cacheTTL,
		},
	}, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
