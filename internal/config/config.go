package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/cesargomez89/fyyur/internal/constants"
)

// Config holds all application configuration
type Config struct {
	Port      string
	DBDriver  string
	DBPath    string
	DBDSN     string
	LogLevel  string
	LogFormat string
	Timezone  string

	RedisAddr     string
	RedisPassword string
	RedisDB       string
	RedisTLS      string
	CacheTTL      string
	CachePrefix   string

	AMQPURL     string
	EventsQueue string
}

// Load reads an optional .env file and then the environment. Variables
// already set in the environment win over the file. A missing file is not
// an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	return &Config{
		Port:      getEnv("PORT", constants.DefaultPort),
		DBDriver:  getEnv("DB_DRIVER", constants.DefaultDBDriver),
		DBPath:    getEnv("DB_PATH", constants.DefaultDBPath),
		DBDSN:     getEnv("DB_DSN", ""),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		Timezone:  getEnv("TIMEZONE", constants.DefaultTimezone),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnv("REDIS_DB", "0"),
		RedisTLS:      getEnv("REDIS_TLS", "false"),
		CacheTTL:      getEnv("CACHE_TTL", constants.DefaultCacheTTL.String()),
		CachePrefix:   getEnv("CACHE_PREFIX", constants.DefaultCachePrefix),

		AMQPURL:     getEnv("AMQP_URL", ""),
		EventsQueue: getEnv("EVENTS_QUEUE", constants.DefaultEventsQueue),
	}, nil
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var problems []string

	if c.Port == "" {
		problems = append(problems, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			problems = append(problems, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	switch c.DBDriver {
	case "sqlite":
		if c.DBPath == "" {
			problems = append(problems, "DB_PATH cannot be empty when DB_DRIVER is sqlite")
		}
	case "mysql", "pgx":
		if c.DBDSN == "" {
			problems = append(problems, fmt.Sprintf("DB_DSN is required when DB_DRIVER is %s", c.DBDriver))
		}
	default:
		problems = append(problems, fmt.Sprintf("DB_DRIVER must be one of: sqlite, mysql, pgx, got: %s", c.DBDriver))
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("TIMEZONE is not a known location: %s", c.Timezone))
	}

	if db, err := strconv.Atoi(c.RedisDB); err != nil || db < 0 {
		problems = append(problems, fmt.Sprintf("REDIS_DB must be a non-negative number, got: %s", c.RedisDB))
	}
	if _, err := strconv.ParseBool(c.RedisTLS); err != nil {
		problems = append(problems, fmt.Sprintf("REDIS_TLS must be a boolean, got: %s", c.RedisTLS))
	}
	if ttl, err := time.ParseDuration(c.CacheTTL); err != nil || ttl <= 0 {
		problems = append(problems, fmt.Sprintf("CACHE_TTL must be a positive duration, got: %s", c.CacheTTL))
	}
	if c.RedisAddr != "" && c.CachePrefix == "" {
		problems = append(problems, "CACHE_PREFIX cannot be empty when REDIS_ADDR is set")
	}

	if c.AMQPURL != "" && c.EventsQueue == "" {
		problems = append(problems, "EVENTS_QUEUE cannot be empty when AMQP_URL is set")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}

	return nil
}

// Location returns the configured time zone, UTC when it cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DSN returns the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.DBPath
	}
	return c.DBDSN
}

func (c *Config) RedisDBIndex() int {
	n, _ := strconv.Atoi(c.RedisDB)
	return n
}

// RedisTLSEnabled reports whether the Redis connection uses TLS.
func (c *Config) RedisTLSEnabled() bool {
	on, _ := strconv.ParseBool(c.RedisTLS)
	return on
}

func (c *Config) CacheTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return constants.DefaultCacheTTL
	}
	return d
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
