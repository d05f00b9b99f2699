package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrUnknownProvider          = errors.New("unknown generation provider")
)

const (
	ProviderGoogleAI = "googleai"
	ProviderOpenAI   = "openai"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Auth       AuthConfig
	Services   ServicesConfig
	Generation GenerationConfig
	Redis      RedisConfig
	RateLimit  RateLimitConfig
	Server     ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host          string
	Username      string
	Password      string
	Name          string
	SSLMode       string
	RunMigrations bool
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	GoogleAIAPIKey string
	OpenAIAPIKey   string
	WebAppURI      string
}

// GenerationConfig selects the text-generation backend and its defaults
type GenerationConfig struct {
	Provider        string
	GoogleAIModel   string
	OpenAIModel     string
	DefaultLanguage string
	Timeout         time.Duration
}

// RedisConfig holds the optional Redis connection used for rate limiting
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// RateLimitConfig holds per-user request budgets
type RateLimitConfig struct {
	GenerationPerMinute int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}
	return fromEnv()
}

// LoadDatabase reads only the database settings. cmd/migrate uses it so that
// migrations can run without generation or auth secrets.
func LoadDatabase() (*DatabaseConfig, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}
	return databaseFromEnv()
}

func loadEnvFile() error {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return nil
}

// fromEnv builds the configuration from the current process environment.
func fromEnv() (*Config, error) {
	cfg := &Config{}

	database, err := databaseFromEnv()
	if err != nil {
		return nil, err
	}
	cfg.Database = *database

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Auth.TokenTTL, err = time.ParseDuration(getEnvWithDefault("JWT_TTL", "168h")); err != nil {
		return nil, fmt.Errorf("failed to parse JWT_TTL: %w", err)
	}

	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	cfg.Generation.Provider = getEnvWithDefault("AI_PROVIDER", ProviderGoogleAI)
	switch cfg.Generation.Provider {
	case ProviderGoogleAI:
		if cfg.Services.GoogleAIAPIKey, err = requireEnv("GOOGLE_AI_API_KEY"); err != nil {
			return nil, err
		}
	case ProviderOpenAI:
		if cfg.Services.OpenAIAPIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Generation.Provider, ErrUnknownProvider)
	}
	cfg.Generation.GoogleAIModel = getEnvWithDefault("GOOGLE_AI_MODEL", "gemini-2.0-flash-lite")
	cfg.Generation.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	cfg.Generation.DefaultLanguage = getEnvWithDefault("DEFAULT_LANGUAGE", "en")
	if cfg.Generation.Timeout, err = time.ParseDuration(getEnvWithDefault("GENERATION_TIMEOUT", "120s")); err != nil {
		return nil, fmt.Errorf("failed to parse GENERATION_TIMEOUT: %w", err)
	}

	if cfg.Redis.Enabled, err = strconv.ParseBool(getEnvWithDefault("REDIS_ENABLED", "false")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_ENABLED: %w", err)
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = strconv.Atoi(getEnvWithDefault("REDIS_PORT", "6379")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
	}
	if cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	if cfg.RateLimit.GenerationPerMinute, err = strconv.Atoi(getEnvWithDefault("GENERATION_RATE_LIMIT", "10")); err != nil {
		return nil, fmt.Errorf("failed to parse GENERATION_RATE_LIMIT: %w", err)
	}

	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

func databaseFromEnv() (*DatabaseConfig, error) {
	db := &DatabaseConfig{}

	var err error
	if db.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if db.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if db.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if db.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	db.SSLMode = getEnvWithDefault("DB_SSLMODE", "disable")
	if db.RunMigrations, err = strconv.ParseBool(getEnvWithDefault("RUN_MIGRATIONS", "true")); err != nil {
		return nil, fmt.Errorf("failed to parse RUN_MIGRATIONS: %w", err)
	}
	return db, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, sslMode)
}

// Address returns the host:port pair for the Redis server
func (c *RedisConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
