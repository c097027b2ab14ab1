// Package config provides configuration for the concierge service.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// ModeMock selects the canned LLM client.
const ModeMock = "MOCK"

// Config holds the service configuration. It is built once at startup and
// passed by pointer to the components that need it.
type Config struct {
	// Server settings
	HTTPPort int `env:"HTTP_PORT" env-default:"5000"`

	// Storage
	StoreDriver   string `env:"STORE_DRIVER" env-default:"sqlite"`
	DatabaseURL   string `env:"DATABASE_URL" env-default:"file:concierge.db?mode=rwc&_journal_mode=WAL&_busy_timeout=5000"`
	RedisAddr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" env-default:"concierge"`

	// Completion provider
	OpenAIAPIKey      string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL     string        `env:"OPENAI_BASE_URL"`
	OpenAIModel       string        `env:"OPENAI_MODEL" env-default:"gpt-4o"`
	OpenAITemperature float32       `env:"OPENAI_TEMPERATURE" env-default:"0.7"`
	OpenAIMaxTokens   int           `env:"OPENAI_MAX_TOKENS" env-default:"500"`
	LLMTimeout        time.Duration `env:"LLM_TIMEOUT" env-default:"30s"`

	// Places provider
	PlacesAPIKey  string        `env:"GOOGLE_PLACES_API_KEY"`
	PlacesBaseURL string        `env:"PLACES_BASE_URL" env-default:"https://maps.googleapis.com"`
	PlaceID       string        `env:"PLACE_ID" env-default:"ChIJN1t_tDeuEmsRUsoyG83frY4"`
	PlacesTimeout time.Duration `env:"PLACES_TIMEOUT" env-default:"10s"`

	// Mode switches the LLM client; MOCK answers without a network call.
	Mode string `env:"APP_MODE"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
}

// Load reads an optional dotenv file and then the process environment.
// An empty envFile means ".env"; a missing file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cleanenv cannot express as tags.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreSQLite, StoreRedis, StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	return nil
}

// Usage returns the environment variable help text.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
