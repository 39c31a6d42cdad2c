package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port int

	OpenAIAPIKey      string
	OpenAIModel       string
	GenerationTimeout time.Duration

	FrontendURL string
	LogLevel    slog.Level
}

// Load reads configuration from environment variables and validates required fields.
func Load() (Config, error) {
	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return Config{}, fmt.Errorf("parse PORT: %w", err)
	}

	timeout, err := getEnvDuration("GENERATION_TIMEOUT", 5*time.Minute)
	if err != nil {
		return Config{}, fmt.Errorf("parse GENERATION_TIMEOUT: %w", err)
	}

	level, err := getEnvLogLevel("LOG_LEVEL", slog.LevelInfo)
	if err != nil {
		return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	cfg := Config{
		Port:              port,
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GenerationTimeout: timeout,
		FrontendURL:       getEnv("FRONTEND_URL", "http://localhost:3000"),
		LogLevel:          level,
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(v)
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	return time.ParseDuration(v)
}

func getEnvLogLevel(key string, defaultValue slog.Level) (slog.Level, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return 0, err
	}
	return level, nil
}
