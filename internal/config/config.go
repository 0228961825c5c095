package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the server configuration, loaded from PADELX_* environment
// variables with validated defaults
type Config struct {
	Port        int    `validate:"gte=0,lte=65535"`
	StorageType string `validate:"oneof=memory redis"`
	RedisURL    string
	LogLevel    string `validate:"oneof=debug info warn error"`

	SessionDuration time.Duration `validate:"gt=0"`
	HistoryWindow   int           `validate:"gt=0"`
}

// Load reads configuration from the environment, applies defaults and
// validates the result
func Load() (*Config, error) {
	cfg := &Config{
		StorageType: os.Getenv("PADELX_STORAGE_TYPE"),
		RedisURL:    os.Getenv("PADELX_REDIS_URL"),
		LogLevel:    os.Getenv("PADELX_LOG_LEVEL"),
	}

	if raw := os.Getenv("PADELX_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PADELX_PORT: %w", err)
		}
		cfg.Port = port
	}
	if raw := os.Getenv("PADELX_SESSION_DURATION"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PADELX_SESSION_DURATION: %w", err)
		}
		cfg.SessionDuration = d
	}
	if raw := os.Getenv("PADELX_HISTORY_WINDOW"); raw != "" {
		w, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PADELX_HISTORY_WINDOW: %w", err)
		}
		cfg.HistoryWindow = w
	}

	cfg.setDefaults()

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	if cfg.StorageType == "redis" && cfg.RedisURL == "" {
		return nil, fmt.Errorf("PADELX_REDIS_URL required when PADELX_STORAGE_TYPE=redis")
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.StorageType == "" {
		c.StorageType = "memory"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.SessionDuration == 0 {
		c.SessionDuration = 24 * time.Hour
	}
	if c.HistoryWindow == 0 {
		c.HistoryWindow = 3
	}
}

// SlogLevel maps the configured log level to a slog.Level
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
