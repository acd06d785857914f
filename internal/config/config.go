package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration loaded from environment variables
type Config struct {
	Host string `env:"HOST" envDefault:""`
	Port int    `env:"PORT" envDefault:"8080"`

	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`

	// EventsPath is the JSON file of daily events loaded at startup
	EventsPath string `env:"EVENTS_PATH" envDefault:"data/events.json"`

	// GameTimezone and GameCutoffHour control when the game day rolls over
	GameTimezone   string `env:"GAME_TIMEZONE" envDefault:"America/New_York"`
	GameCutoffHour int    `env:"GAME_CUTOFF_HOUR" envDefault:"0"`

	// MatchMode is "fuzzy" or "exact"; MatchThreshold applies to fuzzy mode
	MatchMode      string  `env:"MATCH_MODE" envDefault:"fuzzy"`
	MatchThreshold float64 `env:"MATCH_THRESHOLD" envDefault:"85"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the configured log level to a slog.Level
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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
