package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// Timeouts for individual commands
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// GuestPlayerTTL bounds how long anonymous player identities are kept.
	// Events, leaderboards and player records are durable and carry no TTL.
	GuestPlayerTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:            "redis://localhost:6379",
		PoolSize:       10,
		MinIdleConns:   2,
		ReadTimeout:    3 * time.Second,
		WriteTimeout:   3 * time.Second,
		GuestPlayerTTL: 24 * time.Hour,
	}
}
