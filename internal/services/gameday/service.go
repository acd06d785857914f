package gameday

import (
	"fmt"
	"time"

	"github.com/chronle/chronle/internal/dependencies/clock"
	"github.com/chronle/chronle/internal/model"
)

// DefaultTimezone is the reference zone for resolving the game day.
// The server's local zone is never consulted.
const DefaultTimezone = "America/New_York"

// Config holds game-day resolution settings
type Config struct {
	// Timezone is the IANA name of the reference zone
	Timezone string

	// CutoffHour is the local hour before which the game day is still
	// the previous calendar date. 0 means the game day is simply the
	// local calendar date.
	CutoffHour int
}

// DefaultConfig returns the production game-day policy: midnight cutoff
// in the reference zone, so the game day equals the local calendar date.
func DefaultConfig() Config {
	return Config{
		Timezone:   DefaultTimezone,
		CutoffHour: 0,
	}
}

// Service resolves the current game day from an injected clock
type Service struct {
	clock      clock.Clock
	loc        *time.Location
	cutoffHour int
}

// New creates a game-day service for the configured zone and cutoff
func New(clk clock.Clock, cfg Config) (*Service, error) {
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.CutoffHour < 0 || cfg.CutoffHour > 23 {
		return nil, fmt.Errorf("cutoff hour %d out of range", cfg.CutoffHour)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	return &Service{
		clock:      clk,
		loc:        loc,
		cutoffHour: cfg.CutoffHour,
	}, nil
}

// Today returns the current game day. Before the cutoff hour the game
// day is still the previous local calendar date.
func (s *Service) Today() model.Day {
	now := s.clock.Now().In(s.loc)
	if now.Hour() < s.cutoffHour {
		now = now.AddDate(0, 0, -1)
	}
	return model.DayOf(now)
}

// Location returns the reference zone
func (s *Service) Location() *time.Location {
	return s.loc
}
