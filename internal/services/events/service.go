package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/chronle/chronle/internal/model"
	"github.com/chronle/chronle/internal/storage"
)

// Service loads and serves daily trivia events
type Service struct {
	store  storage.EventRepository
	logger *slog.Logger
}

// New creates a new events service
func New(store storage.EventRepository, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// LoadFromFile reads a JSON array of events and saves them to storage.
// Fails on malformed dates, missing answers or clueless events, and on
// two events sharing a date.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read events file: %w", err)
	}

	var events []model.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return fmt.Errorf("parse events file: %w", err)
	}

	return s.Load(ctx, events)
}

// Load validates and saves a batch of events
func (s *Service) Load(ctx context.Context, events []model.Event) error {
	seen := make(map[model.Day]bool, len(events))

	for i := range events {
		event := &events[i]
		if err := validate(event); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		if seen[event.Date] {
			return fmt.Errorf("event %d: duplicate date %s", i, event.Date)
		}
		seen[event.Date] = true

		if err := s.store.SaveEvent(ctx, event); err != nil {
			return fmt.Errorf("save event %s: %w", event.Date, err)
		}
	}

	s.logger.Info("events loaded", slog.Int("count", len(events)))
	return nil
}

// GetForDay returns the event for the given game day
func (s *Service) GetForDay(ctx context.Context, day model.Day) (*model.Event, error) {
	return s.store.GetEvent(ctx, day)
}

func validate(event *model.Event) error {
	if _, err := model.ParseDay(string(event.Date)); err != nil {
		return err
	}
	if event.Answer == "" {
		return fmt.Errorf("date %s: missing answer", event.Date)
	}
	if len(event.Clues) == 0 {
		return fmt.Errorf("date %s: no clues", event.Date)
	}
	for i, clue := range event.Clues {
		if clue == "" {
			return fmt.Errorf("date %s: empty clue %d", event.Date, i)
		}
	}
	return nil
}
