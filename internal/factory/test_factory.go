package factory

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/chronle/chronle/internal/dependencies/mocks"
	"github.com/chronle/chronle/internal/model"
	"github.com/chronle/chronle/internal/services/auth"
	"github.com/chronle/chronle/internal/services/gameday"
	"github.com/chronle/chronle/internal/services/matcher"
	"github.com/chronle/chronle/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The clock starts at 2024-06-01 16:00 UTC, which is noon in the default
// game timezone, so the game day is 2024-06-01.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 6, 1, 16, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app, err := newWithDependencies(
		store,
		mockClock,
		gameday.DefaultConfig(),
		matcher.DefaultConfig(),
		auth.DefaultConfig(),
		logger,
	)
	if err != nil {
		// DefaultConfig timezone is always loadable
		panic(err)
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// LoadTestEvents loads a small batch of events covering the mock clock's
// game day and its neighbours
func (t *TestApp) LoadTestEvents() error {
	events := []model.Event{
		{
			Date:     "2024-05-31",
			Year:     1927,
			Category: "Aviation",
			Clues: []string{
				"A lone pilot crossed an ocean without stopping",
				"The flight connected New York and Paris",
				"The aircraft was named the Spirit of St. Louis",
			},
			Answer:     "Charles Lindbergh's transatlantic flight",
			AltAnswers: []string{"Lindbergh crosses the Atlantic"},
			Summary:    "Charles Lindbergh completed the first solo nonstop transatlantic flight.",
		},
		{
			Date:       "2024-06-01",
			Year:       1969,
			Category:   "Space",
			Difficulty: "easy",
			Clues: []string{
				"A giant leap was taken far from home",
				"Two men walked where no one had before",
				"The Eagle has landed",
			},
			Answer:     "Apollo 11 moon landing",
			AltAnswers: []string{"moon landing", "first moon landing"},
			Summary:    "Apollo 11 landed the first humans on the Moon on July 20, 1969.",
		},
		{
			Date:     "2024-06-02",
			Year:     1989,
			Category: "Politics",
			Clues: []string{
				"A wall that divided a city began to fall",
				"Crowds gathered at checkpoints in a European capital",
			},
			Answer:     "Fall of the Berlin Wall",
			AltAnswers: []string{"Berlin Wall falls"},
			Summary:    "The Berlin Wall fell in November 1989, reuniting East and West Berlin.",
		},
	}
	return t.EventsService.Load(context.Background(), events)
}
