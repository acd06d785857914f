package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chronle/chronle/internal/dependencies/clock"
	"github.com/chronle/chronle/internal/model"
	"github.com/chronle/chronle/internal/services/gameday"
	"github.com/chronle/chronle/internal/services/leaderboard"
	"github.com/chronle/chronle/internal/services/matcher"
	"github.com/chronle/chronle/internal/services/stats"
	"github.com/chronle/chronle/internal/storage"
)

// DefaultSessionTTL bounds how long an abandoned session is kept before
// the sweeper frees it
const DefaultSessionTTL = 2 * time.Hour

// Controller orchestrates a single play-through: start, guess loop,
// finish. It owns the session store; sessions are created on start and
// destroyed on finish.
type Controller struct {
	events      storage.EventRepository
	gameday     *gameday.Service
	matcher     *matcher.Service
	leaderboard *leaderboard.Service
	stats       *stats.Service
	clock       clock.Clock
	logger      *slog.Logger

	mu         sync.RWMutex
	sessions   map[SessionID]*Session
	sessionTTL time.Duration
}

// NewController creates a new game session controller
func NewController(
	events storage.EventRepository,
	gamedayService *gameday.Service,
	matcherService *matcher.Service,
	leaderboardService *leaderboard.Service,
	statsService *stats.Service,
	clk clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		events:      events,
		gameday:     gamedayService,
		matcher:     matcherService,
		leaderboard: leaderboardService,
		stats:       statsService,
		clock:       clk,
		logger:      logger,
		sessions:    make(map[SessionID]*Session),
		sessionTTL:  DefaultSessionTTL,
	}
}

// StartResult is returned when a play-through begins
type StartResult struct {
	SessionID  SessionID
	GameDate   model.Day
	Clue       string
	TotalClues int
	Year       int
	Category   string
	Difficulty string
}

// GuessResult is returned for each submitted guess
type GuessResult struct {
	Correct   bool
	ClueIndex int
	NextClue  string // set when incorrect and clues remain
	GameOver  bool   // set when incorrect and no clues remain
	Summary   string // set on solve or game over
	Answer    string // set on solve or game over
}

// FinishResult is returned when a play-through is recorded
type FinishResult struct {
	Entry  model.ScoreEntry
	Rank   int // 1-based within the retained set, 0 if dropped
	Win    bool
	Record *model.PlayerRecord // nil for guest play
}

// Start resolves today's event, creates a session and returns the
// first clue. Fails with ErrNoEventToday when no event exists for the
// current game day.
func (c *Controller) Start(ctx context.Context) (*StartResult, error) {
	day := c.gameday.Today()

	event, err := c.events.GetEvent(ctx, day)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			c.logger.Warn("no event for game day", slog.String("game_day", string(day)))
			return nil, model.ErrNoEventToday
		}
		return nil, err
	}
	if event.TotalClues() == 0 {
		return nil, model.ErrNoEventToday
	}

	session := &Session{
		ID:        SessionID(uuid.NewString()),
		GameDate:  day,
		StartedAt: c.clock.Now(),
		State:     SessionStateStarted,
	}

	c.mu.Lock()
	c.sessions[session.ID] = session
	c.mu.Unlock()

	c.logger.Info("game started",
		slog.String("session_id", string(session.ID)),
		slog.String("game_day", string(day)),
	)

	return &StartResult{
		SessionID:  session.ID,
		GameDate:   day,
		Clue:       event.Clues[0],
		TotalClues: event.TotalClues(),
		Year:       event.Year,
		Category:   event.Category,
		Difficulty: event.Difficulty,
	}, nil
}

// SubmitGuess evaluates a guess against the session's event. An
// incorrect guess returns the next clue while clues remain; once the
// last clue is spent the session is exhausted and the answer revealed.
func (c *Controller) SubmitGuess(ctx context.Context, sessionID SessionID, guess string, clueIndex int) (*GuessResult, error) {
	c.mu.RLock()
	session, ok := c.sessions[sessionID]
	c.mu.RUnlock()
	if !ok {
		return nil, model.ErrInvalidSession
	}
	if session.Terminal() {
		// Guess loop already ended; only finish remains
		return nil, model.ErrInvalidSession
	}

	event, err := c.events.GetEvent(ctx, session.GameDate)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			return nil, model.ErrNoEventToday
		}
		return nil, err
	}

	if clueIndex < 0 || clueIndex >= event.TotalClues() {
		return nil, model.ErrInvalidClueIndex
	}

	correct := c.matcher.Matches(guess, event.Answer, event.AltAnswers)

	c.mu.Lock()
	// cluesUsed is monotonically non-decreasing until finish
	if used := clueIndex + 1; used > session.CluesUsed {
		session.CluesUsed = used
	}
	switch {
	case correct:
		session.State = SessionStateSolved
	case clueIndex+1 >= event.TotalClues():
		session.State = SessionStateExhausted
	}
	c.mu.Unlock()

	result := &GuessResult{
		Correct:   correct,
		ClueIndex: clueIndex,
	}

	switch {
	case correct:
		result.Summary = event.Summary
		result.Answer = event.Answer
	case clueIndex+1 < event.TotalClues():
		result.NextClue = event.Clues[clueIndex+1]
	default:
		result.GameOver = true
		result.Summary = event.Summary
		result.Answer = event.Answer
	}

	return result, nil
}

// Finish records the play-through on its day's leaderboard and, for a
// registered player, applies the result to their record. The session is
// destroyed; a second finish for the same session fails with
// ErrInvalidSession.
func (c *Controller) Finish(ctx context.Context, sessionID SessionID, playerName, username, profileRef string) (*FinishResult, error) {
	// Claim the session atomically so only one finish can succeed
	c.mu.Lock()
	session, ok := c.sessions[sessionID]
	if ok {
		delete(c.sessions, sessionID)
	}
	c.mu.Unlock()
	if !ok {
		return nil, model.ErrInvalidSession
	}

	if playerName == "" {
		playerName = "Anonymous"
	}

	now := c.clock.Now()
	win := session.State == SessionStateSolved

	entry := model.ScoreEntry{
		Name:            playerName,
		SolveTimeMillis: now.Sub(session.StartedAt).Milliseconds(),
		CluesUsed:       session.CluesUsed,
		Date:            session.GameDate,
		Timestamp:       now.UTC(),
		ProfileRef:      profileRef,
	}

	rank, err := c.leaderboard.RecordEntry(ctx, entry)
	if err != nil {
		// Storage failure: restore the session so the finish can be retried
		c.mu.Lock()
		c.sessions[sessionID] = session
		c.mu.Unlock()
		return nil, err
	}

	result := &FinishResult{
		Entry: entry,
		Rank:  rank,
		Win:   win,
	}

	if username != "" {
		record, err := c.stats.ApplyResult(ctx, username, session.GameDate, win)
		if err != nil {
			c.logger.Error("failed to apply result to player record",
				slog.String("username", username),
				slog.String("game_day", string(session.GameDate)),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		result.Record = record
	}

	c.logger.Info("game finished",
		slog.String("session_id", string(sessionID)),
		slog.String("game_day", string(session.GameDate)),
		slog.Bool("win", win),
		slog.Int("rank", rank),
	)

	return result, nil
}

// GetSession returns a snapshot of a live session
func (c *Controller) GetSession(sessionID SessionID) (*Session, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	session, ok := c.sessions[sessionID]
	if !ok {
		return nil, model.ErrInvalidSession
	}
	snapshot := *session
	return &snapshot, nil
}

// CleanExpiredSessions frees abandoned sessions (call periodically)
func (c *Controller) CleanExpiredSessions() int {
	cutoff := c.clock.Now().Add(-c.sessionTTL)

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for id, session := range c.sessions {
		if session.StartedAt.Before(cutoff) {
			delete(c.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		c.logger.Info("expired sessions cleaned", slog.Int("count", removed))
	}
	return removed
}
