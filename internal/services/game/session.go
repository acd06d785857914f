package game

import (
	"time"

	"github.com/chronle/chronle/internal/model"
)

// SessionID uniquely identifies an in-progress play-through
type SessionID string

// SessionState represents the phase of a play-through
type SessionState string

const (
	SessionStateStarted   SessionState = "started"   // Guess loop in progress
	SessionStateSolved    SessionState = "solved"    // Correct guess submitted
	SessionStateExhausted SessionState = "exhausted" // All clues used without a match
)

// Session is one player's in-progress play of the current event.
// Sessions live only in the controller's session store: allocated on
// start, freed on finish or expiry. The game date is bound at start, so
// a session that straddles midnight keeps its original event.
type Session struct {
	ID        SessionID
	GameDate  model.Day
	StartedAt time.Time
	CluesUsed int
	State     SessionState
}

// Terminal reports whether the guess loop has ended
func (s *Session) Terminal() bool {
	return s.State == SessionStateSolved || s.State == SessionStateExhausted
}
