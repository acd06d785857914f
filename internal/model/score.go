package model

import "time"

// ScoreEntry is one finished play-through recorded on a day's
// leaderboard. Entries are immutable once stored. Solve time is held as
// milliseconds so ordering never depends on a formatted representation.
type ScoreEntry struct {
	Name            string    `json:"name"`
	SolveTimeMillis int64     `json:"solve_time_ms"`
	CluesUsed       int       `json:"clues_used"`
	Date            Day       `json:"date"`
	Timestamp       time.Time `json:"timestamp"`
	ProfileRef      string    `json:"profile_ref,omitempty"`
}

// SolveTime returns the elapsed solve time as a duration
func (e ScoreEntry) SolveTime() time.Duration {
	return time.Duration(e.SolveTimeMillis) * time.Millisecond
}

// Same reports whether two entries describe the same submission.
// Uniqueness is not enforced by storage, so identity is the full tuple.
func (e ScoreEntry) Same(other ScoreEntry) bool {
	return e.Name == other.Name &&
		e.SolveTimeMillis == other.SolveTimeMillis &&
		e.CluesUsed == other.CluesUsed &&
		e.Date == other.Date &&
		e.Timestamp.Equal(other.Timestamp)
}
