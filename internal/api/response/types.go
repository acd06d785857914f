package response

import (
	"fmt"
	"time"

	"github.com/chronle/chronle/internal/model"
	"github.com/chronle/chronle/internal/services/auth"
	"github.com/chronle/chronle/internal/services/game"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// StartGame is the response for starting a game
type StartGame struct {
	SessionID  string `json:"session_id"`
	Date       string `json:"date"`
	Clue       string `json:"clue"`
	TotalClues int    `json:"total_clues"`
	Year       int    `json:"year"`
	Category   string `json:"category,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// StartGameFromResult converts a game.StartResult
func StartGameFromResult(r *game.StartResult) StartGame {
	return StartGame{
		SessionID:  string(r.SessionID),
		Date:       string(r.GameDate),
		Clue:       r.Clue,
		TotalClues: r.TotalClues,
		Year:       r.Year,
		Category:   r.Category,
		Difficulty: r.Difficulty,
	}
}

// Guess is the response for a submitted guess
type Guess struct {
	Correct   bool   `json:"correct"`
	ClueIndex int    `json:"clue_index"`
	NextClue  string `json:"next_clue,omitempty"`
	GameOver  bool   `json:"game_over,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Answer    string `json:"answer,omitempty"`
}

// GuessFromResult converts a game.GuessResult
func GuessFromResult(r *game.GuessResult) Guess {
	return Guess{
		Correct:   r.Correct,
		ClueIndex: r.ClueIndex,
		NextClue:  r.NextClue,
		GameOver:  r.GameOver,
		Summary:   r.Summary,
		Answer:    r.Answer,
	}
}

// ScoreEntry represents a leaderboard entry in API responses. The solve
// time is formatted for display here; internally it is milliseconds.
type ScoreEntry struct {
	Name       string `json:"name"`
	SolveTime  string `json:"solve_time"`
	CluesUsed  int    `json:"clues_used"`
	Date       string `json:"date"`
	Timestamp  string `json:"timestamp"`
	ProfileRef string `json:"profile,omitempty"`
}

// ScoreEntryFromModel converts a model.ScoreEntry
func ScoreEntryFromModel(e model.ScoreEntry) ScoreEntry {
	return ScoreEntry{
		Name:       e.Name,
		SolveTime:  FormatSolveTime(e.SolveTime()),
		CluesUsed:  e.CluesUsed,
		Date:       string(e.Date),
		Timestamp:  e.Timestamp.UTC().Format(time.RFC3339),
		ProfileRef: e.ProfileRef,
	}
}

// Leaderboard is the response for leaderboard queries
type Leaderboard struct {
	Date    string       `json:"date"`
	Entries []ScoreEntry `json:"entries"`
}

// LeaderboardFromModel converts a ranked entry list
func LeaderboardFromModel(date model.Day, entries []model.ScoreEntry) Leaderboard {
	result := Leaderboard{
		Date:    string(date),
		Entries: make([]ScoreEntry, 0, len(entries)),
	}
	for _, e := range entries {
		result.Entries = append(result.Entries, ScoreEntryFromModel(e))
	}
	return result
}

// FinishGame is the response for finishing a game
type FinishGame struct {
	Status string        `json:"status"`
	Entry  ScoreEntry    `json:"entry"`
	Rank   int           `json:"rank,omitempty"`
	Win    bool          `json:"win"`
	Record *PlayerRecord `json:"record,omitempty"`
}

// FinishGameFromResult converts a game.FinishResult
func FinishGameFromResult(r *game.FinishResult) FinishGame {
	resp := FinishGame{
		Status: "success",
		Entry:  ScoreEntryFromModel(r.Entry),
		Rank:   r.Rank,
		Win:    r.Win,
	}
	if r.Record != nil {
		record := PlayerRecordFromModel(r.Record)
		resp.Record = &record
	}
	return resp
}

// PlayerRecord represents a player's daily-game record in API responses
type PlayerRecord struct {
	Username       string `json:"username"`
	Streak         int    `json:"streak"`
	LongestStreak  int    `json:"longest_streak"`
	DaysPlayed     int    `json:"days_played"`
	TotalWins      int    `json:"total_wins"`
	TotalLosses    int    `json:"total_losses"`
	LastWinDate    string `json:"last_win_date,omitempty"`
	LastPlayedDate string `json:"last_played_date,omitempty"`
}

// PlayerRecordFromModel converts a model.PlayerRecord
func PlayerRecordFromModel(r *model.PlayerRecord) PlayerRecord {
	return PlayerRecord{
		Username:       r.Username,
		Streak:         r.Streak,
		LongestStreak:  r.LongestStreak,
		DaysPlayed:     r.DaysPlayed,
		TotalWins:      r.TotalWins,
		TotalLosses:    r.TotalLosses,
		LastWinDate:    string(r.LastWinDate),
		LastPlayedDate: string(r.LastPlayedDate),
	}
}

// FormatSolveTime renders a duration as HH:MM:SS.mmm for display
func FormatSolveTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	millis := d.Milliseconds()
	hours := millis / 3_600_000
	minutes := (millis % 3_600_000) / 60_000
	seconds := (millis % 60_000) / 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis%1000)
}
