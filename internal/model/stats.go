package model

// PlayerRecord is a registered player's cumulative daily-game record,
// keyed by username.
//
// Invariants:
//   - TotalWins + TotalLosses == DaysPlayed
//   - Streak <= LongestStreak
//   - Streak > 0 implies LastWinDate is set and is the most recent
//     winning game day
type PlayerRecord struct {
	Username       string `json:"username"`
	Streak         int    `json:"streak"`
	LongestStreak  int    `json:"longest_streak"`
	DaysPlayed     int    `json:"days_played"`
	TotalWins      int    `json:"total_wins"`
	TotalLosses    int    `json:"total_losses"`
	LastWinDate    Day    `json:"last_win_date,omitempty"`
	LastPlayedDate Day    `json:"last_played_date,omitempty"`
}
