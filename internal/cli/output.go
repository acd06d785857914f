package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case StartResult:
		o.printStartResult(v)
	case GuessResult:
		o.printGuessResult(v)
	case FinishResult:
		o.printFinishResult(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case PlayerRecord:
		o.printPlayerRecord(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// StartResult response type
type StartResult struct {
	SessionID  string `json:"session_id"`
	Date       string `json:"date"`
	Clue       string `json:"clue"`
	TotalClues int    `json:"total_clues"`
	Year       int    `json:"year"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

// GuessResult response type
type GuessResult struct {
	Correct   bool   `json:"correct"`
	ClueIndex int    `json:"clue_index"`
	NextClue  string `json:"next_clue"`
	GameOver  bool   `json:"game_over"`
	Summary   string `json:"summary"`
	Answer    string `json:"answer"`
}

// ScoreEntry response type
type ScoreEntry struct {
	Name      string `json:"name"`
	SolveTime string `json:"solve_time"`
	CluesUsed int    `json:"clues_used"`
	Date      string `json:"date"`
}

// FinishResult response type
type FinishResult struct {
	Status string        `json:"status"`
	Entry  ScoreEntry    `json:"entry"`
	Rank   int           `json:"rank"`
	Win    bool          `json:"win"`
	Record *PlayerRecord `json:"record"`
}

// Leaderboard response type
type Leaderboard struct {
	Date    string       `json:"date"`
	Entries []ScoreEntry `json:"entries"`
}

// PlayerRecord response type
type PlayerRecord struct {
	Username       string `json:"username"`
	Streak         int    `json:"streak"`
	LongestStreak  int    `json:"longest_streak"`
	DaysPlayed     int    `json:"days_played"`
	TotalWins      int    `json:"total_wins"`
	TotalLosses    int    `json:"total_losses"`
	LastWinDate    string `json:"last_win_date"`
	LastPlayedDate string `json:"last_played_date"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("ID:           %s\n", p.ID)
	fmt.Printf("Display Name: %s\n", p.DisplayName)
	fmt.Printf("Guest:        %t\n", p.IsGuest)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token:        %s\n", a.SessionToken)
}

func (o *Output) printStartResult(s StartResult) {
	fmt.Printf("Game for %s\n", s.Date)
	fmt.Printf("Year: %d", s.Year)
	if s.Category != "" {
		fmt.Printf("  Category: %s", s.Category)
	}
	if s.Difficulty != "" {
		fmt.Printf("  Difficulty: %s", s.Difficulty)
	}
	fmt.Println()
	fmt.Printf("Clue 1 of %d: %s\n", s.TotalClues, s.Clue)
	fmt.Printf("Session: %s\n", s.SessionID)
}

func (o *Output) printGuessResult(g GuessResult) {
	if g.Correct {
		fmt.Printf("Correct! The answer was: %s\n", g.Answer)
		if g.Summary != "" {
			fmt.Println(g.Summary)
		}
		return
	}
	if g.GameOver {
		fmt.Printf("Game over. The answer was: %s\n", g.Answer)
		if g.Summary != "" {
			fmt.Println(g.Summary)
		}
		return
	}
	fmt.Printf("Not quite. Clue %d: %s\n", g.ClueIndex+2, g.NextClue)
}

func (o *Output) printFinishResult(f FinishResult) {
	if f.Win {
		fmt.Printf("%s solved it in %s using %d clue(s)\n", f.Entry.Name, f.Entry.SolveTime, f.Entry.CluesUsed)
	} else {
		fmt.Printf("%s did not solve it today\n", f.Entry.Name)
	}
	if f.Rank > 0 {
		fmt.Printf("Rank: #%d\n", f.Rank)
	}
	if f.Record != nil {
		fmt.Println()
		o.printPlayerRecord(*f.Record)
	}
}

func (o *Output) printLeaderboard(l Leaderboard) {
	fmt.Printf("Leaderboard for %s\n", l.Date)
	if len(l.Entries) == 0 {
		fmt.Println("No entries yet")
		return
	}
	for i, e := range l.Entries {
		fmt.Printf("%3d. %-20s %s  (%d clues)\n", i+1, e.Name, e.SolveTime, e.CluesUsed)
	}
}

func (o *Output) printPlayerRecord(r PlayerRecord) {
	fmt.Printf("Player:         %s\n", r.Username)
	fmt.Printf("Streak:         %d (longest %d)\n", r.Streak, r.LongestStreak)
	fmt.Printf("Days Played:    %d\n", r.DaysPlayed)
	fmt.Printf("Wins / Losses:  %d / %d\n", r.TotalWins, r.TotalLosses)
	if r.LastWinDate != "" {
		fmt.Printf("Last Win:       %s\n", r.LastWinDate)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
