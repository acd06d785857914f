package model

// Event is the trivia item for a single game day. At most one event
// exists per date; events are immutable once loaded.
type Event struct {
	Date       Day      `json:"date"`
	Year       int      `json:"year"`
	Category   string   `json:"category,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Clues      []string `json:"clues"`
	Answer     string   `json:"answer"`
	AltAnswers []string `json:"alt_answers"`
	Summary    string   `json:"summary"`
}

// TotalClues returns the number of clues for the event
func (e *Event) TotalClues() int {
	return len(e.Clues)
}

// Clue returns the clue at the given index, or false if out of range
func (e *Event) Clue(i int) (string, bool) {
	if i < 0 || i >= len(e.Clues) {
		return "", false
	}
	return e.Clues[i], true
}
