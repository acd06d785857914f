package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	SessionID string `json:"session_id"`
	Guess     string `json:"guess"`
	ClueIndex int    `json:"clue_index"`
}

// FinishRequest is the request body for finishing a game
type FinishRequest struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name,omitempty"`
	Profile   string `json:"profile,omitempty"`
}
