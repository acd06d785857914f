package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chronle/chronle/internal/api/middleware"
	"github.com/chronle/chronle/internal/api/request"
	"github.com/chronle/chronle/internal/api/response"
	"github.com/chronle/chronle/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Start handles POST /api/v1/game/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.Start(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.StartGameFromResult(result))
}

// Guess handles POST /api/v1/game/guess
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.SessionID == "" {
		WriteError(w, NewInvalidRequestError("session_id is required"))
		return
	}
	if req.Guess == "" {
		WriteError(w, NewInvalidRequestError("guess is required"))
		return
	}

	result, err := h.gameController.SubmitGuess(r.Context(), game.SessionID(req.SessionID), req.Guess, req.ClueIndex)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessFromResult(result))
}

// Finish handles POST /api/v1/game/finish
func (h *GameHandler) Finish(w http.ResponseWriter, r *http.Request) {
	var req request.FinishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.SessionID == "" {
		WriteError(w, NewInvalidRequestError("session_id is required"))
		return
	}

	// Authenticated registered players get their streak record updated
	// and default the display name to their account name.
	name := req.Name
	username := ""
	if session, ok := middleware.GetSession(r.Context()); ok {
		username = session.Username
		if name == "" {
			name = session.Player.DisplayName
		}
	}

	result, err := h.gameController.Finish(r.Context(), game.SessionID(req.SessionID), name, username, req.Profile)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FinishGameFromResult(result))
}
