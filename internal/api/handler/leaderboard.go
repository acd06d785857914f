package handler

import (
	"net/http"
	"strconv"

	"github.com/chronle/chronle/internal/api/response"
	"github.com/chronle/chronle/internal/model"
	"github.com/chronle/chronle/internal/services/gameday"
	"github.com/chronle/chronle/internal/services/leaderboard"
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	leaderboardService *leaderboard.Service
	gamedayService     *gameday.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *leaderboard.Service, gamedayService *gameday.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
		gamedayService:     gamedayService,
	}
}

// Get handles GET /api/v1/leaderboard
//
// Query parameters: date (YYYY-MM-DD, defaults to the current game day),
// limit and max_clues (default to the public display policy).
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	date := h.gamedayService.Today()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := model.ParseDay(raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError("date must be formatted as YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	limit := leaderboard.PublicDisplayLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	maxClues := leaderboard.PublicMaxClues
	if raw := r.URL.Query().Get("max_clues"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			WriteError(w, NewInvalidRequestError("max_clues must be a non-negative integer"))
			return
		}
		maxClues = parsed
	}

	entries, err := h.leaderboardService.GetLeaderboard(r.Context(), date, limit, maxClues)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(date, entries))
}
