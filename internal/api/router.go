package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chronle/chronle/internal/api/handler"
	"github.com/chronle/chronle/internal/api/middleware"
	"github.com/chronle/chronle/internal/services/auth"
	"github.com/chronle/chronle/internal/services/game"
	"github.com/chronle/chronle/internal/services/gameday"
	"github.com/chronle/chronle/internal/services/leaderboard"
	"github.com/chronle/chronle/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	GameController     *game.Controller
	LeaderboardService *leaderboard.Service
	StatsService       *stats.Service
	GamedayService     *gameday.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService, cfg.StatsService)
	gameHandler := handler.NewGameHandler(cfg.GameController)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService, cfg.GamedayService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes (no auth required for creating players/logging in)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Protected player routes
	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)
	playerProtected.HandleFunc("/me/stats", playerHandler.GetMyStats).Methods(http.MethodGet)

	// Game routes; anonymous play is allowed, but a logged-in session
	// attaches the player's record to finished games
	gameRoutes := api.PathPrefix("/game").Subrouter()
	gameRoutes.Use(optionalAuthMiddleware)
	gameRoutes.HandleFunc("/start", gameHandler.Start).Methods(http.MethodPost)
	gameRoutes.HandleFunc("/guess", gameHandler.Guess).Methods(http.MethodPost)
	gameRoutes.HandleFunc("/finish", gameHandler.Finish).Methods(http.MethodPost)

	// Leaderboard (no auth)
	api.HandleFunc("/leaderboard", leaderboardHandler.Get).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
