package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/chronle/chronle/internal/dependencies/clock"
	"github.com/chronle/chronle/internal/services/auth"
	"github.com/chronle/chronle/internal/services/events"
	"github.com/chronle/chronle/internal/services/game"
	"github.com/chronle/chronle/internal/services/gameday"
	"github.com/chronle/chronle/internal/services/leaderboard"
	"github.com/chronle/chronle/internal/services/matcher"
	"github.com/chronle/chronle/internal/services/stats"
	"github.com/chronle/chronle/internal/storage"
	"github.com/chronle/chronle/internal/storage/memory"
	redisstorage "github.com/chronle/chronle/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	EventsService      *events.Service
	GamedayService     *gameday.Service
	MatcherService     *matcher.Service
	LeaderboardService *leaderboard.Service
	StatsService       *stats.Service
	GameController     *game.Controller
	AuthService        *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// GamedayConfig controls game-day rollover (optional)
	// If zero value, defaults to gameday.DefaultConfig()
	GamedayConfig gameday.Config
	// MatcherConfig controls guess checking (optional)
	// If zero value, defaults to matcher.DefaultConfig()
	MatcherConfig matcher.Config
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	gamedayCfg := cfg.GamedayConfig
	if gamedayCfg.Timezone == "" {
		gamedayCfg = gameday.DefaultConfig()
	}

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, gamedayCfg, cfg.MatcherConfig, authCfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	gamedayCfg gameday.Config,
	matcherCfg matcher.Config,
	authCfg auth.Config,
	logger *slog.Logger,
) (*App, error) {
	gamedayService, err := gameday.New(clk, gamedayCfg)
	if err != nil {
		return nil, err
	}

	eventsService := events.New(store, logger)
	matcherService := matcher.New(matcherCfg)
	leaderboardService := leaderboard.New(store, logger)
	statsService := stats.New(store, logger)
	gameController := game.NewController(store, gamedayService, matcherService, leaderboardService, statsService, clk, logger)
	authService := auth.New(store, statsService, clk, authCfg, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		EventsService:      eventsService,
		GamedayService:     gamedayService,
		MatcherService:     matcherService,
		LeaderboardService: leaderboardService,
		StatsService:       statsService,
		GameController:     gameController,
		AuthService:        authService,
	}, nil
}
