package leaderboard

import (
	"context"
	"log/slog"

	"github.com/chronle/chronle/internal/dependencies/keylock"
	"github.com/chronle/chronle/internal/model"
	"github.com/chronle/chronle/internal/storage"
)

// Service maintains per-day leaderboards on top of a LeaderboardStore.
// Writes for the same date are serialized so concurrent finishes cannot
// lose updates.
type Service struct {
	store  storage.LeaderboardStore
	locks  *keylock.KeyLock
	logger *slog.Logger
}

// New creates a new leaderboard service
func New(store storage.LeaderboardStore, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		locks:  keylock.New(),
		logger: logger,
	}
}

// RecordEntry appends a finished play to its day's leaderboard,
// re-ranks, applies the storage retention limit, and returns the
// entry's 1-based rank within the retained set. Rank 0 means the entry
// ranked below the retention limit and was dropped.
func (s *Service) RecordEntry(ctx context.Context, entry model.ScoreEntry) (int, error) {
	key := string(entry.Date)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	entries, err := s.store.GetEntries(ctx, entry.Date)
	if err != nil {
		return 0, err
	}

	retained := Retain(Rank(append(entries, entry)), StorageRetention)

	if err := s.store.UpsertEntries(ctx, entry.Date, retained); err != nil {
		return 0, err
	}

	rank := rankOf(retained, entry)

	s.logger.Info("leaderboard entry recorded",
		slog.String("date", string(entry.Date)),
		slog.String("name", entry.Name),
		slog.Int64("solve_time_ms", entry.SolveTimeMillis),
		slog.Int("clues_used", entry.CluesUsed),
		slog.Int("rank", rank),
	)

	return rank, nil
}

// GetLeaderboard returns the ranked entries for a date. A positive
// maxClues filters to entries that used at most that many clues before
// ranking; a positive limit truncates the result.
func (s *Service) GetLeaderboard(ctx context.Context, date model.Day, limit, maxClues int) ([]model.ScoreEntry, error) {
	entries, err := s.store.GetEntries(ctx, date)
	if err != nil {
		return nil, err
	}

	if maxClues > 0 {
		entries = FilterMaxClues(entries, maxClues)
	}

	ranked := Rank(entries)
	if limit > 0 {
		ranked = Retain(ranked, limit)
	}
	return ranked, nil
}

// GetPublicLeaderboard returns the published view: entries with at most
// PublicMaxClues clues, top PublicDisplayLimit only
func (s *Service) GetPublicLeaderboard(ctx context.Context, date model.Day) ([]model.ScoreEntry, error) {
	return s.GetLeaderboard(ctx, date, PublicDisplayLimit, PublicMaxClues)
}
