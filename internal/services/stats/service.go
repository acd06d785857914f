package stats

import (
	"context"
	"errors"
	"log/slog"

	"github.com/chronle/chronle/internal/dependencies/keylock"
	"github.com/chronle/chronle/internal/model"
	"github.com/chronle/chronle/internal/storage"
)

// Service applies daily game outcomes to persistent player records.
// Updates for the same username are serialized so concurrent finishes
// cannot lose counter increments.
type Service struct {
	store  storage.PlayerRecordStore
	locks  *keylock.KeyLock
	logger *slog.Logger
}

// New creates a new stats service
func New(store storage.PlayerRecordStore, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		locks:  keylock.New(),
		logger: logger,
	}
}

// CreateRecord creates an empty record for a newly registered player
func (s *Service) CreateRecord(ctx context.Context, username string) (*model.PlayerRecord, error) {
	s.locks.Lock(username)
	defer s.locks.Unlock(username)

	_, err := s.store.GetPlayerRecord(ctx, username)
	if err == nil {
		return nil, model.ErrRecordExists
	}
	if !errors.Is(err, model.ErrRecordNotFound) {
		return nil, err
	}

	record := &model.PlayerRecord{Username: username}
	if err := s.store.SavePlayerRecord(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetRecord returns a player's record
func (s *Service) GetRecord(ctx context.Context, username string) (*model.PlayerRecord, error) {
	return s.store.GetPlayerRecord(ctx, username)
}

// ApplyResult applies a day's win or loss to the player's record and
// returns the updated record.
//
// A result for a day the player already has recorded is a no-op: the
// unchanged record is returned and nothing is written. A result for a
// day before the last played day is rejected with ErrInvalidResult.
// Nothing is persisted when validation fails.
func (s *Service) ApplyResult(ctx context.Context, username string, gameDay model.Day, win bool) (*model.PlayerRecord, error) {
	s.locks.Lock(username)
	defer s.locks.Unlock(username)

	record, err := s.store.GetPlayerRecord(ctx, username)
	if err != nil {
		return nil, err
	}

	updated, changed, err := applyOutcome(*record, gameDay, win)
	if err != nil {
		s.logger.Warn("rejected game result",
			slog.String("username", username),
			slog.String("game_day", string(gameDay)),
			slog.String("last_played", string(record.LastPlayedDate)),
		)
		return nil, err
	}
	if !changed {
		s.logger.Info("repeat result for already-played day ignored",
			slog.String("username", username),
			slog.String("game_day", string(gameDay)),
		)
		return record, nil
	}

	if err := s.store.SavePlayerRecord(ctx, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("player record updated",
		slog.String("username", username),
		slog.String("game_day", string(gameDay)),
		slog.Bool("win", win),
		slog.Int("streak", updated.Streak),
	)

	return &updated, nil
}

// applyOutcome is the pure streak state machine. It returns the updated
// record and whether anything changed.
func applyOutcome(record model.PlayerRecord, gameDay model.Day, win bool) (model.PlayerRecord, bool, error) {
	if !record.LastPlayedDate.IsZero() {
		if gameDay.Before(record.LastPlayedDate) {
			return record, false, model.ErrInvalidResult
		}
		if gameDay == record.LastPlayedDate {
			// Same-day resubmission: fully idempotent, counters untouched
			return record, false, nil
		}
	}

	record.DaysPlayed++

	if !win {
		record.TotalLosses++
		record.Streak = 0
		record.LastPlayedDate = gameDay
		return record, true, nil
	}

	record.TotalWins++

	switch {
	case record.LastWinDate.IsZero():
		record.Streak = 1
	default:
		switch d := gameDay.DaysSince(record.LastWinDate); {
		case d == 1:
			record.Streak++
		case d > 1:
			record.Streak = 1
		}
		// d == 0 cannot follow the same-day guard above; the streak is
		// left as-is if it ever does
	}

	if record.Streak > record.LongestStreak {
		record.LongestStreak = record.Streak
	}
	record.LastWinDate = gameDay
	record.LastPlayedDate = gameDay

	return record, true, nil
}
