package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/chronle/chronle/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Event tests

func (s *StorageSuite) TestSaveAndGetEvent() {
	event := &model.Event{
		Date:       "2024-06-01",
		Year:       1969,
		Clues:      []string{"c1", "c2", "c3"},
		Answer:     "Apollo 11",
		AltAnswers: []string{"Apollo11"},
		Summary:    "First crewed Moon landing.",
	}

	err := s.storage.SaveEvent(s.ctx, event)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetEvent(s.ctx, "2024-06-01")
	s.Require().NoError(err)
	s.Equal(event.Answer, retrieved.Answer)
	s.Equal(event.Clues, retrieved.Clues)
}

func (s *StorageSuite) TestGetEventNotFound() {
	_, err := s.storage.GetEvent(s.ctx, "1999-01-01")
	s.ErrorIs(err, model.ErrEventNotFound)
}

func (s *StorageSuite) TestSaveEventReplacesSameDate() {
	first := &model.Event{Date: "2024-06-01", Answer: "A", Clues: []string{"x"}}
	second := &model.Event{Date: "2024-06-01", Answer: "B", Clues: []string{"y"}}

	s.Require().NoError(s.storage.SaveEvent(s.ctx, first))
	s.Require().NoError(s.storage.SaveEvent(s.ctx, second))

	retrieved, err := s.storage.GetEvent(s.ctx, "2024-06-01")
	s.Require().NoError(err)
	s.Equal("B", retrieved.Answer)
}

// Leaderboard tests

func (s *StorageSuite) TestGetEntriesEmpty() {
	entries, err := s.storage.GetEntries(s.ctx, "2024-06-01")
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *StorageSuite) TestUpsertAndGetEntries() {
	entries := []model.ScoreEntry{
		{Name: "Ada", SolveTimeMillis: 9500, CluesUsed: 1, Date: "2024-06-01", Timestamp: time.Now().UTC()},
		{Name: "Bob", SolveTimeMillis: 10000, CluesUsed: 2, Date: "2024-06-01", Timestamp: time.Now().UTC()},
	}

	err := s.storage.UpsertEntries(s.ctx, "2024-06-01", entries)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetEntries(s.ctx, "2024-06-01")
	s.Require().NoError(err)
	s.Len(retrieved, 2)
	s.Equal("Ada", retrieved[0].Name)
}

func (s *StorageSuite) TestUpsertEntriesIsolatedByDate() {
	entry := model.ScoreEntry{Name: "Ada", SolveTimeMillis: 9500, CluesUsed: 1, Date: "2024-06-01"}
	s.Require().NoError(s.storage.UpsertEntries(s.ctx, "2024-06-01", []model.ScoreEntry{entry}))

	other, err := s.storage.GetEntries(s.ctx, "2024-06-02")
	s.Require().NoError(err)
	s.Empty(other)
}

func (s *StorageSuite) TestGetEntriesReturnsCopy() {
	entry := model.ScoreEntry{Name: "Ada", SolveTimeMillis: 9500, CluesUsed: 1, Date: "2024-06-01"}
	s.Require().NoError(s.storage.UpsertEntries(s.ctx, "2024-06-01", []model.ScoreEntry{entry}))

	retrieved, err := s.storage.GetEntries(s.ctx, "2024-06-01")
	s.Require().NoError(err)
	retrieved[0].Name = "Mallory"

	again, err := s.storage.GetEntries(s.ctx, "2024-06-01")
	s.Require().NoError(err)
	s.Equal("Ada", again[0].Name)
}

// Player record tests

func (s *StorageSuite) TestSaveAndGetPlayerRecord() {
	record := &model.PlayerRecord{
		Username:       "grace",
		Streak:         3,
		LongestStreak:  5,
		DaysPlayed:     10,
		TotalWins:      7,
		TotalLosses:    3,
		LastWinDate:    "2024-06-01",
		LastPlayedDate: "2024-06-01",
	}

	err := s.storage.SavePlayerRecord(s.ctx, record)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayerRecord(s.ctx, "grace")
	s.Require().NoError(err)
	s.Equal(record.Streak, retrieved.Streak)
	s.Equal(record.LastWinDate, retrieved.LastWinDate)
}

func (s *StorageSuite) TestGetPlayerRecordNotFound() {
	_, err := s.storage.GetPlayerRecord(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrRecordNotFound)
}

func (s *StorageSuite) TestGetPlayerRecordReturnsCopy() {
	record := &model.PlayerRecord{Username: "grace", Streak: 1}
	s.Require().NoError(s.storage.SavePlayerRecord(s.ctx, record))

	retrieved, err := s.storage.GetPlayerRecord(s.ctx, "grace")
	s.Require().NoError(err)
	retrieved.Streak = 99

	again, err := s.storage.GetPlayerRecord(s.ctx, "grace")
	s.Require().NoError(err)
	s.Equal(1, again.Streak)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "player-1",
		DisplayName: "Alice",
		IsGuest:     false,
		CreatedAt:   time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := &model.Player{ID: "player-1", DisplayName: "Alice"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))
	s.Require().NoError(s.storage.DeletePlayer(s.ctx, "player-1"))

	_, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestRegisteredPlayerLookupByUsername() {
	rp := &model.RegisteredPlayer{
		PlayerID:     "player-1",
		Username:     "grace",
		PasswordHash: "hash",
	}
	s.Require().NoError(s.storage.SaveRegisteredPlayer(s.ctx, rp))

	retrieved, err := s.storage.GetRegisteredPlayerByUsername(s.ctx, "grace")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), retrieved.PlayerID)

	_, err = s.storage.GetRegisteredPlayerByUsername(s.ctx, "hopper")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
