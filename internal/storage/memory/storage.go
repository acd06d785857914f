package memory

import (
	"context"
	"sync"

	"github.com/chronle/chronle/internal/model"
	"github.com/chronle/chronle/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	events            map[model.Day]*model.Event
	leaderboards      map[model.Day][]model.ScoreEntry
	playerRecords     map[string]*model.PlayerRecord
	players           map[model.PlayerID]*model.Player
	registeredPlayers map[model.PlayerID]*model.RegisteredPlayer
	usernameIndex     map[string]model.PlayerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		events:            make(map[model.Day]*model.Event),
		leaderboards:      make(map[model.Day][]model.ScoreEntry),
		playerRecords:     make(map[string]*model.PlayerRecord),
		players:           make(map[model.PlayerID]*model.Player),
		registeredPlayers: make(map[model.PlayerID]*model.RegisteredPlayer),
		usernameIndex:     make(map[string]model.PlayerID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Event operations

func (s *Storage) SaveEvent(ctx context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.Date] = event
	return nil
}

func (s *Storage) GetEvent(ctx context.Context, date model.Day) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	event, ok := s.events[date]
	if !ok {
		return nil, model.ErrEventNotFound
	}
	return event, nil
}

// Leaderboard operations

func (s *Storage) UpsertEntries(ctx context.Context, date model.Day, entries []model.ScoreEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]model.ScoreEntry, len(entries))
	copy(stored, entries)
	s.leaderboards[date] = stored
	return nil
}

func (s *Storage) GetEntries(ctx context.Context, date model.Day) ([]model.ScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.leaderboards[date]
	result := make([]model.ScoreEntry, len(entries))
	copy(result, entries)
	return result, nil
}

// Player record operations

func (s *Storage) SavePlayerRecord(ctx context.Context, record *model.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *record
	s.playerRecords[record.Username] = &stored
	return nil
}

func (s *Storage) GetPlayerRecord(ctx context.Context, username string) (*model.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.playerRecords[username]
	if !ok {
		return nil, model.ErrRecordNotFound
	}
	result := *record
	return &result, nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// Registered player operations

func (s *Storage) SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registeredPlayers[rp.PlayerID] = rp
	s.usernameIndex[rp.Username] = rp.PlayerID
	return nil
}

func (s *Storage) GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rp, ok := s.registeredPlayers[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return rp, nil
}

func (s *Storage) GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	playerID, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	rp, ok := s.registeredPlayers[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return rp, nil
}
