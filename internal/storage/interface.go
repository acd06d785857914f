package storage

import (
	"context"

	"github.com/chronle/chronle/internal/model"
)

// EventRepository supplies the event record for a given game day
type EventRepository interface {
	SaveEvent(ctx context.Context, event *model.Event) error
	GetEvent(ctx context.Context, date model.Day) (*model.Event, error)
}

// LeaderboardStore persists per-day score entries. UpsertEntries
// replaces the full entry set for the date; callers serialize
// read-modify-write cycles per date.
type LeaderboardStore interface {
	UpsertEntries(ctx context.Context, date model.Day, entries []model.ScoreEntry) error
	GetEntries(ctx context.Context, date model.Day) ([]model.ScoreEntry, error)
}

// PlayerRecordStore persists cumulative player records keyed by username
type PlayerRecordStore interface {
	SavePlayerRecord(ctx context.Context, record *model.PlayerRecord) error
	GetPlayerRecord(ctx context.Context, username string) (*model.PlayerRecord, error)
}

// PlayerStore persists player identities and credentials
type PlayerStore interface {
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error
	GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)
}

// Storage is the full capability set a backend provides. Services
// accept only the narrow interfaces they need.
type Storage interface {
	EventRepository
	LeaderboardStore
	PlayerRecordStore
	PlayerStore
}
