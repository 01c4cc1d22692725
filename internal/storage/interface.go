package storage

import (
	"context"

	"github.com/scorekeep/scorekeep/internal/model"
)

// Storage defines the interface for data persistence.
// It is the single source of truth; services hold no state of their own.
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	GetSessionByUserName(ctx context.Context, userName string) (*model.Session, error)

	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByName(ctx context.Context, name string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	ListGamesByPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	DeleteGamesByPlayer(ctx context.Context, playerID model.PlayerID) error
}
