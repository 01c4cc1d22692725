package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/scorekeep/scorekeep/internal/model"
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

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.Session{
		ID:           "session-1",
		UserName:     "alice",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal(session.UserName, retrieved.UserName)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestGetSessionByUserName() {
	session := &model.Session{
		ID:           "session-1",
		UserName:     "alice",
		PasswordHash: "hash123",
	}
	_ = s.storage.SaveSession(s.ctx, session)

	retrieved, err := s.storage.GetSessionByUserName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("session-1", string(retrieved.ID))
}

func (s *StorageSuite) TestGetSessionByUserNameNotFound() {
	_, err := s.storage.GetSessionByUserName(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestGetSessionReturnsCopy() {
	session := &model.Session{ID: "session-1", UserName: "alice"}
	_ = s.storage.SaveSession(s.ctx, session)

	first, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	first.RefreshTokenHash = "mutated"

	second, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Empty(second.RefreshTokenHash)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:        "player-1",
		Name:      "Alice",
		CreatedAt: time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Name, retrieved.Name)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetPlayerByName() {
	player := &model.Player{ID: "player-1", Name: "Alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	retrieved, err := s.storage.GetPlayerByName(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal("player-1", string(retrieved.ID))
}

func (s *StorageSuite) TestRenameDropsStaleNameIndex() {
	player := &model.Player{ID: "player-1", Name: "Alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	player.Name = "Alicia"
	_ = s.storage.SavePlayer(s.ctx, player)

	_, err := s.storage.GetPlayerByName(s.ctx, "Alice")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	retrieved, err := s.storage.GetPlayerByName(s.ctx, "Alicia")
	s.Require().NoError(err)
	s.Equal("player-1", string(retrieved.ID))
}

func (s *StorageSuite) TestListPlayers() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", Name: "Alice"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-2", Name: "Bob"})

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := &model.Player{ID: "player-1", Name: "Alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	_, err = s.storage.GetPlayerByName(s.ctx, "Alice")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:         "game-1",
		PlayerID:   "player-1",
		Score:      42,
		AchievedAt: time.Now(),
	}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(42, retrieved.Score)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGames() {
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-1", PlayerID: "player-1"})
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-2", PlayerID: "player-2"})

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Len(games, 2)
}

func (s *StorageSuite) TestListGamesByPlayer() {
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-1", PlayerID: "player-1"})
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-2", PlayerID: "player-1"})
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-3", PlayerID: "player-2"})

	games, err := s.storage.ListGamesByPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Len(games, 2)
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-1", PlayerID: "player-1"})

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)

	games, err := s.storage.ListGamesByPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Empty(games)
}

func (s *StorageSuite) TestDeleteGamesByPlayer() {
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-1", PlayerID: "player-1"})
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-2", PlayerID: "player-1"})
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-3", PlayerID: "player-2"})

	err := s.storage.DeleteGamesByPlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Len(games, 1)
	s.Equal(model.GameID("game-3"), games[0].ID)
}
