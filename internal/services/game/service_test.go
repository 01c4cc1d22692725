package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/scorekeep/scorekeep/internal/dependencies/mocks"
	"github.com/scorekeep/scorekeep/internal/model"
	"github.com/scorekeep/scorekeep/internal/storage/memory"
	"github.com/scorekeep/scorekeep/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context

	alice *model.Player
	bob   *model.Player
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()

	s.alice = &model.Player{ID: "player-alice", Name: "Alice", CreatedAt: s.clock.Now()}
	s.bob = &model.Player{ID: "player-bob", Name: "Bob", CreatedAt: s.clock.Now()}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.alice))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.bob))
}

// Record tests

func (s *ServiceSuite) TestRecordSucceeds() {
	game, err := s.service.Record(s.ctx, s.alice.ID, 42)
	s.Require().NoError(err)

	s.NotEmpty(game.ID)
	s.Equal(s.alice.ID, game.PlayerID)
	s.Equal(42, game.Score)
	s.Equal(s.clock.Now(), game.AchievedAt)
}

func (s *ServiceSuite) TestRecordZeroScore() {
	game, err := s.service.Record(s.ctx, s.alice.ID, 0)
	s.Require().NoError(err)
	s.Equal(0, game.Score)
}

func (s *ServiceSuite) TestRecordFailsForUnknownPlayer() {
	_, err := s.service.Record(s.ctx, model.PlayerID("nonexistent"), 42)
	s.ErrorIs(err, model.ErrUnknownPlayer)
}

// List tests

func (s *ServiceSuite) TestListReturnsGamesWithPlayers() {
	_, err := s.service.Record(s.ctx, s.alice.ID, 10)
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	_, err = s.service.Record(s.ctx, s.bob.ID, 20)
	s.Require().NoError(err)

	games, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)

	// Most recent first
	s.Equal("Bob", games[0].Player.Name)
	s.Equal(20, games[0].Game.Score)
	s.Equal("Alice", games[1].Player.Name)
}

func (s *ServiceSuite) TestListEmpty() {
	games, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

// ListByPlayer tests

func (s *ServiceSuite) TestListByPlayerFiltersGames() {
	_, err := s.service.Record(s.ctx, s.alice.ID, 10)
	s.Require().NoError(err)
	_, err = s.service.Record(s.ctx, s.alice.ID, 20)
	s.Require().NoError(err)
	_, err = s.service.Record(s.ctx, s.bob.ID, 30)
	s.Require().NoError(err)

	games, err := s.service.ListByPlayer(s.ctx, s.alice.ID)
	s.Require().NoError(err)
	s.Len(games, 2)
}

func (s *ServiceSuite) TestListByPlayerFailsForUnknownPlayer() {
	_, err := s.service.ListByPlayer(s.ctx, model.PlayerID("nonexistent"))
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Get tests

func (s *ServiceSuite) TestGetReturnsGameWithPlayer() {
	recorded, err := s.service.Record(s.ctx, s.alice.ID, 42)
	s.Require().NoError(err)

	got, err := s.service.Get(s.ctx, recorded.ID)
	s.Require().NoError(err)
	s.Equal(42, got.Game.Score)
	s.Equal("Alice", got.Player.Name)
}

func (s *ServiceSuite) TestGetFailsForUnknownGame() {
	_, err := s.service.Get(s.ctx, model.GameID("nonexistent"))
	s.ErrorIs(err, model.ErrGameNotFound)
}

// TopScores tests

func (s *ServiceSuite) TestTopScoresUsesBestScorePerPlayer() {
	_, err := s.service.Record(s.ctx, s.alice.ID, 10)
	s.Require().NoError(err)
	_, err = s.service.Record(s.ctx, s.alice.ID, 50)
	s.Require().NoError(err)
	_, err = s.service.Record(s.ctx, s.bob.ID, 30)
	s.Require().NoError(err)

	entries, err := s.service.TopScores(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)

	s.Equal("Alice", entries[0].PlayerName)
	s.Equal(50, entries[0].Score)
	s.Equal("Bob", entries[1].PlayerName)
	s.Equal(30, entries[1].Score)
}

func (s *ServiceSuite) TestTopScoresHonoursLimit() {
	_, err := s.service.Record(s.ctx, s.alice.ID, 10)
	s.Require().NoError(err)
	_, err = s.service.Record(s.ctx, s.bob.ID, 20)
	s.Require().NoError(err)

	entries, err := s.service.TopScores(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("Bob", entries[0].PlayerName)
}

func (s *ServiceSuite) TestTopScoresTiesBreakByName() {
	_, err := s.service.Record(s.ctx, s.bob.ID, 10)
	s.Require().NoError(err)
	_, err = s.service.Record(s.ctx, s.alice.ID, 10)
	s.Require().NoError(err)

	entries, err := s.service.TopScores(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("Alice", entries[0].PlayerName)
	s.Equal("Bob", entries[1].PlayerName)
}

func (s *ServiceSuite) TestTopScoresEmpty() {
	entries, err := s.service.TopScores(s.ctx, 0)
	s.Require().NoError(err)
	s.Empty(entries)
}

// UpdateScore tests

func (s *ServiceSuite) TestUpdateScoreSucceeds() {
	recorded, err := s.service.Record(s.ctx, s.alice.ID, 10)
	s.Require().NoError(err)

	updated, err := s.service.UpdateScore(s.ctx, recorded.ID, 99)
	s.Require().NoError(err)
	s.Equal(99, updated.Score)

	got, err := s.service.Get(s.ctx, recorded.ID)
	s.Require().NoError(err)
	s.Equal(99, got.Game.Score)
}

func (s *ServiceSuite) TestUpdateScoreFailsForUnknownGame() {
	_, err := s.service.UpdateScore(s.ctx, model.GameID("nonexistent"), 99)
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Delete tests

func (s *ServiceSuite) TestDeleteRemovesGame() {
	recorded, err := s.service.Record(s.ctx, s.alice.ID, 10)
	s.Require().NoError(err)

	err = s.service.Delete(s.ctx, recorded.ID)
	s.Require().NoError(err)

	_, err = s.service.Get(s.ctx, recorded.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ServiceSuite) TestDeleteFailsForUnknownGame() {
	err := s.service.Delete(s.ctx, model.GameID("nonexistent"))
	s.ErrorIs(err, model.ErrGameNotFound)
}
