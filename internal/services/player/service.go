package player

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/scorekeep/scorekeep/internal/dependencies/clock"
	"github.com/scorekeep/scorekeep/internal/model"
	"github.com/scorekeep/scorekeep/internal/storage"
)

// Service manages tracked players
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new player Service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// Create adds a new player with a unique name
func (s *Service) Create(ctx context.Context, name string) (*model.Player, error) {
	_, err := s.storage.GetPlayerByName(ctx, name)
	if err == nil {
		return nil, model.ErrPlayerNameTaken
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	player := &model.Player{
		ID:        model.PlayerID(uuid.NewString()),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created", slog.String("player_id", string(player.ID)))
	return player, nil
}

// List returns all players, most recently created first
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	sortPlayers(players)
	return players, nil
}

// Get returns a player by id
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// Rename changes a player's name, keeping names unique
func (s *Service) Rename(ctx context.Context, id model.PlayerID, name string) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != player.Name {
		if _, err := s.storage.GetPlayerByName(ctx, name); err == nil {
			return nil, model.ErrPlayerNameTaken
		} else if !errors.Is(err, model.ErrPlayerNotFound) {
			return nil, err
		}
	}

	player.Name = name
	player.UpdatedAt = s.clock.Now()
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Delete removes a player and all their recorded games
func (s *Service) Delete(ctx context.Context, id model.PlayerID) error {
	if _, err := s.storage.GetPlayer(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeleteGamesByPlayer(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	s.logger.Info("player deleted", slog.String("player_id", string(id)))
	return nil
}

// sortPlayers orders most recently created first, name as a tiebreak
func sortPlayers(players []*model.Player) {
	sort.Slice(players, func(i, j int) bool {
		if !players[i].CreatedAt.Equal(players[j].CreatedAt) {
			return players[i].CreatedAt.After(players[j].CreatedAt)
		}
		return players[i].Name < players[j].Name
	})
}
