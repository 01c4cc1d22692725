package game

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

// DefaultRankingLimit is the ranking size when none is requested
const DefaultRankingLimit = 10

// GameWithPlayer pairs a game with the player who achieved it
type GameWithPlayer struct {
	Game   *model.Game
	Player *model.Player
}

// Service records game sessions and answers ranking queries
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new game Service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// Record stores a new game for an existing player. Referencing an
// unknown player is a bad request, not a missing resource.
func (s *Service) Record(ctx context.Context, playerID model.PlayerID, score int) (*model.Game, error) {
	if _, err := s.storage.GetPlayer(ctx, playerID); err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, model.ErrUnknownPlayer
		}
		return nil, err
	}

	game := &model.Game{
		ID:         model.GameID(uuid.NewString()),
		PlayerID:   playerID,
		Score:      score,
		AchievedAt: s.clock.Now(),
	}

	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info("game recorded",
		slog.String("game_id", string(game.ID)),
		slog.String("player_id", string(playerID)),
		slog.Int("score", score),
	)
	return game, nil
}

// List returns all games with their players, most recent first
func (s *Service) List(ctx context.Context) ([]*GameWithPlayer, error) {
	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	sortGames(games)

	result := make([]*GameWithPlayer, 0, len(games))
	for _, g := range games {
		player, err := s.storage.GetPlayer(ctx, g.PlayerID)
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		result = append(result, &GameWithPlayer{Game: g, Player: player})
	}
	return result, nil
}

// ListByPlayer returns a player's games, most recent first
func (s *Service) ListByPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Game, error) {
	if _, err := s.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	games, err := s.storage.ListGamesByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	sortGames(games)
	return games, nil
}

// Get returns a game with its player
func (s *Service) Get(ctx context.Context, id model.GameID) (*GameWithPlayer, error) {
	game, err := s.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	player, err := s.storage.GetPlayer(ctx, game.PlayerID)
	if err != nil {
		return nil, err
	}
	return &GameWithPlayer{Game: game, Player: player}, nil
}

// TopScores returns the best score per player, highest first
func (s *Service) TopScores(ctx context.Context, limit int) ([]*model.RankingEntry, error) {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	best := make(map[model.PlayerID]*model.Game)
	for _, g := range games {
		cur, ok := best[g.PlayerID]
		if !ok || g.Score > cur.Score {
			best[g.PlayerID] = g
		}
	}

	entries := make([]*model.RankingEntry, 0, len(best))
	for playerID, g := range best {
		player, err := s.storage.GetPlayer(ctx, playerID)
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		entries = append(entries, &model.RankingEntry{
			PlayerName: player.Name,
			Score:      g.Score,
			AchievedAt: g.AchievedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].PlayerName < entries[j].PlayerName
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// UpdateScore changes a recorded game's score
func (s *Service) UpdateScore(ctx context.Context, id model.GameID, score int) (*model.Game, error) {
	game, err := s.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	game.Score = score
	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// Delete removes a recorded game
func (s *Service) Delete(ctx context.Context, id model.GameID) error {
	if _, err := s.storage.GetGame(ctx, id); err != nil {
		return err
	}
	return s.storage.DeleteGame(ctx, id)
}

// sortGames orders most recent first
func sortGames(games []*model.Game) {
	sort.Slice(games, func(i, j int) bool {
		if !games[i].AchievedAt.Equal(games[j].AchievedAt) {
			return games[i].AchievedAt.After(games[j].AchievedAt)
		}
		return games[i].ID < games[j].ID
	})
}
