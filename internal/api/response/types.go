package response

import (
	"time"

	"github.com/scorekeep/scorekeep/internal/model"
	"github.com/scorekeep/scorekeep/internal/services/game"
)

// TokenPair is the payload for authentication endpoints
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Player represents a player in API responses
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        string(p.ID),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PlayersFromModel converts a slice of players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// Game represents a recorded game in API responses
type Game struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"player_id"`
	Score      int       `json:"score"`
	AchievedAt time.Time `json:"achieved_at"`
	Player     *Player   `json:"player,omitempty"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	return Game{
		ID:         string(g.ID),
		PlayerID:   string(g.PlayerID),
		Score:      g.Score,
		AchievedAt: g.AchievedAt,
	}
}

// GamesFromModel converts a slice of games
func GamesFromModel(games []*model.Game) []Game {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = GameFromModel(g)
	}
	return out
}

// GameWithPlayerFromService converts a game/player pair
func GameWithPlayerFromService(gp *game.GameWithPlayer) Game {
	g := GameFromModel(gp.Game)
	p := PlayerFromModel(gp.Player)
	g.Player = &p
	return g
}

// GamesWithPlayersFromService converts a slice of game/player pairs
func GamesWithPlayersFromService(gps []*game.GameWithPlayer) []Game {
	out := make([]Game, len(gps))
	for i, gp := range gps {
		out[i] = GameWithPlayerFromService(gp)
	}
	return out
}

// RankingEntry is one row of the best-score-per-player ranking
type RankingEntry struct {
	PlayerName string    `json:"player_name"`
	Score      int       `json:"score"`
	AchievedAt time.Time `json:"achieved_at"`
}

// RankingFromModel converts ranking entries
func RankingFromModel(entries []*model.RankingEntry) []RankingEntry {
	out := make([]RankingEntry, len(entries))
	for i, e := range entries {
		out[i] = RankingEntry{
			PlayerName: e.PlayerName,
			Score:      e.Score,
			AchievedAt: e.AchievedAt,
		}
	}
	return out
}
