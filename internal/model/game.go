package model

import "time"

// GameID uniquely identifies a recorded game
type GameID string

// Game is a single play-through with its final score
type Game struct {
	ID         GameID    `json:"id"`
	PlayerID   PlayerID  `json:"player_id"`
	Score      int       `json:"score"`
	AchievedAt time.Time `json:"achieved_at"`
}

// RankingEntry is a player's best recorded score
type RankingEntry struct {
	PlayerName string    `json:"player_name"`
	Score      int       `json:"score"`
	AchievedAt time.Time `json:"achieved_at"`
}
