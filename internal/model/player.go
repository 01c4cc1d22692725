package model

import "time"

// PlayerID uniquely identifies a player
type PlayerID string

// Player is a tracked game participant.
//
// Players are deliberately unrelated to auth sessions: a session is the
// API caller's account, a player is a subject being score-tracked. The
// similar naming is a quirk of the domain, not a shared identity.
type Player struct {
	ID        PlayerID  `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Player name length limits
const (
	PlayerNameMinLength = 2
	PlayerNameMaxLength = 50
)
