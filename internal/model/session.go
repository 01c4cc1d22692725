package model

import "time"

// SessionID uniquely identifies an auth session
type SessionID string

// Session binds a user name to its credential hashes.
// It doubles as the account record: one row per registered user.
//
// RefreshTokenHash holds the bcrypt hash of the currently live refresh
// token. An empty hash means the session is closed: refresh and bearer
// validation must both fail even for cryptographically valid tokens.
type Session struct {
	ID               SessionID `json:"id"`
	UserName         string    `json:"user_name"`
	PasswordHash     string    `json:"password_hash"`
	RefreshTokenHash string    `json:"refresh_token_hash,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Closed reports whether the session has no live refresh token
func (s *Session) Closed() bool {
	return s.RefreshTokenHash == ""
}

// UserName length limits enforced at registration
const (
	UserNameMinLength = 3
	UserNameMaxLength = 50
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 6
