package model

import "errors"

// Common errors used across the application
var (
	// Auth errors
	ErrSessionNotFound    = errors.New("session not found")
	ErrUserNameTaken      = errors.New("user name already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrSessionClosed      = errors.New("session is closed")

	// Player errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrPlayerNameTaken = errors.New("player name already in use")

	// Game errors
	ErrGameNotFound  = errors.New("game not found")
	ErrUnknownPlayer = errors.New("referenced player does not exist")
)
