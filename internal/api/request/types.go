package request

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// RefreshRequest is the request body for refreshing a token pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// CreatePlayerRequest is the request body for creating a player
type CreatePlayerRequest struct {
	Name string `json:"name"`
}

// UpdatePlayerRequest is the request body for renaming a player
type UpdatePlayerRequest struct {
	Name string `json:"name"`
}

// CreateGameRequest is the request body for recording a game
type CreateGameRequest struct {
	PlayerID string `json:"player_id"`
	Score    *int   `json:"score"`
}

// UpdateGameRequest is the request body for updating a game's score
type UpdateGameRequest struct {
	Score *int `json:"score"`
}
