package request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/scorekeep/scorekeep/internal/model"
)

// FieldError describes a single invalid field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the typed result of validating a request body
type FieldErrors []FieldError

// Message joins all field errors into one caller-facing message
func (e FieldErrors) Message() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(parts, ", ")
}

// Valid reports whether validation passed
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// Validate checks a registration request
func (r *RegisterRequest) Validate() FieldErrors {
	var errs FieldErrors
	errs = append(errs, validateUserName(r.UserName)...)
	if r.Password == "" {
		errs = append(errs, FieldError{"password", "is required"})
	} else if utf8.RuneCountInString(r.Password) < model.MinPasswordLength {
		errs = append(errs, FieldError{"password", fmt.Sprintf("must be at least %d characters", model.MinPasswordLength)})
	}
	return errs
}

// Validate checks a login request
func (r *LoginRequest) Validate() FieldErrors {
	var errs FieldErrors
	if r.UserName == "" {
		errs = append(errs, FieldError{"user_name", "is required"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{"password", "is required"})
	}
	return errs
}

// Validate checks a refresh request
func (r *RefreshRequest) Validate() FieldErrors {
	var errs FieldErrors
	if r.RefreshToken == "" {
		errs = append(errs, FieldError{"refresh_token", "is required"})
	}
	return errs
}

// Validate checks a player creation request
func (r *CreatePlayerRequest) Validate() FieldErrors {
	return validatePlayerName(r.Name)
}

// Validate checks a player update request
func (r *UpdatePlayerRequest) Validate() FieldErrors {
	return validatePlayerName(r.Name)
}

// Validate checks a game creation request
func (r *CreateGameRequest) Validate() FieldErrors {
	var errs FieldErrors
	if r.PlayerID == "" {
		errs = append(errs, FieldError{"player_id", "is required"})
	}
	errs = append(errs, validateScore(r.Score)...)
	return errs
}

// Validate checks a game update request
func (r *UpdateGameRequest) Validate() FieldErrors {
	return validateScore(r.Score)
}

func validateUserName(name string) FieldErrors {
	if name == "" {
		return FieldErrors{{"user_name", "is required"}}
	}
	n := utf8.RuneCountInString(name)
	if n < model.UserNameMinLength || n > model.UserNameMaxLength {
		return FieldErrors{{"user_name", fmt.Sprintf("must be %d-%d characters", model.UserNameMinLength, model.UserNameMaxLength)}}
	}
	return nil
}

func validatePlayerName(name string) FieldErrors {
	if name == "" {
		return FieldErrors{{"name", "is required"}}
	}
	n := utf8.RuneCountInString(name)
	if n < model.PlayerNameMinLength || n > model.PlayerNameMaxLength {
		return FieldErrors{{"name", fmt.Sprintf("must be %d-%d characters", model.PlayerNameMinLength, model.PlayerNameMaxLength)}}
	}
	return nil
}

func validateScore(score *int) FieldErrors {
	if score == nil {
		return FieldErrors{{"score", "is required"}}
	}
	if *score < 0 {
		return FieldErrors{{"score", "must not be negative"}}
	}
	return nil
}
