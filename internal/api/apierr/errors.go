package apierr

import (
	"errors"
	"net/http"

	"github.com/scorekeep/scorekeep/internal/api/response"
	"github.com/scorekeep/scorekeep/internal/model"
)

// httpError carries an HTTP status with a caller-safe message
type httpError struct {
	status  int
	message string
}

// Error implements the error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError maps an error to a status and writes the failure envelope.
// Unknown errors collapse to a generic 500 with no internal detail.
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	response.Error(w, he.status, he.message)
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Auth errors
	case errors.Is(err, model.ErrUserNameTaken):
		return &httpError{http.StatusConflict, "User name already in use"}
	case errors.Is(err, model.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, "Invalid credentials"}
	case errors.Is(err, model.ErrInvalidToken),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrSessionClosed):
		return &httpError{http.StatusUnauthorized, "Invalid or expired token"}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, "Session not found"}

	// Player errors
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, "Player not found"}
	case errors.Is(err, model.ErrPlayerNameTaken):
		return &httpError{http.StatusConflict, "Player name already in use"}

	// Game errors
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, "Game not found"}
	case errors.Is(err, model.ErrUnknownPlayer):
		return &httpError{http.StatusBadRequest, "Referenced player does not exist"}

	default:
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	}
}

// NewBadRequestError creates a 400 error with the given message
func NewBadRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewUnauthorizedError creates a generic 401 error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, "Invalid or expired token"}
}

// NewInternalError creates a generic 500 error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
