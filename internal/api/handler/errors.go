package handler

import (
	"net/http"

	"github.com/scorekeep/scorekeep/internal/api/apierr"
)

// Re-export from apierr for convenience

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) error {
	return apierr.NewBadRequestError(message)
}
