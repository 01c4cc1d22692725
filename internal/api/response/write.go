package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response shape for every endpoint: a success
// flag, a human-readable message, and the payload (null on failure)
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// JSON writes a success envelope with the given status and payload
func JSON(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope with the given status
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
