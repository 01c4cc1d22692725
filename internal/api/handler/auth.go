package handler

import (
	"encoding/json"
	"net/http"

	"github.com/scorekeep/scorekeep/internal/api/middleware"
	"github.com/scorekeep/scorekeep/internal/api/request"
	"github.com/scorekeep/scorekeep/internal/api/response"
	"github.com/scorekeep/scorekeep/internal/services/auth"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewBadRequestError("invalid request body"))
		return
	}

	if errs := req.Validate(); !errs.Valid() {
		WriteError(w, NewBadRequestError(errs.Message()))
		return
	}

	pair, err := h.authService.Register(r.Context(), req.UserName, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, "User registered", tokenPairResponse(pair))
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewBadRequestError("invalid request body"))
		return
	}

	if errs := req.Validate(); !errs.Valid() {
		WriteError(w, NewBadRequestError(errs.Message()))
		return
	}

	pair, err := h.authService.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "Login successful", tokenPairResponse(pair))
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req request.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewBadRequestError("invalid request body"))
		return
	}

	if errs := req.Validate(); !errs.Valid() {
		WriteError(w, NewBadRequestError(errs.Message()))
		return
	}

	pair, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "Tokens refreshed", tokenPairResponse(pair))
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	if err := h.authService.Logout(r.Context(), identity.SessionID); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "Session closed", nil)
}

func tokenPairResponse(pair *auth.TokenPair) response.TokenPair {
	return response.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}
