package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dicegame/dicegame/internal/api/request"
	"github.com/dicegame/dicegame/internal/api/response"
	"github.com/dicegame/dicegame/internal/model"
	"github.com/dicegame/dicegame/internal/services/auth"
)

// AuthHandler handles the register and login endpoints
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.authService.Register(r.Context(), decodeCredentials(r))
	if err != nil {
		writeAuthError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromOutcome(outcome))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.authService.Login(r.Context(), decodeCredentials(r))
	if err != nil {
		writeAuthError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromOutcome(outcome))
}

// decodeCredentials reads a credentials payload from the request body.
// An absent or unparseable body yields nil, which the validator reports as
// invalid; transport-level decode problems are not distinguished from a
// missing payload.
func decodeCredentials(r *http.Request) *model.Credentials {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil
	}
	return &model.Credentials{
		Name:     req.Name,
		Password: req.Password,
	}
}

// writeAuthError maps auth failures onto the token+message response shape;
// anything else is an ordinary API error
func writeAuthError(w http.ResponseWriter, err error) {
	var invalidCreds *auth.InvalidCredentialsError
	if errors.As(err, &invalidCreds) {
		response.JSON(w, http.StatusBadRequest, response.AuthResponse{Message: invalidCreds.Message})
		return
	}
	WriteError(w, err)
}
