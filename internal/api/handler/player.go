package handler

import (
	"net/http"

	"github.com/dicegame/dicegame/internal/api/response"
	"github.com/dicegame/dicegame/internal/services/auth"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct{}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler() *PlayerHandler {
	return &PlayerHandler{}
}

// GetMe handles GET /api/players/me
func (h *PlayerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFrom(r.Context())
	response.JSON(w, http.StatusOK, response.PlayerFromModel(identity.Player))
}
