package handler

import (
	"net/http"

	"github.com/dicegame/dicegame/internal/api/response"
	"github.com/dicegame/dicegame/internal/services/auth"
	"github.com/dicegame/dicegame/internal/services/game"
)

// GameHandler handles dice game endpoints
type GameHandler struct {
	gameService *game.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *game.Service) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// Roll handles POST /api/game/roll
func (h *GameHandler) Roll(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFrom(r.Context())

	roll, err := h.gameService.Roll(r.Context(), identity.Player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RollFromModel(roll))
}

// History handles GET /api/game/rolls
func (h *GameHandler) History(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFrom(r.Context())

	rolls, err := h.gameService.History(r.Context(), identity.Player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	stats, err := h.gameService.StatsFor(r.Context(), identity.Player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RollHistoryFromModel(rolls, stats))
}

// ClearHistory handles DELETE /api/game/rolls
func (h *GameHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFrom(r.Context())

	if err := h.gameService.ClearHistory(r.Context(), identity.Player.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
