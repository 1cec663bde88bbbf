package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dicegame/dicegame/internal/api/handler"
	"github.com/dicegame/dicegame/internal/api/middleware"
	"github.com/dicegame/dicegame/internal/services/auth"
	"github.com/dicegame/dicegame/internal/services/game"
	"github.com/dicegame/dicegame/internal/services/token"
	"github.com/dicegame/dicegame/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	AuthService *auth.Service
	GameService *game.Service
	TokenCodec  *token.Codec
	Storage     storage.Storage
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	playerHandler := handler.NewPlayerHandler()
	gameHandler := handler.NewGameHandler(cfg.GameService)

	// Create middleware
	identityMiddleware := middleware.Identity(cfg.TokenCodec, cfg.Storage)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware; the identity filter runs on
	// every request, authenticated or not
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(identityMiddleware)

	// Auth routes (no auth required)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Protected player routes
	players := api.PathPrefix("/players").Subrouter()
	players.Use(middleware.RequireAuth)
	players.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)

	// Game routes (all require auth)
	games := api.PathPrefix("/game").Subrouter()
	games.Use(middleware.RequireAuth)
	games.HandleFunc("/roll", gameHandler.Roll).Methods(http.MethodPost)
	games.HandleFunc("/rolls", gameHandler.History).Methods(http.MethodGet)
	games.HandleFunc("/rolls", gameHandler.ClearHistory).Methods(http.MethodDelete)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
