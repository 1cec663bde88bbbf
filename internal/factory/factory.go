package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/dicegame/dicegame/internal/dependencies/clock"
	"github.com/dicegame/dicegame/internal/dependencies/random"
	"github.com/dicegame/dicegame/internal/services/auth"
	"github.com/dicegame/dicegame/internal/services/game"
	"github.com/dicegame/dicegame/internal/services/token"
	"github.com/dicegame/dicegame/internal/storage"
	"github.com/dicegame/dicegame/internal/storage/memory"
	redisstorage "github.com/dicegame/dicegame/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	TokenCodec  *token.Codec
	AuthService *auth.Service
	GameService *game.Service
}

// Config holds configuration for the application factory
type Config struct {
	// TokenConfig holds the signing secret and token lifetime;
	// the secret is required
	TokenConfig token.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, cfg.TokenConfig, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, tokenCfg token.Config, logger *slog.Logger) (*App, error) {
	codec, err := token.NewCodec(tokenCfg, clk)
	if err != nil {
		return nil, err
	}

	authService := auth.New(store, codec, clk, logger)
	gameService := game.New(store, rnd, clk, logger)

	return &App{
		Storage:     store,
		Clock:       clk,
		Random:      rnd,
		TokenCodec:  codec,
		AuthService: authService,
		GameService: gameService,
	}, nil
}
