package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/scorekeep/scorekeep/internal/dependencies/clock"
	"github.com/scorekeep/scorekeep/internal/services/auth"
	"github.com/scorekeep/scorekeep/internal/services/game"
	"github.com/scorekeep/scorekeep/internal/services/player"
	"github.com/scorekeep/scorekeep/internal/services/secret"
	"github.com/scorekeep/scorekeep/internal/services/token"
	"github.com/scorekeep/scorekeep/internal/storage"
	"github.com/scorekeep/scorekeep/internal/storage/memory"
	redisstorage "github.com/scorekeep/scorekeep/internal/storage/redis"
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
	Clock clock.Clock

	// Services
	TokenService  *token.Service
	AuthService   *auth.Service
	PlayerService *player.Service
	GameService   *game.Service
}

// Config holds configuration for the application factory
type Config struct {
	// TokenConfig holds the signing secret and access-token TTL
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

	clk := clock.New()
	return newWithDependencies(store, clk, cfg.TokenConfig, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, tokenCfg token.Config, logger *slog.Logger) (*App, error) {
	tokenService, err := token.New(tokenCfg, clk)
	if err != nil {
		return nil, err
	}

	hasher := secret.NewHasher()
	authService := auth.New(store, tokenService, hasher, clk, logger)
	playerService := player.New(store, clk, logger)
	gameService := game.New(store, clk, logger)

	return &App{
		Storage:       store,
		Clock:         clk,
		TokenService:  tokenService,
		AuthService:   authService,
		PlayerService: playerService,
		GameService:   gameService,
	}, nil
}
