package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/reversigame/internal/dependencies/clock"
	"github.com/mcoot/reversigame/internal/services/game"
	"github.com/mcoot/reversigame/internal/services/moderation"
	"github.com/mcoot/reversigame/internal/storage"
	"github.com/mcoot/reversigame/internal/storage/memory"
	redisstorage "github.com/mcoot/reversigame/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Directory storage.Directory
	Clock     clock.Clock

	GameController    *game.Controller
	ModerationService *moderation.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the player directory backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Moderation configures registration and the ban threshold
	Moderation moderation.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var dir storage.Directory
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		dir = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		dir = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	logger.Info("player directory ready", slog.String("storage", storageType))

	return newWithDependencies(dir, clock.New(), cfg.Moderation, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(dir storage.Directory, clk clock.Clock, modCfg moderation.Config, logger *slog.Logger) *App {
	return &App{
		Directory:         dir,
		Clock:             clk,
		GameController:    game.NewController(logger),
		ModerationService: moderation.New(dir, clk, modCfg, logger),
	}
}

// Close releases the player directory connection, if it holds one
func (a *App) Close() error {
	if c, ok := a.Directory.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
