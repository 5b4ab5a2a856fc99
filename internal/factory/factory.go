package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/snakearena/server/internal/dependencies/clock"
	"github.com/snakearena/server/internal/services/account"
	"github.com/snakearena/server/internal/services/leaderboard"
	"github.com/snakearena/server/internal/services/live"
	"github.com/snakearena/server/internal/services/session"
	"github.com/snakearena/server/internal/storage"
	"github.com/snakearena/server/internal/storage/memory"
	"github.com/snakearena/server/internal/storage/postgres"
	redisstorage "github.com/snakearena/server/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
	StorageTypePostgres = "postgres"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	SessionService     *session.Service
	AccountService     *account.Service
	LeaderboardService *leaderboard.Service
	LiveService        *live.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis", "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// DatabaseURL is the PostgreSQL URL (required if StorageType is "postgres")
	DatabaseURL string
	// SessionConfig holds session service settings; the zero value keeps
	// sessions alive until logout
	SessionConfig session.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
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
	logger.Info("initialising storage", "type", storageType)

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
	case StorageTypePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DatabaseURL required when StorageType is postgres")
		}
		pgStore, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		store = pgStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis', or 'postgres'")
	}

	clk := clock.New()

	return newWithDependencies(store, clk, cfg.SessionConfig), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, sessionCfg session.Config) *App {
	accountService := account.New(store, clk)
	sessionService := session.New(store, clk, sessionCfg)
	leaderboardService := leaderboard.New(store, accountService, clk)
	liveService := live.New(store)

	return &App{
		Storage:            store,
		Clock:              clk,
		SessionService:     sessionService,
		AccountService:     accountService,
		LeaderboardService: leaderboardService,
		LiveService:        liveService,
	}
}
