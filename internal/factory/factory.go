package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/azzbr/padelx/internal/dependencies/clock"
	"github.com/azzbr/padelx/internal/dependencies/random"
	"github.com/azzbr/padelx/internal/services/auth"
	"github.com/azzbr/padelx/internal/services/balance"
	"github.com/azzbr/padelx/internal/services/freshness"
	"github.com/azzbr/padelx/internal/services/livematch"
	"github.com/azzbr/padelx/internal/services/matchmaking"
	"github.com/azzbr/padelx/internal/services/partition"
	"github.com/azzbr/padelx/internal/services/quality"
	"github.com/azzbr/padelx/internal/services/rating"
	"github.com/azzbr/padelx/internal/services/roster"
	"github.com/azzbr/padelx/internal/services/session"
	"github.com/azzbr/padelx/internal/storage"
	"github.com/azzbr/padelx/internal/storage/memory"
	redisstorage "github.com/azzbr/padelx/internal/storage/redis"
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
	BalanceService      *balance.Service
	FreshnessService    *freshness.Service
	PartitionService    *partition.Service
	MatchmakingService  *matchmaking.Service
	QualityService      *quality.Service
	RatingService       *rating.Service
	RosterController    *roster.Controller
	SessionController   *session.Controller
	LiveMatchController *livematch.Controller
	AuthService         *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
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

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	// Create services
	balanceService := balance.New()
	freshnessService := freshness.New()
	partitionService := partition.New(rnd)
	matchmakingService := matchmaking.New(partitionService, balanceService, freshnessService, logger)
	qualityService := quality.New(balanceService, freshnessService)
	ratingService := rating.New()
	rosterController := roster.NewController(store, clk, rnd, logger)
	sessionController := session.NewController(store, matchmakingService, clk, rnd, logger)
	liveMatchController := livematch.NewController(store, ratingService, clk, logger)
	authService := auth.NewService(store, clk, rnd, logger, authCfg)

	return &App{
		Storage:             store,
		Clock:               clk,
		Random:              rnd,
		BalanceService:      balanceService,
		FreshnessService:    freshnessService,
		PartitionService:    partitionService,
		MatchmakingService:  matchmakingService,
		QualityService:      qualityService,
		RatingService:       ratingService,
		RosterController:    rosterController,
		SessionController:   sessionController,
		LiveMatchController: liveMatchController,
		AuthService:         authService,
	}
}
