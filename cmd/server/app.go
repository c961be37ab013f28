package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/wooteco-subway/favorite-api/internal/cache"
	"github.com/wooteco-subway/favorite-api/internal/config"
	"github.com/wooteco-subway/favorite-api/internal/platform/postgres"
	"github.com/wooteco-subway/favorite-api/internal/service"
	"github.com/wooteco-subway/favorite-api/internal/service/auth"
	"github.com/wooteco-subway/favorite-api/internal/store"
)

// application holds the wired dependency graph for the server. Handlers
// and middleware are created from it when the router is built.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	cache  *cache.Cache

	memberStore   store.MemberStore
	favoriteStore store.FavoriteStore
	stationNames  store.StationNameResolver

	tokenService    auth.TokenService
	identity        service.IdentityResolver
	memberService   service.MemberService
	favoriteService service.FavoriteService
}

// newApplication builds the full dependency graph from configuration and
// an open database connection. The Redis cache is optional: with no
// address configured, station names are read straight from Postgres.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	db *sql.DB,
	logger *slog.Logger,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.memberStore = postgres.NewPostgresMemberStore(db, logger)
	app.favoriteStore = postgres.NewPostgresFavoriteStore(db, logger)

	stationStore := postgres.NewPostgresStationStore(db, logger)
	app.stationNames = stationStore

	if cfg.Redis.Addr != "" {
		redisCache, err := cache.New(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.cache = redisCache
		app.stationNames = cache.NewCachedStationNameResolver(
			stationStore,
			redisCache,
			time.Duration(cfg.Redis.NameTTLMin)*time.Minute,
			logger,
		)
		logger.Info("station name cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	app.tokenService = tokenService

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)

	app.identity = service.NewIdentityResolver(tokenService, app.memberStore, logger)
	app.memberService = service.NewMemberService(
		app.memberStore, tokenService, hasher, hasher, logger)
	app.favoriteService = service.NewFavoriteService(
		app.favoriteStore, app.stationNames, logger)

	return app, nil
}

// cleanup releases resources owned by the application. The database
// connection is closed by the caller that opened it.
func (app *application) cleanup() {
	if app.cache != nil {
		if err := app.cache.Close(); err != nil {
			app.logger.Error("failed to close Redis client",
				slog.String("error", err.Error()))
		}
	}
}
