package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wooteco-subway/favorite-api/internal/platform/logger"
	"github.com/wooteco-subway/favorite-api/internal/store"
)

// Cache key prefix and default TTL for station names.
const (
	stationNameKeyPrefix = "station:name:"

	// DefaultStationNameTTL bounds how long a renamed station keeps
	// serving its old display name.
	DefaultStationNameTTL = time.Hour
)

// GetStationName retrieves a station's display name from cache.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetStationName(ctx context.Context, id int64) (string, error) {
	key := fmt.Sprintf("%s%d", stationNameKeyPrefix, id)

	name, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("redis get failed: %w", err)
	}

	return name, nil
}

// SetStationName stores a station's display name in cache with the given TTL.
func (c *Cache) SetStationName(ctx context.Context, id int64, name string, ttl time.Duration) error {
	key := fmt.Sprintf("%s%d", stationNameKeyPrefix, id)

	if err := c.client.Set(ctx, key, name, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache station name: %w", err)
	}

	return nil
}

// CachedStationNameResolver is a read-through cache in front of another
// StationNameResolver. Cache failures degrade to direct reads; they never
// fail the lookup. Unknown station ids are not cached negatively, so a
// newly created station becomes resolvable immediately.
type CachedStationNameResolver struct {
	inner  store.StationNameResolver
	cache  *Cache
	ttl    time.Duration
	logger *slog.Logger
}

// Ensure CachedStationNameResolver implements store.StationNameResolver
var _ store.StationNameResolver = (*CachedStationNameResolver)(nil)

// NewCachedStationNameResolver wraps the inner resolver with the cache.
// A non-positive ttl falls back to DefaultStationNameTTL.
// If logger is nil, a default logger will be used.
func NewCachedStationNameResolver(
	inner store.StationNameResolver,
	cache *Cache,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedStationNameResolver {
	if inner == nil {
		panic("inner resolver cannot be nil")
	}
	if cache == nil {
		panic("cache cannot be nil")
	}

	if ttl <= 0 {
		ttl = DefaultStationNameTTL
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CachedStationNameResolver{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "station_name_cache")),
	}
}

// NameOf implements store.StationNameResolver.NameOf
func (r *CachedStationNameResolver) NameOf(ctx context.Context, id int64) (string, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	name, err := r.cache.GetStationName(ctx, id)
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Warn("station name cache read failed, falling back to store",
			slog.String("error", err.Error()),
			slog.Int64("station_id", id))
	}

	name, err = r.inner.NameOf(ctx, id)
	if err != nil {
		return "", err
	}

	if err := r.cache.SetStationName(ctx, id, name, r.ttl); err != nil {
		log.Warn("failed to cache station name",
			slog.String("error", err.Error()),
			slog.Int64("station_id", id))
	}

	return name, nil
}
