package user

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "user:v1:"

// CachedRepository wraps a Repository with a Redis read cache for GetByID.
// Writes go straight to the inner store and drop the cached entry, so a
// cached read is indistinguishable from a store read to callers. Cache
// failures are logged and fall back to the store.
type CachedRepository struct {
	inner  Repository
	cache  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository decorates repo with Redis caching.
func NewCachedRepository(repo Repository, cache *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{inner: repo, cache: cache, ttl: ttl, logger: logger}
}

// GetOrCreate delegates to the inner store and invalidates the cached record,
// since a reconciliation may have changed profile fields.
func (r *CachedRepository) GetOrCreate(ctx context.Context, profile Profile) (User, bool, error) {
	u, created, err := r.inner.GetOrCreate(ctx, profile)
	if err != nil {
		return User{}, false, err
	}

	if err := r.cache.Del(ctx, cacheKey(u.ID)).Err(); err != nil {
		r.logger.Warn("invalidate user cache", "user_id", u.ID, "error", err)
	}
	return u, created, nil
}

// GetByID serves from Redis when possible and repopulates the entry on a miss.
func (r *CachedRepository) GetByID(ctx context.Context, id int64) (User, error) {
	key := cacheKey(id)

	raw, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var u User
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			return u, nil
		}
		r.logger.Warn("decode cached user", "user_id", id, "error", err)
	} else if err != redis.Nil {
		r.logger.Warn("read user cache", "user_id", id, "error", err)
	}

	u, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if encoded, err := json.Marshal(u); err == nil {
		if err := r.cache.Set(ctx, key, encoded, r.ttl).Err(); err != nil {
			r.logger.Warn("write user cache", "user_id", id, "error", err)
		}
	}
	return u, nil
}

func cacheKey(id int64) string {
	return fmt.Sprintf("%s%d", cacheKeyPrefix, id)
}
