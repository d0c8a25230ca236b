package idealtype

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"matchmaker/internal/matching/metrics"
	"matchmaker/internal/matching/models"
	id "matchmaker/pkg/domain"
	"matchmaker/pkg/platform/circuit"
	"matchmaker/pkg/platform/keylock"
)

const redisKeyPrefix = "matchmaker:ideal-type:"

// Store is the backing store the cache reads through to.
type Store interface {
	Save(ctx context.Context, it *models.IdealType) error
	FindByProfileID(ctx context.Context, profileID id.ProfileID) (*models.IdealType, error)
	FindByProfileIDs(ctx context.Context, profileIDs []id.ProfileID) (map[id.ProfileID]*models.IdealType, error)
}

// RedisCache is a read-through cache in front of a Store. Writes go to the
// store first and then drop the cached entry.
//
// Redis is optional: its errors are logged and the store answers instead.
// After repeated failures the breaker opens and reads skip Redis entirely;
// fills after store reads keep probing so the breaker can close again.
type RedisCache struct {
	next    Store
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
	breaker *circuit.Breaker
	locks   *keylock.Striped
}

// CacheOption configures a RedisCache.
type CacheOption func(*RedisCache)

func WithCacheMetrics(m *metrics.Metrics) CacheOption {
	return func(c *RedisCache) {
		c.metrics = m
	}
}

func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *RedisCache) {
		c.logger = logger
	}
}

func WithBreaker(b *circuit.Breaker) CacheOption {
	return func(c *RedisCache) {
		c.breaker = b
	}
}

// NewRedisCache wraps next. Entries expire after ttl.
func NewRedisCache(next Store, client *redis.Client, ttl time.Duration, opts ...CacheOption) *RedisCache {
	c := &RedisCache{
		next:   next,
		client: client,
		ttl:    ttl,
		locks:  keylock.New(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.breaker == nil {
		c.breaker = circuit.New("ideal_type_cache")
	}
	return c
}

// Save writes through and invalidates. A failed invalidation is logged, not
// returned: the write is durable and the entry expires with its TTL.
func (c *RedisCache) Save(ctx context.Context, it *models.IdealType) error {
	key := cacheKey(it.ProfileID)
	unlock := c.locks.Lock(key)
	defer unlock()

	if err := c.next.Save(ctx, it); err != nil {
		return err
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.failed(ctx, "invalidate", err)
		c.logger.ErrorContext(ctx, "ideal type cache invalidation failed, serving stale until expiry",
			"profile_id", it.ProfileID,
			"ttl", c.ttl,
		)
		return nil
	}
	c.succeeded(ctx)
	return nil
}

// FindByProfileID serves from Redis when possible. Misses are filled under a
// per-profile lock so a concurrent Save cannot be overwritten by a stale fill.
func (c *RedisCache) FindByProfileID(ctx context.Context, profileID id.ProfileID) (*models.IdealType, error) {
	key := cacheKey(profileID)
	if !c.breaker.IsOpen() {
		it, err := c.get(ctx, key)
		if err == nil {
			c.metrics.RecordCacheLookup(true)
			return it, nil
		}
		if !errors.Is(err, redis.Nil) {
			c.failed(ctx, "get", err)
		}
	}
	c.metrics.RecordCacheLookup(false)

	unlock := c.locks.Lock(key)
	defer unlock()
	it, err := c.next.FindByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	c.fill(ctx, map[id.ProfileID]*models.IdealType{profileID: it})
	return it, nil
}

// FindByProfileIDs reads all keys with one MGET and loads the rest from the
// store in one batch, holding the locks of every missing profile.
func (c *RedisCache) FindByProfileIDs(ctx context.Context, profileIDs []id.ProfileID) (map[id.ProfileID]*models.IdealType, error) {
	out := make(map[id.ProfileID]*models.IdealType, len(profileIDs))
	missing := profileIDs
	if len(profileIDs) > 0 && !c.breaker.IsOpen() {
		cached, err := c.mget(ctx, profileIDs)
		if err != nil {
			c.failed(ctx, "mget", err)
		} else {
			missing = make([]id.ProfileID, 0, len(profileIDs))
			for _, pid := range profileIDs {
				if it, ok := cached[pid]; ok {
					out[pid] = it
					c.metrics.RecordCacheLookup(true)
					continue
				}
				missing = append(missing, pid)
			}
		}
	}
	if len(missing) == 0 {
		return out, nil
	}
	keys := make([]string, len(missing))
	for i, pid := range missing {
		keys[i] = cacheKey(pid)
		c.metrics.RecordCacheLookup(false)
	}

	// Same guarantee as FindByProfileID: a Save of any missing profile waits
	// until this batch is loaded and filled, then drops what it filled.
	unlock := c.locks.LockAll(keys...)
	defer unlock()
	loaded, err := c.next.FindByProfileIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for pid, it := range loaded {
		out[pid] = it
	}
	c.fill(ctx, loaded)
	return out, nil
}

func (c *RedisCache) get(ctx context.Context, key string) (*models.IdealType, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}
	c.succeeded(ctx)
	var it models.IdealType
	if err := json.Unmarshal(data, &it); err != nil {
		// Entries written before a catalog change may no longer decode.
		c.logger.WarnContext(ctx, "dropping undecodable ideal type cache entry", "key", key, "error", err)
		_ = c.client.Del(ctx, key).Err()
		return nil, redis.Nil
	}
	return &it, nil
}

func (c *RedisCache) mget(ctx context.Context, profileIDs []id.ProfileID) (map[id.ProfileID]*models.IdealType, error) {
	keys := make([]string, len(profileIDs))
	for i, pid := range profileIDs {
		keys[i] = cacheKey(pid)
	}
	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	c.succeeded(ctx)

	out := make(map[id.ProfileID]*models.IdealType, len(vals))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var it models.IdealType
		if err := json.Unmarshal([]byte(s), &it); err != nil {
			c.logger.WarnContext(ctx, "skipping undecodable ideal type cache entry", "key", keys[i], "error", err)
			continue
		}
		out[profileIDs[i]] = &it
	}
	return out, nil
}

// fill stores loaded ideal types. It also serves as the probe that closes an
// open breaker.
func (c *RedisCache) fill(ctx context.Context, loaded map[id.ProfileID]*models.IdealType) {
	if len(loaded) == 0 {
		return
	}
	pipe := c.client.Pipeline()
	for pid, it := range loaded {
		payload, err := json.Marshal(it)
		if err != nil {
			c.logger.ErrorContext(ctx, "encode ideal type for cache", "profile_id", pid, "error", err)
			continue
		}
		pipe.Set(ctx, cacheKey(pid), payload, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.failed(ctx, "set", err)
		return
	}
	c.succeeded(ctx)
}

func (c *RedisCache) failed(ctx context.Context, op string, err error) {
	c.logger.WarnContext(ctx, "ideal type cache unavailable", "operation", op, "error", err)
	if c.breaker.RecordFailure() {
		c.logger.ErrorContext(ctx, "circuit breaker opened", "circuit", c.breaker.Name())
	}
}

func (c *RedisCache) succeeded(ctx context.Context) {
	if c.breaker.RecordSuccess() {
		c.logger.InfoContext(ctx, "circuit breaker closed", "circuit", c.breaker.Name())
	}
}

func cacheKey(profileID id.ProfileID) string {
	return fmt.Sprintf("%s%s", redisKeyPrefix, profileID.String())
}
