package cache

import (
	"context"
	"encoding/json"
	"time"

	"go-airport-booking/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache keys for reference listings. Seat availability and tickets are
// never cached; those reads always hit the database.
const (
	KeyAirports      = "cache:airports"
	KeyAirplaneTypes = "cache:airplane_types"
	KeyCrews         = "cache:crews"
)

// ReferenceCache is a read-through cache for slow-changing reference
// listings. Misses and marshalling problems degrade to a database read,
// they never fail the request.
type ReferenceCache interface {
	GetList(ctx context.Context, key string, dest interface{}) (bool, error)
	SetList(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, keys ...string)
}

type ReferenceCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewReferenceCache(client *redis.Client, ttl time.Duration) ReferenceCache {
	return &ReferenceCacheImpl{
		client: client,
		ttl:    ttl,
		log:    logger.WithComponent("reference_cache"),
	}
}

func (c *ReferenceCacheImpl) GetList(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// Stale or corrupt payload, drop it and fall through to the DB.
		c.client.Del(ctx, key)
		return false, nil
	}

	return true, nil
}

func (c *ReferenceCacheImpl) SetList(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *ReferenceCacheImpl) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("Failed to invalidate cache keys",
			zap.Strings("keys", keys),
			zap.Error(err))
	}
}
