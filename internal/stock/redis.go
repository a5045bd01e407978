package stock

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	stockKeyPrefix    = "stock:"
	idempotencyKeyTTL = 24 * time.Hour
)

var reserveScript = redis.NewScript(`
local key = KEYS[1]
local quantity = tonumber(ARGV[1])

local current = redis.call('GET', key)
if not current then
	return 0
end

current = tonumber(current)
if current >= quantity then
	redis.call('DECRBY', key, quantity)
	return 1
end

return 0
`)

// redisReserver implements Reserver over a shared redis instance so stock
// holds survive across API replicas.
type redisReserver struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedisReserver creates a redis-backed stock reserver.
func NewRedisReserver(client *redis.Client, logger zerolog.Logger) Reserver {
	return &redisReserver{
		client: client,
		logger: logger.With().Str("component", "redis-stock").Logger(),
	}
}

// Reserve atomically takes quantity units via a Lua script, returning false
// if the remaining level is insufficient.
func (r *redisReserver) Reserve(ctx context.Context, productID string, quantity int) (bool, error) {
	key := stockKeyPrefix + productID

	result, err := reserveScript.Run(ctx, r.client, []string{key}, quantity).Int()
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", productID).Msg("stock reserve failed")
		return false, err
	}

	return result == 1, nil
}

// Release returns quantity units for the product.
func (r *redisReserver) Release(ctx context.Context, productID string, quantity int) error {
	key := stockKeyPrefix + productID
	return r.client.IncrBy(ctx, key, int64(quantity)).Err()
}

// SetLevel initialises the reservable level for the product.
func (r *redisReserver) SetLevel(ctx context.Context, productID string, quantity int) error {
	key := stockKeyPrefix + productID
	return r.client.Set(ctx, key, quantity, 0).Err()
}

// Begin sets an idempotency key, returning false if it already exists.
func (r *redisReserver) Begin(ctx context.Context, key string) (bool, error) {
	ok, err := r.client.SetNX(ctx, key, 1, idempotencyKeyTTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}
