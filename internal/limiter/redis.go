package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/agency-portal/internal/config"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "portal:ratelimit:"

	defaultConnectTimeout = 5 * time.Second
)

// Connect opens a Redis client for the limiter and checks it with a ping.
func Connect(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// Redis counts requests in Redis so that every server instance shares the
// same windows. The key expiry is set only by the request that creates it.
type Redis struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
}

func NewRedis(client redis.Cmdable, settings Settings) (*Redis, error) {
	settings = settings.withDefaults()
	if err := settings.validate(); err != nil {
		return nil, err
	}
	return &Redis{client: client, limit: int64(settings.Limit), window: settings.Window}, nil
}

func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	key = keyPrefix + key

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, r.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("counting request in redis: %w", err)
	}

	return incr.Val() <= r.limit, nil
}
