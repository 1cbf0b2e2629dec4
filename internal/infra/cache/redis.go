// Package cache provides the Redis-backed implementation of the catalog cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"sayur/config"
	"sayur/internal/domain/lifecycle"
	"sayur/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// redisCache implements the service.ProductCache interface on go-redis.
type redisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// Params holds dependencies for the Redis cache, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRedisCache is the constructor for redisCache. It verifies connectivity on
// startup and closes the client on shutdown.
func NewRedisCache(params Params) (service.ProductCache, error) {
	cfg := params.Config.Redis
	if cfg == nil {
		return nil, errors.New("redis config is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			params.Logger.Info("Redis cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Redis cache")

			return client.Close()
		},
	})

	return &redisCache{
		client: client,
		logger: params.Logger,
	}, nil
}

// Get returns the cached payload for key, or (nil, nil) on a miss.
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to get cache key")
	}

	return payload, nil
}

// Set stores a payload under key with the given TTL.
func (c *redisCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set cache key")
	}

	return nil
}

// Delete removes one or more keys. Missing keys are not an error.
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cache keys")
	}

	return nil
}

// Module provides the cache FX module.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRedisCache),
)
