// Package cache holds the Redis client and the helpers built on it.
package cache

import (
	"context"
	"log/slog"

	"bizhub/config"
	"bizhub/internal/domain/lifecycle"
	"bizhub/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ClientParams holds dependencies for the Redis client, injected by Fx.
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient connects to redis.url. It returns a nil client when Redis is
// not configured; consumers fall back to their no-op variants.
func NewRedisClient(params ClientParams) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.URL == "" {
		params.Logger.Info("Redis not configured, webhook deduplication disabled")

		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}
	client := redis.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
