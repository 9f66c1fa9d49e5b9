package cache

import (
	"context"
	"log/slog"
	"time"

	"bizhub/config"
	"bizhub/internal/domain/service"
	"bizhub/internal/errors"

	"github.com/redis/go-redis/v9"
)

const webhookKeyPrefix = "bizhub:webhook:"

type redisWebhookGuard struct {
	client redis.Cmdable
	ttl    time.Duration
}

type noopWebhookGuard struct{}

// NewWebhookGuard returns a Redis backed guard, or a guard that lets every
// delivery through when client is nil.
func NewWebhookGuard(client *redis.Client, cfg *config.Config, logger *slog.Logger) service.WebhookGuard {
	if client == nil {
		return noopWebhookGuard{}
	}

	ttl := 72 * time.Hour
	if cfg.Redis != nil && cfg.Redis.WebhookDedupTTL > 0 {
		ttl = cfg.Redis.WebhookDedupTTL
	}
	logger.Info("Webhook deduplication enabled", slog.Duration("ttl", ttl))

	return newRedisWebhookGuard(client, ttl)
}

func newRedisWebhookGuard(client redis.Cmdable, ttl time.Duration) *redisWebhookGuard {
	return &redisWebhookGuard{client: client, ttl: ttl}
}

// Acquire claims eventID with SET NX.
func (g *redisWebhookGuard) Acquire(ctx context.Context, eventID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, webhookKey(eventID), time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to claim webhook event")
	}

	return ok, nil
}

// Release deletes the claim.
func (g *redisWebhookGuard) Release(ctx context.Context, eventID string) error {
	if err := g.client.Del(ctx, webhookKey(eventID)).Err(); err != nil {
		return errors.Wrap(err, "failed to release webhook event")
	}

	return nil
}

func (noopWebhookGuard) Acquire(context.Context, string) (bool, error) { return true, nil }

func (noopWebhookGuard) Release(context.Context, string) error { return nil }

func webhookKey(eventID string) string {
	return webhookKeyPrefix + eventID
}
