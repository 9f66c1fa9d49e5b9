package service

import "context"

// WebhookGuard remembers processed webhook deliveries.
type WebhookGuard interface {
	// Acquire claims eventID. It returns false if the event was claimed before.
	Acquire(ctx context.Context, eventID string) (bool, error)

	// Release forgets eventID so a redelivery is processed again.
	Release(ctx context.Context, eventID string) error
}
