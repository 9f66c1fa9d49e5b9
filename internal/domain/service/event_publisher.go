package service

import (
	"context"
	"time"
)

// OrderPaidEvent is published once per order after it becomes paid.
type OrderPaidEvent struct {
	RequestID        string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID          string    `json:"order_id"`
	OrderNo          string    `json:"order_no"`
	OrderType        string    `json:"order_type"`
	WebsiteRequestID string    `json:"website_request_id,omitempty"`
	ListingID        string    `json:"listing_id,omitempty"`
	UserID           string    `json:"user_id,omitempty"` // Paying business user, listing orders only
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency"`
	GatewayPaymentID string    `json:"gateway_payment_id,omitempty"`
	PaidAt           time.Time `json:"paid_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPaid announces a completed payment to downstream consumers
	PublishOrderPaid(ctx context.Context, event *OrderPaidEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
