// Package constants holds configuration values shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Published event types.
const (
	EventOrderPaid = "order.paid"
)

// HTTP headers read from clients and the payment gateway.
const (
	HeaderIdempotencyKey   = "Idempotency-Key"
	HeaderGatewaySignature = "X-Razorpay-Signature"
	HeaderGatewayEventID   = "X-Razorpay-Event-Id"
)
