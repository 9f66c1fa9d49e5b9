package service

import "context"

// GatewayOrder is the provider side order the checkout widget pays against.
type GatewayOrder struct {
	ID       string
	Amount   int64 // minor units
	Currency string
	Receipt  string
}

// PaymentGateway is the hosted payment provider.
type PaymentGateway interface {
	// CreateOrder registers a chargeable order for amount minor units.
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*GatewayOrder, error)

	// VerifyPaymentSignature checks the signature the checkout widget returned.
	VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature string) bool

	// VerifyWebhookSignature checks the signature of a raw webhook body.
	VerifyWebhookSignature(body []byte, signature string) bool

	// KeyID is the public key the checkout widget is opened with.
	KeyID() string
}
