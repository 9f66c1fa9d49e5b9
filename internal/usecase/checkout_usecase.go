// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bizhub/internal/domain/catalog"
	"bizhub/internal/domain/entity"
	"bizhub/internal/domain/pricing"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CustomerInput is the contact captured by the checkout form.
type CustomerInput struct {
	Name          string
	Email         string
	Phone         string
	BusinessName  string
	WebsiteStatus string
	Goals         []string
	Channels      []string
}

// StartCheckoutInput defines a website plan purchase.
type StartCheckoutInput struct {
	Plan           string
	AddOns         []string
	Customer       CustomerInput
	IdempotencyKey string
}

// VerifyPaymentInput carries the values the checkout widget returns after a payment.
type VerifyPaymentInput struct {
	OrderID          uuid.UUID
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

// CheckoutEventType is a client side checkout outcome.
type CheckoutEventType string

const (
	CheckoutEventDismissed CheckoutEventType = "dismissed"
	CheckoutEventFailed    CheckoutEventType = "failed"
)

// CheckoutEventInput reports that the payer closed or failed the checkout widget.
type CheckoutEventInput struct {
	OrderID uuid.UUID
	Event   CheckoutEventType
	Reason  string
}

// WebhookInput is a raw gateway webhook delivery.
type WebhookInput struct {
	Body      []byte
	Signature string
	EventID   string
}

// UpdateOrderStatusInput is an operator override of an order status.
type UpdateOrderStatusInput struct {
	OrderID uuid.UUID
	Status  entity.OrderStatus
	Reason  string
}

// --- Output DTOs ---

// CatalogOutput lists what can be bought.
type CatalogOutput struct {
	Plans      []catalog.Plan
	AddOns     []catalog.AddOn
	GSTPercent int
	Currency   string
	ListingFee int64
}

// CheckoutOutput is what the client needs to open the checkout widget.
type CheckoutOutput struct {
	RequestID      uuid.UUID
	RequestNo      string
	OrderID        uuid.UUID
	OrderNo        string
	GatewayOrderID string
	GatewayKeyID   string
	AmountMinor    int64
	Currency       string
	Pricing        entity.PriceBreakdown
	AddOns         []string
	Replayed       bool // true when an earlier checkout with the same idempotency key was returned
}

// ListingCheckoutOutput is what the client needs to pay a listing fee.
type ListingCheckoutOutput struct {
	ListingID      uuid.UUID
	OrderID        uuid.UUID
	OrderNo        string
	GatewayOrderID string
	GatewayKeyID   string
	AmountMinor    int64
	Currency       string
	Pricing        entity.PriceBreakdown
}

// VerifyPaymentOutput reports the result of a payment confirmation.
type VerifyPaymentOutput struct {
	OrderID     uuid.UUID
	OrderNo     string
	Status      entity.OrderStatus
	AlreadyPaid bool
}

// CheckoutUsecase drives orders from creation to paid.
type CheckoutUsecase interface {
	// Catalog returns plans, add-ons and fixed rates.
	Catalog(ctx context.Context) *CatalogOutput
	// Quote prices a plan with add-ons without side effects.
	Quote(ctx context.Context, plan string, addOns []string) (*pricing.Quote, error)
	// StartCheckout creates a lead, a website request and an order.
	StartCheckout(ctx context.Context, input *StartCheckoutInput) (*CheckoutOutput, error)
	// VerifyPayment confirms a website order. Repeated calls are no-ops.
	VerifyPayment(ctx context.Context, input *VerifyPaymentInput) (*VerifyPaymentOutput, error)
	// HandleCheckoutEvent records a dismissed or failed checkout.
	HandleCheckoutEvent(ctx context.Context, input *CheckoutEventInput) error
	// HandleWebhook applies a signed gateway event.
	HandleWebhook(ctx context.Context, input *WebhookInput) error
	// StartListingCheckout creates an order for the listing fee.
	StartListingCheckout(ctx context.Context, userID, listingID uuid.UUID) (*ListingCheckoutOutput, error)
	// VerifyListingPayment confirms a listing fee order owned by userID.
	VerifyListingPayment(ctx context.Context, userID uuid.UUID, input *VerifyPaymentInput) (*VerifyPaymentOutput, error)
	// UpdateOrderStatus lets an operator override an order status. paid is never left.
	UpdateOrderStatus(ctx context.Context, input *UpdateOrderStatusInput) (*entity.Order, error)
}
