package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderType tags which payment flow created an order.
type OrderType string

const (
	OrderTypeWebsiteRequest  OrderType = "website_request"
	OrderTypeBusinessListing OrderType = "business_listing"
)

// OrderStatus is the payment state of an order.
type OrderStatus string

const (
	OrderStatusInitiated OrderStatus = "initiated"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is known.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusInitiated, OrderStatusPending, OrderStatusPaid, OrderStatusFailed, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order wraps one payment attempt.
type Order struct {
	ID               uuid.UUID      // Primary key.
	OrderNo          string         // Human readable number, ORD-YYYYMMDD-NNNNNN.
	OrderType        OrderType      // Flow that created the order.
	RequestID        *uuid.UUID     // Website request, for website_request orders.
	LeadID           *uuid.UUID     // Lead, for website_request orders.
	ListingID        *uuid.UUID     // Listing, for business_listing orders.
	UserID           *uuid.UUID     // Paying business user, for business_listing orders.
	Plan             string         // Catalog plan id or "listing".
	CustomerName     string         // Contact name.
	CustomerEmail    string         // Contact email.
	CustomerPhone    string         // Contact phone.
	Services         []string       // Line item labels.
	Pricing          PriceBreakdown // Amounts charged.
	Currency         string         // ISO currency code.
	Status           OrderStatus    // Payment state. paid is never downgraded.
	GatewayOrderID   string         // Gateway side order id.
	GatewayPaymentID string         // Gateway payment id once captured.
	FailureReason    string         // Last failure or dismissal reason.
	PaidAt           *time.Time     // When the order became paid.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsPaid reports whether the order reached the paid state.
func (o *Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}

// IsTerminal reports whether checkout events may no longer move the order.
// Only an operator override leaves cancelled.
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusPaid || o.Status == OrderStatusCancelled
}
