package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment statuses.
const (
	PaymentStatusCaptured = "captured"
	PaymentStatusManual   = "manual"
)

// Payment mirrors a gateway confirmation for one order.
type Payment struct {
	ID               uuid.UUID // Primary key.
	OrderID          uuid.UUID // One payment row per order.
	GatewayOrderID   string    // Gateway order id.
	GatewayPaymentID string    // Gateway payment id.
	Amount           int64     // Whole rupees.
	Currency         string    // ISO currency code.
	Status           string    // captured or manual.
	PaidAt           time.Time // Capture time.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
