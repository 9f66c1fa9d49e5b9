package repository

import (
	"context"

	"bizhub/internal/domain/entity"
	"bizhub/internal/errors"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when no payment is recorded for an order.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines persistence for the payment ledger.
type PaymentRepository interface {
	// Upsert inserts the payment or replaces the row for the same order.
	Upsert(ctx context.Context, payment *entity.Payment) error

	// FindByOrderID retrieves the payment recorded for an order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error)
}
