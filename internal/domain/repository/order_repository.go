package repository

import (
	"context"
	"time"

	"bizhub/internal/domain/entity"
	"bizhub/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence for orders.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByGatewayOrderID retrieves an order by the gateway order id.
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.Order, error)

	// ExistsByOrderNo reports whether orderNo is taken.
	ExistsByOrderNo(ctx context.Context, orderNo string) (bool, error)

	// MarkPaid moves the order to paid if it is not paid yet. Only the caller
	// that receives true may run the paid side effects.
	MarkPaid(ctx context.Context, id uuid.UUID, gatewayPaymentID string, paidAt time.Time) (bool, error)

	// UpdateStatus sets a non-paid status unless the order is already paid.
	// It reports whether a row changed.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, reason string) (bool, error)

	// UpdateOpenStatus is UpdateStatus for client and gateway events: it also
	// leaves cancelled orders untouched.
	UpdateOpenStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, reason string) (bool, error)
}
