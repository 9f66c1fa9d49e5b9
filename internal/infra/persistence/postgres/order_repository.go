package postgres

import (
	"context"
	"time"

	"bizhub/internal/domain/entity"
	"bizhub/internal/domain/repository"
	"bizhub/internal/errors"
	"bizhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return classifyWriteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order by its ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByGatewayOrderID retrieves an order by the gateway order id.
func (repo *orderRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.Order, error) {
	if gatewayOrderID == "" {
		return nil, repository.ErrOrderNotFound
	}

	return repo.findOne(ctx, "gateway_order_id = ?", gatewayOrderID)
}

func (repo *orderRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ExistsByOrderNo reports whether orderNo is taken.
func (repo *orderRepository) ExistsByOrderNo(ctx context.Context, orderNo string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_no = ?", orderNo).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check order number")
	}

	return count > 0, nil
}

// MarkPaid moves the order to paid if it is not paid yet.
func (repo *orderRepository) MarkPaid(ctx context.Context, id uuid.UUID, gatewayPaymentID string, paidAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status <> ?", id, string(entity.OrderStatusPaid)).
		Updates(map[string]any{
			"status":             string(entity.OrderStatusPaid),
			"gateway_payment_id": gatewayPaymentID,
			"paid_at":            paidAt,
			"failure_reason":     "",
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark order paid")
	}

	return result.RowsAffected > 0, nil
}

// UpdateStatus sets a non-paid status unless the order is already paid.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, reason string) (bool, error) {
	return repo.updateStatus(ctx, id, status, reason, entity.OrderStatusPaid)
}

// UpdateOpenStatus sets a non-paid status unless the order is paid or cancelled.
func (repo *orderRepository) UpdateOpenStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, reason string) (bool, error) {
	return repo.updateStatus(ctx, id, status, reason, entity.OrderStatusPaid, entity.OrderStatusCancelled)
}

func (repo *orderRepository) updateStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.OrderStatus,
	reason string,
	frozen ...entity.OrderStatus,
) (bool, error) {
	if status == entity.OrderStatusPaid {
		return false, errors.New("use MarkPaid to move an order to paid")
	}

	frozenStatuses := make([]string, 0, len(frozen))
	for _, s := range frozen {
		frozenStatuses = append(frozenStatuses, string(s))
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status NOT IN ?", id, frozenStatuses).
		Updates(map[string]any{
			"status":         string(status),
			"failure_reason": reason,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update order status")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:               data.ID,
		OrderNo:          data.OrderNo,
		OrderType:        entity.OrderType(data.OrderType),
		RequestID:        data.RequestID,
		LeadID:           data.LeadID,
		ListingID:        data.ListingID,
		UserID:           data.UserID,
		Plan:             data.Plan,
		CustomerName:     data.CustomerName,
		CustomerEmail:    data.CustomerEmail,
		CustomerPhone:    data.CustomerPhone,
		Services:         []string(data.Services),
		Pricing:          toPriceBreakdown(data.Pricing),
		Currency:         data.Currency,
		Status:           entity.OrderStatus(data.Status),
		GatewayOrderID:   stringValue(data.GatewayOrderID),
		GatewayPaymentID: data.GatewayPaymentID,
		FailureReason:    data.FailureReason,
		PaidAt:           data.PaidAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:               data.ID,
		OrderNo:          data.OrderNo,
		OrderType:        string(data.OrderType),
		RequestID:        data.RequestID,
		LeadID:           data.LeadID,
		ListingID:        data.ListingID,
		UserID:           data.UserID,
		Plan:             data.Plan,
		CustomerName:     data.CustomerName,
		CustomerEmail:    data.CustomerEmail,
		CustomerPhone:    data.CustomerPhone,
		Services:         jsonStrings(data.Services),
		Pricing:          fromPriceBreakdown(data.Pricing),
		Currency:         data.Currency,
		Status:           string(data.Status),
		GatewayOrderID:   nullableString(data.GatewayOrderID),
		GatewayPaymentID: data.GatewayPaymentID,
		FailureReason:    data.FailureReason,
		PaidAt:           data.PaidAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
