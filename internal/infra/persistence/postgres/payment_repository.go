package postgres

import (
	"context"

	"bizhub/internal/domain/entity"
	"bizhub/internal/domain/repository"
	"bizhub/internal/errors"
	"bizhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Upsert inserts the payment or replaces the row for the same order.
func (repo *paymentRepository) Upsert(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"gateway_order_id", "gateway_payment_id", "amount", "currency", "status", "paid_at", "updated_at",
			}),
		}).
		Create(paymentM).Error
	if err != nil {
		return classifyWriteError(err, "failed to upsert payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindByOrderID retrieves the payment recorded for an order.
func (repo *paymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return toPaymentDomain(&paymentM), nil
}

// --- Mapper Functions ---

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:               data.ID,
		OrderID:          data.OrderID,
		GatewayOrderID:   data.GatewayOrderID,
		GatewayPaymentID: data.GatewayPaymentID,
		Amount:           data.Amount,
		Currency:         data.Currency,
		Status:           data.Status,
		PaidAt:           data.PaidAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:               data.ID,
		OrderID:          data.OrderID,
		GatewayOrderID:   data.GatewayOrderID,
		GatewayPaymentID: data.GatewayPaymentID,
		Amount:           data.Amount,
		Currency:         data.Currency,
		Status:           data.Status,
		PaidAt:           data.PaidAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
