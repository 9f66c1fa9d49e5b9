package postgres

import (
	"context"
	"time"

	"bizhub/internal/domain/entity"
	"bizhub/internal/domain/repository"
	"bizhub/internal/errors"
	"bizhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// referralEarningRepository implements the repository.ReferralEarningRepository interface.
type referralEarningRepository struct {
	db *gorm.DB
}

// NewReferralEarningRepository is the constructor for referralEarningRepository.
func NewReferralEarningRepository(db *gorm.DB) repository.ReferralEarningRepository {
	return &referralEarningRepository{db: db}
}

// Create persists an earning.
func (repo *referralEarningRepository) Create(ctx context.Context, earning *entity.ReferralEarning) error {
	earningM := fromEarningDomain(earning)

	if err := repo.db.WithContext(ctx).Create(earningM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEarning
		}

		return classifyWriteError(err, "failed to create referral earning")
	}

	earning.ID = earningM.ID
	earning.CreatedAt = earningM.CreatedAt

	return nil
}

// ExistsForReferredUser reports whether an earning exists for the referred user.
func (repo *referralEarningRepository) ExistsForReferredUser(ctx context.Context, referredUserID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReferralEarningModel{}).
		Where("referred_user_id = ?", referredUserID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check referral earning")
	}

	return count > 0, nil
}

// SumCredited totals the credited earnings of a referrer.
func (repo *referralEarningRepository) SumCredited(ctx context.Context, referrerID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal

	err := repo.db.WithContext(ctx).
		Model(&model.ReferralEarningModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("referrer_id = ? AND status = ?", referrerID, entity.EarningStatusCredited).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum referral earnings")
	}

	return total, nil
}

// ListByReferrer returns a referrer's earnings, newest first.
func (repo *referralEarningRepository) ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*entity.ReferralEarning, error) {
	var earningModels []*model.ReferralEarningModel

	if err := repo.db.WithContext(ctx).
		Where("referrer_id = ?", referrerID).
		Order("created_at DESC").
		Find(&earningModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list referral earnings")
	}

	earnings := make([]*entity.ReferralEarning, 0, len(earningModels))
	for _, earningM := range earningModels {
		earnings = append(earnings, toEarningDomain(earningM))
	}

	return earnings, nil
}

// referralWithdrawalRepository implements the repository.ReferralWithdrawalRepository interface.
type referralWithdrawalRepository struct {
	db *gorm.DB
}

// NewReferralWithdrawalRepository is the constructor for referralWithdrawalRepository.
func NewReferralWithdrawalRepository(db *gorm.DB) repository.ReferralWithdrawalRepository {
	return &referralWithdrawalRepository{db: db}
}

// Create persists a withdrawal.
func (repo *referralWithdrawalRepository) Create(ctx context.Context, withdrawal *entity.ReferralWithdrawal) error {
	withdrawalM := fromWithdrawalDomain(withdrawal)

	if err := repo.db.WithContext(ctx).Create(withdrawalM).Error; err != nil {
		if isUniqueViolationOn(err, model.OpenWithdrawalIndex) {
			return repository.ErrOpenWithdrawalExists
		}

		return classifyWriteError(err, "failed to create withdrawal")
	}

	withdrawal.ID = withdrawalM.ID
	withdrawal.CreatedAt = withdrawalM.CreatedAt
	withdrawal.UpdatedAt = withdrawalM.UpdatedAt

	return nil
}

// FindByID retrieves a withdrawal by its ID.
func (repo *referralWithdrawalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReferralWithdrawal, error) {
	var withdrawalM model.ReferralWithdrawalModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&withdrawalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWithdrawalNotFound
		}

		return nil, errors.Wrap(err, "failed to find withdrawal")
	}

	return toWithdrawalDomain(&withdrawalM), nil
}

// ExistsByRequestNo reports whether requestNo is taken.
func (repo *referralWithdrawalRepository) ExistsByRequestNo(ctx context.Context, requestNo string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReferralWithdrawalModel{}).
		Where("request_no = ?", requestNo).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check withdrawal number")
	}

	return count > 0, nil
}

// HasOpenRequest reports whether the user has a requested or processing withdrawal.
func (repo *referralWithdrawalRepository) HasOpenRequest(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReferralWithdrawalModel{}).
		Where("user_id = ? AND status IN ?", userID, statusStrings(entity.OpenWithdrawalStatuses)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check open withdrawals")
	}

	return count > 0, nil
}

// SumByStatus totals the user's withdrawals in the given statuses.
func (repo *referralWithdrawalRepository) SumByStatus(ctx context.Context, userID uuid.UUID, statuses ...entity.WithdrawalStatus) (decimal.Decimal, error) {
	if len(statuses) == 0 {
		return decimal.Zero, nil
	}

	var total decimal.Decimal

	err := repo.db.WithContext(ctx).
		Model(&model.ReferralWithdrawalModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND status IN ?", userID, statusStrings(statuses)).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum withdrawals")
	}

	return total, nil
}

// ListByUser returns the user's withdrawals, newest first.
func (repo *referralWithdrawalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ReferralWithdrawal, error) {
	return repo.list(ctx, "created_at DESC", "user_id = ?", userID)
}

// ListByStatus returns withdrawals in the given statuses, oldest first.
func (repo *referralWithdrawalRepository) ListByStatus(ctx context.Context, statuses ...entity.WithdrawalStatus) ([]*entity.ReferralWithdrawal, error) {
	if len(statuses) == 0 {
		return []*entity.ReferralWithdrawal{}, nil
	}

	return repo.list(ctx, "created_at ASC", "status IN ?", statusStrings(statuses))
}

func (repo *referralWithdrawalRepository) list(ctx context.Context, order, query string, args ...any) ([]*entity.ReferralWithdrawal, error) {
	var withdrawalModels []*model.ReferralWithdrawalModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order(order).
		Find(&withdrawalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list withdrawals")
	}

	withdrawals := make([]*entity.ReferralWithdrawal, 0, len(withdrawalModels))
	for _, withdrawalM := range withdrawalModels {
		withdrawals = append(withdrawals, toWithdrawalDomain(withdrawalM))
	}

	return withdrawals, nil
}

// UpdateStatus changes the status unless the withdrawal is already paid.
func (repo *referralWithdrawalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.WithdrawalStatus, note string, processedAt *time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ReferralWithdrawalModel{}).
		Where("id = ? AND status <> ?", id, string(entity.WithdrawalStatusPaid)).
		Updates(map[string]any{
			"status":       string(status),
			"admin_note":   note,
			"processed_at": processedAt,
		})

	if result.Error != nil {
		if isUniqueViolationOn(result.Error, model.OpenWithdrawalIndex) {
			return false, repository.ErrOpenWithdrawalExists
		}

		return false, errors.Wrap(result.Error, "failed to update withdrawal status")
	}

	return result.RowsAffected > 0, nil
}

func statusStrings(statuses []entity.WithdrawalStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}

	return out
}

// --- Mapper Functions ---

func toEarningDomain(data *model.ReferralEarningModel) *entity.ReferralEarning {
	if data == nil {
		return nil
	}

	return &entity.ReferralEarning{
		ID:             data.ID,
		ReferrerID:     data.ReferrerID,
		ReferredUserID: data.ReferredUserID,
		ListingID:      data.ListingID,
		PaymentID:      data.PaymentID,
		OrderNo:        data.OrderNo,
		BaseAmount:     data.BaseAmount,
		CommissionRate: data.CommissionRate,
		Amount:         data.Amount,
		Currency:       data.Currency,
		Status:         data.Status,
		CreatedAt:      data.CreatedAt,
	}
}

func fromEarningDomain(data *entity.ReferralEarning) *model.ReferralEarningModel {
	if data == nil {
		return nil
	}

	return &model.ReferralEarningModel{
		ID:             data.ID,
		ReferrerID:     data.ReferrerID,
		ReferredUserID: data.ReferredUserID,
		ListingID:      data.ListingID,
		PaymentID:      data.PaymentID,
		OrderNo:        data.OrderNo,
		BaseAmount:     data.BaseAmount,
		CommissionRate: data.CommissionRate,
		Amount:         data.Amount,
		Currency:       data.Currency,
		Status:         data.Status,
		CreatedAt:      data.CreatedAt,
	}
}

func toWithdrawalDomain(data *model.ReferralWithdrawalModel) *entity.ReferralWithdrawal {
	if data == nil {
		return nil
	}

	return &entity.ReferralWithdrawal{
		ID:          data.ID,
		RequestNo:   data.RequestNo,
		UserID:      data.UserID,
		Amount:      data.Amount,
		Method:      entity.PayoutMethod(data.Method),
		Details:     data.Details.Data(),
		Status:      entity.WithdrawalStatus(data.Status),
		AdminNote:   data.AdminNote,
		ProcessedAt: data.ProcessedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromWithdrawalDomain(data *entity.ReferralWithdrawal) *model.ReferralWithdrawalModel {
	if data == nil {
		return nil
	}

	return &model.ReferralWithdrawalModel{
		ID:          data.ID,
		RequestNo:   data.RequestNo,
		UserID:      data.UserID,
		Amount:      data.Amount,
		Method:      string(data.Method),
		Details:     datatypes.NewJSONType(data.Details),
		Status:      string(data.Status),
		AdminNote:   data.AdminNote,
		ProcessedAt: data.ProcessedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
