package postgres

import (
	"context"

	"bizhub/internal/domain/entity"
	"bizhub/internal/domain/repository"
	"bizhub/internal/errors"
	"bizhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const websiteRequestIdempotencyIndex = "idx_website_requests_idempotency_key"

// websiteRequestRepository implements the repository.WebsiteRequestRepository interface.
type websiteRequestRepository struct {
	db *gorm.DB
}

// NewWebsiteRequestRepository is the constructor for websiteRequestRepository.
func NewWebsiteRequestRepository(db *gorm.DB) repository.WebsiteRequestRepository {
	return &websiteRequestRepository{db: db}
}

// Create persists a new request.
func (repo *websiteRequestRepository) Create(ctx context.Context, request *entity.WebsiteRequest) error {
	requestM := fromWebsiteRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isUniqueViolationOn(err, websiteRequestIdempotencyIndex) {
			return repository.ErrDuplicateIdempotencyKey
		}

		return classifyWriteError(err, "failed to create website request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindByID retrieves a request by its ID.
func (repo *websiteRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WebsiteRequest, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByIdempotencyKey retrieves the request created with key.
func (repo *websiteRequestRepository) FindByIdempotencyKey(ctx context.Context, key string) (*entity.WebsiteRequest, error) {
	if key == "" {
		return nil, repository.ErrWebsiteRequestNotFound
	}

	return repo.findOne(ctx, "idempotency_key = ?", key)
}

func (repo *websiteRequestRepository) findOne(ctx context.Context, query string, args ...any) (*entity.WebsiteRequest, error) {
	var requestM model.WebsiteRequestModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWebsiteRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find website request")
	}

	return toWebsiteRequestDomain(&requestM), nil
}

// ExistsByRequestNo reports whether requestNo is taken.
func (repo *websiteRequestRepository) ExistsByRequestNo(ctx context.Context, requestNo string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WebsiteRequestModel{}).
		Where("request_no = ?", requestNo).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check request number")
	}

	return count > 0, nil
}

// UpdateStatus sets the status unless the request already reached success.
func (repo *websiteRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.WebsiteRequestStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.WebsiteRequestModel{}).
		Where("id = ? AND status <> ?", id, string(entity.WebsiteRequestStatusSuccess)).
		Update("status", string(status))

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update website request status")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toPriceBreakdown(data model.PricingColumns) entity.PriceBreakdown {
	return entity.PriceBreakdown{
		BasePrice:   data.BasePrice,
		AddOnAmount: data.AddOnAmount,
		Subtotal:    data.Subtotal,
		GST:         data.GST,
		Total:       data.Total,
	}
}

func fromPriceBreakdown(data entity.PriceBreakdown) model.PricingColumns {
	return model.PricingColumns{
		BasePrice:   data.BasePrice,
		AddOnAmount: data.AddOnAmount,
		Subtotal:    data.Subtotal,
		GST:         data.GST,
		Total:       data.Total,
	}
}

func toWebsiteRequestDomain(data *model.WebsiteRequestModel) *entity.WebsiteRequest {
	if data == nil {
		return nil
	}

	return &entity.WebsiteRequest{
		ID:             data.ID,
		RequestNo:      data.RequestNo,
		LeadID:         data.LeadID,
		Plan:           data.Plan,
		CustomerName:   data.CustomerName,
		CustomerEmail:  data.CustomerEmail,
		CustomerPhone:  data.CustomerPhone,
		BusinessName:   data.BusinessName,
		Goals:          []string(data.Goals),
		AddOns:         []string(data.AddOns),
		Pricing:        toPriceBreakdown(data.Pricing),
		LatestOrderID:  data.LatestOrderID,
		Status:         entity.WebsiteRequestStatus(data.Status),
		IdempotencyKey: stringValue(data.IdempotencyKey),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromWebsiteRequestDomain(data *entity.WebsiteRequest) *model.WebsiteRequestModel {
	if data == nil {
		return nil
	}

	return &model.WebsiteRequestModel{
		ID:             data.ID,
		RequestNo:      data.RequestNo,
		LeadID:         data.LeadID,
		Plan:           data.Plan,
		CustomerName:   data.CustomerName,
		CustomerEmail:  data.CustomerEmail,
		CustomerPhone:  data.CustomerPhone,
		BusinessName:   data.BusinessName,
		Goals:          jsonStrings(data.Goals),
		AddOns:         jsonStrings(data.AddOns),
		Pricing:        fromPriceBreakdown(data.Pricing),
		LatestOrderID:  data.LatestOrderID,
		Status:         string(data.Status),
		IdempotencyKey: nullableString(data.IdempotencyKey),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
