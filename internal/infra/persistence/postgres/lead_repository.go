package postgres

import (
	"context"

	"bizhub/internal/domain/entity"
	"bizhub/internal/domain/repository"
	"bizhub/internal/errors"
	"bizhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// leadRepository implements the repository.LeadRepository interface.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository is the constructor for leadRepository.
func NewLeadRepository(db *gorm.DB) repository.LeadRepository {
	return &leadRepository{db: db}
}

// Create persists a new lead.
func (repo *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	leadM := fromLeadDomain(lead)

	if err := repo.db.WithContext(ctx).Create(leadM).Error; err != nil {
		return classifyWriteError(err, "failed to create lead")
	}

	lead.ID = leadM.ID
	lead.CreatedAt = leadM.CreatedAt
	lead.UpdatedAt = leadM.UpdatedAt

	return nil
}

// FindByID retrieves a lead by its ID.
func (repo *leadRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var leadM model.LeadModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&leadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead by ID")
	}

	return toLeadDomain(&leadM), nil
}

// UpdateStatus sets the pipeline stage of a lead.
func (repo *leadRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LeadStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update lead status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLeadNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toLeadDomain(data *model.LeadModel) *entity.Lead {
	if data == nil {
		return nil
	}

	return &entity.Lead{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		WebsiteStatus: data.WebsiteStatus,
		Goals:         []string(data.Goals),
		Channels:      []string(data.Channels),
		Source:        data.Source,
		Status:        entity.LeadStatus(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromLeadDomain(data *entity.Lead) *model.LeadModel {
	if data == nil {
		return nil
	}

	return &model.LeadModel{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		WebsiteStatus: data.WebsiteStatus,
		Goals:         jsonStrings(data.Goals),
		Channels:      jsonStrings(data.Channels),
		Source:        data.Source,
		Status:        string(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// jsonStrings never returns nil so the column stores [] instead of null.
func jsonStrings(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		return datatypes.JSONSlice[string]{}
	}

	return datatypes.JSONSlice[string](values)
}

func nullableString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
