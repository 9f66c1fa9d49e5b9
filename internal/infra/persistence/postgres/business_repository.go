package postgres

import (
	"context"
	"strings"

	"bizhub/internal/domain/entity"
	"bizhub/internal/domain/repository"
	"bizhub/internal/errors"
	"bizhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// businessUserRepository implements the repository.BusinessUserRepository interface.
type businessUserRepository struct {
	db *gorm.DB
}

// NewBusinessUserRepository is the constructor for businessUserRepository.
func NewBusinessUserRepository(db *gorm.DB) repository.BusinessUserRepository {
	return &businessUserRepository{db: db}
}

// FindByID retrieves a user by its ID.
func (repo *businessUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessUser, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a user by login email, case-insensitively.
func (repo *businessUserRepository) FindByEmail(ctx context.Context, email string) (*entity.BusinessUser, error) {
	return repo.findOne(ctx, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (repo *businessUserRepository) findOne(ctx context.Context, query string, args ...any) (*entity.BusinessUser, error) {
	var userM model.BusinessUserModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find business user")
	}

	return toBusinessUserDomain(&userM), nil
}

// businessListingRepository implements the repository.BusinessListingRepository interface.
type businessListingRepository struct {
	db *gorm.DB
}

// NewBusinessListingRepository is the constructor for businessListingRepository.
func NewBusinessListingRepository(db *gorm.DB) repository.BusinessListingRepository {
	return &businessListingRepository{db: db}
}

// FindByID retrieves a listing by its ID.
func (repo *businessListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessListing, error) {
	var listingM model.BusinessListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find business listing")
	}

	return toBusinessListingDomain(&listingM), nil
}

// HasApprovedPaidListing reports whether the owner holds an approved and paid listing.
func (repo *businessListingRepository) HasApprovedPaidListing(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessListingModel{}).
		Where("owner_id = ? AND status = ? AND payment_status = ?",
			ownerID, string(entity.ListingStatusApproved), string(entity.ListingPaymentPaid)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check listing eligibility")
	}

	return count > 0, nil
}

// UpdatePaymentStatus sets the fee status unless the listing is already paid.
func (repo *businessListingRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.ListingPaymentStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessListingModel{}).
		Where("id = ? AND payment_status <> ?", id, string(entity.ListingPaymentPaid)).
		Update("payment_status", string(status))

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update listing payment status")
	}

	return result.RowsAffected > 0, nil
}

// AssignIdentity fills the certificate id and public username only where they
// are still NULL.
func (repo *businessListingRepository) AssignIdentity(ctx context.Context, id uuid.UUID, certificateID, username string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessListingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"certificate_id":  gorm.Expr("COALESCE(certificate_id, ?)", nullableString(certificateID)),
			"public_username": gorm.Expr("COALESCE(public_username, ?)", nullableString(username)),
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateListingIdentity
		}

		return errors.Wrap(result.Error, "failed to assign listing identity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// UpdateModeration persists the moderation outcome of a listing.
func (repo *businessListingRepository) UpdateModeration(ctx context.Context, listing *entity.BusinessListing) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessListingModel{}).
		Where("id = ?", listing.ID).
		Updates(map[string]any{
			"status":           string(listing.Status),
			"certificate_id":   nullableString(listing.CertificateID),
			"public_username":  nullableString(listing.PublicUsername),
			"rejection_reason": listing.RejectionReason,
			"approved_at":      listing.ApprovedAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateListingIdentity
		}

		return errors.Wrap(result.Error, "failed to update listing moderation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// ExistsByCertificateID reports whether certificateID is taken.
func (repo *businessListingRepository) ExistsByCertificateID(ctx context.Context, certificateID string) (bool, error) {
	return repo.exists(ctx, "certificate_id = ?", certificateID)
}

// ExistsByPublicUsername reports whether username is taken.
func (repo *businessListingRepository) ExistsByPublicUsername(ctx context.Context, username string) (bool, error) {
	return repo.exists(ctx, "public_username = ?", username)
}

func (repo *businessListingRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessListingModel{}).
		Where(query, args...).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check listing identity")
	}

	return count > 0, nil
}

// adminUserRepository implements the repository.AdminUserRepository interface.
type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository is the constructor for adminUserRepository.
func NewAdminUserRepository(db *gorm.DB) repository.AdminUserRepository {
	return &adminUserRepository{db: db}
}

// FindByEmail retrieves an admin by login email, case-insensitively.
func (repo *adminUserRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin user")
	}

	return &entity.AdminUser{
		ID:           adminM.ID,
		Email:        adminM.Email,
		Name:         adminM.Name,
		PasswordHash: adminM.PasswordHash,
		CreatedAt:    adminM.CreatedAt,
	}, nil
}

// --- Mapper Functions ---

func toBusinessUserDomain(data *model.BusinessUserModel) *entity.BusinessUser {
	if data == nil {
		return nil
	}

	return &entity.BusinessUser{
		ID:               data.ID,
		Name:             data.Name,
		Email:            data.Email,
		Phone:            data.Phone,
		PasswordHash:     data.PasswordHash,
		ReferredByUserID: data.ReferredByUserID,
		FCMToken:         data.FCMToken,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toBusinessListingDomain(data *model.BusinessListingModel) *entity.BusinessListing {
	if data == nil {
		return nil
	}

	return &entity.BusinessListing{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		BusinessName:    data.BusinessName,
		Category:        data.Category,
		City:            data.City,
		PaymentStatus:   entity.ListingPaymentStatus(data.PaymentStatus),
		Status:          entity.ListingStatus(data.Status),
		CertificateID:   stringValue(data.CertificateID),
		PublicUsername:  stringValue(data.PublicUsername),
		RejectionReason: data.RejectionReason,
		ApprovedAt:      data.ApprovedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
