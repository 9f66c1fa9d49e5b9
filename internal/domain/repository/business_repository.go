package repository

import (
	"context"

	"bizhub/internal/domain/entity"
	"bizhub/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrBusinessUserNotFound is returned when a business user is not found.
	ErrBusinessUserNotFound = errors.New("business user not found")
	// ErrListingNotFound is returned when a listing is not found.
	ErrListingNotFound = errors.New("business listing not found")
	// ErrDuplicateListingIdentity is returned when a certificate id or username is taken.
	ErrDuplicateListingIdentity = errors.New("listing certificate id or username already taken")
)

// BusinessUserRepository defines persistence for business users.
type BusinessUserRepository interface {
	// FindByID retrieves a user by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessUser, error)

	// FindByEmail retrieves a user by login email.
	FindByEmail(ctx context.Context, email string) (*entity.BusinessUser, error)
}

// BusinessListingRepository defines persistence for business listings.
type BusinessListingRepository interface {
	// FindByID retrieves a listing by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessListing, error)

	// HasApprovedPaidListing reports whether the owner holds a listing that is
	// both approved and paid.
	HasApprovedPaidListing(ctx context.Context, ownerID uuid.UUID) (bool, error)

	// UpdatePaymentStatus sets the fee status unless the listing is already paid.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.ListingPaymentStatus) (bool, error)

	// AssignIdentity stores certificateID and username on the columns that are
	// still empty. Values already assigned are kept, so the first writer wins.
	// It returns ErrDuplicateListingIdentity when a value is taken.
	AssignIdentity(ctx context.Context, id uuid.UUID, certificateID, username string) error

	// UpdateModeration persists status, certificate id, username, rejection
	// reason and approval time.
	UpdateModeration(ctx context.Context, listing *entity.BusinessListing) error

	// ExistsByCertificateID reports whether certificateID is taken.
	ExistsByCertificateID(ctx context.Context, certificateID string) (bool, error)

	// ExistsByPublicUsername reports whether username is taken.
	ExistsByPublicUsername(ctx context.Context, username string) (bool, error)
}

// AdminUserRepository defines persistence for back-office operators.
type AdminUserRepository interface {
	// FindByEmail retrieves an admin by login email.
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
}

// ErrAdminUserNotFound is returned when an admin is not found.
var ErrAdminUserNotFound = errors.New("admin user not found")
