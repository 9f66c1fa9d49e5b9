package usecase

import (
	"context"

	"bizhub/internal/domain/entity"

	"github.com/google/uuid"
)

// RejectListingInput is an operator rejection.
type RejectListingInput struct {
	ListingID uuid.UUID
	Reason    string
	// ResetIdentity clears the certificate id and public username.
	ResetIdentity bool
}

// ListingUsecase moderates business listings and serves their certificates.
type ListingUsecase interface {
	// ApproveListing approves a listing, assigning its certificate id and
	// public username the first time.
	ApproveListing(ctx context.Context, listingID uuid.UUID) (*entity.BusinessListing, error)
	RejectListing(ctx context.Context, input *RejectListingInput) (*entity.BusinessListing, error)
	// CertificateQR returns the PNG QR code of an approved listing owned by ownerID.
	CertificateQR(ctx context.Context, ownerID, listingID uuid.UUID) ([]byte, error)
}
