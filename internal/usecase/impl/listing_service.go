package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bizhub/config"
	deliverycontext "bizhub/internal/delivery/context"
	"bizhub/internal/domain/entity"
	domainerrors "bizhub/internal/domain/errors"
	"bizhub/internal/domain/identifier"
	"bizhub/internal/domain/repository"
	"bizhub/internal/domain/service"
	"bizhub/internal/errors"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// maxIdentityAttempts bounds approvals that lose a certificate id or
	// username race to a concurrent approval.
	maxIdentityAttempts = 3

	certificatePath     = "/certificates/"
	certificateKeyDir   = "certificates/"
	certificateKeyExt   = ".png"
	certificateMimeType = "image/png"
)

// ListingServiceParams holds the dependencies of the listing service.
type ListingServiceParams struct {
	fx.In

	Config      *config.Config
	ListingRepo repository.BusinessListingRepository
	QRCode      service.QRCodeService
	Blobs       service.BlobStore
	IDGen       *identifier.Generator
	Logger      *slog.Logger
}

// listingService implements the ListingUsecase interface.
type listingService struct {
	listingRepo repository.BusinessListingRepository
	qrCode      service.QRCodeService
	blobs       service.BlobStore
	idGen       *identifier.Generator
	baseURL     string
	now         func() time.Time
	logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	baseURL := ""
	if params.Config != nil && params.Config.QRCode != nil {
		baseURL = strings.TrimRight(params.Config.QRCode.BaseURL, "/")
	}

	return &listingService{
		listingRepo: params.ListingRepo,
		qrCode:      params.QRCode,
		blobs:       params.Blobs,
		idGen:       params.IDGen,
		baseURL:     baseURL,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ApproveListing approves a listing. The certificate id and public username
// are assigned only while empty, so re-approval keeps them stable and
// concurrent approvals all return the identity that was stored first.
func (srv *listingService) ApproveListing(ctx context.Context, listingID uuid.UUID) (*entity.BusinessListing, error) {
	listing, err := srv.assignIdentity(ctx, listingID)
	if err != nil {
		return nil, err
	}

	approvedAt := srv.now()
	listing.Status = entity.ListingStatusApproved
	listing.RejectionReason = ""
	listing.ApprovedAt = &approvedAt

	if err := srv.listingRepo.UpdateModeration(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to approve listing")
	}

	srv.log(ctx).Info("Listing approved",
		slog.String("listing_id", listing.ID.String()),
		slog.String("certificate_id", listing.CertificateID),
		slog.String("public_username", listing.PublicUsername))

	return listing, nil
}

// assignIdentity fills a missing certificate id or username and returns the
// listing as stored afterwards.
func (srv *listingService) assignIdentity(ctx context.Context, listingID uuid.UUID) (*entity.BusinessListing, error) {
	for attempt := 1; ; attempt++ {
		listing, err := srv.findListing(ctx, listingID)
		if err != nil {
			return nil, err
		}
		if listing.CertificateID != "" && listing.PublicUsername != "" {
			return listing, nil
		}
		if attempt > maxIdentityAttempts {
			return nil, errors.Wrap(domainerrors.ErrExhaustedRetries, "listing identity kept colliding")
		}

		certificateID, username := listing.CertificateID, listing.PublicUsername
		if certificateID == "" {
			certificateID, err = srv.idGen.Unique(ctx, identifier.PrefixCertificate, srv.listingRepo.ExistsByCertificateID)
			if err != nil {
				return nil, identifierError(err)
			}
		}
		if username == "" {
			username, err = srv.idGen.UniqueUsername(ctx, listing.BusinessName, srv.listingRepo.ExistsByPublicUsername)
			if err != nil {
				return nil, identifierError(err)
			}
		}

		err = srv.listingRepo.AssignIdentity(ctx, listing.ID, certificateID, username)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrDuplicateListingIdentity) {
			return nil, errors.Wrap(err, "failed to assign listing identity")
		}
		srv.log(ctx).Warn("Listing identity collided, retrying", slog.Int("attempt", attempt))
	}
}

// RejectListing rejects a listing, clearing its identity only on request.
func (srv *listingService) RejectListing(ctx context.Context, input *usecase.RejectListingInput) (*entity.BusinessListing, error) {
	reason := trimSpace(input.Reason)
	if reason == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("rejection reason is required"))
	}

	listing, err := srv.findListing(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}

	listing.Status = entity.ListingStatusRejected
	listing.RejectionReason = reason
	if input.ResetIdentity {
		listing.CertificateID = ""
		listing.PublicUsername = ""
		listing.ApprovedAt = nil
	}

	if err := srv.listingRepo.UpdateModeration(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to reject listing")
	}

	srv.log(ctx).Info("Listing rejected",
		slog.String("listing_id", listing.ID.String()),
		slog.Bool("reset_identity", input.ResetIdentity))

	return listing, nil
}

// CertificateQR returns the QR code of the public certificate URL, rendering
// and storing it on first use.
func (srv *listingService) CertificateQR(ctx context.Context, ownerID, listingID uuid.UUID) ([]byte, error) {
	listing, err := findOwnedListing(ctx, srv.listingRepo, ownerID, listingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != entity.ListingStatusApproved || listing.CertificateID == "" {
		return nil, errors.WithStack(domainerrors.ErrListingNotApproved)
	}

	key := certificateKeyDir + listing.CertificateID + certificateKeyExt

	data, err := srv.blobs.Read(ctx, key)
	switch {
	case err == nil:
		return data, nil
	case !errors.Is(err, service.ErrBlobNotFound):
		srv.log(ctx).Warn("Failed to read stored certificate QR, rendering again",
			slog.String("key", key),
			slog.Any("error", err))
	}

	data, err = srv.qrCode.GenerateCertificateQR(srv.certificateURL(listing.CertificateID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to render certificate QR")
	}

	if err := srv.blobs.Write(ctx, key, certificateMimeType, data); err != nil {
		srv.log(ctx).Warn("Failed to store certificate QR",
			slog.String("key", key),
			slog.Any("error", err))
	}

	return data, nil
}

func (srv *listingService) certificateURL(certificateID string) string {
	return srv.baseURL + certificatePath + certificateID
}

func (srv *listingService) findListing(ctx context.Context, id uuid.UUID) (*entity.BusinessListing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}
