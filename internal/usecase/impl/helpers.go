package impl

import (
	"context"
	"strings"

	"bizhub/internal/domain/catalog"
	"bizhub/internal/domain/entity"
	domainerrors "bizhub/internal/domain/errors"
	"bizhub/internal/domain/identifier"
	"bizhub/internal/domain/repository"
	"bizhub/internal/errors"

	"github.com/google/uuid"
)

func trimSpace(s string) string {
	return strings.TrimSpace(s)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// identifierError maps exhausted identifier retries to the domain error.
func identifierError(err error) error {
	if errors.Is(err, identifier.ErrExhaustedRetries) {
		return errors.Wrap(domainerrors.ErrExhaustedRetries, err.Error())
	}

	return errors.Wrap(err, "failed to allocate identifier")
}

func addOnStrings(ids []catalog.AddOnID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}

	return out
}

// serviceLabels lists the plan and accepted add-ons by display name.
func serviceLabels(plan catalog.Plan, addOns []catalog.AddOnID) []string {
	labels := make([]string, 0, len(addOns)+1)
	labels = append(labels, plan.Name)
	for _, id := range addOns {
		if addOn, ok := catalog.LookupAddOn(id); ok {
			labels = append(labels, addOn.Name)
		}
	}

	return labels
}

// findOwnedListing loads a listing and hides listings of other owners.
func findOwnedListing(
	ctx context.Context,
	listingRepo repository.BusinessListingRepository,
	ownerID, listingID uuid.UUID,
) (*entity.BusinessListing, error) {
	listing, err := listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}
	if listing.OwnerID != ownerID {
		return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing belongs to another user")
	}

	return listing, nil
}
