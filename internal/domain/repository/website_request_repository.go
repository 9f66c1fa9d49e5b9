package repository

import (
	"context"

	"bizhub/internal/domain/entity"
	"bizhub/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrWebsiteRequestNotFound is returned when a website request is not found.
	ErrWebsiteRequestNotFound = errors.New("website request not found")
	// ErrDuplicateIdempotencyKey is returned when a checkout with the same key already exists.
	ErrDuplicateIdempotencyKey = errors.New("idempotency key already used")
)

// WebsiteRequestRepository defines persistence for website requests.
type WebsiteRequestRepository interface {
	// Create persists a new request.
	Create(ctx context.Context, request *entity.WebsiteRequest) error

	// FindByID retrieves a request by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WebsiteRequest, error)

	// FindByIdempotencyKey retrieves the request created with key.
	FindByIdempotencyKey(ctx context.Context, key string) (*entity.WebsiteRequest, error)

	// ExistsByRequestNo reports whether requestNo is taken.
	ExistsByRequestNo(ctx context.Context, requestNo string) (bool, error)

	// UpdateStatus sets the status unless the request already reached success.
	// It reports whether a row changed.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.WebsiteRequestStatus) (bool, error)
}
