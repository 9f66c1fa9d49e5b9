package repository

import (
	"context"
	"time"

	"bizhub/internal/domain/entity"
	"bizhub/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrDuplicateEarning is returned when the referred user already produced an earning.
	ErrDuplicateEarning = errors.New("referral earning already exists for referred user")
	// ErrWithdrawalNotFound is returned when a withdrawal is not found.
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	// ErrOpenWithdrawalExists is returned when the user already has a requested or processing withdrawal.
	ErrOpenWithdrawalExists = errors.New("open withdrawal already exists")
)

// ReferralEarningRepository defines persistence for referral earnings.
type ReferralEarningRepository interface {
	// Create persists an earning. Returns ErrDuplicateEarning if the referred
	// user already has one.
	Create(ctx context.Context, earning *entity.ReferralEarning) error

	// ExistsForReferredUser reports whether an earning exists for the referred user.
	ExistsForReferredUser(ctx context.Context, referredUserID uuid.UUID) (bool, error)

	// SumCredited totals the credited earnings of a referrer.
	SumCredited(ctx context.Context, referrerID uuid.UUID) (decimal.Decimal, error)

	// ListByReferrer returns a referrer's earnings, newest first.
	ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*entity.ReferralEarning, error)
}

// ReferralWithdrawalRepository defines persistence for withdrawal requests.
type ReferralWithdrawalRepository interface {
	// Create persists a withdrawal. Returns ErrOpenWithdrawalExists if the user
	// already has an open one.
	Create(ctx context.Context, withdrawal *entity.ReferralWithdrawal) error

	// FindByID retrieves a withdrawal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReferralWithdrawal, error)

	// ExistsByRequestNo reports whether requestNo is taken.
	ExistsByRequestNo(ctx context.Context, requestNo string) (bool, error)

	// HasOpenRequest reports whether the user has a requested or processing withdrawal.
	HasOpenRequest(ctx context.Context, userID uuid.UUID) (bool, error)

	// SumByStatus totals the user's withdrawals in the given statuses.
	SumByStatus(ctx context.Context, userID uuid.UUID, statuses ...entity.WithdrawalStatus) (decimal.Decimal, error)

	// ListByUser returns the user's withdrawals, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ReferralWithdrawal, error)

	// ListByStatus returns withdrawals in the given statuses, oldest first.
	ListByStatus(ctx context.Context, statuses ...entity.WithdrawalStatus) ([]*entity.ReferralWithdrawal, error)

	// UpdateStatus changes the status unless the withdrawal is already paid.
	// It reports whether a row changed.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.WithdrawalStatus, note string, processedAt *time.Time) (bool, error)
}
