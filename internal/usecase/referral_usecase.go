package usecase

import (
	"context"

	"bizhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionInput describes a paid listing fee that may earn a referral commission.
type CommissionInput struct {
	ReferredUserID uuid.UUID
	ListingID      uuid.UUID
	PaymentID      string
	OrderNo        string
	Amount         decimal.Decimal
	Currency       string
}

// WithdrawalInput defines a payout request.
type WithdrawalInput struct {
	Amount  decimal.Decimal
	Method  entity.PayoutMethod
	Details entity.PayoutDetails
}

// UpdateWithdrawalStatusInput is an operator transition of a withdrawal.
type UpdateWithdrawalStatusInput struct {
	WithdrawalID uuid.UUID
	Status       entity.WithdrawalStatus
	Note         string
}

// Wallet summarizes a referrer's balance.
type Wallet struct {
	Earned      decimal.Decimal
	PaidOut     decimal.Decimal
	Locked      decimal.Decimal
	Available   decimal.Decimal
	Eligible    bool
	Earnings    []*entity.ReferralEarning
	Withdrawals []*entity.ReferralWithdrawal
}

// PayoutExport is an encoded payout sheet.
type PayoutExport struct {
	Filename    string
	ContentType string
	Data        []byte
	Count       int
}

// ReferralUsecase manages referral commissions and withdrawals.
type ReferralUsecase interface {
	// ProcessCommission credits the referrer of a paying user at most once.
	// It returns nil when no commission applies.
	ProcessCommission(ctx context.Context, input *CommissionInput) (*entity.ReferralEarning, error)
	// AvailableBalance is earned minus paid out minus locked, floored at zero.
	AvailableBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	// GetWallet returns balances with earning and withdrawal history.
	GetWallet(ctx context.Context, userID uuid.UUID) (*Wallet, error)
	// RequestWithdrawal opens a payout request.
	RequestWithdrawal(ctx context.Context, userID uuid.UUID, input *WithdrawalInput) (*entity.ReferralWithdrawal, error)
	// UpdateWithdrawalStatus moves a withdrawal. paid is terminal.
	UpdateWithdrawalStatus(ctx context.Context, input *UpdateWithdrawalStatusInput) (*entity.ReferralWithdrawal, error)
	// ListWithdrawals returns withdrawals in the given statuses, oldest first.
	ListWithdrawals(ctx context.Context, statuses ...entity.WithdrawalStatus) ([]*entity.ReferralWithdrawal, error)
	// ExportPayouts renders every open withdrawal as a spreadsheet.
	ExportPayouts(ctx context.Context) (*PayoutExport, error)
}
