package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EarningStatusCredited is the only status an earning is created with.
const EarningStatusCredited = "credited"

// ReferralEarning is the single commission credited for a referred user.
type ReferralEarning struct {
	ID             uuid.UUID       // Primary key.
	ReferrerID     uuid.UUID       // User receiving the commission.
	ReferredUserID uuid.UUID       // Unique: one earning per referred user.
	ListingID      uuid.UUID       // Listing whose payment triggered the credit.
	PaymentID      string          // Gateway payment id.
	OrderNo        string          // Order that was paid.
	BaseAmount     decimal.Decimal // Referred payment amount.
	CommissionRate decimal.Decimal // Rate applied.
	Amount         decimal.Decimal // Commission, 2 decimals.
	Currency       string
	Status         string
	CreatedAt      time.Time
}

// WithdrawalStatus is the payout state of a withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalStatusRequested  WithdrawalStatus = "requested"
	WithdrawalStatusProcessing WithdrawalStatus = "processing"
	WithdrawalStatusPaid       WithdrawalStatus = "paid"
	WithdrawalStatusRejected   WithdrawalStatus = "rejected"
	WithdrawalStatusCancelled  WithdrawalStatus = "cancelled"
)

// IsValid checks if the status is known.
func (s WithdrawalStatus) IsValid() bool {
	switch s {
	case WithdrawalStatusRequested, WithdrawalStatusProcessing, WithdrawalStatusPaid,
		WithdrawalStatusRejected, WithdrawalStatusCancelled:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the status locks wallet balance.
func (s WithdrawalStatus) IsOpen() bool {
	return s == WithdrawalStatusRequested || s == WithdrawalStatusProcessing
}

// OpenWithdrawalStatuses lock balance until resolved.
var OpenWithdrawalStatuses = []WithdrawalStatus{WithdrawalStatusRequested, WithdrawalStatusProcessing}

// PayoutMethod is how a withdrawal is paid out.
type PayoutMethod string

const (
	PayoutMethodUPI  PayoutMethod = "upi"
	PayoutMethodBank PayoutMethod = "bank"
)

// PayoutDetails carries the destination for a payout.
type PayoutDetails struct {
	UPIID         string `json:"upiId,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
	AccountHolder string `json:"accountHolder,omitempty"`
}

// ReferralWithdrawal is a payout request against the referral wallet.
type ReferralWithdrawal struct {
	ID          uuid.UUID        // Primary key.
	RequestNo   string           // Human readable number, WD-YYYYMMDD-NNNNNN.
	UserID      uuid.UUID        // Requesting referrer.
	Amount      decimal.Decimal  // Requested payout.
	Method      PayoutMethod     // upi or bank.
	Details     PayoutDetails    // Destination.
	Status      WithdrawalStatus // Payout state. paid is terminal.
	AdminNote   string           // Note left by the operator.
	ProcessedAt *time.Time       // Set on paid, rejected and cancelled.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AvailableBalance is max(0, earned - paidOut - locked).
func AvailableBalance(earned, paidOut, locked decimal.Decimal) decimal.Decimal {
	available := earned.Sub(paidOut).Sub(locked)
	if available.IsNegative() {
		return decimal.Zero
	}

	return available
}
