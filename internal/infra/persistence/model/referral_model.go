package model

import (
	"time"

	"bizhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OpenWithdrawalIndex allows a single requested or processing withdrawal per user.
const OpenWithdrawalIndex = "uq_withdrawals_open_per_user"

// ReferralEarningModel is the GORM-specific struct for the 'business_referral_earnings' table.
type ReferralEarningModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReferrerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReferredUserID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	ListingID      uuid.UUID       `gorm:"type:uuid;not null"`
	PaymentID      string          `gorm:"size:64"`
	OrderNo        string          `gorm:"size:32"`
	BaseAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CommissionRate decimal.Decimal `gorm:"type:numeric(5,4);not null"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency       string          `gorm:"size:3;not null"`
	Status         string          `gorm:"size:20;not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReferralEarningModel) TableName() string {
	return "business_referral_earnings"
}

// ReferralWithdrawalModel is the GORM-specific struct for the 'business_referral_withdrawals' table.
type ReferralWithdrawalModel struct {
	ID          uuid.UUID                                `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RequestNo   string                                   `gorm:"size:32;not null;uniqueIndex"`
	UserID      uuid.UUID                                `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal                          `gorm:"type:numeric(12,2);not null"`
	Method      string                                   `gorm:"size:10;not null"`
	Details     datatypes.JSONType[entity.PayoutDetails] `gorm:"type:jsonb;not null"`
	Status      string                                   `gorm:"size:20;not null;default:'requested';index"`
	AdminNote   string                                   `gorm:"size:500"`
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReferralWithdrawalModel) TableName() string {
	return "business_referral_withdrawals"
}
