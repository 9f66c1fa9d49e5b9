package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PricingColumns holds a price breakdown in whole rupees.
type PricingColumns struct {
	BasePrice   int64 `gorm:"not null"`
	AddOnAmount int64 `gorm:"not null;default:0"`
	Subtotal    int64 `gorm:"not null"`
	GST         int64 `gorm:"column:gst;not null"`
	Total       int64 `gorm:"not null"`
}

// WebsiteRequestModel is the GORM-specific struct for the 'website_requests' table.
type WebsiteRequestModel struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RequestNo      string                      `gorm:"size:32;not null;uniqueIndex"`
	LeadID         uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Plan           string                      `gorm:"size:32;not null"`
	CustomerName   string                      `gorm:"size:200;not null"`
	CustomerEmail  string                      `gorm:"size:320;not null"`
	CustomerPhone  string                      `gorm:"size:32;not null"`
	BusinessName   string                      `gorm:"size:200"`
	Goals          datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	AddOns         datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Pricing        PricingColumns              `gorm:"embedded"`
	LatestOrderID  *uuid.UUID                  `gorm:"type:uuid"`
	Status         string                      `gorm:"size:20;not null;default:'new'"`
	IdempotencyKey *string                     `gorm:"size:128;uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (WebsiteRequestModel) TableName() string {
	return "website_requests"
}

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderNo          string                      `gorm:"size:32;not null;uniqueIndex"`
	OrderType        string                      `gorm:"size:32;not null;index"`
	RequestID        *uuid.UUID                  `gorm:"type:uuid;index"`
	LeadID           *uuid.UUID                  `gorm:"type:uuid"`
	ListingID        *uuid.UUID                  `gorm:"type:uuid;index"`
	UserID           *uuid.UUID                  `gorm:"type:uuid"`
	Plan             string                      `gorm:"size:32;not null"`
	CustomerName     string                      `gorm:"size:200"`
	CustomerEmail    string                      `gorm:"size:320"`
	CustomerPhone    string                      `gorm:"size:32"`
	Services         datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Pricing          PricingColumns              `gorm:"embedded"`
	Currency         string                      `gorm:"size:3;not null"`
	Status           string                      `gorm:"size:20;not null;default:'initiated'"`
	GatewayOrderID   *string                     `gorm:"size:64;uniqueIndex"`
	GatewayPaymentID string                      `gorm:"size:64"`
	FailureReason    string                      `gorm:"size:500"`
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// PaymentModel is the GORM-specific struct for the 'payments' table.
type PaymentModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	GatewayOrderID   string    `gorm:"size:64"`
	GatewayPaymentID string    `gorm:"size:64"`
	Amount           int64     `gorm:"not null"`
	Currency         string    `gorm:"size:3;not null"`
	Status           string    `gorm:"size:20;not null"`
	PaidAt           time.Time `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
