package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessUserModel is the GORM-specific struct for the 'business_users' table.
type BusinessUserModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name             string     `gorm:"size:200;not null"`
	Email            string     `gorm:"size:320;not null;uniqueIndex"`
	Phone            string     `gorm:"size:32"`
	PasswordHash     string     `gorm:"size:255;not null"`
	ReferredByUserID *uuid.UUID `gorm:"type:uuid;index"`
	FCMToken         string     `gorm:"column:fcm_token;size:512"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessUserModel) TableName() string {
	return "business_users"
}

// BusinessListingModel is the GORM-specific struct for the 'business_listings' table.
type BusinessListingModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessName    string    `gorm:"size:200;not null"`
	Category        string    `gorm:"size:100"`
	City            string    `gorm:"size:100"`
	PaymentStatus   string    `gorm:"size:20;not null;default:'unpaid'"`
	Status          string    `gorm:"size:20;not null;default:'draft'"`
	CertificateID   *string   `gorm:"size:32;uniqueIndex"`
	PublicUsername  *string   `gorm:"size:100;uniqueIndex"`
	RejectionReason string    `gorm:"size:500"`
	ApprovedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessListingModel) TableName() string {
	return "business_listings"
}

// AdminUserModel is the GORM-specific struct for the 'admin_users' table.
type AdminUserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"size:320;not null;uniqueIndex"`
	Name         string    `gorm:"size:200"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminUserModel) TableName() string {
	return "admin_users"
}
