package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessUser owns listings and may refer other business users.
type BusinessUser struct {
	ID               uuid.UUID  // Primary key.
	Name             string     // Display name.
	Email            string     // Login email.
	Phone            string     // Contact phone.
	PasswordHash     string     // bcrypt hash.
	ReferredByUserID *uuid.UUID // Referrer, if the user signed up through a referral.
	FCMToken         string     // Push token of the user's last device.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ListingPaymentStatus is the fee payment state of a listing.
type ListingPaymentStatus string

const (
	ListingPaymentUnpaid  ListingPaymentStatus = "unpaid"
	ListingPaymentPending ListingPaymentStatus = "pending"
	ListingPaymentPaid    ListingPaymentStatus = "paid"
	ListingPaymentFailed  ListingPaymentStatus = "failed"
)

// ListingStatus is the moderation state of a listing.
type ListingStatus string

const (
	ListingStatusDraft         ListingStatus = "draft"
	ListingStatusPendingReview ListingStatus = "pending_review"
	ListingStatusApproved      ListingStatus = "approved"
	ListingStatusRejected      ListingStatus = "rejected"
)

// BusinessListing is a public business profile.
type BusinessListing struct {
	ID              uuid.UUID            // Primary key.
	OwnerID         uuid.UUID            // Owning business user.
	BusinessName    string               // Display name, source of the public username.
	Category        string               // Business category.
	City            string               // City of operation.
	PaymentStatus   ListingPaymentStatus // Listing fee state.
	Status          ListingStatus        // Moderation state.
	CertificateID   string               // Assigned on first approval.
	PublicUsername  string               // Assigned on first approval.
	RejectionReason string               // Last rejection reason.
	ApprovedAt      *time.Time           // Last approval time.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsEligibleForReferral reports whether the listing is both approved and paid.
func (l *BusinessListing) IsEligibleForReferral() bool {
	return l.Status == ListingStatusApproved && l.PaymentStatus == ListingPaymentPaid
}

// AdminUser is a back-office operator.
type AdminUser struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
