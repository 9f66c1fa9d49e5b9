package entity

import (
	"time"

	"github.com/google/uuid"
)

// WebsiteRequestStatus tracks a website build request through checkout.
type WebsiteRequestStatus string

const (
	WebsiteRequestStatusNew        WebsiteRequestStatus = "new"
	WebsiteRequestStatusPending    WebsiteRequestStatus = "pending"
	WebsiteRequestStatusInProgress WebsiteRequestStatus = "in_progress"
	WebsiteRequestStatusSuccess    WebsiteRequestStatus = "success"
	WebsiteRequestStatusFailed     WebsiteRequestStatus = "failed"
)

// WebsiteRequest is a priced request for a website build.
type WebsiteRequest struct {
	ID             uuid.UUID            // Primary key.
	RequestNo      string               // Human readable number, WR-YYYYMMDD-NNNNNN.
	LeadID         uuid.UUID            // Lead created for this request.
	Plan           string               // Catalog plan id.
	CustomerName   string               // Contact name.
	CustomerEmail  string               // Contact email.
	CustomerPhone  string               // Contact phone.
	BusinessName   string               // Business the site is for.
	Goals          []string             // Goal tags.
	AddOns         []string             // Accepted add-on ids.
	Pricing        PriceBreakdown       // Quote at checkout time.
	LatestOrderID  *uuid.UUID           // Most recent order created for this request.
	Status         WebsiteRequestStatus // Checkout state. success is terminal.
	IdempotencyKey string               // Client supplied retry key, empty when absent.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
