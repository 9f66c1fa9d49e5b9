// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bizhub/internal/domain/entity"
	"bizhub/internal/errors"

	"github.com/google/uuid"
)

// ErrLeadNotFound is returned when a lead is not found.
var ErrLeadNotFound = errors.New("lead not found")

// LeadRepository defines persistence for leads.
type LeadRepository interface {
	// Create persists a new lead.
	Create(ctx context.Context, lead *entity.Lead) error

	// FindByID retrieves a lead by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)

	// UpdateStatus sets the pipeline stage of a lead.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LeadStatus) error
}
