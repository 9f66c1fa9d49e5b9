package usecase

import (
	"context"

	"bizhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLeadInput is a contact form submission.
type CreateLeadInput struct {
	Name          string
	Email         string
	Phone         string
	WebsiteStatus string
	Goals         []string
	Channels      []string
}

// LeadUsecase manages the sales pipeline.
type LeadUsecase interface {
	CreateLead(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error)
	// UpdateLeadStatus moves a lead. A paid lead never moves back.
	UpdateLeadStatus(ctx context.Context, leadID uuid.UUID, status entity.LeadStatus) (*entity.Lead, error)
}
