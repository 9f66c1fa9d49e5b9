package impl

import (
	"context"
	"log/slog"

	deliverycontext "bizhub/internal/delivery/context"
	"bizhub/internal/domain/entity"
	domainerrors "bizhub/internal/domain/errors"
	"bizhub/internal/domain/repository"
	"bizhub/internal/errors"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// LeadServiceParams holds the dependencies of the lead service.
type LeadServiceParams struct {
	fx.In

	LeadRepo repository.LeadRepository
	Logger   *slog.Logger
}

// leadService implements the LeadUsecase interface.
type leadService struct {
	leadRepo repository.LeadRepository
	logger   *slog.Logger
}

// NewLeadService is the constructor for leadService.
func NewLeadService(params LeadServiceParams) usecase.LeadUsecase {
	return &leadService{
		leadRepo: params.LeadRepo,
		logger:   params.Logger,
	}
}

func (srv *leadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateLead stores a contact form submission as a new lead.
func (srv *leadService) CreateLead(ctx context.Context, input *usecase.CreateLeadInput) (*entity.Lead, error) {
	lead := &entity.Lead{
		Name:          trimSpace(input.Name),
		Email:         normalizeEmail(input.Email),
		Phone:         trimSpace(input.Phone),
		WebsiteStatus: trimSpace(input.WebsiteStatus),
		Goals:         entity.UniqueTags(input.Goals),
		Channels:      entity.UniqueTags(input.Channels),
		Source:        entity.LeadSourceContactForm,
		Status:        entity.LeadStatusNew,
	}
	if lead.Name == "" || lead.Email == "" || lead.Phone == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name, email and phone are required"))
	}

	if err := srv.leadRepo.Create(ctx, lead); err != nil {
		return nil, errors.Wrap(err, "failed to create lead")
	}

	srv.log(ctx).Info("Lead created", slog.String("lead_id", lead.ID.String()))

	return lead, nil
}

// UpdateLeadStatus moves a lead through the pipeline. A paid lead never moves back.
func (srv *leadService) UpdateLeadStatus(ctx context.Context, leadID uuid.UUID, status entity.LeadStatus) (*entity.Lead, error) {
	if !status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown lead status"))
	}

	lead, err := srv.leadRepo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLeadNotFound, "lead not found")
		}

		return nil, errors.Wrap(err, "failed to find lead")
	}

	if lead.Status == status {
		return lead, nil
	}
	if lead.Status == entity.LeadStatusPaid {
		return nil, errors.Wrap(domainerrors.ErrTerminalState, "lead is paid")
	}

	if err := srv.leadRepo.UpdateStatus(ctx, lead.ID, status); err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLeadNotFound, "lead not found")
		}

		return nil, errors.Wrap(err, "failed to update lead status")
	}

	srv.log(ctx).Info("Lead status updated",
		slog.String("lead_id", lead.ID.String()),
		slog.String("from", string(lead.Status)),
		slog.String("to", string(status)))

	lead.Status = status

	return lead, nil
}
