package impl

import (
	"context"
	"testing"

	"bizhub/internal/domain/entity"
	domainerrors "bizhub/internal/domain/errors"
	"bizhub/internal/domain/repository"
	"bizhub/internal/errors"
	mockRepo "bizhub/internal/mocks/repository"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLeadService_CreateLead_Success(t *testing.T) {
	leadRepo := mockRepo.NewMockLeadRepository(t)
	service := NewLeadService(LeadServiceParams{LeadRepo: leadRepo, Logger: newDiscardLogger()})

	ctx := context.Background()
	leadRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Lead")).
		Run(func(_ context.Context, lead *entity.Lead) {
			lead.ID = uuid.New()
		}).
		Return(nil)

	lead, err := service.CreateLead(ctx, &usecase.CreateLeadInput{
		Name:          " Asha ",
		Email:         " ASHA@Example.COM",
		Phone:         "9876543210",
		WebsiteStatus: "no website",
		Goals:         []string{"leads", " ", "leads", "bookings"},
		Channels:      []string{"instagram", "instagram"},
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, lead.ID)
	assert.Equal(t, "Asha", lead.Name)
	assert.Equal(t, "asha@example.com", lead.Email)
	assert.Equal(t, []string{"leads", "bookings"}, lead.Goals)
	assert.Equal(t, []string{"instagram"}, lead.Channels)
	assert.Equal(t, entity.LeadSourceContactForm, lead.Source)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
}

func TestLeadService_CreateLead_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateLeadInput
	}{
		{name: "no name", input: &usecase.CreateLeadInput{Email: "a@b.com", Phone: "1"}},
		{name: "no email", input: &usecase.CreateLeadInput{Name: "A", Phone: "1"}},
		{name: "blank phone", input: &usecase.CreateLeadInput{Name: "A", Email: "a@b.com", Phone: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leadRepo := mockRepo.NewMockLeadRepository(t)
			service := NewLeadService(LeadServiceParams{LeadRepo: leadRepo, Logger: newDiscardLogger()})

			_, err := service.CreateLead(context.Background(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestLeadService_CreateLead_RepositoryError(t *testing.T) {
	leadRepo := mockRepo.NewMockLeadRepository(t)
	service := NewLeadService(LeadServiceParams{LeadRepo: leadRepo, Logger: newDiscardLogger()})

	leadRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := service.CreateLead(context.Background(), &usecase.CreateLeadInput{Name: "A", Email: "a@b.com", Phone: "1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create lead")
}

func TestLeadService_UpdateLeadStatus(t *testing.T) {
	leadID := uuid.New()

	tests := []struct {
		name       string
		current    entity.LeadStatus
		target     entity.LeadStatus
		findErr    error
		wantUpdate bool
		wantErr    error
	}{
		{name: "advance pipeline", current: entity.LeadStatusNew, target: entity.LeadStatusContacted, wantUpdate: true},
		{name: "same status is a no-op", current: entity.LeadStatusQualified, target: entity.LeadStatusQualified},
		{name: "paid is terminal", current: entity.LeadStatusPaid, target: entity.LeadStatusLost, wantErr: domainerrors.ErrTerminalState},
		{name: "unknown status", target: "archived", wantErr: domainerrors.ErrValidationFailed},
		{name: "missing lead", target: entity.LeadStatusWon, findErr: repository.ErrLeadNotFound, wantErr: domainerrors.ErrLeadNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leadRepo := mockRepo.NewMockLeadRepository(t)
			service := NewLeadService(LeadServiceParams{LeadRepo: leadRepo, Logger: newDiscardLogger()})
			ctx := context.Background()

			if tt.target.IsValid() {
				if tt.findErr != nil {
					leadRepo.EXPECT().FindByID(ctx, leadID).Return(nil, tt.findErr)
				} else {
					leadRepo.EXPECT().FindByID(ctx, leadID).Return(&entity.Lead{ID: leadID, Status: tt.current}, nil)
				}
			}
			if tt.wantUpdate {
				leadRepo.EXPECT().UpdateStatus(ctx, leadID, tt.target).Return(nil)
			}

			lead, err := service.UpdateLeadStatus(ctx, leadID, tt.target)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, lead.Status)
		})
	}
}
