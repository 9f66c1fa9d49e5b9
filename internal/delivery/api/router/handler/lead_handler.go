package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bizhub/internal/delivery/api/response"
	"bizhub/internal/delivery/api/validator"
	"bizhub/internal/domain/entity"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LeadHandlerParams holds dependencies for LeadHandler, injected by Fx.
type LeadHandlerParams struct {
	fx.In

	LeadUC usecase.LeadUsecase
	Logger *slog.Logger
}

// LeadHandler accepts contact form submissions.
type LeadHandler struct {
	leadUC usecase.LeadUsecase
	logger *slog.Logger
}

// NewLeadHandler is the constructor for LeadHandler
func NewLeadHandler(params LeadHandlerParams) *LeadHandler {
	return &LeadHandler{
		leadUC: params.LeadUC,
		logger: params.Logger,
	}
}

// CreateLeadRequest is the body of POST /leads.
type CreateLeadRequest struct {
	Name          string   `json:"name" validate:"required,max=120"`
	Email         string   `json:"email" validate:"required,email"`
	Phone         string   `json:"phone" validate:"required,max=20"`
	WebsiteStatus string   `json:"websiteStatus"`
	Goals         []string `json:"goals"`
	Channels      []string `json:"channels"`
}

// LeadResponse is a lead as returned by the API.
type LeadResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	WebsiteStatus string    `json:"websiteStatus,omitempty"`
	Goals         []string  `json:"goals"`
	Channels      []string  `json:"channels"`
	Source        string    `json:"source"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateLead stores a contact form submission.
func (h *LeadHandler) CreateLead(c echo.Context) error {
	var req CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid lead input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid lead input", validator.FieldErrors(err))
	}

	lead, err := h.leadUC.CreateLead(c.Request().Context(), &usecase.CreateLeadInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		WebsiteStatus: req.WebsiteStatus,
		Goals:         req.Goals,
		Channels:      req.Channels,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toLeadResponse(lead))
}

func toLeadResponse(l *entity.Lead) LeadResponse {
	return LeadResponse{
		ID:            l.ID,
		Name:          l.Name,
		Email:         l.Email,
		Phone:         l.Phone,
		WebsiteStatus: l.WebsiteStatus,
		Goals:         l.Goals,
		Channels:      l.Channels,
		Source:        l.Source,
		Status:        string(l.Status),
		CreatedAt:     l.CreatedAt,
	}
}
