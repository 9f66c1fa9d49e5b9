package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bizhub/internal/delivery/api/response"
	"bizhub/internal/delivery/api/validator"
	"bizhub/internal/domain/entity"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	LeadUC     usecase.LeadUsecase
	ListingUC  usecase.ListingUsecase
	ReferralUC usecase.ReferralUsecase
	Logger     *slog.Logger
}

// AdminHandler serves operator overrides, moderation and payout export.
type AdminHandler struct {
	checkoutUC usecase.CheckoutUsecase
	leadUC     usecase.LeadUsecase
	listingUC  usecase.ListingUsecase
	referralUC usecase.ReferralUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		checkoutUC: params.CheckoutUC,
		leadUC:     params.LeadUC,
		listingUC:  params.ListingUC,
		referralUC: params.ReferralUC,
		logger:     params.Logger,
	}
}

// UpdateOrderStatusRequest is an operator order override.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
	Reason string `json:"reason" validate:"max=500"`
}

// UpdateLeadStatusRequest moves a lead through the pipeline.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,lead_status"`
}

// UpdateWithdrawalStatusRequest moves a withdrawal.
type UpdateWithdrawalStatusRequest struct {
	Status string `json:"status" validate:"required,withdrawal_status"`
	Note   string `json:"note" validate:"max=500"`
}

// RejectListingRequest is an operator rejection.
type RejectListingRequest struct {
	Reason        string `json:"reason" validate:"required,max=500"`
	ResetIdentity bool   `json:"resetIdentity"`
}

// UpdateOrderStatus overrides an order status.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid order status input", validator.FieldErrors(err))
	}

	order, err := h.checkoutUC.UpdateOrderStatus(c.Request().Context(), &usecase.UpdateOrderStatusInput{
		OrderID: orderID,
		Status:  entity.OrderStatus(req.Status),
		Reason:  req.Reason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toOrderResponse(order))
}

// UpdateLeadStatus moves a lead.
func (h *AdminHandler) UpdateLeadStatus(c echo.Context) error {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid lead ID")
	}

	var req UpdateLeadStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid lead status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid lead status input", validator.FieldErrors(err))
	}

	lead, err := h.leadUC.UpdateLeadStatus(c.Request().Context(), leadID, entity.LeadStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toLeadResponse(lead))
}

// UpdateWithdrawalStatus moves a withdrawal.
func (h *AdminHandler) UpdateWithdrawalStatus(c echo.Context) error {
	withdrawalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid withdrawal ID")
	}

	var req UpdateWithdrawalStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid withdrawal status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid withdrawal status input", validator.FieldErrors(err))
	}

	withdrawal, err := h.referralUC.UpdateWithdrawalStatus(c.Request().Context(), &usecase.UpdateWithdrawalStatusInput{
		WithdrawalID: withdrawalID,
		Status:       entity.WithdrawalStatus(req.Status),
		Note:         req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toWithdrawalResponse(withdrawal))
}

// ExportWithdrawals downloads every open withdrawal as a spreadsheet.
func (h *AdminHandler) ExportWithdrawals(c echo.Context) error {
	export, err := h.referralUC.ExportPayouts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, `attachment; filename="`+export.Filename+`"`)
	header.Set("X-Export-Count", strconv.Itoa(export.Count))

	return c.Blob(http.StatusOK, export.ContentType, export.Data)
}

// ApproveListing approves a listing.
func (h *AdminHandler) ApproveListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	listing, err := h.listingUC.ApproveListing(c.Request().Context(), listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toListingResponse(listing))
}

// RejectListing rejects a listing with a reason.
func (h *AdminHandler) RejectListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req RejectListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid rejection input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid rejection input", validator.FieldErrors(err))
	}

	listing, err := h.listingUC.RejectListing(c.Request().Context(), &usecase.RejectListingInput{
		ListingID:     listingID,
		Reason:        req.Reason,
		ResetIdentity: req.ResetIdentity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toListingResponse(listing))
}
