package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bizhub/internal/delivery/api/middleware"
	"bizhub/internal/delivery/api/response"
	"bizhub/internal/domain/entity"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	ListingUC  usecase.ListingUsecase
	Logger     *slog.Logger
}

// ListingHandler serves the business user's listing fee and certificate endpoints.
type ListingHandler struct {
	checkoutUC usecase.CheckoutUsecase
	listingUC  usecase.ListingUsecase
	logger     *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		checkoutUC: params.CheckoutUC,
		listingUC:  params.ListingUC,
		logger:     params.Logger,
	}
}

// ListingCheckoutResponse is what the client needs to pay a listing fee.
type ListingCheckoutResponse struct {
	ListingID      uuid.UUID             `json:"listingId"`
	OrderID        uuid.UUID             `json:"orderId"`
	OrderNo        string                `json:"orderNo"`
	GatewayOrderID string                `json:"razorpayOrderId"`
	GatewayKeyID   string                `json:"razorpayKeyId"`
	Amount         int64                 `json:"amount"`
	Currency       string                `json:"currency"`
	Pricing        entity.PriceBreakdown `json:"pricing"`
}

// ListingResponse is a listing as returned by the API.
type ListingResponse struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"ownerId"`
	BusinessName    string     `json:"businessName"`
	Category        string     `json:"category,omitempty"`
	City            string     `json:"city,omitempty"`
	PaymentStatus   string     `json:"paymentStatus"`
	Status          string     `json:"status"`
	CertificateID   string     `json:"certificateId,omitempty"`
	PublicUsername  string     `json:"publicUsername,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
}

// StartListingCheckout creates the listing fee order.
func (h *ListingHandler) StartListingCheckout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in session")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	out, err := h.checkoutUC.StartListingCheckout(c.Request().Context(), userID, listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ListingCheckoutResponse{
		ListingID:      out.ListingID,
		OrderID:        out.OrderID,
		OrderNo:        out.OrderNo,
		GatewayOrderID: out.GatewayOrderID,
		GatewayKeyID:   out.GatewayKeyID,
		Amount:         out.AmountMinor,
		Currency:       out.Currency,
		Pricing:        out.Pricing,
	})
}

// VerifyListingPayment confirms a listing fee payment owned by the caller.
func (h *ListingHandler) VerifyListingPayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in session")
	}

	input, errResp := bindVerifyPayment(c)
	if input == nil {
		return errResp
	}

	out, err := h.checkoutUC.VerifyListingPayment(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toVerifyPaymentResponse(out))
}

// CertificateQR streams the PNG QR code of an approved listing.
func (h *ListingHandler) CertificateQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in session")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	png, err := h.listingUC.CertificateQR(c.Request().Context(), userID, listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "private, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

func toListingResponse(l *entity.BusinessListing) ListingResponse {
	return ListingResponse{
		ID:              l.ID,
		OwnerID:         l.OwnerID,
		BusinessName:    l.BusinessName,
		Category:        l.Category,
		City:            l.City,
		PaymentStatus:   string(l.PaymentStatus),
		Status:          string(l.Status),
		CertificateID:   l.CertificateID,
		PublicUsername:  l.PublicUsername,
		RejectionReason: l.RejectionReason,
		ApprovedAt:      l.ApprovedAt,
	}
}
