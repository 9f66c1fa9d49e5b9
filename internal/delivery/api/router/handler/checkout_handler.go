package handler

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"bizhub/internal/delivery/api/response"
	"bizhub/internal/delivery/api/validator"
	"bizhub/internal/domain/catalog"
	"bizhub/internal/domain/constants"
	"bizhub/internal/domain/entity"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler serves the public catalog, quote and website checkout endpoints.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// QuoteRequest is the body of POST /quote.
type QuoteRequest struct {
	Plan   string   `json:"plan" validate:"required"`
	AddOns []string `json:"addOns"`
}

// CustomerRequest is the contact block of a checkout.
type CustomerRequest struct {
	Name          string   `json:"name" validate:"required,max=120"`
	Email         string   `json:"email" validate:"required,email"`
	Phone         string   `json:"phone" validate:"required,max=20"`
	BusinessName  string   `json:"businessName" validate:"max=160"`
	WebsiteStatus string   `json:"websiteStatus"`
	Goals         []string `json:"goals"`
	Channels      []string `json:"channels"`
}

// StartCheckoutRequest is the body of POST /checkout/start.
type StartCheckoutRequest struct {
	Plan     string          `json:"plan" validate:"required,plan"`
	AddOns   []string        `json:"addOns"`
	Customer CustomerRequest `json:"customer"`
}

// VerifyPaymentRequest carries the checkout widget result.
type VerifyPaymentRequest struct {
	OrderID           string `json:"orderId" validate:"required,uuid"`
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

// CheckoutEventRequest is the body of POST /checkout/event.
type CheckoutEventRequest struct {
	OrderID string `json:"orderId" validate:"required,uuid"`
	Event   string `json:"event" validate:"required,oneof=dismissed failed"`
	Reason  string `json:"reason" validate:"max=500"`
}

// CheckoutResponse is what the client needs to open the checkout widget.
type CheckoutResponse struct {
	RequestID      uuid.UUID             `json:"requestId"`
	RequestNo      string                `json:"requestNo"`
	OrderID        uuid.UUID             `json:"orderId"`
	OrderNo        string                `json:"orderNo"`
	GatewayOrderID string                `json:"razorpayOrderId"`
	GatewayKeyID   string                `json:"razorpayKeyId"`
	Amount         int64                 `json:"amount"`
	Currency       string                `json:"currency"`
	Pricing        entity.PriceBreakdown `json:"pricing"`
	AddOns         []string              `json:"addOns"`
}

// VerifyPaymentResponse reports the order state after verification.
type VerifyPaymentResponse struct {
	OrderID     uuid.UUID `json:"orderId"`
	OrderNo     string    `json:"orderNo"`
	Status      string    `json:"status"`
	AlreadyPaid bool      `json:"alreadyPaid"`
}

// CatalogResponse lists plans and add-ons.
type CatalogResponse struct {
	Plans      []catalog.Plan  `json:"plans"`
	AddOns     []catalog.AddOn `json:"addOns"`
	GSTPercent int             `json:"gstPercent"`
	Currency   string          `json:"currency"`
	ListingFee int64           `json:"listingFee"`
}

// OrderResponse is an order as shown to operators.
type OrderResponse struct {
	ID               uuid.UUID             `json:"id"`
	OrderNo          string                `json:"orderNo"`
	OrderType        string                `json:"orderType"`
	Plan             string                `json:"plan"`
	CustomerName     string                `json:"customerName"`
	CustomerEmail    string                `json:"customerEmail"`
	Services         []string              `json:"services"`
	Pricing          entity.PriceBreakdown `json:"pricing"`
	Currency         string                `json:"currency"`
	Status           string                `json:"status"`
	GatewayOrderID   string                `json:"razorpayOrderId"`
	GatewayPaymentID string                `json:"razorpayPaymentId,omitempty"`
	FailureReason    string                `json:"failureReason,omitempty"`
	PaidAt           *time.Time            `json:"paidAt,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
}

// GetCatalog returns the plan catalog.
func (h *CheckoutHandler) GetCatalog(c echo.Context) error {
	out := h.checkoutUC.Catalog(c.Request().Context())

	return response.OK(c, CatalogResponse{
		Plans:      out.Plans,
		AddOns:     out.AddOns,
		GSTPercent: out.GSTPercent,
		Currency:   out.Currency,
		ListingFee: out.ListingFee,
	})
}

// Quote prices a plan without side effects.
func (h *CheckoutHandler) Quote(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quote input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid quote input", validator.FieldErrors(err))
	}

	quote, err := h.checkoutUC.Quote(c.Request().Context(), req.Plan, req.AddOns)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, quote)
}

// StartCheckout creates the lead, website request and order for a plan purchase.
func (h *CheckoutHandler) StartCheckout(c echo.Context) error {
	var req StartCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid checkout input", validator.FieldErrors(err))
	}

	out, err := h.checkoutUC.StartCheckout(c.Request().Context(), &usecase.StartCheckoutInput{
		Plan:   req.Plan,
		AddOns: req.AddOns,
		Customer: usecase.CustomerInput{
			Name:          req.Customer.Name,
			Email:         req.Customer.Email,
			Phone:         req.Customer.Phone,
			BusinessName:  req.Customer.BusinessName,
			WebsiteStatus: req.Customer.WebsiteStatus,
			Goals:         req.Customer.Goals,
			Channels:      req.Customer.Channels,
		},
		IdempotencyKey: c.Request().Header.Get(constants.HeaderIdempotencyKey),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if out.Replayed {
		status = http.StatusOK
	}

	return response.Success(c, status, CheckoutResponse{
		RequestID:      out.RequestID,
		RequestNo:      out.RequestNo,
		OrderID:        out.OrderID,
		OrderNo:        out.OrderNo,
		GatewayOrderID: out.GatewayOrderID,
		GatewayKeyID:   out.GatewayKeyID,
		Amount:         out.AmountMinor,
		Currency:       out.Currency,
		Pricing:        out.Pricing,
		AddOns:         out.AddOns,
	})
}

// VerifyPayment confirms a website order from the checkout widget result.
func (h *CheckoutHandler) VerifyPayment(c echo.Context) error {
	input, errResp := bindVerifyPayment(c)
	if input == nil {
		return errResp
	}

	out, err := h.checkoutUC.VerifyPayment(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toVerifyPaymentResponse(out))
}

// CheckoutEvent records a dismissed or failed checkout widget.
func (h *CheckoutHandler) CheckoutEvent(c echo.Context) error {
	var req CheckoutEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid checkout event")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid checkout event", validator.FieldErrors(err))
	}

	err := h.checkoutUC.HandleCheckoutEvent(c.Request().Context(), &usecase.CheckoutEventInput{
		OrderID: uuid.MustParse(req.OrderID),
		Event:   usecase.CheckoutEventType(req.Event),
		Reason:  req.Reason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Checkout event recorded"})
}

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// WebhookHandler receives signed payment gateway webhooks.
type WebhookHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// HandlePaymentWebhook verifies the signature over the raw body before decoding it.
func (h *WebhookHandler) HandlePaymentWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unable to read webhook body")
	}

	err = h.checkoutUC.HandleWebhook(c.Request().Context(), &usecase.WebhookInput{
		Body:      body,
		Signature: c.Request().Header.Get(constants.HeaderGatewaySignature),
		EventID:   c.Request().Header.Get(constants.HeaderGatewayEventID),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"status": "ok"})
}

// bindVerifyPayment returns the usecase input, or nil and the already written
// error response.
func bindVerifyPayment(c echo.Context) (*usecase.VerifyPaymentInput, error) {
	var req VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BadRequest(c, "INVALID_INPUT", "Invalid payment verification input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid payment verification input", validator.FieldErrors(err))
	}

	return &usecase.VerifyPaymentInput{
		OrderID:          uuid.MustParse(req.OrderID),
		GatewayOrderID:   req.RazorpayOrderID,
		GatewayPaymentID: req.RazorpayPaymentID,
		Signature:        req.RazorpaySignature,
	}, nil
}

func toVerifyPaymentResponse(out *usecase.VerifyPaymentOutput) VerifyPaymentResponse {
	return VerifyPaymentResponse{
		OrderID:     out.OrderID,
		OrderNo:     out.OrderNo,
		Status:      string(out.Status),
		AlreadyPaid: out.AlreadyPaid,
	}
}

func toOrderResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		OrderNo:          o.OrderNo,
		OrderType:        string(o.OrderType),
		Plan:             o.Plan,
		CustomerName:     o.CustomerName,
		CustomerEmail:    o.CustomerEmail,
		Services:         o.Services,
		Pricing:          o.Pricing,
		Currency:         o.Currency,
		Status:           string(o.Status),
		GatewayOrderID:   o.GatewayOrderID,
		GatewayPaymentID: o.GatewayPaymentID,
		FailureReason:    o.FailureReason,
		PaidAt:           o.PaidAt,
		CreatedAt:        o.CreatedAt,
	}
}
