package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bizhub/internal/delivery/api/middleware"
	"bizhub/internal/delivery/api/response"
	"bizhub/internal/delivery/api/validator"
	"bizhub/internal/domain/entity"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ReferralHandlerParams holds dependencies for ReferralHandler, injected by Fx.
type ReferralHandlerParams struct {
	fx.In

	ReferralUC usecase.ReferralUsecase
	Logger     *slog.Logger
}

// ReferralHandler serves the referral wallet of a business user.
type ReferralHandler struct {
	referralUC usecase.ReferralUsecase
	logger     *slog.Logger
}

// NewReferralHandler is the constructor for ReferralHandler
func NewReferralHandler(params ReferralHandlerParams) *ReferralHandler {
	return &ReferralHandler{
		referralUC: params.ReferralUC,
		logger:     params.Logger,
	}
}

// WithdrawRequest is the body of POST /referral/withdraw. Payout fields may be
// sent flat (upiId, accountNumber, ...) or nested under details.
type WithdrawRequest struct {
	entity.PayoutDetails

	Amount  decimal.Decimal      `json:"amount"`
	Method  string               `json:"method" validate:"required,oneof=upi bank"`
	Details entity.PayoutDetails `json:"details"`
}

// payoutDetails prefers nested fields and fills blanks from the flat ones.
func (req *WithdrawRequest) payoutDetails() entity.PayoutDetails {
	details := req.Details
	if details.UPIID == "" {
		details.UPIID = req.UPIID
	}
	if details.AccountNumber == "" {
		details.AccountNumber = req.AccountNumber
	}
	if details.IFSC == "" {
		details.IFSC = req.IFSC
	}
	if details.AccountHolder == "" {
		details.AccountHolder = req.AccountHolder
	}

	return details
}

// EarningResponse is one credited commission.
type EarningResponse struct {
	ID             uuid.UUID       `json:"id"`
	ReferredUserID uuid.UUID       `json:"referredUserId"`
	OrderNo        string          `json:"orderNo"`
	BaseAmount     decimal.Decimal `json:"baseAmount"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// WithdrawalResponse is a payout request.
type WithdrawalResponse struct {
	ID          uuid.UUID            `json:"id"`
	RequestNo   string               `json:"requestNo"`
	UserID      uuid.UUID            `json:"userId"`
	Amount      decimal.Decimal      `json:"amount"`
	Method      string               `json:"method"`
	Details     entity.PayoutDetails `json:"details"`
	Status      string               `json:"status"`
	AdminNote   string               `json:"adminNote,omitempty"`
	ProcessedAt *time.Time           `json:"processedAt,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// WalletResponse summarizes balances and history.
type WalletResponse struct {
	Earned      decimal.Decimal      `json:"earned"`
	PaidOut     decimal.Decimal      `json:"paidOut"`
	Locked      decimal.Decimal      `json:"locked"`
	Available   decimal.Decimal      `json:"available"`
	Eligible    bool                 `json:"eligible"`
	Earnings    []EarningResponse    `json:"earnings"`
	Withdrawals []WithdrawalResponse `json:"withdrawals"`
}

// GetWallet returns the caller's referral wallet.
func (h *ReferralHandler) GetWallet(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in session")
	}

	wallet, err := h.referralUC.GetWallet(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := WalletResponse{
		Earned:      wallet.Earned,
		PaidOut:     wallet.PaidOut,
		Locked:      wallet.Locked,
		Available:   wallet.Available,
		Eligible:    wallet.Eligible,
		Earnings:    make([]EarningResponse, 0, len(wallet.Earnings)),
		Withdrawals: make([]WithdrawalResponse, 0, len(wallet.Withdrawals)),
	}
	for _, e := range wallet.Earnings {
		out.Earnings = append(out.Earnings, EarningResponse{
			ID:             e.ID,
			ReferredUserID: e.ReferredUserID,
			OrderNo:        e.OrderNo,
			BaseAmount:     e.BaseAmount,
			CommissionRate: e.CommissionRate,
			Amount:         e.Amount,
			Currency:       e.Currency,
			Status:         e.Status,
			CreatedAt:      e.CreatedAt,
		})
	}
	for _, w := range wallet.Withdrawals {
		out.Withdrawals = append(out.Withdrawals, toWithdrawalResponse(w))
	}

	return response.OK(c, out)
}

// Withdraw opens a payout request against the available balance.
func (h *ReferralHandler) Withdraw(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in session")
	}

	var req WithdrawRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid withdrawal input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid withdrawal input", validator.FieldErrors(err))
	}

	withdrawal, err := h.referralUC.RequestWithdrawal(c.Request().Context(), userID, &usecase.WithdrawalInput{
		Amount:  req.Amount,
		Method:  entity.PayoutMethod(req.Method),
		Details: req.payoutDetails(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toWithdrawalResponse(withdrawal))
}

func toWithdrawalResponse(w *entity.ReferralWithdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:          w.ID,
		RequestNo:   w.RequestNo,
		UserID:      w.UserID,
		Amount:      w.Amount,
		Method:      string(w.Method),
		Details:     w.Details,
		Status:      string(w.Status),
		AdminNote:   w.AdminNote,
		ProcessedAt: w.ProcessedAt,
		CreatedAt:   w.CreatedAt,
	}
}
