package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bizhub/config"
	"bizhub/internal/domain/constants"
	"bizhub/internal/domain/entity"
	domainerrors "bizhub/internal/domain/errors"
	"bizhub/internal/domain/service"
	"bizhub/internal/errors"
	mockUsecase "bizhub/internal/mocks/usecase"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandlerForTest(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockReferralUsecase) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}
	referralUC := mockUsecase.NewMockReferralUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		ReferralUC: referralUC,
	})

	return h, referralUC
}

func pushBody(t *testing.T, event *service.OrderPaidEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	msg := PubSubMessage{Subscription: "projects/test/subscriptions/order-paid-sub"}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "1"
	msg.Message.Attributes = map[string]string{"request_id": "req-123"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push/order-paid", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func listingPaidEvent(userID, listingID uuid.UUID) *service.OrderPaidEvent {
	return &service.OrderPaidEvent{
		OrderID:          uuid.NewString(),
		OrderNo:          "ORD-20260115-000042",
		OrderType:        string(entity.OrderTypeBusinessListing),
		ListingID:        listingID.String(),
		UserID:           userID.String(),
		Amount:           1179,
		Currency:         "INR",
		GatewayPaymentID: "pay_1",
		PaidAt:           time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC),
	}
}

func TestPushHandler_CreditsCommissionForListingOrders(t *testing.T) {
	h, referralUC := newPushHandlerForTest(t, nil)
	userID, listingID := uuid.New(), uuid.New()

	referralUC.EXPECT().
		ProcessCommission(mock.Anything, &usecase.CommissionInput{
			ReferredUserID: userID,
			ListingID:      listingID,
			PaymentID:      "pay_1",
			OrderNo:        "ORD-20260115-000042",
			Amount:         decimal.NewFromInt(1179),
			Currency:       "INR",
		}).
		Return(&entity.ReferralEarning{ReferrerID: uuid.New(), Amount: decimal.RequireFromString("294.75")}, nil).
		Once()

	rec := doPush(h, pushBody(t, listingPaidEvent(userID, listingID)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_WebsiteOrdersAreAcknowledged(t *testing.T) {
	h, _ := newPushHandlerForTest(t, nil)

	rec := doPush(h, pushBody(t, &service.OrderPaidEvent{
		OrderNo:   "ORD-20260115-000001",
		OrderType: string(entity.OrderTypeWebsiteRequest),
		Amount:    11790,
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryableFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "store failure is redelivered", err: errors.New("connection reset"), wantCode: http.StatusServiceUnavailable},
		{name: "dependency failure is redelivered", err: domainerrors.ErrDependencyFailure, wantCode: http.StatusServiceUnavailable},
		{name: "validation failure is acknowledged", err: domainerrors.ErrValidationFailed, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, referralUC := newPushHandlerForTest(t, nil)
			referralUC.EXPECT().ProcessCommission(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doPush(h, pushBody(t, listingPaidEvent(uuid.New(), uuid.New())))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_MalformedEvents(t *testing.T) {
	t.Run("not json", func(t *testing.T) {
		h, _ := newPushHandlerForTest(t, nil)

		rec := doPush(h, `not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad base64", func(t *testing.T) {
		h, _ := newPushHandlerForTest(t, nil)

		rec := doPush(h, `{"message":{"data":"%%%"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("listing event without user is acknowledged", func(t *testing.T) {
		h, _ := newPushHandlerForTest(t, nil)
		event := listingPaidEvent(uuid.New(), uuid.New())
		event.UserID = ""

		rec := doPush(h, pushBody(t, event))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPushHandler_VerifiesGoogleTokens(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"
	h, _ := newPushHandlerForTest(t, cfg)
	require.True(t, h.verifyPushAuth)

	h.verifyToken = func(*http.Request) error { return errors.New("bad audience") }

	rec := doPush(h, pushBody(t, listingPaidEvent(uuid.New(), uuid.New())))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
