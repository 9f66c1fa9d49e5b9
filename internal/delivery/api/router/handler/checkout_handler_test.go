package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizhub/internal/delivery/api/validator"
	"bizhub/internal/domain/constants"
	"bizhub/internal/domain/entity"
	domainerrors "bizhub/internal/domain/errors"
	mockUsecase "bizhub/internal/mocks/usecase"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Details json.RawMessage `json:"details"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

const startCheckoutBody = `{
	"plan": "starter",
	"addOns": ["seo"],
	"customer": {"name": "Asha", "email": "asha@example.com", "phone": "9876543210"}
}`

func TestCheckoutHandler_StartCheckout(t *testing.T) {
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC})
	e := newTestEcho()
	orderID := uuid.New()

	checkoutUC.EXPECT().
		StartCheckout(mock.Anything, mock.MatchedBy(func(in *usecase.StartCheckoutInput) bool {
			return in.Plan == "starter" && in.IdempotencyKey == "key-1" && in.Customer.Email == "asha@example.com"
		})).
		Return(&usecase.CheckoutOutput{
			OrderID:        orderID,
			OrderNo:        "ORD-20260115-000001",
			GatewayOrderID: "order_abc",
			GatewayKeyID:   "rzp_test_key",
			AmountMinor:    1179000,
			Currency:       "INR",
			Pricing:        entity.PriceBreakdown{Subtotal: 9990, GST: 1800, Total: 11790},
		}, nil).
		Once()

	c, rec := newJSONContext(e, http.MethodPost, "/checkout/start", startCheckoutBody)
	c.Request().Header.Set(constants.HeaderIdempotencyKey, "key-1")

	require.NoError(t, h.StartCheckout(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var out CheckoutResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, orderID, out.OrderID)
	assert.Equal(t, "order_abc", out.GatewayOrderID)
	assert.Equal(t, int64(1179000), out.Amount)
	assert.Equal(t, int64(11790), out.Pricing.Total)
}

func TestCheckoutHandler_StartCheckout_ReplayReturns200(t *testing.T) {
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC})
	e := newTestEcho()

	checkoutUC.EXPECT().StartCheckout(mock.Anything, mock.Anything).
		Return(&usecase.CheckoutOutput{OrderID: uuid.New(), Replayed: true}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/checkout/start", startCheckoutBody)

	require.NoError(t, h.StartCheckout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckoutHandler_StartCheckout_ValidationFailure(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown plan", body: `{"plan":"gold","customer":{"name":"A","email":"a@b.com","phone":"1"}}`},
		{name: "bad email", body: `{"plan":"starter","customer":{"name":"A","email":"nope","phone":"1"}}`},
		{name: "missing customer", body: `{"plan":"starter"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: mockUsecase.NewMockCheckoutUsecase(t)})
			c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/checkout/start", tt.body)

			require.NoError(t, h.StartCheckout(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, "VALIDATION_FAILED", env.Code)
			assert.NotEmpty(t, env.Details)
		})
	}
}

func TestCheckoutHandler_StartCheckout_PlanPaymentDisabled(t *testing.T) {
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC})

	checkoutUC.EXPECT().StartCheckout(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrPlanPaymentDisabled)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/checkout/start",
		`{"plan":"enterprise","customer":{"name":"A","email":"a@b.com","phone":"1"}}`)

	require.NoError(t, h.StartCheckout(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PLAN_PAYMENT_DISABLED", decodeEnvelope(t, rec).Code)
}

func TestCheckoutHandler_VerifyPayment(t *testing.T) {
	orderID := uuid.New()
	body := `{"orderId":"` + orderID.String() + `","razorpay_order_id":"order_abc","razorpay_payment_id":"pay_1","razorpay_signature":"sig"}`

	t.Run("paid", func(t *testing.T) {
		checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
		h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC})

		checkoutUC.EXPECT().
			VerifyPayment(mock.Anything, &usecase.VerifyPaymentInput{
				OrderID:          orderID,
				GatewayOrderID:   "order_abc",
				GatewayPaymentID: "pay_1",
				Signature:        "sig",
			}).
			Return(&usecase.VerifyPaymentOutput{OrderID: orderID, OrderNo: "ORD-1", Status: entity.OrderStatusPaid}, nil)

		c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/checkout/verify", body)
		require.NoError(t, h.VerifyPayment(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var out VerifyPaymentResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
		assert.Equal(t, "paid", out.Status)
	})

	t.Run("signature mismatch", func(t *testing.T) {
		checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
		h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC})

		checkoutUC.EXPECT().VerifyPayment(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrSignatureMismatch)

		c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/checkout/verify", body)
		require.NoError(t, h.VerifyPayment(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "SIGNATURE_MISMATCH", decodeEnvelope(t, rec).Code)
	})

	t.Run("missing fields never reach the usecase", func(t *testing.T) {
		h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: mockUsecase.NewMockCheckoutUsecase(t)})

		c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/checkout/verify", `{"orderId":"not-a-uuid"}`)
		require.NoError(t, h.VerifyPayment(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Code)
	})
}

func TestCheckoutHandler_CheckoutEvent(t *testing.T) {
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC})
	orderID := uuid.New()

	checkoutUC.EXPECT().
		HandleCheckoutEvent(mock.Anything, &usecase.CheckoutEventInput{
			OrderID: orderID,
			Event:   usecase.CheckoutEventDismissed,
			Reason:  "closed the widget",
		}).
		Return(nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/checkout/event",
		`{"orderId":"`+orderID.String()+`","event":"dismissed","reason":"closed the widget"}`)
	require.NoError(t, h.CheckoutEvent(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckoutHandler_Quote(t *testing.T) {
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC})

	checkoutUC.EXPECT().Quote(mock.Anything, "gold", []string(nil)).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("unknown plan"))

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/quote", `{"plan":"gold"}`)
	require.NoError(t, h.Quote(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Code)
	assert.JSONEq(t, `"unknown plan"`, string(env.Details))
}

func TestWebhookHandler_PassesRawBodyAndHeaders(t *testing.T) {
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewWebhookHandler(WebhookHandlerParams{CheckoutUC: checkoutUC})
	body := `{"event":"payment.captured","payload":{}}`

	checkoutUC.EXPECT().
		HandleWebhook(mock.Anything, &usecase.WebhookInput{
			Body:      []byte(body),
			Signature: "abc123",
			EventID:   "evt_1",
		}).
		RunAndReturn(func(context.Context, *usecase.WebhookInput) error { return nil })

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/webhook/payment", body)
	c.Request().Header.Set(constants.HeaderGatewaySignature, "abc123")
	c.Request().Header.Set(constants.HeaderGatewayEventID, "evt_1")

	require.NoError(t, h.HandlePaymentWebhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_SignatureMismatch(t *testing.T) {
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewWebhookHandler(WebhookHandlerParams{CheckoutUC: checkoutUC})

	checkoutUC.EXPECT().HandleWebhook(mock.Anything, mock.Anything).Return(domainerrors.ErrSignatureMismatch)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/webhook/payment", `{}`)
	require.NoError(t, h.HandlePaymentWebhook(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
