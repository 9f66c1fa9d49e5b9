package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bizhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGateway(t *testing.T, baseURL string) *razorpayGateway {
	t.Helper()

	cfg := &config.Config{Gateway: &config.GatewayConfig{
		BaseURL:       baseURL,
		KeyID:         "rzp_test_key",
		KeySecret:     "key_secret",
		WebhookSecret: "webhook_secret",
		Timeout:       2 * time.Second,
	}}
	gw, err := NewRazorpayGateway(cfg, newDiscardLogger())
	require.NoError(t, err)

	return gw.(*razorpayGateway)
}

func TestCreateOrder(t *testing.T) {
	var got createOrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "key_secret", pass)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_Abc123","amount":589900,"currency":"INR","receipt":"ORD-20260115-000001","status":"created"}`))
	}))
	defer server.Close()

	gw := newTestGateway(t, server.URL)
	order, err := gw.CreateOrder(context.Background(), 589900, "INR", "ORD-20260115-000001")
	require.NoError(t, err)

	assert.Equal(t, "order_Abc123", order.ID)
	assert.Equal(t, int64(589900), order.Amount)
	assert.Equal(t, createOrderRequest{Amount: 589900, Currency: "INR", Receipt: "ORD-20260115-000001"}, got)
}

func TestCreateOrder_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount too low"}}`))
	}))
	defer server.Close()

	gw := newTestGateway(t, server.URL)
	_, err := gw.CreateOrder(context.Background(), 1, "INR", "r")
	assert.ErrorIs(t, err, ErrGatewayRejected)
}

func TestCreateOrder_CancelledContext(t *testing.T) {
	gw := newTestGateway(t, "http://127.0.0.1:1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.CreateOrder(ctx, 100, "INR", "r")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVerifyPaymentSignature(t *testing.T) {
	gw := newTestGateway(t, "http://unused")
	valid := Sign([]byte("key_secret"), []byte("order_1|pay_1"))

	assert.True(t, gw.VerifyPaymentSignature("order_1", "pay_1", valid))
	assert.False(t, gw.VerifyPaymentSignature("order_1", "pay_2", valid))
	assert.False(t, gw.VerifyPaymentSignature("order_1", "pay_1", "deadbeef"))
	assert.False(t, gw.VerifyPaymentSignature("", "pay_1", valid))
}

func TestVerifyWebhookSignature(t *testing.T) {
	gw := newTestGateway(t, "http://unused")
	body := []byte(`{"event":"payment.captured"}`)
	valid := Sign([]byte("webhook_secret"), body)

	assert.True(t, gw.VerifyWebhookSignature(body, valid))
	assert.False(t, gw.VerifyWebhookSignature(append(body, ' '), valid))
	assert.False(t, gw.VerifyWebhookSignature(body, Sign([]byte("key_secret"), body)))
	assert.False(t, gw.VerifyWebhookSignature(body, ""))
}

func TestTimeoutFor_UsesEarlierDeadline(t *testing.T) {
	gw := newTestGateway(t, "http://unused")

	assert.Equal(t, 2*time.Second, gw.timeoutFor(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	assert.LessOrEqual(t, gw.timeoutFor(ctx), 200*time.Millisecond)
}
