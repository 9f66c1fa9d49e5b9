package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bizhub/internal/domain/constants"
	"bizhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishOrderPaid(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.OrderPaidEvent{
		RequestID: "req-1",
		OrderID:   "6c8f2b7e-8d7c-4a8e-9e55-0d5b2b1f6a10",
		OrderNo:   "ORD-20250101-123456",
		OrderType: "website_request",
		Amount:    117882,
		Currency:  "INR",
		PaidAt:    time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	}

	err := publisher.PublishOrderPaid(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.OrderID, received.Message.MessageID)
	assert.Equal(t, constants.EventOrderPaid, received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.OrderPaidEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.OrderNo, decoded.OrderNo)
	assert.Equal(t, int64(117882), decoded.Amount)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishOrderPaid(context.Background(), &service.OrderPaidEvent{OrderID: "x"})
	assert.ErrorContains(t, err, "non-success status: 500")
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: discardLogger()}

	assert.NoError(t, publisher.PublishOrderPaid(context.Background(), &service.OrderPaidEvent{}))
	assert.NoError(t, publisher.Close())
}
