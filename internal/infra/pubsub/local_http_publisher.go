package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"time"

	"bizhub/internal/domain/service"
	"bizhub/internal/errors"

	"github.com/valyala/fasthttp"
)

const localPublishTimeout = 30 * time.Second

// localHTTPPublisher simulates Pub/Sub push delivery against a local endpoint
type localHTTPPublisher struct {
	endpoint string
	client   *fasthttp.Client
	logger   *slog.Logger
}

// PushMessage mirrors the body Google Pub/Sub sends to push subscribers
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a local publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &fasthttp.Client{Name: "bizhub-pubsub"},
		logger:   logger,
	}
}

// PublishOrderPaid POSTs a push envelope to the local endpoint
func (p *localHTTPPublisher) PublishOrderPaid(ctx context.Context, event *service.OrderPaidEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{
		Subscription: "projects/local/subscriptions/order-paid-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.OrderID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(p.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}
	req.SetBody(body)

	timeout := localPublishTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if err := p.client.DoTimeout(req, resp, timeout); err != nil {
		return errors.WithStack(err)
	}

	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return errors.Errorf("push endpoint returned non-success status: %d", code)
	}

	p.logger.Info("[LocalPubSub] Event published",
		slog.String("endpoint", p.endpoint),
		slog.String("order_no", event.OrderNo),
	)

	return nil
}

// Close is a no-op for the HTTP client
func (p *localHTTPPublisher) Close() error {
	return nil
}
