// Package gateway talks to the hosted payment provider over its REST API.
package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"bizhub/config"
	"bizhub/internal/domain/service"
	"bizhub/internal/errors"

	"github.com/valyala/fasthttp"
)

const (
	ordersPath      = "/v1/orders"
	maxResponseBody = 1 << 20
)

// ErrGatewayRejected is returned when the provider answers with a non-2xx status.
var ErrGatewayRejected = errors.New("payment gateway rejected the request")

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// razorpayGateway implements service.PaymentGateway for a Razorpay-compatible API.
type razorpayGateway struct {
	client        *fasthttp.Client
	baseURL       string
	keyID         string
	authHeader    string
	keySecret     []byte
	webhookSecret []byte
	timeout       time.Duration
	logger        *slog.Logger
}

// NewRazorpayGateway builds the gateway client from the gateway config section.
func NewRazorpayGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	gw := cfg.Gateway
	if gw == nil || gw.KeyID == "" || gw.KeySecret == "" {
		return nil, errors.New("gateway keyId and keySecret are required")
	}
	if gw.WebhookSecret == "" {
		logger.Warn("Gateway webhook secret not configured, webhooks will be rejected")
	}

	return &razorpayGateway{
		client: &fasthttp.Client{
			Name:                "bizhub",
			MaxConnsPerHost:     64,
			ReadTimeout:         gw.Timeout,
			WriteTimeout:        gw.Timeout,
			MaxResponseBodySize: maxResponseBody,
		},
		baseURL:       strings.TrimRight(gw.BaseURL, "/"),
		keyID:         gw.KeyID,
		authHeader:    "Basic " + base64.StdEncoding.EncodeToString([]byte(gw.KeyID+":"+gw.KeySecret)),
		keySecret:     []byte(gw.KeySecret),
		webhookSecret: []byte(gw.WebhookSecret),
		timeout:       gw.Timeout,
		logger:        logger,
	}, nil
}

// CreateOrder registers an order for amountMinor paise. The call is bounded by
// the configured timeout or the context deadline, whichever is sooner.
func (g *razorpayGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*service.GatewayOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	body, err := json.Marshal(createOrderRequest{
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode gateway order")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(g.baseURL + ordersPath)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set(fasthttp.HeaderAuthorization, g.authHeader)
	req.SetBody(body)

	if err := g.client.DoTimeout(req, resp, g.timeoutFor(ctx)); err != nil {
		return nil, errors.Wrap(err, "gateway create order request failed")
	}

	status := resp.StatusCode()
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		var apiErr errorResponse
		_ = json.Unmarshal(resp.Body(), &apiErr)
		g.logger.WarnContext(ctx, "Gateway rejected order",
			slog.Int("status", status),
			slog.String("code", apiErr.Error.Code),
			slog.String("description", apiErr.Error.Description),
			slog.String("receipt", receipt),
		)

		return nil, errors.Wrapf(ErrGatewayRejected, "status %d: %s", status, apiErr.Error.Description)
	}

	var out createOrderResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode gateway order")
	}
	if out.ID == "" {
		return nil, errors.Wrap(ErrGatewayRejected, "response carried no order id")
	}

	return &service.GatewayOrder{
		ID:       out.ID,
		Amount:   out.Amount,
		Currency: out.Currency,
		Receipt:  out.Receipt,
	}, nil
}

// VerifyPaymentSignature checks HMAC-SHA256(keySecret, orderID|paymentID).
func (g *razorpayGateway) VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	if gatewayOrderID == "" || gatewayPaymentID == "" || signature == "" {
		return false
	}

	return verifyHex(g.keySecret, []byte(gatewayOrderID+"|"+gatewayPaymentID), signature)
}

// VerifyWebhookSignature checks HMAC-SHA256(webhookSecret, body).
func (g *razorpayGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	if len(g.webhookSecret) == 0 || signature == "" {
		return false
	}

	return verifyHex(g.webhookSecret, body, signature)
}

// KeyID returns the public key id.
func (g *razorpayGateway) KeyID() string {
	return g.keyID
}

func (g *razorpayGateway) timeoutFor(ctx context.Context) time.Duration {
	timeout := g.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	return timeout
}

// Sign returns the hex HMAC-SHA256 of message under secret.
func Sign(secret, message []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(message)

	return hex.EncodeToString(mac.Sum(nil))
}

func verifyHex(secret, message []byte, signature string) bool {
	expected := Sign(secret, message)

	return hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature))))
}
