package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bizhub/config"
	deliverycontext "bizhub/internal/delivery/context"
	"bizhub/internal/domain/constants"
	"bizhub/internal/domain/entity"
	domainerrors "bizhub/internal/domain/errors"
	"bizhub/internal/domain/service"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes order.paid events pushed by Pub/Sub.
//
// Commission crediting runs inline after a payment commits and only logs on
// failure; the worker replays it from the event so a transient failure there
// is retried until the earning exists. ProcessCommission is idempotent per
// referred user, so duplicate deliveries are harmless.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    func(req *http.Request) error
	logger         *slog.Logger
	referralUC     usecase.ReferralUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	ReferralUC usecase.ReferralUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; local and develop setups post unsigned envelopes
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		referralUC:     params.ReferralUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks Pub/Sub to redeliver; 200 acknowledges, including malformed events
// that would never succeed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.OrderPaidEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse order paid event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order paid event",
		slog.String("order_no", event.OrderNo),
		slog.String("order_type", event.OrderType),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.processOrderPaid(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process order paid event",
			slog.String("order_no", event.OrderNo),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Order paid event processed", slog.String("order_no", event.OrderNo))

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the
// request context, and finally generates one.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OrderPaidEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processOrderPaid(ctx context.Context, event *service.OrderPaidEvent) error {
	if event.OrderType != string(entity.OrderTypeBusinessListing) {
		// Website orders have no downstream work yet.
		return nil
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrapf(err, "invalid user_id %q", event.UserID)
	}
	listingID, err := uuid.Parse(event.ListingID)
	if err != nil {
		return errors.Wrapf(err, "invalid listing_id %q", event.ListingID)
	}
	if event.Amount <= 0 {
		return errors.Errorf("non-positive amount %d", event.Amount)
	}

	earning, err := h.referralUC.ProcessCommission(ctx, &usecase.CommissionInput{
		ReferredUserID: userID,
		ListingID:      listingID,
		PaymentID:      event.GatewayPaymentID,
		OrderNo:        event.OrderNo,
		Amount:         decimal.NewFromInt(event.Amount),
		Currency:       event.Currency,
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			return err
		}

		return newRetryableError(err)
	}

	if earning != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Referral commission credited",
			slog.String("order_no", event.OrderNo),
			slog.String("referrer_id", earning.ReferrerID.String()),
			slog.String("amount", earning.Amount.StringFixed(2)),
		)
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
