// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bizhub/config"
	deliverycontext "bizhub/internal/delivery/context"
	"bizhub/internal/domain/catalog"
	"bizhub/internal/domain/entity"
	domainerrors "bizhub/internal/domain/errors"
	"bizhub/internal/domain/identifier"
	"bizhub/internal/domain/pricing"
	"bizhub/internal/domain/repository"
	"bizhub/internal/domain/service"
	"bizhub/internal/errors"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	webhookEventPaymentCaptured = "payment.captured"
	webhookEventPaymentFailed   = "payment.failed"

	listingOrderPlan    = "listing"
	listingOrderService = "Business listing fee"
	manualPaymentPrefix = "manual_"
)

// gatewayWebhook is the subset of the gateway webhook body the service reads.
type gatewayWebhook struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID               string `json:"id"`
				OrderID          string `json:"order_id"`
				Amount           int64  `json:"amount"`
				Status           string `json:"status"`
				ErrorDescription string `json:"error_description"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// CheckoutServiceParams holds the dependencies of the checkout service.
type CheckoutServiceParams struct {
	fx.In

	Config      *config.Config
	TxManager   repository.TransactionManager
	RequestRepo repository.WebsiteRequestRepository
	OrderRepo   repository.OrderRepository
	ListingRepo repository.BusinessListingRepository
	UserRepo    repository.BusinessUserRepository
	Gateway     service.PaymentGateway
	Publisher   service.EventPublisher
	Guard       service.WebhookGuard
	Referral    usecase.ReferralUsecase
	IDGen       *identifier.Generator
	Logger      *slog.Logger
}

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager   repository.TransactionManager
	requestRepo repository.WebsiteRequestRepository
	orderRepo   repository.OrderRepository
	listingRepo repository.BusinessListingRepository
	userRepo    repository.BusinessUserRepository
	gateway     service.PaymentGateway
	publisher   service.EventPublisher
	guard       service.WebhookGuard
	referral    usecase.ReferralUsecase
	idGen       *identifier.Generator
	currency    string
	now         func() time.Time
	logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	currency := catalog.Currency
	if params.Config != nil && params.Config.Gateway != nil && params.Config.Gateway.Currency != "" {
		currency = params.Config.Gateway.Currency
	}

	return &checkoutService{
		txManager:   params.TxManager,
		requestRepo: params.RequestRepo,
		orderRepo:   params.OrderRepo,
		listingRepo: params.ListingRepo,
		userRepo:    params.UserRepo,
		gateway:     params.Gateway,
		publisher:   params.Publisher,
		guard:       params.Guard,
		referral:    params.Referral,
		idGen:       params.IDGen,
		currency:    currency,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Catalog returns plans, add-ons and fixed rates.
func (srv *checkoutService) Catalog(_ context.Context) *usecase.CatalogOutput {
	return &usecase.CatalogOutput{
		Plans:      catalog.Plans(),
		AddOns:     catalog.AddOns(),
		GSTPercent: catalog.GSTPercent,
		Currency:   srv.currency,
		ListingFee: catalog.ListingFee,
	}
}

// Quote prices a plan with add-ons.
func (srv *checkoutService) Quote(_ context.Context, plan string, addOns []string) (*pricing.Quote, error) {
	quote, err := pricing.Calculate(catalog.PlanID(plan), addOns)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrUnknownPlan):
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown plan"))
		case errors.Is(err, pricing.ErrNonPositiveTotal):
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("quote total must be positive"))
		default:
			return nil, errors.Wrap(err, "failed to calculate quote")
		}
	}

	return quote, nil
}

// StartCheckout creates the gateway order first and then the lead, the
// website request and the order in one transaction.
func (srv *checkoutService) StartCheckout(ctx context.Context, input *usecase.StartCheckoutInput) (*usecase.CheckoutOutput, error) {
	plan, ok := catalog.LookupPlan(catalog.PlanID(input.Plan))
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown plan"))
	}
	if !plan.PaymentEnabled {
		return nil, errors.Wrapf(domainerrors.ErrPlanPaymentDisabled, "plan %s", plan.ID)
	}

	if input.IdempotencyKey != "" {
		replay, err := srv.replayCheckout(ctx, input.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if replay != nil {
			srv.log(ctx).Info("Returning checkout for repeated idempotency key",
				slog.String("request_no", replay.RequestNo),
				slog.String("order_no", replay.OrderNo))

			return replay, nil
		}
	}

	quote, err := srv.Quote(ctx, input.Plan, input.AddOns)
	if err != nil {
		return nil, err
	}

	requestNo, err := srv.idGen.Unique(ctx, identifier.PrefixWebsiteRequest, srv.requestRepo.ExistsByRequestNo)
	if err != nil {
		return nil, identifierError(err)
	}
	orderNo, err := srv.idGen.Unique(ctx, identifier.PrefixOrder, srv.orderRepo.ExistsByOrderNo)
	if err != nil {
		return nil, identifierError(err)
	}

	gatewayOrder, err := srv.createGatewayOrder(ctx, quote.TotalMinorUnits(), orderNo)
	if err != nil {
		return nil, err
	}

	customer := input.Customer
	addOns := addOnStrings(quote.AddOns)

	lead := &entity.Lead{
		ID:            uuid.New(),
		Name:          trimSpace(customer.Name),
		Email:         normalizeEmail(customer.Email),
		Phone:         trimSpace(customer.Phone),
		WebsiteStatus: trimSpace(customer.WebsiteStatus),
		Goals:         entity.UniqueTags(customer.Goals),
		Channels:      entity.UniqueTags(customer.Channels),
		Source:        entity.LeadSourceCheckout,
		Status:        entity.LeadStatusNew,
	}
	request := &entity.WebsiteRequest{
		ID:             uuid.New(),
		RequestNo:      requestNo,
		LeadID:         lead.ID,
		Plan:           string(plan.ID),
		CustomerName:   lead.Name,
		CustomerEmail:  lead.Email,
		CustomerPhone:  lead.Phone,
		BusinessName:   trimSpace(customer.BusinessName),
		Goals:          lead.Goals,
		AddOns:         addOns,
		Pricing:        quote.PriceBreakdown,
		Status:         entity.WebsiteRequestStatusPending,
		IdempotencyKey: input.IdempotencyKey,
	}
	order := &entity.Order{
		ID:             uuid.New(),
		OrderNo:        orderNo,
		OrderType:      entity.OrderTypeWebsiteRequest,
		RequestID:      &request.ID,
		LeadID:         &lead.ID,
		Plan:           string(plan.ID),
		CustomerName:   lead.Name,
		CustomerEmail:  lead.Email,
		CustomerPhone:  lead.Phone,
		Services:       serviceLabels(plan, quote.AddOns),
		Pricing:        quote.PriceBreakdown,
		Currency:       srv.currency,
		Status:         entity.OrderStatusPending,
		GatewayOrderID: gatewayOrder.ID,
	}
	request.LatestOrderID = &order.ID

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.LeadRepo().Create(ctx, lead); err != nil {
			return errors.Wrap(err, "failed to create lead")
		}
		if err := txRepoFactory.WebsiteRequestRepo().Create(ctx, request); err != nil {
			return errors.Wrap(err, "failed to create website request")
		}
		if err := txRepoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		// A concurrent request with the same key won the insert.
		if input.IdempotencyKey != "" && errors.Is(err, repository.ErrDuplicateIdempotencyKey) {
			replay, replayErr := srv.replayCheckout(ctx, input.IdempotencyKey)
			if replayErr == nil && replay != nil {
				return replay, nil
			}
		}

		return nil, err
	}

	srv.log(ctx).Info("Checkout started",
		slog.String("request_no", request.RequestNo),
		slog.String("order_no", order.OrderNo),
		slog.String("plan", order.Plan),
		slog.Int64("total", order.Pricing.Total))

	return srv.checkoutOutput(request, order, false), nil
}

// replayCheckout returns the checkout created earlier with key, or nil.
func (srv *checkoutService) replayCheckout(ctx context.Context, key string) (*usecase.CheckoutOutput, error) {
	request, err := srv.requestRepo.FindByIdempotencyKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrWebsiteRequestNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to look up idempotency key")
	}
	if request.LatestOrderID == nil {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "idempotent checkout has no order")
	}

	order, err := srv.findOrder(ctx, *request.LatestOrderID)
	if err != nil {
		return nil, err
	}

	return srv.checkoutOutput(request, order, true), nil
}

func (srv *checkoutService) checkoutOutput(request *entity.WebsiteRequest, order *entity.Order, replayed bool) *usecase.CheckoutOutput {
	return &usecase.CheckoutOutput{
		RequestID:      request.ID,
		RequestNo:      request.RequestNo,
		OrderID:        order.ID,
		OrderNo:        order.OrderNo,
		GatewayOrderID: order.GatewayOrderID,
		GatewayKeyID:   srv.gateway.KeyID(),
		AmountMinor:    order.Pricing.TotalMinorUnits(),
		Currency:       order.Currency,
		Pricing:        order.Pricing,
		AddOns:         request.AddOns,
		Replayed:       replayed,
	}
}

func (srv *checkoutService) createGatewayOrder(ctx context.Context, amountMinor int64, receipt string) (*service.GatewayOrder, error) {
	gatewayOrder, err := srv.gateway.CreateOrder(ctx, amountMinor, srv.currency, receipt)
	if err != nil {
		srv.log(ctx).Error("Failed to create gateway order",
			slog.String("receipt", receipt),
			slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrDependencyFailure, "create gateway order: %v", err)
	}
	if gatewayOrder == nil || gatewayOrder.ID == "" {
		return nil, errors.Wrap(domainerrors.ErrDependencyFailure, "gateway returned an empty order id")
	}

	return gatewayOrder, nil
}

// VerifyPayment confirms a website order.
func (srv *checkoutService) VerifyPayment(ctx context.Context, input *usecase.VerifyPaymentInput) (*usecase.VerifyPaymentOutput, error) {
	return srv.verifyOrder(ctx, input, entity.OrderTypeWebsiteRequest, nil)
}

// VerifyListingPayment confirms a listing fee order owned by userID.
func (srv *checkoutService) VerifyListingPayment(ctx context.Context, userID uuid.UUID, input *usecase.VerifyPaymentInput) (*usecase.VerifyPaymentOutput, error) {
	return srv.verifyOrder(ctx, input, entity.OrderTypeBusinessListing, &userID)
}

func (srv *checkoutService) verifyOrder(
	ctx context.Context,
	input *usecase.VerifyPaymentInput,
	orderType entity.OrderType,
	ownerID *uuid.UUID,
) (*usecase.VerifyPaymentOutput, error) {
	if input.GatewayOrderID == "" || input.GatewayPaymentID == "" || input.Signature == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("gateway order id, payment id and signature are required"))
	}
	if !srv.gateway.VerifyPaymentSignature(input.GatewayOrderID, input.GatewayPaymentID, input.Signature) {
		srv.log(ctx).Warn("Payment signature mismatch",
			slog.String("order_id", input.OrderID.String()),
			slog.String("gateway_order_id", input.GatewayOrderID))

		return nil, errors.WithStack(domainerrors.ErrSignatureMismatch)
	}

	order, err := srv.findOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.GatewayOrderID != input.GatewayOrderID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "gateway order reference does not match")
	}
	if order.OrderType != orderType {
		return nil, errors.Wrapf(domainerrors.ErrOrderTypeMismatch, "order %s is a %s order", order.OrderNo, order.OrderType)
	}
	if ownerID != nil && (order.UserID == nil || *order.UserID != *ownerID) {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another user")
	}

	if order.IsPaid() {
		return paidOutput(order, true), nil
	}

	won, err := srv.completePayment(ctx, order, input.GatewayPaymentID, entity.PaymentStatusCaptured)
	if err != nil {
		return nil, err
	}

	return paidOutput(order, !won), nil
}

func paidOutput(order *entity.Order, alreadyPaid bool) *usecase.VerifyPaymentOutput {
	return &usecase.VerifyPaymentOutput{
		OrderID:     order.ID,
		OrderNo:     order.OrderNo,
		Status:      entity.OrderStatusPaid,
		AlreadyPaid: alreadyPaid,
	}
}

// completePayment moves order to paid. Only the caller whose conditional
// update changed the row records the payment and runs the side effects; it
// reports whether this caller won.
func (srv *checkoutService) completePayment(ctx context.Context, order *entity.Order, paymentID, paymentStatus string) (bool, error) {
	paidAt := srv.now()
	won := false

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		changed, err := txRepoFactory.OrderRepo().MarkPaid(ctx, order.ID, paymentID, paidAt)
		if err != nil {
			return errors.Wrap(err, "failed to mark order paid")
		}
		if !changed {
			return nil
		}
		won = true

		payment := &entity.Payment{
			OrderID:          order.ID,
			GatewayOrderID:   order.GatewayOrderID,
			GatewayPaymentID: paymentID,
			Amount:           order.Pricing.Total,
			Currency:         order.Currency,
			Status:           paymentStatus,
			PaidAt:           paidAt,
		}
		if err := txRepoFactory.PaymentRepo().Upsert(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to record payment")
		}

		return srv.applyPaidSideEffects(ctx, txRepoFactory, order)
	})
	if err != nil {
		return false, err
	}
	if !won {
		srv.log(ctx).Info("Order already paid by a concurrent confirmation", slog.String("order_no", order.OrderNo))

		return false, nil
	}

	order.Status = entity.OrderStatusPaid
	order.GatewayPaymentID = paymentID
	order.PaidAt = &paidAt

	srv.log(ctx).Info("Order paid",
		slog.String("order_no", order.OrderNo),
		slog.String("order_type", string(order.OrderType)),
		slog.String("payment_status", paymentStatus))

	srv.afterPaid(ctx, order)

	return true, nil
}

func (srv *checkoutService) applyPaidSideEffects(ctx context.Context, txRepoFactory repository.RepositoryFactory, order *entity.Order) error {
	switch order.OrderType {
	case entity.OrderTypeWebsiteRequest:
		if order.RequestID != nil {
			if _, err := txRepoFactory.WebsiteRequestRepo().UpdateStatus(ctx, *order.RequestID, entity.WebsiteRequestStatusSuccess); err != nil {
				return errors.Wrap(err, "failed to mark website request success")
			}
		}
		if order.LeadID != nil {
			if err := txRepoFactory.LeadRepo().UpdateStatus(ctx, *order.LeadID, entity.LeadStatusPaid); err != nil {
				return errors.Wrap(err, "failed to mark lead paid")
			}
		}
	case entity.OrderTypeBusinessListing:
		if order.ListingID != nil {
			if _, err := txRepoFactory.ListingRepo().UpdatePaymentStatus(ctx, *order.ListingID, entity.ListingPaymentPaid); err != nil {
				return errors.Wrap(err, "failed to mark listing paid")
			}
		}
	}

	return nil
}

// afterPaid publishes the paid event and credits referral commission. Both
// run after commit and only log failures.
func (srv *checkoutService) afterPaid(ctx context.Context, order *entity.Order) {
	event := &service.OrderPaidEvent{
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:          order.ID.String(),
		OrderNo:          order.OrderNo,
		OrderType:        string(order.OrderType),
		Amount:           order.Pricing.Total,
		Currency:         order.Currency,
		GatewayPaymentID: order.GatewayPaymentID,
		PaidAt:           *order.PaidAt,
	}
	if order.RequestID != nil {
		event.WebsiteRequestID = order.RequestID.String()
	}
	if order.ListingID != nil {
		event.ListingID = order.ListingID.String()
	}
	if order.UserID != nil {
		event.UserID = order.UserID.String()
	}
	if err := srv.publisher.PublishOrderPaid(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order paid event",
			slog.String("order_no", order.OrderNo),
			slog.Any("error", err))
	}

	if order.OrderType != entity.OrderTypeBusinessListing || order.UserID == nil || order.ListingID == nil {
		return
	}

	_, err := srv.referral.ProcessCommission(ctx, &usecase.CommissionInput{
		ReferredUserID: *order.UserID,
		ListingID:      *order.ListingID,
		PaymentID:      order.GatewayPaymentID,
		OrderNo:        order.OrderNo,
		Amount:         decimal.NewFromInt(order.Pricing.Total),
		Currency:       order.Currency,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to process referral commission",
			slog.String("order_no", order.OrderNo),
			slog.Any("error", err))
	}
}

// HandleCheckoutEvent records a dismissed or failed checkout.
func (srv *checkoutService) HandleCheckoutEvent(ctx context.Context, input *usecase.CheckoutEventInput) error {
	var status entity.OrderStatus
	switch input.Event {
	case usecase.CheckoutEventDismissed:
		status = entity.OrderStatusPending
	case usecase.CheckoutEventFailed:
		status = entity.OrderStatusFailed
	default:
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("event must be dismissed or failed"))
	}

	order, err := srv.findOrder(ctx, input.OrderID)
	if err != nil {
		return err
	}
	if order.IsTerminal() {
		srv.log(ctx).Debug("Ignoring checkout event for closed order",
			slog.String("order_no", order.OrderNo),
			slog.String("status", string(order.Status)))

		return nil
	}

	reason := trimSpace(input.Reason)
	if reason == "" {
		reason = string(input.Event)
	}

	changed, err := srv.applyOrderStatus(ctx, order, status, reason, false)
	if err != nil {
		return err
	}
	if changed {
		srv.log(ctx).Info("Checkout event recorded",
			slog.String("order_no", order.OrderNo),
			slog.String("event", string(input.Event)))
	}

	return nil
}

// applyOrderStatus sets a non-paid status and mirrors it onto the request or
// listing. It reports false when the order was paid in the meantime, or, unless
// override is set, cancelled.
func (srv *checkoutService) applyOrderStatus(
	ctx context.Context,
	order *entity.Order,
	status entity.OrderStatus,
	reason string,
	override bool,
) (bool, error) {
	changed := false

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		update := txRepoFactory.OrderRepo().UpdateOpenStatus
		if override {
			update = txRepoFactory.OrderRepo().UpdateStatus
		}
		ok, err := update(ctx, order.ID, status, reason)
		if err != nil {
			return errors.Wrap(err, "failed to update order status")
		}
		if !ok {
			return nil
		}
		changed = true

		switch order.OrderType {
		case entity.OrderTypeWebsiteRequest:
			if order.RequestID == nil {
				return nil
			}
			if _, err := txRepoFactory.WebsiteRequestRepo().UpdateStatus(ctx, *order.RequestID, requestStatusFor(status)); err != nil {
				return errors.Wrap(err, "failed to mirror website request status")
			}
		case entity.OrderTypeBusinessListing:
			if order.ListingID == nil {
				return nil
			}
			if _, err := txRepoFactory.ListingRepo().UpdatePaymentStatus(ctx, *order.ListingID, listingPaymentStatusFor(status)); err != nil {
				return errors.Wrap(err, "failed to mirror listing payment status")
			}
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return changed, nil
}

func requestStatusFor(status entity.OrderStatus) entity.WebsiteRequestStatus {
	switch status {
	case entity.OrderStatusFailed, entity.OrderStatusCancelled:
		return entity.WebsiteRequestStatusFailed
	case entity.OrderStatusPaid:
		return entity.WebsiteRequestStatusSuccess
	default:
		return entity.WebsiteRequestStatusPending
	}
}

func listingPaymentStatusFor(status entity.OrderStatus) entity.ListingPaymentStatus {
	switch status {
	case entity.OrderStatusFailed, entity.OrderStatusCancelled:
		return entity.ListingPaymentFailed
	case entity.OrderStatusPaid:
		return entity.ListingPaymentPaid
	default:
		return entity.ListingPaymentPending
	}
}

// HandleWebhook applies a signed gateway event. Deliveries carrying an event
// id are claimed through the webhook guard; the claim is released when
// processing fails so a redelivery is retried.
func (srv *checkoutService) HandleWebhook(ctx context.Context, input *usecase.WebhookInput) (retErr error) {
	if !srv.gateway.VerifyWebhookSignature(input.Body, input.Signature) {
		srv.log(ctx).Warn("Webhook signature mismatch", slog.String("event_id", input.EventID))

		return errors.WithStack(domainerrors.ErrSignatureMismatch)
	}

	var payload gatewayWebhook
	if err := json.Unmarshal(input.Body, &payload); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidWebhookPayload, err.Error())
	}

	payment := payload.Payload.Payment.Entity
	logger := srv.log(ctx).With(
		slog.String("event", payload.Event),
		slog.String("event_id", input.EventID),
		slog.String("gateway_order_id", payment.OrderID),
	)

	if payload.Event != webhookEventPaymentCaptured && payload.Event != webhookEventPaymentFailed {
		logger.Info("Ignoring webhook event")

		return nil
	}
	if payment.OrderID == "" {
		return errors.WithStack(domainerrors.ErrInvalidWebhookPayload.WithDetails("payment entity has no order id"))
	}

	if input.EventID != "" {
		acquired, err := srv.guard.Acquire(ctx, input.EventID)
		switch {
		case err != nil:
			logger.Warn("Webhook guard unavailable, processing without deduplication", slog.Any("error", err))
		case !acquired:
			logger.Info("Duplicate webhook delivery ignored")

			return nil
		default:
			defer func() {
				if retErr == nil {
					return
				}
				if err := srv.guard.Release(ctx, input.EventID); err != nil {
					logger.Warn("Failed to release webhook guard", slog.Any("error", err))
				}
			}()
		}
	}

	order, err := srv.orderRepo.FindByGatewayOrderID(ctx, payment.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			logger.Warn("Webhook references an unknown order")

			return errors.Wrap(domainerrors.ErrOrderNotFound, "unknown gateway order")
		}

		return errors.Wrap(err, "failed to find order by gateway order id")
	}
	if order.IsPaid() {
		logger.Debug("Webhook for paid order ignored", slog.String("order_no", order.OrderNo))

		return nil
	}

	if payload.Event == webhookEventPaymentFailed {
		if order.IsTerminal() {
			logger.Debug("Failed payment webhook for cancelled order ignored", slog.String("order_no", order.OrderNo))

			return nil
		}
		reason := payment.ErrorDescription
		if reason == "" {
			reason = "payment failed"
		}
		if _, err := srv.applyOrderStatus(ctx, order, entity.OrderStatusFailed, reason, false); err != nil {
			return err
		}
		logger.Info("Order marked failed by webhook", slog.String("order_no", order.OrderNo))

		return nil
	}

	if payment.ID == "" {
		return errors.WithStack(domainerrors.ErrInvalidWebhookPayload.WithDetails("payment entity has no id"))
	}
	if payment.Amount != 0 && payment.Amount != order.Pricing.TotalMinorUnits() {
		logger.Warn("Webhook amount differs from order total",
			slog.Int64("webhook_amount", payment.Amount),
			slog.Int64("order_amount", order.Pricing.TotalMinorUnits()))
	}

	_, err = srv.completePayment(ctx, order, payment.ID, entity.PaymentStatusCaptured)

	return err
}

// StartListingCheckout creates an order for the listing fee.
func (srv *checkoutService) StartListingCheckout(ctx context.Context, userID, listingID uuid.UUID) (*usecase.ListingCheckoutOutput, error) {
	listing, err := findOwnedListing(ctx, srv.listingRepo, userID, listingID)
	if err != nil {
		return nil, err
	}
	if listing.PaymentStatus == entity.ListingPaymentPaid {
		return nil, errors.WithStack(domainerrors.ErrListingAlreadyPaid)
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "business user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find business user")
	}

	breakdown, err := pricing.ForAmount(catalog.ListingFee)
	if err != nil {
		return nil, errors.Wrap(err, "failed to price listing fee")
	}

	orderNo, err := srv.idGen.Unique(ctx, identifier.PrefixOrder, srv.orderRepo.ExistsByOrderNo)
	if err != nil {
		return nil, identifierError(err)
	}

	gatewayOrder, err := srv.createGatewayOrder(ctx, breakdown.TotalMinorUnits(), orderNo)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:             uuid.New(),
		OrderNo:        orderNo,
		OrderType:      entity.OrderTypeBusinessListing,
		ListingID:      &listing.ID,
		UserID:         &user.ID,
		Plan:           listingOrderPlan,
		CustomerName:   user.Name,
		CustomerEmail:  user.Email,
		CustomerPhone:  user.Phone,
		Services:       []string{listingOrderService},
		Pricing:        breakdown,
		Currency:       srv.currency,
		Status:         entity.OrderStatusPending,
		GatewayOrderID: gatewayOrder.ID,
	}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create listing order")
		}
		if _, err := txRepoFactory.ListingRepo().UpdatePaymentStatus(ctx, listing.ID, entity.ListingPaymentPending); err != nil {
			return errors.Wrap(err, "failed to mark listing payment pending")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Listing checkout started",
		slog.String("order_no", order.OrderNo),
		slog.String("listing_id", listing.ID.String()))

	return &usecase.ListingCheckoutOutput{
		ListingID:      listing.ID,
		OrderID:        order.ID,
		OrderNo:        order.OrderNo,
		GatewayOrderID: order.GatewayOrderID,
		GatewayKeyID:   srv.gateway.KeyID(),
		AmountMinor:    breakdown.TotalMinorUnits(),
		Currency:       order.Currency,
		Pricing:        breakdown,
	}, nil
}

// UpdateOrderStatus lets an operator override an order status.
func (srv *checkoutService) UpdateOrderStatus(ctx context.Context, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown order status"))
	}

	order, err := srv.findOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if order.IsPaid() {
		if input.Status == entity.OrderStatusPaid {
			return order, nil
		}

		return nil, errors.Wrapf(domainerrors.ErrTerminalState, "order %s is paid", order.OrderNo)
	}

	if input.Status == entity.OrderStatusPaid {
		paymentID := order.GatewayPaymentID
		if paymentID == "" {
			paymentID = manualPaymentPrefix + order.OrderNo
		}
		if _, err := srv.completePayment(ctx, order, paymentID, entity.PaymentStatusManual); err != nil {
			return nil, err
		}
	} else {
		changed, err := srv.applyOrderStatus(ctx, order, input.Status, trimSpace(input.Reason), true)
		if err != nil {
			return nil, err
		}
		if !changed {
			return nil, errors.Wrapf(domainerrors.ErrTerminalState, "order %s was paid concurrently", order.OrderNo)
		}
	}

	srv.log(ctx).Info("Order status overridden",
		slog.String("order_no", order.OrderNo),
		slog.String("status", string(input.Status)))

	return srv.findOrder(ctx, order.ID)
}

func (srv *checkoutService) findOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}
