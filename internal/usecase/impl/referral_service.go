package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bizhub/config"
	deliverycontext "bizhub/internal/delivery/context"
	"bizhub/internal/domain/catalog"
	"bizhub/internal/domain/entity"
	domainerrors "bizhub/internal/domain/errors"
	"bizhub/internal/domain/identifier"
	"bizhub/internal/domain/repository"
	"bizhub/internal/domain/service"
	"bizhub/internal/errors"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	amountDecimals = 2

	commissionNotificationTitle = "Referral commission credited"
	payoutFilePrefix            = "payouts-"
	payoutFileDateLayout        = "20060102-150405"
	payoutFileExtension         = ".xlsx"
)

// ReferralServiceParams holds the dependencies of the referral service.
type ReferralServiceParams struct {
	fx.In

	Config         *config.Config
	UserRepo       repository.BusinessUserRepository
	ListingRepo    repository.BusinessListingRepository
	EarningRepo    repository.ReferralEarningRepository
	WithdrawalRepo repository.ReferralWithdrawalRepository
	Exporter       service.PayoutExporter
	Notifier       service.NotificationService `optional:"true"`
	IDGen          *identifier.Generator
	Logger         *slog.Logger
}

// referralService implements the ReferralUsecase interface.
type referralService struct {
	userRepo       repository.BusinessUserRepository
	listingRepo    repository.BusinessListingRepository
	earningRepo    repository.ReferralEarningRepository
	withdrawalRepo repository.ReferralWithdrawalRepository
	exporter       service.PayoutExporter
	notifier       service.NotificationService
	idGen          *identifier.Generator
	commissionRate decimal.Decimal
	minWithdrawal  decimal.Decimal
	now            func() time.Time
	logger         *slog.Logger
}

// NewReferralService is the constructor for referralService.
func NewReferralService(params ReferralServiceParams) usecase.ReferralUsecase {
	rate := catalog.ReferralCommissionRate
	minWithdrawal := catalog.MinWithdrawalAmount

	if params.Config != nil && params.Config.Referral != nil {
		rate = decimalOverride(params.Logger, "referral.commissionRate", params.Config.Referral.CommissionRate, rate)
		minWithdrawal = decimalOverride(params.Logger, "referral.minWithdrawal", params.Config.Referral.MinWithdrawal, minWithdrawal)
	}

	return &referralService{
		userRepo:       params.UserRepo,
		listingRepo:    params.ListingRepo,
		earningRepo:    params.EarningRepo,
		withdrawalRepo: params.WithdrawalRepo,
		exporter:       params.Exporter,
		notifier:       params.Notifier,
		idGen:          params.IDGen,
		commissionRate: rate,
		minWithdrawal:  minWithdrawal,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func decimalOverride(logger *slog.Logger, key, raw string, fallback decimal.Decimal) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	value, err := decimal.NewFromString(raw)
	if err != nil || !value.IsPositive() {
		logger.Warn("Ignoring invalid config value",
			slog.String("key", key),
			slog.String("value", raw))

		return fallback
	}

	return value
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *referralService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessCommission credits the referrer of input.ReferredUserID at most once.
func (srv *referralService) ProcessCommission(ctx context.Context, input *usecase.CommissionInput) (*entity.ReferralEarning, error) {
	logger := srv.log(ctx).With(
		slog.String("referred_user_id", input.ReferredUserID.String()),
		slog.String("order_no", input.OrderNo),
	)

	referred, err := srv.userRepo.FindByID(ctx, input.ReferredUserID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessUserNotFound) {
			logger.Warn("Referred user not found, skipping commission")

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find referred user")
	}
	if referred.ReferredByUserID == nil || *referred.ReferredByUserID == referred.ID {
		return nil, nil
	}
	referrerID := *referred.ReferredByUserID

	credited, err := srv.earningRepo.ExistsForReferredUser(ctx, referred.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing earning")
	}
	if credited {
		logger.Debug("Referral commission already credited")

		return nil, nil
	}

	eligible, err := srv.listingRepo.HasApprovedPaidListing(ctx, referrerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check referrer eligibility")
	}
	if !eligible {
		logger.Info("Referrer not eligible for commission", slog.String("referrer_id", referrerID.String()))

		return nil, nil
	}

	amount := input.Amount.Mul(srv.commissionRate).Round(amountDecimals)
	if !amount.IsPositive() {
		return nil, nil
	}

	earning := &entity.ReferralEarning{
		ReferrerID:     referrerID,
		ReferredUserID: referred.ID,
		ListingID:      input.ListingID,
		PaymentID:      input.PaymentID,
		OrderNo:        input.OrderNo,
		BaseAmount:     input.Amount,
		CommissionRate: srv.commissionRate,
		Amount:         amount,
		Currency:       input.Currency,
		Status:         entity.EarningStatusCredited,
	}
	if err := srv.earningRepo.Create(ctx, earning); err != nil {
		if errors.Is(err, repository.ErrDuplicateEarning) {
			logger.Info("Referral commission credited concurrently")

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to create referral earning")
	}

	logger.Info("Referral commission credited",
		slog.String("referrer_id", referrerID.String()),
		slog.String("amount", amount.StringFixed(amountDecimals)))

	srv.notifyReferrer(ctx, earning)

	return earning, nil
}

func (srv *referralService) notifyReferrer(ctx context.Context, earning *entity.ReferralEarning) {
	if srv.notifier == nil {
		return
	}

	referrer, err := srv.userRepo.FindByID(ctx, earning.ReferrerID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load referrer for notification", slog.Any("error", err))

		return
	}
	if referrer.FCMToken == "" {
		return
	}

	body := "You earned " + earning.Currency + " " + earning.Amount.StringFixed(amountDecimals) + " from a referral."
	data := map[string]string{
		"type":      "referral_commission",
		"earningId": earning.ID.String(),
		"orderNo":   earning.OrderNo,
	}
	if err := srv.notifier.NotifyDevice(ctx, referrer.FCMToken, commissionNotificationTitle, body, data); err != nil {
		srv.log(ctx).Warn("Failed to send commission notification",
			slog.String("referrer_id", referrer.ID.String()),
			slog.Any("error", err))
	}
}

type balances struct {
	earned    decimal.Decimal
	paidOut   decimal.Decimal
	locked    decimal.Decimal
	available decimal.Decimal
}

// balances recomputes the wallet from earnings and withdrawals on every call.
func (srv *referralService) balances(ctx context.Context, userID uuid.UUID) (*balances, error) {
	earned, err := srv.earningRepo.SumCredited(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum earnings")
	}
	paidOut, err := srv.withdrawalRepo.SumByStatus(ctx, userID, entity.WithdrawalStatusPaid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum paid withdrawals")
	}
	locked, err := srv.withdrawalRepo.SumByStatus(ctx, userID, entity.OpenWithdrawalStatuses...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum open withdrawals")
	}

	return &balances{
		earned:    earned,
		paidOut:   paidOut,
		locked:    locked,
		available: entity.AvailableBalance(earned, paidOut, locked),
	}, nil
}

// AvailableBalance is earned minus paid out minus locked, floored at zero.
func (srv *referralService) AvailableBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	b, err := srv.balances(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	return b.available, nil
}

// GetWallet returns balances with earning and withdrawal history.
func (srv *referralService) GetWallet(ctx context.Context, userID uuid.UUID) (*usecase.Wallet, error) {
	b, err := srv.balances(ctx, userID)
	if err != nil {
		return nil, err
	}

	eligible, err := srv.listingRepo.HasApprovedPaidListing(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check eligibility")
	}

	earnings, err := srv.earningRepo.ListByReferrer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list earnings")
	}

	withdrawals, err := srv.withdrawalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list withdrawals")
	}

	return &usecase.Wallet{
		Earned:      b.earned,
		PaidOut:     b.paidOut,
		Locked:      b.locked,
		Available:   b.available,
		Eligible:    eligible,
		Earnings:    earnings,
		Withdrawals: withdrawals,
	}, nil
}

// RequestWithdrawal opens a payout request.
func (srv *referralService) RequestWithdrawal(ctx context.Context, userID uuid.UUID, input *usecase.WithdrawalInput) (*entity.ReferralWithdrawal, error) {
	if err := srv.validateAmount(input.Amount); err != nil {
		return nil, err
	}

	details, err := payoutDetailsFor(input.Method, input.Details)
	if err != nil {
		return nil, err
	}

	eligible, err := srv.listingRepo.HasApprovedPaidListing(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check eligibility")
	}
	if !eligible {
		return nil, errors.WithStack(domainerrors.ErrNotEligible)
	}

	open, err := srv.withdrawalRepo.HasOpenRequest(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check open withdrawals")
	}
	if open {
		return nil, errors.WithStack(domainerrors.ErrPendingRequestExists)
	}

	available, err := srv.AvailableBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if input.Amount.GreaterThan(available) {
		return nil, errors.WithStack(domainerrors.ErrInsufficientBalance.WithDetails(
			"available balance is " + available.StringFixed(amountDecimals)))
	}

	requestNo, err := srv.idGen.Unique(ctx, identifier.PrefixWithdrawal, srv.withdrawalRepo.ExistsByRequestNo)
	if err != nil {
		return nil, identifierError(err)
	}

	withdrawal := &entity.ReferralWithdrawal{
		RequestNo: requestNo,
		UserID:    userID,
		Amount:    input.Amount,
		Method:    input.Method,
		Details:   details,
		Status:    entity.WithdrawalStatusRequested,
	}
	if err := srv.withdrawalRepo.Create(ctx, withdrawal); err != nil {
		if errors.Is(err, repository.ErrOpenWithdrawalExists) {
			return nil, errors.WithStack(domainerrors.ErrPendingRequestExists)
		}

		return nil, errors.Wrap(err, "failed to create withdrawal")
	}

	srv.log(ctx).Info("Withdrawal requested",
		slog.String("request_no", withdrawal.RequestNo),
		slog.String("user_id", userID.String()),
		slog.String("amount", withdrawal.Amount.StringFixed(amountDecimals)))

	return withdrawal, nil
}

func (srv *referralService) validateAmount(amount decimal.Decimal) error {
	switch {
	case !amount.IsPositive():
		return errors.WithStack(domainerrors.ErrInvalidAmount.WithDetails("amount must be positive"))
	case amount.LessThan(srv.minWithdrawal):
		return errors.WithStack(domainerrors.ErrInvalidAmount.WithDetails(
			"minimum withdrawal is " + srv.minWithdrawal.StringFixed(amountDecimals)))
	case !amount.Equal(amount.Round(amountDecimals)):
		return errors.WithStack(domainerrors.ErrInvalidAmount.WithDetails("amount has more than two decimals"))
	}

	return nil
}

// payoutDetailsFor checks the destination fields the method needs and drops
// the rest.
func payoutDetailsFor(method entity.PayoutMethod, details entity.PayoutDetails) (entity.PayoutDetails, error) {
	switch method {
	case entity.PayoutMethodUPI:
		upiID := trimSpace(details.UPIID)
		if upiID == "" {
			return entity.PayoutDetails{}, errors.WithStack(domainerrors.ErrMissingPayoutDetail.WithDetails("upi id is required"))
		}

		return entity.PayoutDetails{UPIID: upiID}, nil
	case entity.PayoutMethodBank:
		out := entity.PayoutDetails{
			AccountNumber: trimSpace(details.AccountNumber),
			IFSC:          strings.ToUpper(trimSpace(details.IFSC)),
			AccountHolder: trimSpace(details.AccountHolder),
		}
		if out.AccountNumber == "" || out.IFSC == "" || out.AccountHolder == "" {
			return entity.PayoutDetails{}, errors.WithStack(domainerrors.ErrMissingPayoutDetail.WithDetails(
				"account number, ifsc and account holder are required"))
		}

		return out, nil
	default:
		return entity.PayoutDetails{}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("payout method must be upi or bank"))
	}
}

// UpdateWithdrawalStatus moves a withdrawal. paid is terminal.
func (srv *referralService) UpdateWithdrawalStatus(ctx context.Context, input *usecase.UpdateWithdrawalStatusInput) (*entity.ReferralWithdrawal, error) {
	if !input.Status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown withdrawal status"))
	}

	withdrawal, err := srv.findWithdrawal(ctx, input.WithdrawalID)
	if err != nil {
		return nil, err
	}

	if withdrawal.Status == entity.WithdrawalStatusPaid {
		if input.Status == entity.WithdrawalStatusPaid {
			return withdrawal, nil
		}

		return nil, errors.Wrapf(domainerrors.ErrTerminalState, "withdrawal %s is paid", withdrawal.RequestNo)
	}

	var processedAt *time.Time
	if !input.Status.IsOpen() {
		now := srv.now()
		processedAt = &now
	}

	changed, err := srv.withdrawalRepo.UpdateStatus(ctx, withdrawal.ID, input.Status, trimSpace(input.Note), processedAt)
	if err != nil {
		if errors.Is(err, repository.ErrOpenWithdrawalExists) {
			return nil, errors.WithStack(domainerrors.ErrPendingRequestExists)
		}

		return nil, errors.Wrap(err, "failed to update withdrawal status")
	}
	if !changed {
		return nil, errors.Wrapf(domainerrors.ErrTerminalState, "withdrawal %s was paid concurrently", withdrawal.RequestNo)
	}

	srv.log(ctx).Info("Withdrawal status updated",
		slog.String("request_no", withdrawal.RequestNo),
		slog.String("from", string(withdrawal.Status)),
		slog.String("to", string(input.Status)))

	return srv.findWithdrawal(ctx, withdrawal.ID)
}

// ListWithdrawals returns withdrawals in the given statuses, oldest first.
func (srv *referralService) ListWithdrawals(ctx context.Context, statuses ...entity.WithdrawalStatus) ([]*entity.ReferralWithdrawal, error) {
	withdrawals, err := srv.withdrawalRepo.ListByStatus(ctx, statuses...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list withdrawals")
	}

	return withdrawals, nil
}

// ExportPayouts renders every open withdrawal as a spreadsheet.
func (srv *referralService) ExportPayouts(ctx context.Context) (*usecase.PayoutExport, error) {
	withdrawals, err := srv.ListWithdrawals(ctx, entity.OpenWithdrawalStatuses...)
	if err != nil {
		return nil, err
	}

	data, err := srv.exporter.ExportWithdrawals(withdrawals)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export payouts")
	}

	srv.log(ctx).Info("Payout sheet exported", slog.Int("count", len(withdrawals)))

	return &usecase.PayoutExport{
		Filename:    payoutFilePrefix + srv.now().Format(payoutFileDateLayout) + payoutFileExtension,
		ContentType: srv.exporter.ContentType(),
		Data:        data,
		Count:       len(withdrawals),
	}, nil
}

func (srv *referralService) findWithdrawal(ctx context.Context, id uuid.UUID) (*entity.ReferralWithdrawal, error) {
	withdrawal, err := srv.withdrawalRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWithdrawalNotFound) {
			return nil, errors.Wrap(domainerrors.ErrWithdrawalNotFound, "withdrawal not found")
		}

		return nil, errors.Wrap(err, "failed to find withdrawal")
	}

	return withdrawal, nil
}
