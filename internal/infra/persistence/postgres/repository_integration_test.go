package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"bizhub/internal/domain/entity"
	"bizhub/internal/domain/repository"
	"bizhub/internal/errors"
	"bizhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() || os.Getenv("INTEGRATION_TEST") != "1" {
		t.Skip("set INTEGRATION_TEST=1 to run Postgres integration tests")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("bizhub"),
		postgres.WithUsername("bizhub"),
		postgres.WithPassword("bizhub"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))

	return db
}

func seedReferralPair(t *testing.T, db *gorm.DB) (referrer, referred uuid.UUID) {
	t.Helper()

	referrerM := &model.BusinessUserModel{Name: "Referrer", Email: uuid.NewString() + "@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(referrerM).Error)
	referredM := &model.BusinessUserModel{Name: "Referred", Email: uuid.NewString() + "@example.com", PasswordHash: "x", ReferredByUserID: &referrerM.ID}
	require.NoError(t, db.Create(referredM).Error)

	return referrerM.ID, referredM.ID
}

func TestIntegration_OrderMarkPaidOnce(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	order := &entity.Order{
		OrderNo:        "ORD-20250101-000001",
		OrderType:      entity.OrderTypeWebsiteRequest,
		Plan:           "starter",
		Pricing:        entity.PriceBreakdown{BasePrice: 4999, Subtotal: 4999, GST: 900, Total: 5899},
		Currency:       "INR",
		Status:         entity.OrderStatusInitiated,
		GatewayOrderID: "order_ABC",
	}
	require.NoError(t, repo.Create(ctx, order))
	require.NotEqual(t, uuid.Nil, order.ID)

	var wins int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.MarkPaid(ctx, order.ID, "pay_1", time.Now())
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)

	changed, err := repo.UpdateStatus(ctx, order.ID, entity.OrderStatusFailed, "late failure")
	require.NoError(t, err)
	assert.False(t, changed)

	found, err := repo.FindByGatewayOrderID(ctx, "order_ABC")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, found.Status)
	assert.Equal(t, "pay_1", found.GatewayPaymentID)
	assert.Equal(t, int64(5899), found.Pricing.Total)
}

func TestIntegration_OrderOpenStatusSkipsCancelled(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	order := &entity.Order{
		OrderNo:        "ORD-20250101-000002",
		OrderType:      entity.OrderTypeWebsiteRequest,
		Plan:           "starter",
		Pricing:        entity.PriceBreakdown{BasePrice: 4999, Subtotal: 4999, GST: 900, Total: 5899},
		Currency:       "INR",
		Status:         entity.OrderStatusPending,
		GatewayOrderID: "order_CAN",
	}
	require.NoError(t, repo.Create(ctx, order))

	changed, err := repo.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled, "customer asked")
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = repo.UpdateOpenStatus(ctx, order.ID, entity.OrderStatusFailed, "card declined")
	require.NoError(t, err)
	assert.False(t, changed)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, found.Status)
	assert.Equal(t, "customer asked", found.FailureReason)

	changed, err = repo.UpdateStatus(ctx, order.ID, entity.OrderStatusPending, "reopened")
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestIntegration_PaymentUpsert(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()
	repo := NewPaymentRepository(db)
	orderID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, &entity.Payment{OrderID: orderID, GatewayPaymentID: "pay_1", Amount: 100, Currency: "INR", Status: entity.PaymentStatusCaptured, PaidAt: time.Now()}))
	require.NoError(t, repo.Upsert(ctx, &entity.Payment{OrderID: orderID, GatewayPaymentID: "pay_2", Amount: 100, Currency: "INR", Status: entity.PaymentStatusCaptured, PaidAt: time.Now()}))

	var count int64
	require.NoError(t, db.Model(&model.PaymentModel{}).Where("order_id = ?", orderID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	payment, err := repo.FindByOrderID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, "pay_2", payment.GatewayPaymentID)
}

func TestIntegration_WebsiteRequestIdempotencyKey(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()
	repo := NewWebsiteRequestRepository(db)

	first := &entity.WebsiteRequest{RequestNo: "WR-20250101-000001", LeadID: uuid.New(), Plan: "starter", CustomerName: "A", CustomerEmail: "a@example.com", CustomerPhone: "9999999999", Status: entity.WebsiteRequestStatusNew, IdempotencyKey: "key-1"}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.WebsiteRequest{RequestNo: "WR-20250101-000002", LeadID: uuid.New(), Plan: "starter", CustomerName: "A", CustomerEmail: "a@example.com", CustomerPhone: "9999999999", Status: entity.WebsiteRequestStatusNew, IdempotencyKey: "key-1"}
	err := repo.Create(ctx, second)
	assert.True(t, errors.Is(err, repository.ErrDuplicateIdempotencyKey))

	// Requests without a key never collide.
	for i, no := range []string{"WR-20250101-000003", "WR-20250101-000004"} {
		r := &entity.WebsiteRequest{RequestNo: no, LeadID: uuid.New(), Plan: "business", CustomerName: "B", CustomerEmail: "b@example.com", CustomerPhone: "9999999999", Status: entity.WebsiteRequestStatusNew}
		require.NoError(t, repo.Create(ctx, r), "request %d", i)
	}

	changed, err := repo.UpdateStatus(ctx, first.ID, entity.WebsiteRequestStatusSuccess)
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = repo.UpdateStatus(ctx, first.ID, entity.WebsiteRequestStatusFailed)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestIntegration_ReferralEarningUniquePerReferredUser(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()
	repo := NewReferralEarningRepository(db)
	referrer, referred := seedReferralPair(t, db)

	earning := func() *entity.ReferralEarning {
		return &entity.ReferralEarning{
			ReferrerID:     referrer,
			ReferredUserID: referred,
			ListingID:      uuid.New(),
			BaseAmount:     decimal.NewFromInt(1179),
			CommissionRate: decimal.RequireFromString("0.25"),
			Amount:         decimal.RequireFromString("294.75"),
			Currency:       "INR",
			Status:         entity.EarningStatusCredited,
		}
	}

	require.NoError(t, repo.Create(ctx, earning()))
	assert.True(t, errors.Is(repo.Create(ctx, earning()), repository.ErrDuplicateEarning))

	total, err := repo.SumCredited(ctx, referrer)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("294.75").Equal(total), total.String())

	none, err := repo.SumCredited(ctx, uuid.New())
	require.NoError(t, err)
	assert.True(t, none.IsZero())
}

func TestIntegration_OneOpenWithdrawalPerUser(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()
	repo := NewReferralWithdrawalRepository(db)
	userID := uuid.New()

	first := &entity.ReferralWithdrawal{RequestNo: "WD-20250101-000001", UserID: userID, Amount: decimal.NewFromInt(150), Method: entity.PayoutMethodUPI, Details: entity.PayoutDetails{UPIID: "a@upi"}, Status: entity.WithdrawalStatusRequested}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.ReferralWithdrawal{RequestNo: "WD-20250101-000002", UserID: userID, Amount: decimal.NewFromInt(120), Method: entity.PayoutMethodUPI, Details: entity.PayoutDetails{UPIID: "a@upi"}, Status: entity.WithdrawalStatusRequested}
	assert.True(t, errors.Is(repo.Create(ctx, second), repository.ErrOpenWithdrawalExists))

	now := time.Now()
	changed, err := repo.UpdateStatus(ctx, first.ID, entity.WithdrawalStatusPaid, "sent", &now)
	require.NoError(t, err)
	assert.True(t, changed)

	require.NoError(t, repo.Create(ctx, second))

	paidOut, err := repo.SumByStatus(ctx, userID, entity.WithdrawalStatusPaid)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(150).Equal(paidOut))

	changed, err = repo.UpdateStatus(ctx, first.ID, entity.WithdrawalStatusRejected, "", &now)
	require.NoError(t, err)
	assert.False(t, changed)

	open, err := repo.ListByStatus(ctx, entity.OpenWithdrawalStatuses...)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "a@upi", open[0].Details.UPIID)
}

func TestIntegration_ListingModeration(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()
	repo := NewBusinessListingRepository(db)
	ownerID := uuid.New()

	listingM := &model.BusinessListingModel{OwnerID: ownerID, BusinessName: "Acme Bakery", PaymentStatus: "unpaid", Status: "pending_review"}
	require.NoError(t, db.Create(listingM).Error)

	changed, err := repo.UpdatePaymentStatus(ctx, listingM.ID, entity.ListingPaymentPaid)
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = repo.UpdatePaymentStatus(ctx, listingM.ID, entity.ListingPaymentFailed)
	require.NoError(t, err)
	assert.False(t, changed)

	listing, err := repo.FindByID(ctx, listingM.ID)
	require.NoError(t, err)
	now := time.Now()
	listing.Status = entity.ListingStatusApproved
	listing.CertificateID = "CERT-20250101-000001"
	listing.PublicUsername = "acme-bakery"
	listing.ApprovedAt = &now
	require.NoError(t, repo.UpdateModeration(ctx, listing))

	ok, err := repo.HasApprovedPaidListing(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, ok)

	taken, err := repo.ExistsByPublicUsername(ctx, "acme-bakery")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestIntegration_ListingIdentityFirstWriterWins(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()
	repo := NewBusinessListingRepository(db)

	listingM := &model.BusinessListingModel{OwnerID: uuid.New(), BusinessName: "Blue Cafe", PaymentStatus: "paid", Status: "pending_review"}
	require.NoError(t, db.Create(listingM).Error)

	require.NoError(t, repo.AssignIdentity(ctx, listingM.ID, "CERT-20250101-000010", "blue-cafe"))
	require.NoError(t, repo.AssignIdentity(ctx, listingM.ID, "CERT-20250101-000011", "blue-cafe-1"))

	listing, err := repo.FindByID(ctx, listingM.ID)
	require.NoError(t, err)
	assert.Equal(t, "CERT-20250101-000010", listing.CertificateID)
	assert.Equal(t, "blue-cafe", listing.PublicUsername)

	otherM := &model.BusinessListingModel{OwnerID: uuid.New(), BusinessName: "Blue Cafe", PaymentStatus: "paid", Status: "pending_review"}
	require.NoError(t, db.Create(otherM).Error)
	err = repo.AssignIdentity(ctx, otherM.ID, "CERT-20250101-000012", "blue-cafe")
	assert.ErrorIs(t, err, repository.ErrDuplicateListingIdentity)
}

func TestIntegration_TransactionRollback(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)
	sentinel := errors.New("abort")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		lead := &entity.Lead{Name: "A", Email: "a@example.com", Phone: "9999999999", Source: entity.LeadSourceCheckout, Status: entity.LeadStatusNew}
		if err := f.LeadRepo().Create(ctx, lead); err != nil {
			return err
		}

		return sentinel
	})
	assert.True(t, errors.Is(err, sentinel))

	var count int64
	require.NoError(t, db.Model(&model.LeadModel{}).Count(&count).Error)
	assert.Zero(t, count)
}
