package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"bizhub/internal/domain/entity"
	"bizhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is an in-memory stand-in for the Postgres repositories. Each
// operation is atomic under mu, which gives the same single-row guarantees
// the conditional updates rely on in SQL. Execute restores a snapshot when
// fn fails.
type memStore struct {
	mu sync.Mutex

	leads       map[uuid.UUID]entity.Lead
	requests    map[uuid.UUID]entity.WebsiteRequest
	orders      map[uuid.UUID]entity.Order
	payments    map[uuid.UUID]entity.Payment
	users       map[uuid.UUID]entity.BusinessUser
	listings    map[uuid.UUID]entity.BusinessListing
	earnings    map[uuid.UUID]entity.ReferralEarning
	withdrawals map[uuid.UUID]entity.ReferralWithdrawal

	paymentUpserts int
	paidWins       int

	// failOn makes the named operation return the error.
	failOn map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		leads:       map[uuid.UUID]entity.Lead{},
		requests:    map[uuid.UUID]entity.WebsiteRequest{},
		orders:      map[uuid.UUID]entity.Order{},
		payments:    map[uuid.UUID]entity.Payment{},
		users:       map[uuid.UUID]entity.BusinessUser{},
		listings:    map[uuid.UUID]entity.BusinessListing{},
		earnings:    map[uuid.UUID]entity.ReferralEarning{},
		withdrawals: map[uuid.UUID]entity.ReferralWithdrawal{},
		failOn:      map[string]error{},
	}
}

type memSnapshot struct {
	leads       map[uuid.UUID]entity.Lead
	requests    map[uuid.UUID]entity.WebsiteRequest
	orders      map[uuid.UUID]entity.Order
	payments    map[uuid.UUID]entity.Payment
	listings    map[uuid.UUID]entity.BusinessListing
	earnings    map[uuid.UUID]entity.ReferralEarning
	withdrawals map[uuid.UUID]entity.ReferralWithdrawal
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return memSnapshot{
		leads:       cloneMap(s.leads),
		requests:    cloneMap(s.requests),
		orders:      cloneMap(s.orders),
		payments:    cloneMap(s.payments),
		listings:    cloneMap(s.listings),
		earnings:    cloneMap(s.earnings),
		withdrawals: cloneMap(s.withdrawals),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads = snap.leads
	s.requests = snap.requests
	s.orders = snap.orders
	s.payments = snap.payments
	s.listings = snap.listings
	s.earnings = snap.earnings
	s.withdrawals = snap.withdrawals
}

func (s *memStore) fail(op string) error {
	return s.failOn[op]
}

// Execute implements repository.TransactionManager.
func (s *memStore) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	snap := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snap)

		return err
	}

	return nil
}

func (s *memStore) LeadRepo() repository.LeadRepository                     { return memLeadRepo{s} }
func (s *memStore) WebsiteRequestRepo() repository.WebsiteRequestRepository { return memRequestRepo{s} }
func (s *memStore) OrderRepo() repository.OrderRepository                   { return memOrderRepo{s} }
func (s *memStore) PaymentRepo() repository.PaymentRepository               { return memPaymentRepo{s} }
func (s *memStore) ListingRepo() repository.BusinessListingRepository       { return memListingRepo{s} }
func (s *memStore) EarningRepo() repository.ReferralEarningRepository       { return memEarningRepo{s} }
func (s *memStore) WithdrawalRepo() repository.ReferralWithdrawalRepository { return memWithdrawalRepo{s} }
func (s *memStore) UserRepo() repository.BusinessUserRepository             { return memUserRepo{s} }

// --- seeding and inspection helpers ---

func (s *memStore) addUser(user entity.BusinessUser) entity.BusinessUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = user

	return user
}

func (s *memStore) addListing(listing entity.BusinessListing) entity.BusinessListing {
	s.mu.Lock()
	defer s.mu.Unlock()

	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	s.listings[listing.ID] = listing

	return listing
}

func (s *memStore) addOrder(order entity.Order) entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	s.orders[order.ID] = order

	return order
}

func (s *memStore) addWithdrawal(w entity.ReferralWithdrawal) entity.ReferralWithdrawal {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now()
	}
	s.withdrawals[w.ID] = w

	return w
}

func (s *memStore) addEarning(e entity.ReferralEarning) entity.ReferralEarning {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Status == "" {
		e.Status = entity.EarningStatusCredited
	}
	s.earnings[e.ID] = e

	return e
}

func (s *memStore) order(id uuid.UUID) entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.orders[id]
}

func (s *memStore) request(id uuid.UUID) entity.WebsiteRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.requests[id]
}

func (s *memStore) lead(id uuid.UUID) entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.leads[id]
}

func (s *memStore) listing(id uuid.UUID) entity.BusinessListing {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listings[id]
}

func (s *memStore) withdrawal(id uuid.UUID) entity.ReferralWithdrawal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withdrawals[id]
}

func (s *memStore) earningsFor(referredUserID uuid.UUID) []entity.ReferralEarning {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.ReferralEarning
	for _, e := range s.earnings {
		if e.ReferredUserID == referredUserID {
			out = append(out, e)
		}
	}

	return out
}

func (s *memStore) counts() (leads, requests, orders, payments int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.leads), len(s.requests), len(s.orders), len(s.payments)
}

// --- leads ---

type memLeadRepo struct{ s *memStore }

func (r memLeadRepo) Create(_ context.Context, lead *entity.Lead) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.fail("lead.create"); err != nil {
		return err
	}
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	lead.CreatedAt = time.Now()
	lead.UpdatedAt = lead.CreatedAt
	r.s.leads[lead.ID] = *lead

	return nil
}

func (r memLeadRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Lead, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	lead, ok := r.s.leads[id]
	if !ok {
		return nil, repository.ErrLeadNotFound
	}

	return &lead, nil
}

func (r memLeadRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.LeadStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	lead, ok := r.s.leads[id]
	if !ok {
		return repository.ErrLeadNotFound
	}
	lead.Status = status
	r.s.leads[id] = lead

	return nil
}

// --- website requests ---

type memRequestRepo struct{ s *memStore }

func (r memRequestRepo) Create(_ context.Context, request *entity.WebsiteRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.fail("request.create"); err != nil {
		return err
	}
	for _, existing := range r.s.requests {
		if request.IdempotencyKey != "" && existing.IdempotencyKey == request.IdempotencyKey {
			return repository.ErrDuplicateIdempotencyKey
		}
	}
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	request.CreatedAt = time.Now()
	r.s.requests[request.ID] = *request

	return nil
}

func (r memRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.WebsiteRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	request, ok := r.s.requests[id]
	if !ok {
		return nil, repository.ErrWebsiteRequestNotFound
	}

	return &request, nil
}

func (r memRequestRepo) FindByIdempotencyKey(_ context.Context, key string) (*entity.WebsiteRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, request := range r.s.requests {
		if key != "" && request.IdempotencyKey == key {
			return &request, nil
		}
	}

	return nil, repository.ErrWebsiteRequestNotFound
}

func (r memRequestRepo) ExistsByRequestNo(_ context.Context, requestNo string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, request := range r.s.requests {
		if request.RequestNo == requestNo {
			return true, nil
		}
	}

	return false, nil
}

func (r memRequestRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.WebsiteRequestStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	request, ok := r.s.requests[id]
	if !ok || request.Status == entity.WebsiteRequestStatusSuccess {
		return false, nil
	}
	request.Status = status
	r.s.requests[id] = request

	return true, nil
}

// --- orders ---

type memOrderRepo struct{ s *memStore }

func (r memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.fail("order.create"); err != nil {
		return err
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	r.s.orders[order.ID] = *order

	return nil
}

func (r memOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order, ok := r.s.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return &order, nil
}

func (r memOrderRepo) FindByGatewayOrderID(_ context.Context, gatewayOrderID string) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, order := range r.s.orders {
		if gatewayOrderID != "" && order.GatewayOrderID == gatewayOrderID {
			return &order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r memOrderRepo) ExistsByOrderNo(_ context.Context, orderNo string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, order := range r.s.orders {
		if order.OrderNo == orderNo {
			return true, nil
		}
	}

	return false, nil
}

func (r memOrderRepo) MarkPaid(_ context.Context, id uuid.UUID, gatewayPaymentID string, paidAt time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order, ok := r.s.orders[id]
	if !ok || order.Status == entity.OrderStatusPaid {
		return false, nil
	}
	order.Status = entity.OrderStatusPaid
	order.GatewayPaymentID = gatewayPaymentID
	order.FailureReason = ""
	order.PaidAt = &paidAt
	r.s.orders[id] = order
	r.s.paidWins++

	return true, nil
}

func (r memOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus, reason string) (bool, error) {
	return r.updateStatus(id, status, reason, entity.OrderStatusPaid)
}

func (r memOrderRepo) UpdateOpenStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus, reason string) (bool, error) {
	return r.updateStatus(id, status, reason, entity.OrderStatusPaid, entity.OrderStatusCancelled)
}

func (r memOrderRepo) updateStatus(id uuid.UUID, status entity.OrderStatus, reason string, frozen ...entity.OrderStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order, ok := r.s.orders[id]
	if !ok || slices.Contains(frozen, order.Status) {
		return false, nil
	}
	order.Status = status
	order.FailureReason = reason
	r.s.orders[id] = order

	return true, nil
}

// --- payments ---

type memPaymentRepo struct{ s *memStore }

func (r memPaymentRepo) Upsert(_ context.Context, payment *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.fail("payment.upsert"); err != nil {
		return err
	}
	if existing, ok := r.s.payments[payment.OrderID]; ok {
		payment.ID = existing.ID
	} else if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.s.payments[payment.OrderID] = *payment
	r.s.paymentUpserts++

	return nil
}

func (r memPaymentRepo) FindByOrderID(_ context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	payment, ok := r.s.payments[orderID]
	if !ok {
		return nil, repository.ErrPaymentNotFound
	}

	return &payment, nil
}

// --- business users ---

type memUserRepo struct{ s *memStore }

func (r memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BusinessUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrBusinessUserNotFound
	}

	return &user, nil
}

func (r memUserRepo) FindByEmail(_ context.Context, email string) (*entity.BusinessUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, user := range r.s.users {
		if user.Email == email {
			return &user, nil
		}
	}

	return nil, repository.ErrBusinessUserNotFound
}

// --- listings ---

type memListingRepo struct{ s *memStore }

func (r memListingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BusinessListing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	listing, ok := r.s.listings[id]
	if !ok {
		return nil, repository.ErrListingNotFound
	}

	return &listing, nil
}

func (r memListingRepo) HasApprovedPaidListing(_ context.Context, ownerID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, listing := range r.s.listings {
		if listing.OwnerID == ownerID && listing.IsEligibleForReferral() {
			return true, nil
		}
	}

	return false, nil
}

func (r memListingRepo) UpdatePaymentStatus(_ context.Context, id uuid.UUID, status entity.ListingPaymentStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	listing, ok := r.s.listings[id]
	if !ok || listing.PaymentStatus == entity.ListingPaymentPaid {
		return false, nil
	}
	listing.PaymentStatus = status
	r.s.listings[id] = listing

	return true, nil
}

func (r memListingRepo) AssignIdentity(_ context.Context, id uuid.UUID, certificateID, username string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.listings[id]
	if !ok {
		return repository.ErrListingNotFound
	}
	if current.CertificateID == "" {
		current.CertificateID = certificateID
	}
	if current.PublicUsername == "" {
		current.PublicUsername = username
	}
	for otherID, other := range r.s.listings {
		if otherID == id {
			continue
		}
		if (current.CertificateID != "" && other.CertificateID == current.CertificateID) ||
			(current.PublicUsername != "" && other.PublicUsername == current.PublicUsername) {
			return repository.ErrDuplicateListingIdentity
		}
	}
	r.s.listings[id] = current

	return nil
}

func (r memListingRepo) UpdateModeration(_ context.Context, listing *entity.BusinessListing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.listings[listing.ID]
	if !ok {
		return repository.ErrListingNotFound
	}
	for id, other := range r.s.listings {
		if id == listing.ID {
			continue
		}
		if (listing.CertificateID != "" && other.CertificateID == listing.CertificateID) ||
			(listing.PublicUsername != "" && other.PublicUsername == listing.PublicUsername) {
			return repository.ErrDuplicateListingIdentity
		}
	}
	current.Status = listing.Status
	current.CertificateID = listing.CertificateID
	current.PublicUsername = listing.PublicUsername
	current.RejectionReason = listing.RejectionReason
	current.ApprovedAt = listing.ApprovedAt
	r.s.listings[listing.ID] = current

	return nil
}

func (r memListingRepo) ExistsByCertificateID(_ context.Context, certificateID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, listing := range r.s.listings {
		if listing.CertificateID == certificateID {
			return true, nil
		}
	}

	return false, nil
}

func (r memListingRepo) ExistsByPublicUsername(_ context.Context, username string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, listing := range r.s.listings {
		if listing.PublicUsername == username {
			return true, nil
		}
	}

	return false, nil
}

// --- referral earnings ---

type memEarningRepo struct{ s *memStore }

func (r memEarningRepo) Create(_ context.Context, earning *entity.ReferralEarning) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.fail("earning.create"); err != nil {
		return err
	}
	for _, existing := range r.s.earnings {
		if existing.ReferredUserID == earning.ReferredUserID {
			return repository.ErrDuplicateEarning
		}
	}
	if earning.ID == uuid.Nil {
		earning.ID = uuid.New()
	}
	earning.CreatedAt = time.Now()
	r.s.earnings[earning.ID] = *earning

	return nil
}

func (r memEarningRepo) ExistsForReferredUser(_ context.Context, referredUserID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.earnings {
		if existing.ReferredUserID == referredUserID {
			return true, nil
		}
	}

	return false, nil
}

func (r memEarningRepo) SumCredited(_ context.Context, referrerID uuid.UUID) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	total := decimal.Zero
	for _, e := range r.s.earnings {
		if e.ReferrerID == referrerID && e.Status == entity.EarningStatusCredited {
			total = total.Add(e.Amount)
		}
	}

	return total, nil
}

func (r memEarningRepo) ListByReferrer(_ context.Context, referrerID uuid.UUID) ([]*entity.ReferralEarning, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*entity.ReferralEarning
	for _, e := range r.s.earnings {
		if e.ReferrerID == referrerID {
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

// --- referral withdrawals ---

type memWithdrawalRepo struct{ s *memStore }

func (r memWithdrawalRepo) hasOpenLocked(userID, except uuid.UUID) bool {
	for id, w := range r.s.withdrawals {
		if id != except && w.UserID == userID && w.Status.IsOpen() {
			return true
		}
	}

	return false
}

func (r memWithdrawalRepo) Create(_ context.Context, withdrawal *entity.ReferralWithdrawal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if withdrawal.Status.IsOpen() && r.hasOpenLocked(withdrawal.UserID, uuid.Nil) {
		return repository.ErrOpenWithdrawalExists
	}
	if withdrawal.ID == uuid.Nil {
		withdrawal.ID = uuid.New()
	}
	withdrawal.CreatedAt = time.Now()
	withdrawal.UpdatedAt = withdrawal.CreatedAt
	r.s.withdrawals[withdrawal.ID] = *withdrawal

	return nil
}

func (r memWithdrawalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ReferralWithdrawal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.withdrawals[id]
	if !ok {
		return nil, repository.ErrWithdrawalNotFound
	}

	return &w, nil
}

func (r memWithdrawalRepo) ExistsByRequestNo(_ context.Context, requestNo string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, w := range r.s.withdrawals {
		if w.RequestNo == requestNo {
			return true, nil
		}
	}

	return false, nil
}

func (r memWithdrawalRepo) HasOpenRequest(_ context.Context, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.hasOpenLocked(userID, uuid.Nil), nil
}

func (r memWithdrawalRepo) SumByStatus(_ context.Context, userID uuid.UUID, statuses ...entity.WithdrawalStatus) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	total := decimal.Zero
	for _, w := range r.s.withdrawals {
		if w.UserID == userID && containsStatus(statuses, w.Status) {
			total = total.Add(w.Amount)
		}
	}

	return total, nil
}

func (r memWithdrawalRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.ReferralWithdrawal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*entity.ReferralWithdrawal
	for _, w := range r.s.withdrawals {
		if w.UserID == userID {
			out = append(out, &w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (r memWithdrawalRepo) ListByStatus(_ context.Context, statuses ...entity.WithdrawalStatus) ([]*entity.ReferralWithdrawal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*entity.ReferralWithdrawal
	for _, w := range r.s.withdrawals {
		if containsStatus(statuses, w.Status) {
			out = append(out, &w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out, nil
}

func (r memWithdrawalRepo) UpdateStatus(
	_ context.Context,
	id uuid.UUID,
	status entity.WithdrawalStatus,
	note string,
	processedAt *time.Time,
) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.withdrawals[id]
	if !ok || w.Status == entity.WithdrawalStatusPaid {
		return false, nil
	}
	if status.IsOpen() && r.hasOpenLocked(w.UserID, id) {
		return false, repository.ErrOpenWithdrawalExists
	}
	w.Status = status
	w.AdminNote = note
	w.ProcessedAt = processedAt
	w.UpdatedAt = time.Now()
	r.s.withdrawals[id] = w

	return true, nil
}

func containsStatus(statuses []entity.WithdrawalStatus, status entity.WithdrawalStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}

	return false
}
