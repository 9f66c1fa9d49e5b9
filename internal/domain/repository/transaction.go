package repository

import "context"

// TransactionManager runs a unit of work inside one database transaction.
type TransactionManager interface {
	// Execute runs fn in a transaction. A returned error rolls back, nil commits.
	// Repositories obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	LeadRepo() LeadRepository
	WebsiteRequestRepo() WebsiteRequestRepository
	OrderRepo() OrderRepository
	PaymentRepo() PaymentRepository
	ListingRepo() BusinessListingRepository
	EarningRepo() ReferralEarningRepository
	WithdrawalRepo() ReferralWithdrawalRepository
}
