// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bizhub/internal/domain/repository"
	"bizhub/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) LeadRepo() repository.LeadRepository {
	return NewLeadRepository(f.tx)
}

func (f *gormRepositoryFactory) WebsiteRequestRepo() repository.WebsiteRequestRepository {
	return NewWebsiteRequestRepository(f.tx)
}

func (f *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) PaymentRepo() repository.PaymentRepository {
	return NewPaymentRepository(f.tx)
}

func (f *gormRepositoryFactory) ListingRepo() repository.BusinessListingRepository {
	return NewBusinessListingRepository(f.tx)
}

func (f *gormRepositoryFactory) EarningRepo() repository.ReferralEarningRepository {
	return NewReferralEarningRepository(f.tx)
}

func (f *gormRepositoryFactory) WithdrawalRepo() repository.ReferralWithdrawalRepository {
	return NewReferralWithdrawalRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
