package postgres

import (
	"context"
	"fmt"

	"bizhub/internal/errors"
	"bizhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&model.LeadModel{},
		&model.WebsiteRequestModel{},
		&model.OrderModel{},
		&model.PaymentModel{},
		&model.BusinessUserModel{},
		&model.BusinessListingModel{},
		&model.AdminUserModel{},
		&model.ReferralEarningModel{},
		&model.ReferralWithdrawalModel{},
	}
}

// Migrate creates or updates the schema, including indexes GORM tags cannot express.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return errors.Wrap(err, "failed to enable pgcrypto")
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate")
	}

	openWithdrawalIndex := fmt.Sprintf(
		`CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (user_id) WHERE status IN ('requested', 'processing')`,
		model.OpenWithdrawalIndex, model.ReferralWithdrawalModel{}.TableName(),
	)
	if err := db.Exec(openWithdrawalIndex).Error; err != nil {
		return errors.Wrap(err, "failed to create open withdrawal index")
	}

	return nil
}
