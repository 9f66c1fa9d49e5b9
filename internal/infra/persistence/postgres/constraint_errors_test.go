package postgres

import (
	"testing"

	domainerrors "bizhub/internal/domain/errors"
	"bizhub/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "uq_withdrawals_open_per_user"}, "insert")
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolationOn(unique, "uq_withdrawals_open_per_user"))
	assert.False(t, isUniqueViolationOn(unique, "idx_business_referral_withdrawals_request_no"))
	assert.False(t, isUniqueConstraintViolation(fk))
	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23514"}))
}

func TestClassifyWriteError(t *testing.T) {
	var appErr domainerrors.AppError
	err := classifyWriteError(errors.New("connection reset"), "failed to create order")
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())

	err = classifyWriteError(&pgconn.PgError{Code: "23503"}, "failed to create order")
	assert.False(t, errors.As(err, &appErr))
}
