package postgres

import (
	domainerrors "bizhub/internal/domain/errors"
	"bizhub/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

func hasCode(err error, code string) bool {
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == code
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasCode(err, pgUniqueViolation)
}

// isUniqueViolationOn reports a unique violation of the named constraint or index.
func isUniqueViolationOn(err error, constraint string) bool {
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraint
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || hasCode(err, pgForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return hasCode(err, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || hasCode(err, pgCheckViolation)
}

// classifyWriteError maps constraint violations other than unique ones.
func classifyWriteError(err error, details string) error {
	switch {
	case isForeignKeyConstraintViolation(err),
		isNotNullConstraintViolation(err),
		isCheckConstraintViolation(err):
		return errors.Wrap(err, details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
