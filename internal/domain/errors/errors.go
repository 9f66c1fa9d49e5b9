package errors

import (
	"net/http"

	"bizhub/internal/errors"
)

// AppError is an error that knows how it should be rendered to API clients.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Stable machine-readable code
	Message() string   // Human readable message
	Details() string   // Optional extra context
}

// BaseError is the default AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches the
// original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

var (
	// Input errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrPlanPaymentDisabled = NewBaseError(
		http.StatusBadRequest,
		"PLAN_PAYMENT_DISABLED",
		"This plan cannot be purchased online, please contact sales",
		"",
	)

	ErrInvalidWebhookPayload = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Webhook payload could not be decoded",
		"",
	)

	// Auth errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid email or password",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Lookup errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrLeadNotFound = NewBaseError(
		http.StatusNotFound,
		"LEAD_NOT_FOUND",
		"Lead not found",
		"",
	)

	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"Business listing not found",
		"",
	)

	ErrWithdrawalNotFound = NewBaseError(
		http.StatusNotFound,
		"WITHDRAWAL_NOT_FOUND",
		"Withdrawal request not found",
		"",
	)

	// Payment errors
	ErrSignatureMismatch = NewBaseError(
		http.StatusBadRequest,
		"SIGNATURE_MISMATCH",
		"Payment signature verification failed",
		"",
	)

	ErrOrderTypeMismatch = NewBaseError(
		http.StatusBadRequest,
		"ORDER_TYPE_MISMATCH",
		"Order does not belong to this payment flow",
		"",
	)

	ErrListingAlreadyPaid = NewBaseError(
		http.StatusBadRequest,
		"TERMINAL_STATE",
		"Listing fee has already been paid",
		"",
	)

	ErrListingNotApproved = NewBaseError(
		http.StatusConflict,
		"LISTING_NOT_APPROVED",
		"Certificate is available only for approved listings",
		"",
	)

	ErrTerminalState = NewBaseError(
		http.StatusBadRequest,
		"TERMINAL_STATE",
		"Record is in a terminal state and cannot change",
		"",
	)

	// Referral errors
	ErrInvalidAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AMOUNT",
		"Withdrawal amount is invalid",
		"",
	)

	ErrMissingPayoutDetail = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PAYOUT_DETAIL",
		"Payout details are incomplete for the selected method",
		"",
	)

	ErrNotEligible = NewBaseError(
		http.StatusForbidden,
		"NOT_ELIGIBLE",
		"An approved and paid business listing is required",
		"",
	)

	ErrPendingRequestExists = NewBaseError(
		http.StatusConflict,
		"PENDING_REQUEST_EXISTS",
		"A withdrawal request is already open",
		"",
	)

	ErrInsufficientBalance = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_BALANCE",
		"Withdrawal amount exceeds the available balance",
		"",
	)

	// Infrastructure errors
	ErrExhaustedRetries = NewBaseError(
		http.StatusInternalServerError,
		"EXHAUSTED_RETRIES",
		"Could not allocate a unique identifier, please retry",
		"",
	)

	ErrDependencyFailure = NewBaseError(
		http.StatusInternalServerError,
		"DEPENDENCY_FAILURE",
		"Payment provider is unavailable",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
