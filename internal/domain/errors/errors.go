package errors

import (
	"net/http"

	"courier/internal/domain/entity"
	"courier/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrInvalidOrderReference = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_REFERENCE",
		"Invalid order reference",
		"",
	)

	ErrStatusUpdateFailed = NewBaseError(
		http.StatusBadGateway,
		"STATUS_UPDATE_FAILED",
		"Order status could not be updated, please retry",
		"",
	)

	// Navigation-related errors
	ErrNavigationUnavailable = NewBaseError(
		http.StatusNotFound,
		"NAVIGATION_UNAVAILABLE",
		"No navigation coordinates available for this order",
		"",
	)

	// Delivery confirmation errors
	ErrProofRequired = NewBaseError(
		http.StatusBadRequest,
		"PROOF_REQUIRED",
		"A signature or a proof of delivery photo is required",
		"",
	)

	// Deliveryman-related errors
	ErrDeliverymanNotFound = NewBaseError(
		http.StatusNotFound,
		"DELIVERYMAN_NOT_FOUND",
		"Deliveryman not found",
		"",
	)

	ErrDeliverymanAlreadyExists = NewBaseError(
		http.StatusConflict,
		"DELIVERYMAN_ALREADY_EXISTS",
		"Un compte livreur existe déjà avec cet e-mail",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_INACTIVE",
		entity.DeliverymanStatusInactive.BlockedReason(),
		"",
	)

	ErrAccountSuspended = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_SUSPENDED",
		entity.DeliverymanStatusSuspended.BlockedReason(),
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// NewAccountNotActiveError reports an account whose status is neither active, inactive nor suspended
func NewAccountNotActiveError(status entity.DeliverymanStatus) *BaseError {
	return NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_NOT_ACTIVE",
		status.BlockedReason(),
		"",
	)
}

// StorageExecuteError represents a document or object store failure, implementing the AppError interface
type StorageExecuteError struct {
	err     error
	details string
}

// NewStorageExecuteError creates a storage-related error
func NewStorageExecuteError(err error, details string) AppError {
	return &StorageExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageExecuteError) Error() string {
	return errors.Wrap(e.err, "storage execution failed").Error()
}

// Unwrap exposes the underlying storage error
func (e *StorageExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageExecuteError) ErrorCode() string {
	return "STORAGE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageExecuteError) Message() string {
	return "Storage execution failed"
}

// Details returns detailed error information
func (e *StorageExecuteError) Details() string {
	return e.details
}
