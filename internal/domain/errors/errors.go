package errors

import (
	"net/http"

	"mycomart/internal/errors"
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

// Is matches any BaseError carrying the same business error code, so
// details-enriched copies still compare equal to their sentinel.
func (e *BaseError) Is(target error) bool {
	var t *BaseError
	if !errors.As(target, &t) {
		return false
	}

	return e.errorCode == t.errorCode
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
	// Session-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please log in again",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Please log in to continue",
		"",
	)

	// Cart-related errors
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"That item is no longer in your cart",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be at least 1",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Your cart is empty",
		"",
	)

	// Checkout and payment errors
	ErrCheckoutInProgress = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_IN_PROGRESS",
		"A checkout is already in progress",
		"",
	)

	ErrNoPendingPayment = NewBaseError(
		http.StatusConflict,
		"NO_PENDING_PAYMENT",
		"No payment is awaiting verification",
		"",
	)

	ErrPaymentVerificationFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_VERIFICATION_FAILED",
		"Payment could not be verified; your cart has been kept",
		"",
	)

	ErrPaymentProviderFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_PROVIDER_FAILED",
		"The payment provider reported a failure",
		"",
	)

	// Room-related errors
	ErrRoomNotFound = NewBaseError(
		http.StatusNotFound,
		"ROOM_NOT_FOUND",
		"Grow room not found",
		"",
	)

	ErrDuplicateKitID = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_KIT_ID",
		"A room with that kit id already exists",
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
		"Something went wrong, please try again",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// BackendError represents a failed backend call that did reach the server and
// came back with a structured rejection. The backend's message is surfaced
// verbatim where available, per the error-propagation policy.
type BackendError struct {
	status  int
	code    string
	message string
	details string
}

// NewBackendError creates an error from a backend rejection response.
func NewBackendError(status int, code, message, details string) AppError {
	if message == "" {
		message = http.StatusText(status)
	}
	if code == "" {
		code = "BACKEND_REJECTED"
	}

	return &BackendError{status: status, code: code, message: message, details: details}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BackendError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	return e.code
}

// Message returns the user-friendly error message
func (e *BackendError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	return e.details
}

// NetworkError represents a request that never produced a server answer:
// connection refused, DNS failure, or the bounded timeout elapsing. These are
// retryable and are shown as a generic message; no automatic retry happens.
type NetworkError struct {
	err error
}

// NewNetworkError wraps a transport-level failure.
func NewNetworkError(err error) AppError {
	return &NetworkError{err: err}
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return errors.Wrap(e.err, "backend unreachable").Error()
}

// Unwrap exposes the transport cause for errors.Is checks.
func (e *NetworkError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *NetworkError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *NetworkError) ErrorCode() string {
	return "NETWORK_ERROR"
}

// Message returns the user-friendly error message
func (e *NetworkError) Message() string {
	return "Could not reach the server, please try again"
}

// Details returns detailed error information
func (e *NetworkError) Details() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}
