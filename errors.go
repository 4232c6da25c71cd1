package xendit

import (
	"errors"
	"fmt"
)

// Sentinel errors for each error kind. Use errors.Is to classify a failure:
//
//	_, err := x.Refunds.Create(ctx, params)
//	if errors.Is(err, xendit.ErrValidation) { ... }
//
// The kinds form a hierarchy: every 400-family error also matches
// ErrBadRequest, and channel/feature activation errors also match
// ErrForbidden.
var (
	// ErrConfiguration indicates invalid client configuration (e.g. empty API key).
	ErrConfiguration = errors.New("xendit: invalid configuration")

	// ErrAPI indicates an unexpected response status with no specific mapping.
	ErrAPI = errors.New("xendit: api error")

	// ErrAuthentication indicates the API key was rejected (HTTP 401).
	ErrAuthentication = errors.New("xendit: authentication failed")

	// ErrForbidden indicates the operation is not permitted (HTTP 403).
	ErrForbidden = errors.New("xendit: forbidden")

	// ErrNotFound indicates the requested resource does not exist (HTTP 404).
	ErrNotFound = errors.New("xendit: not found")

	// ErrConflict indicates the request conflicts with resource state (HTTP 409).
	ErrConflict = errors.New("xendit: conflict")

	// ErrRateLimit indicates too many requests (HTTP 429).
	ErrRateLimit = errors.New("xendit: rate limit exceeded")

	// ErrServer indicates a Xendit-side failure (HTTP 5xx).
	ErrServer = errors.New("xendit: server error")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("xendit: request timeout")

	// ErrConnection indicates the connection could not be established.
	ErrConnection = errors.New("xendit: connection failed")

	// ErrBadRequest indicates a rejected request (HTTP 400) with no more
	// specific vendor error code.
	ErrBadRequest = errors.New("xendit: bad request")

	// ErrValidation indicates invalid parameters, raised client-side before
	// any network call or server-side via API_VALIDATION_ERROR.
	ErrValidation = errors.New("xendit: validation error")

	// ErrDuplicate indicates a duplicate resource (DUPLICATE_ERROR).
	ErrDuplicate = errors.New("xendit: duplicate error")

	// ErrInsufficientBalance indicates the account balance cannot cover the
	// operation (INSUFFICIENT_BALANCE).
	ErrInsufficientBalance = errors.New("xendit: insufficient balance")

	// ErrIdempotency indicates an idempotency key was reused with a different
	// payload (IDEMPOTENCY_ERROR).
	ErrIdempotency = errors.New("xendit: idempotency error")

	// ErrChannelNotActivated indicates the payment channel is not enabled for
	// the account (CHANNEL_NOT_ACTIVATED).
	ErrChannelNotActivated = errors.New("xendit: channel not activated")

	// ErrFeatureNotActivated indicates the feature is not enabled for the
	// account (FEATURE_NOT_ACTIVATED).
	ErrFeatureNotActivated = errors.New("xendit: feature not activated")

	// ErrInvalidPaymentMethod indicates the payment method cannot be used
	// (INVALID_PAYMENT_METHOD).
	ErrInvalidPaymentMethod = errors.New("xendit: invalid payment method")

	// ErrCustomerNotFound indicates the referenced customer does not exist
	// (CUSTOMER_NOT_FOUND_ERROR).
	ErrCustomerNotFound = errors.New("xendit: customer not found")

	// ErrMaxAmountLimit indicates the amount exceeds the channel limit
	// (MAX_AMOUNT_LIMIT_ERROR).
	ErrMaxAmountLimit = errors.New("xendit: max amount limit exceeded")

	// ErrAccountAccessBlocked indicates the linked account is blocked
	// (ACCOUNT_ACCESS_BLOCKED).
	ErrAccountAccessBlocked = errors.New("xendit: account access blocked")
)

// errParent maps each sentinel to its parent kind. Absent entries are roots.
var errParent = map[error]error{
	ErrValidation:           ErrBadRequest,
	ErrDuplicate:            ErrBadRequest,
	ErrInsufficientBalance:  ErrBadRequest,
	ErrIdempotency:          ErrBadRequest,
	ErrInvalidPaymentMethod: ErrBadRequest,
	ErrCustomerNotFound:     ErrBadRequest,
	ErrMaxAmountLimit:       ErrBadRequest,
	ErrAccountAccessBlocked: ErrBadRequest,
	ErrChannelNotActivated:  ErrForbidden,
	ErrFeatureNotActivated:  ErrForbidden,
}

// Error is a classified failure from the SDK. Status and Code are zero for
// errors raised client-side before any network call.
type Error struct {
	// Kind is the sentinel identifying the error class (ErrValidation,
	// ErrRateLimit, ...). errors.Is matches Kind and its parents.
	Kind error

	// Status is the HTTP status code of the failed response, if any.
	Status int

	// Code is the vendor error_code from the response body, if any.
	Code string

	// Message is a human-readable description of the failure.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("xendit: [%d] %s", e.Status, e.Message)
	}
	return "xendit: " + e.Message
}

// Is reports whether target matches this error's kind or any parent kind.
func (e *Error) Is(target error) bool {
	for kind := e.Kind; kind != nil; kind = errParent[kind] {
		if kind == target {
			return true
		}
	}
	return false
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func newValidationError(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

// errorCodeKinds maps vendor error codes on 400 responses to error kinds.
// Unrecognized or absent codes fall back to ErrBadRequest.
var errorCodeKinds = map[string]error{
	"API_VALIDATION_ERROR":     ErrValidation,
	"DUPLICATE_ERROR":          ErrDuplicate,
	"INSUFFICIENT_BALANCE":     ErrInsufficientBalance,
	"IDEMPOTENCY_ERROR":        ErrIdempotency,
	"CHANNEL_NOT_ACTIVATED":    ErrChannelNotActivated,
	"FEATURE_NOT_ACTIVATED":    ErrFeatureNotActivated,
	"INVALID_PAYMENT_METHOD":   ErrInvalidPaymentMethod,
	"CUSTOMER_NOT_FOUND_ERROR": ErrCustomerNotFound,
	"MAX_AMOUNT_LIMIT_ERROR":   ErrMaxAmountLimit,
	"ACCOUNT_ACCESS_BLOCKED":   ErrAccountAccessBlocked,
}
