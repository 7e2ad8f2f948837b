package core

import "errors"

// ErrorCode represents a machine-readable error identifier.
type ErrorCode string

// Error code constants.
const (
	// ErrCodeNetwork indicates a network connectivity failure.
	ErrCodeNetwork ErrorCode = "NETWORK_ERROR"
	// ErrCodeHTTPStatus indicates a non-2xx HTTP status.
	ErrCodeHTTPStatus ErrorCode = "HTTP_STATUS"
	// ErrCodeMalformedResponse indicates the body was not a JSON envelope.
	ErrCodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
	// ErrCodeRejected indicates the envelope carried success=false.
	ErrCodeRejected ErrorCode = "REJECTED"

	// ErrCodeInvalidParameter indicates an argument failed validation.
	ErrCodeInvalidParameter ErrorCode = "INVALID_PARAMETER"

	// Configuration errors
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	ErrCodeNoCredentials ErrorCode = "NO_CREDENTIALS"

	// Client state errors
	ErrCodeClientClosed ErrorCode = "CLIENT_CLOSED"
)

// IsErrorCode checks if the error matches the specified error code.
func IsErrorCode(err error, code ErrorCode) bool {
	var exErr *ExchangeError
	if errors.As(err, &exErr) {
		return ErrorCode(exErr.Code) == code
	}
	return false
}
