package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of an exchange error.
type ErrorType int

// Error type constants categorize errors for proper handling.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeConfiguration indicates missing or invalid credentials or config.
	ErrorTypeConfiguration
	// ErrorTypeValidation indicates a caller-supplied argument failed a precondition.
	ErrorTypeValidation
	// ErrorTypeTransport indicates the HTTP call failed or returned a non-2xx status.
	ErrorTypeTransport
	// ErrorTypeAPI indicates the API answered with success set to false.
	ErrorTypeAPI
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"CONFIGURATION",
		"VALIDATION",
		"TRANSPORT",
		"API",
	}[t]
}

// Sentinel errors for common error conditions.
var (
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
	// ErrNoCredentials is returned when no API credentials are configured.
	ErrNoCredentials = errors.New("no credentials configured")
)

// ExchangeError represents a structured error produced by the client or returned by the exchange.
type ExchangeError struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType `json:"type"`
	// StatusCode is the HTTP status code from the response, zero when no response was received.
	StatusCode int `json:"status_code"`
	// Code is a machine-readable error code, see ErrorCode.
	Code string `json:"code"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// Exchange identifies which exchange the error relates to.
	Exchange string `json:"exchange"`
	// Timestamp is when the error occurred.
	Timestamp time.Time `json:"timestamp"`

	err error
}

// Error implements the error interface for ExchangeError.
// It returns a formatted string with exchange name, error type, status code, and message.
func (e *ExchangeError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s (%d/%s): %s",
			e.Exchange, e.Type, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (%d): %s",
		e.Exchange, e.Type, e.StatusCode, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *ExchangeError) Unwrap() error {
	return e.err
}

// WithCode sets the error code and returns the error for chaining.
func (e *ExchangeError) WithCode(code ErrorCode) *ExchangeError {
	e.Code = string(code)
	return e
}

// Wrap records err as the underlying cause and returns the error for chaining.
func (e *ExchangeError) Wrap(err error) *ExchangeError {
	e.err = err
	return e
}

// NewExchangeError creates a new ExchangeError with the specified details.
// The timestamp is automatically set to the current time.
func NewExchangeError(exchange string, errorType ErrorType, statusCode int, message string) *ExchangeError {
	return &ExchangeError{
		Type:       errorType,
		StatusCode: statusCode,
		Message:    message,
		Exchange:   exchange,
		Timestamp:  time.Now(),
	}
}

// NewValidationError reports that field failed a precondition.
func NewValidationError(exchange, field, message string) *ExchangeError {
	return NewExchangeError(exchange, ErrorTypeValidation, 0, fmt.Sprintf("%s: %s", field, message)).
		WithCode(ErrCodeInvalidParameter)
}

func isType(err error, t ErrorType) bool {
	var e *ExchangeError
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsConfigurationError returns true if the error is caused by missing or invalid configuration.
func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}

// IsValidationError returns true if a caller-supplied argument was rejected before any request was sent.
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsTransportError returns true if the HTTP exchange itself failed.
func IsTransportError(err error) bool {
	return isType(err, ErrorTypeTransport)
}

// IsAPIError returns true if the API rejected the request in its response envelope.
func IsAPIError(err error) bool {
	return isType(err, ErrorTypeAPI)
}
