package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		want      string
	}{
		{"unknown", ErrorTypeUnknown, "UNKNOWN"},
		{"configuration", ErrorTypeConfiguration, "CONFIGURATION"},
		{"validation", ErrorTypeValidation, "VALIDATION"},
		{"transport", ErrorTypeTransport, "TRANSPORT"},
		{"api", ErrorTypeAPI, "API"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.errorType.String())
		})
	}
}

func TestExchangeError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExchangeError
		want string
	}{
		{
			name: "without_code",
			err: &ExchangeError{
				Exchange:   "stakecube",
				Type:       ErrorTypeTransport,
				StatusCode: 502,
				Message:    "bad gateway",
			},
			want: "[stakecube] TRANSPORT (502): bad gateway",
		},
		{
			name: "with_code",
			err: &ExchangeError{
				Exchange:   "stakecube",
				Type:       ErrorTypeAPI,
				StatusCode: 200,
				Code:       "REJECTED",
				Message:    "bad nonce",
			},
			want: "[stakecube] API (200/REJECTED): bad nonce",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestNewExchangeError(t *testing.T) {
	err := NewExchangeError("stakecube", ErrorTypeTransport, 503, "service unavailable")

	assert.NotNil(t, err)
	assert.Equal(t, "stakecube", err.Exchange)
	assert.Equal(t, ErrorTypeTransport, err.Type)
	assert.Equal(t, 503, err.StatusCode)
	assert.Equal(t, "service unavailable", err.Message)
	assert.False(t, err.Timestamp.IsZero())
	assert.Nil(t, err.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("stakecube", "address", "is required")

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, string(ErrCodeInvalidParameter), err.Code)
	assert.Equal(t, "address: is required", err.Message)
}

func TestExchangeError_Wrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewExchangeError("stakecube", ErrorTypeTransport, 0, "http request").Wrap(cause)

	wrapped := fmt.Errorf("get account: %w", err)

	assert.ErrorIs(t, wrapped, cause)
	assert.True(t, IsTransportError(wrapped))
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name  string
		typ   ErrorType
		check func(error) bool
	}{
		{"configuration", ErrorTypeConfiguration, IsConfigurationError},
		{"validation", ErrorTypeValidation, IsValidationError},
		{"transport", ErrorTypeTransport, IsTransportError},
		{"api", ErrorTypeAPI, IsAPIError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewExchangeError("stakecube", tt.typ, 0, "message")
			assert.True(t, tt.check(err))
			assert.False(t, tt.check(NewExchangeError("stakecube", ErrorTypeUnknown, 0, "message")))
			assert.False(t, tt.check(errors.New("plain")))
			assert.False(t, tt.check(nil))
		})
	}
}

func TestIsErrorCode(t *testing.T) {
	err := NewExchangeError("stakecube", ErrorTypeAPI, 200, "bad nonce").WithCode(ErrCodeRejected)

	assert.True(t, IsErrorCode(err, ErrCodeRejected))
	assert.False(t, IsErrorCode(err, ErrCodeHTTPStatus))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrCodeRejected))
}
