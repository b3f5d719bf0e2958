package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeInvalidQuery, "missing pattern"),
			expected: "INVALID_QUERY: missing pattern",
		},
		{
			name:     "error with cause",
			err:      Wrap(stderrors.New("boom"), ErrCodeRequestFailed, "request failed"),
			expected: "REQUEST_FAILED: request failed (caused by: boom)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := Wrap(cause, ErrCodeDeserialization, "could not interpret response")

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, stderrors.Is(err, cause))

	// Wrapping via fmt keeps the chain intact
	wrapped := fmt.Errorf("outer: %w", err)
	var appErr *AppError
	require.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, ErrCodeDeserialization, appErr.Code)
}

func TestGetHTTPCode(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeInvalidQuery, http.StatusBadRequest},
		{ErrCodeInvalidArgument, http.StatusBadRequest},
		{ErrCodeRequestTimeout, http.StatusGatewayTimeout},
		{ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{ErrCodeUnknownAPIKey, http.StatusUnauthorized},
		{ErrCodeUnauthorizedAPIKey, http.StatusUnauthorized},
		{ErrCodeEmptyResponse, http.StatusBadGateway},
		{ErrCodeUnknownAPIError, http.StatusBadGateway},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.code, "msg").GetHTTPCode())
		})
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeUnknownAPIKey, "api key does not exist")

	assert.True(t, Is(err, ErrCodeUnknownAPIKey))
	assert.False(t, Is(err, ErrCodeUnauthorizedAPIKey))
	assert.False(t, Is(stderrors.New("plain"), ErrCodeUnknownAPIKey))

	assert.Equal(t, ErrCodeUnknownAPIKey, GetCode(err))
	assert.Equal(t, ErrCodeInternal, GetCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeInvalidQuery, "bad query").
		WithDetail("field", "pattern").
		WithDetail("reason", "blank")

	assert.Equal(t, "pattern", err.Details["field"])
	assert.Equal(t, "blank", err.Details["reason"])
}
