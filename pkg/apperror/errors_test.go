package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("WAL_001", "Wallet ID: 7 not found", http.StatusNotFound),
			expected: "[WAL_001] Wallet ID: 7 not found",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Validation", Validation("wallet_address is required"), "VAL_001", 400},
		{"WalletNotFound", ErrWalletNotFound(42), "WAL_001", 404},
		{"InvalidToken", ErrInvalidToken(), "AUTH_001", 401},
		{"InvalidCredentials", ErrInvalidCredentials(), "AUTH_002", 401},
		{"InvalidSession", ErrInvalidSession(), "AUTH_003", 401},
		{"Forbidden", ErrForbidden(), "AUTH_004", 403},
		{"RateLimitExceeded", ErrRateLimitExceeded(), "RATE_001", 429},
		{"Internal", InternalError(fmt.Errorf("boom")), "SYS_001", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestWalletNotFoundMessage(t *testing.T) {
	err := ErrWalletNotFound(7)
	assert.Contains(t, err.Message, "7")
}
