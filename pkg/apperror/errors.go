package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses. Every handler
// failure goes through this type so the error-to-status mapping lives in one
// place: validation -> 400, not-found -> 404, auth -> 401, internal -> 500.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a 400 error for a malformed or incomplete request.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Wallets (WAL) ----

// ErrWalletNotFound returns the 404 used by every wallet lookup miss.
func ErrWalletNotFound(id int64) *AppError {
	return New("WAL_001", fmt.Sprintf("Wallet ID: %d not found", id), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or missing bearer token", http.StatusUnauthorized)
}

func ErrInvalidCredentials() *AppError {
	return New("AUTH_002", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidSession() *AppError {
	return New("AUTH_003", "Invalid or expired session", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_004", "You are not allowed to access that resource", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
