package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
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

// ---- Device & Connectivity (DEV) ----

func ErrInactiveDevice(side string) *AppError {
	return New("DEV_001", fmt.Sprintf("%s device is inactive", side), http.StatusConflict)
}

func ErrLinkRequired() *AppError {
	return New("DEV_002", "Watch link required (check Bluetooth and Wi-Fi)", http.StatusPreconditionFailed)
}

// ---- Payment Business Logic (PAY) ----

func ErrInvalidAmount() *AppError {
	return New("PAY_001", "Invalid amount", http.StatusBadRequest)
}

func ErrWalletCapExceeded() *AppError {
	return New("PAY_002", "Wallet balance cap exceeded", http.StatusUnprocessableEntity)
}

func ErrInsufficientFunding() *AppError {
	return New("PAY_003", "Insufficient bank balance", http.StatusPaymentRequired)
}

func ErrAmountExceedsLimit() *AppError {
	return New("PAY_004", "Amount exceeds micro-payment limit", http.StatusUnprocessableEntity)
}

func ErrDebtPending() *AppError {
	return New("PAY_005", "Outstanding overdraft debt, no further emergency payments", http.StatusConflict)
}

func ErrCancelled() *AppError {
	return New("PAY_006", "Payment request cancelled", http.StatusConflict)
}

// ---- Offline Sync (SYNC) ----

func ErrSyncRequired() *AppError {
	return New("SYNC_001", "Offline transaction limit reached, sync required", http.StatusPreconditionRequired)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_001-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("PAY_001", message, http.StatusBadRequest)
}
