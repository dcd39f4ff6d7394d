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

// ---- Input Validation (VAL) ----

func ErrInvalidAmount() *AppError {
	return New("VAL_001", "Invalid amount", http.StatusBadRequest)
}

func ErrInvalidEmail() *AppError {
	return New("VAL_002", "Invalid PayPal email", http.StatusBadRequest)
}

func ErrMissingOrderID() *AppError {
	return New("VAL_003", "Missing orderID", http.StatusBadRequest)
}

// ---- Gateway (GW) ----

func ErrOrderCreationFailed(err error) *AppError {
	return Wrap("GW_001", "Could not create order", http.StatusInternalServerError, err)
}

func ErrCaptureFailed(err error) *AppError {
	return Wrap("GW_002", "Capture failed", http.StatusInternalServerError, err)
}

// ErrAuthFailed reports a failed client-credential exchange with the gateway.
// The underlying message is shown: the withdrawal contract surfaces it.
func ErrAuthFailed(err error) *AppError {
	return Wrap("GW_003", err.Error(), http.StatusInternalServerError, err)
}

// ErrPayoutFailed reports a transport failure while submitting a payout.
// The underlying message is shown: the withdrawal contract surfaces it.
func ErrPayoutFailed(err error) *AppError {
	return Wrap("GW_004", err.Error(), http.StatusInternalServerError, err)
}

func ErrPayoutStatusFailed(err error) *AppError {
	return Wrap("GW_005", "Failed to get payout status", http.StatusInternalServerError, err)
}

// ---- Geocoding (GEO) ----

func ErrGeocodeFailed(err error) *AppError {
	return Wrap("GEO_001", "Failed to fetch location", http.StatusInternalServerError, err)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}
