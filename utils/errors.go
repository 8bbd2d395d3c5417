package utils

import (
	"fmt"
	"net/http"
)

// AppError represents an application error carrying the HTTP status it
// maps to at the boundary.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InvalidAmountError maps a rejected donation amount to 400.
func InvalidAmountError(err error) *AppError {
	return NewAppError(http.StatusBadRequest, "Invalid amount", err)
}

// GatewayUnconfiguredError signals that payment-gateway credentials are
// absent: a distinct, user-visible 503, not a generic failure.
func GatewayUnconfiguredError() *AppError {
	return NewAppError(http.StatusServiceUnavailable, "Razorpay keys not configured on server", nil)
}

// GatewayError wraps an upstream order-creation failure. The cause is
// logged by the caller and never leaked verbatim.
func GatewayError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "Order creation failed", err)
}

// InvalidSignatureError rejects a webhook whose signature did not verify.
func InvalidSignatureError() *AppError {
	return NewAppError(http.StatusBadRequest, "Invalid signature", nil)
}

// GetAppError returns the AppError if the error is an AppError
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}
